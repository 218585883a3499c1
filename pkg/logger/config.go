package logger

import (
	"github.com/redhat-appstudio/my-app/internal/config"
)

// FromConfig derives the logger configuration from the application config.
func FromConfig(cfg *config.Config) *Config {
	loggerConfig := DefaultConfig()

	loggerConfig.Level = ParseLevel(cfg.LogLevel)

	if cfg.LogFormat == FormatJSON {
		loggerConfig.Format = FormatJSON
	}

	loggerConfig.OutputPath = "stdout"

	return loggerConfig
}

// InitFromConfig initializes Default from the application config.
func InitFromConfig(cfg *config.Config) error {
	return Init(FromConfig(cfg))
}
