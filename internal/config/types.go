package config

import "time"

// Config represents the main application configuration structure.
// It is built once at startup and treated as read-only afterwards.
type Config struct {
	// HTTP server port (e.g., 8080)
	Port int

	// Deployment environment name (e.g., "local", "staging", "production")
	Environment string

	// Logging threshold name (error, warn, info, debug)
	LogLevel string

	// Log line format ("console" or "json")
	LogFormat string

	// Directory whose files are served at their relative path
	StaticDir string

	// Upper bound on draining in-flight requests at shutdown
	ShutdownTimeout time.Duration

	// Whether /metrics and request instrumentation are enabled
	MetricsEnabled bool
}

// IsProduction reports whether error details must be redacted.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// ServerConfig represents server-related configuration settings in YAML.
type ServerConfig struct {
	// HTTP server port (e.g., 8080)
	Port int `yaml:"port"`

	// Deployment environment name
	Environment string `yaml:"environment"`

	// Logging level (e.g., "info", "debug", "warn", "error")
	LogLevel string `yaml:"log_level"`

	// Log format ("console" or "json")
	LogFormat string `yaml:"log_format"`

	// Static asset directory
	StaticDir string `yaml:"static_dir"`

	// Shutdown grace period as string (e.g., "30s")
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// MetricsConfig represents Prometheus metrics settings in YAML.
type MetricsConfig struct {
	// Whether /metrics is exposed (true/false)
	Enabled bool `yaml:"enabled"`
}

// YAMLConfig represents the structure of the YAML configuration file.
type YAMLConfig struct {
	// Server configuration settings
	Server ServerConfig `yaml:"server"`

	// Metrics configuration
	Metrics MetricsConfig `yaml:"metrics"`
}
