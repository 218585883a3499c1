package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load builds a Config from the environment and the optional YAML file,
// without command-line overrides.
func Load() *Config {
	return LoadWithFlags(nil)
}

// Flags defines the interface for command-line flag access.
// Empty values mean "not set on the command line".
type Flags interface {
	GetPort() string
	GetEnvironment() string
	GetLogLevel() string
}

// LoadWithFlags builds a Config applying, from highest to lowest precedence:
//  1. Command-line flags (port, environment, log level)
//  2. Environment variables
//  3. YAML configuration file (CONFIG_FILE, default configs/config.yaml)
//  4. Default values
//
// Nothing is validated beyond defaulting: unparsable numbers and durations
// fall back to their defaults, and log level names are resolved by the logger.
func LoadWithFlags(flgs Flags) *Config {
	yamlConfig := loadFromYAML(getEnv(EnvConfigFile, DefaultConfigFile))

	port := yamlConfig.Server.Port
	if port <= 0 {
		port = DefaultPort
	}
	port = getEnvInt(EnvPort, port)
	if flgs != nil && flgs.GetPort() != "" {
		port = parsePort(flgs.GetPort(), port)
	}

	environment := getEnv(EnvEnvironment, yamlConfig.Server.Environment)
	if environment == "" {
		environment = DefaultEnvironment
	}
	if flgs != nil && flgs.GetEnvironment() != "" {
		environment = flgs.GetEnvironment()
	}

	logLevel := getEnv(EnvLogLevel, yamlConfig.Server.LogLevel)
	if logLevel == "" {
		logLevel = DefaultLogLevel
	}
	if flgs != nil && flgs.GetLogLevel() != "" {
		logLevel = flgs.GetLogLevel()
	}

	logFormat := strings.ToLower(getEnv(EnvLogFormat, yamlConfig.Server.LogFormat))
	if logFormat == "" {
		logFormat = DefaultLogFormat
	}

	staticDir := getEnv(EnvStaticDir, yamlConfig.Server.StaticDir)
	if staticDir == "" {
		staticDir = DefaultStaticDir
	}

	shutdownTimeout := parseDuration(yamlConfig.Server.ShutdownTimeout, DefaultShutdownTimeout)
	shutdownTimeout = parseDuration(os.Getenv(EnvShutdownTimeout), shutdownTimeout)

	return &Config{
		Port:            port,
		Environment:     environment,
		LogLevel:        logLevel,
		LogFormat:       logFormat,
		StaticDir:       staticDir,
		ShutdownTimeout: shutdownTimeout,
		MetricsEnabled:  getEnvBool(EnvMetricsEnabled, yamlConfig.Metrics.Enabled),
	}
}

// loadFromYAML reads the optional config file. A missing or malformed file
// yields an empty YAMLConfig so that defaults apply.
func loadFromYAML(path string) *YAMLConfig {
	config := &YAMLConfig{}
	data, err := os.ReadFile(path)
	if err != nil {
		return config
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return &YAMLConfig{}
	}
	return config
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	return parsePort(os.Getenv(key), fallback)
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}

func parsePort(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || port <= 0 || port > 65535 {
		return fallback
	}
	return port
}

func parseDuration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
