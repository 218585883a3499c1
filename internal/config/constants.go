package config

import "time"

// Default configuration values
const (
	// DefaultPort is the default HTTP server port
	DefaultPort = 8080

	// DefaultEnvironment is the default deployment environment
	DefaultEnvironment = "local"

	// DefaultLogLevel is the default logging level
	DefaultLogLevel = "info"

	// DefaultLogFormat renders "[timestamp] [LEVEL] message" lines
	DefaultLogFormat = "console"

	// DefaultStaticDir is served verbatim before the API routes
	DefaultStaticDir = "public"

	// DefaultShutdownTimeout bounds how long in-flight requests may drain
	DefaultShutdownTimeout = 30 * time.Second

	// DefaultConfigFile is the optional YAML configuration file
	DefaultConfigFile = "configs/config.yaml"
)

// EnvironmentProduction is the only environment name with special handling:
// internal error details are redacted from 500 responses.
const EnvironmentProduction = "production"

// Valid log level values
const (
	ValidLogLevelDebug = "debug"
	ValidLogLevelInfo  = "info"
	ValidLogLevelWarn  = "warn"
	ValidLogLevelError = "error"
)

// Environment variable names
const (
	EnvPort            = "PORT"
	EnvEnvironment     = "ENV"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvStaticDir       = "STATIC_DIR"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
	EnvMetricsEnabled  = "METRICS_ENABLED"
	EnvConfigFile      = "CONFIG_FILE"
)
