package main

import (
	"flag"
	"fmt"
	"io"
	"runtime"
	"strconv"

	"github.com/redhat-appstudio/my-app/internal/config"
	"github.com/redhat-appstudio/my-app/internal/version"
)

// Help and version text
const (
	AppDescription = "Informational and health-check HTTP service"
)

// ServerFlags holds the command-line flags. Empty string values mean the
// flag was not given, so environment variables and YAML still apply.
type ServerFlags struct {
	// HTTP server port number
	Port string
	// Deployment environment name
	Environment string
	// Logging threshold (debug/info/warn/error)
	LogLevel string

	// Show help information and exit
	Help bool
	// Show version information and exit
	Version bool
}

// parseFlags parses args into a ServerFlags using its own FlagSet.
func parseFlags(args []string, output io.Writer) (*ServerFlags, error) {
	f := &ServerFlags{}

	fs := flag.NewFlagSet(version.AppName, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&f.Port, "port", "",
		fmt.Sprintf("Server port number (env %s, default: %d)", config.EnvPort, config.DefaultPort))
	fs.StringVar(&f.Environment, "env", "",
		fmt.Sprintf("Deployment environment name (env %s, default: %s)", config.EnvEnvironment, config.DefaultEnvironment))
	fs.StringVar(&f.LogLevel, "log-level", "",
		fmt.Sprintf("Log level: %s, %s, %s, %s (env %s, default: %s)",
			config.ValidLogLevelError, config.ValidLogLevelWarn, config.ValidLogLevelInfo, config.ValidLogLevelDebug,
			config.EnvLogLevel, config.DefaultLogLevel))

	fs.BoolVar(&f.Help, "help", false, "Show help information and exit")
	fs.BoolVar(&f.Help, "h", false, "Show help information and exit (short form)")
	fs.BoolVar(&f.Version, "version", false, "Show version information and exit")
	fs.BoolVar(&f.Version, "v", false, "Show version information and exit (short form)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// showHelp prints usage, configuration sources and examples.
func (f *ServerFlags) showHelp(w io.Writer) {
	fmt.Fprintf(w, "%s - %s\n", version.AppName, AppDescription)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "USAGE:")
	fmt.Fprintln(w, "  server [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "FLAGS:")
	fmt.Fprintln(w, "    -port string        Server port (default: 8080)")
	fmt.Fprintln(w, "    -env string         Environment name (default: local)")
	fmt.Fprintln(w, "    -log-level string   Log level: error, warn, info, debug (default: info)")
	fmt.Fprintln(w, "    -help, -h           Show this help information")
	fmt.Fprintln(w, "    -version, -v        Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "ENVIRONMENT:")
	fmt.Fprintln(w, "    PORT, ENV, LOG_LEVEL, LOG_FORMAT, STATIC_DIR, SHUTDOWN_TIMEOUT, METRICS_ENABLED, CONFIG_FILE")
	fmt.Fprintln(w, "    Variables may also be placed in a .env file in the working directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "EXAMPLES:")
	fmt.Fprintln(w, "  # Start with default settings")
	fmt.Fprintln(w, "  server")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  # Production mode, only warnings and errors logged")
	fmt.Fprintln(w, "  ENV=production LOG_LEVEL=warn server")
}

// showVersion prints version and build information.
func (f *ServerFlags) showVersion(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", version.AppName, version.GetVersion())
	fmt.Fprintf(w, "Build info: %s\n", version.GetBuildInfo())
	fmt.Fprintf(w, "Go version: %s\n", runtime.Version())
}

// validate rejects a port flag that is not a TCP port number. Environment
// names and log levels are accepted as given.
func (f *ServerFlags) validate() error {
	if f.Port == "" {
		return nil
	}
	port, err := strconv.Atoi(f.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid port: %q (must be a number between 1 and 65535)", f.Port)
	}
	return nil
}

// GetPort returns the port flag value.
func (f *ServerFlags) GetPort() string {
	return f.Port
}

// GetEnvironment returns the environment flag value.
func (f *ServerFlags) GetEnvironment() string {
	return f.Environment
}

// GetLogLevel returns the log level flag value.
func (f *ServerFlags) GetLogLevel() string {
	return f.LogLevel
}
