package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redhat-appstudio/my-app/internal/config"
	"github.com/redhat-appstudio/my-app/internal/server"
	"github.com/redhat-appstudio/my-app/pkg/logger"

	"github.com/joho/godotenv"
)

// main is the entry point for the service. It:
//  1. Parses command-line flags
//  2. Loads environment variables from .env file if present
//  3. Builds the configuration (flags > env > YAML > defaults)
//  4. Initializes the logger and the HTTP server
//  5. Serves until SIGINT or SIGTERM, then drains and exits 0
func main() {
	startTime := time.Now()

	flags, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}
	if flags.Help {
		flags.showHelp(os.Stdout)
		return
	}
	if flags.Version {
		flags.showVersion(os.Stdout)
		return
	}
	if err := flags.validate(); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.LoadWithFlags(flags)

	if err := logger.InitFromConfig(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Default.Sync() //nolint:errcheck

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go waitForSignal(signals, cancel)

	srv := server.New(cfg, startTime)
	if err := srv.Start(ctx); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}

	logger.Info("Process terminated")
}

// waitForSignal cancels the server context on the first signal received.
func waitForSignal(signals chan os.Signal, cancel context.CancelFunc) {
	sig := <-signals
	logger.Infof("%s received, shutting down gracefully", signalName(sig))
	signal.Stop(signals)
	cancel()
}

func signalName(sig os.Signal) string {
	switch sig {
	case syscall.SIGINT:
		return "SIGINT"
	case syscall.SIGTERM:
		return "SIGTERM"
	default:
		return sig.String()
	}
}
