package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/redhat-appstudio/my-app/apis/common"
	"github.com/redhat-appstudio/my-app/internal/config"
	"github.com/redhat-appstudio/my-app/internal/handlers"
	"github.com/redhat-appstudio/my-app/internal/version"
	"github.com/redhat-appstudio/my-app/pkg/logger"
	"github.com/redhat-appstudio/my-app/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
)

// Server represents the HTTP server instance with all its components.
type Server struct {
	// app is the Fiber HTTP application instance
	app *fiber.App

	// cfg contains the server configuration
	cfg *config.Config

	// metrics is nil unless metrics are enabled
	metrics *metrics.Metrics
}

// New creates a Server with middleware, static files, routes and the
// not-found fallback registered in that order. The logger is expected to be
// initialized by the caller.
func New(cfg *config.Config, startTime time.Time) *Server {
	app := fiber.New(fiber.Config{
		AppName:               version.AppName + " " + version.GetVersion(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          ErrorHandler(cfg),
		DisableStartupMessage: true,
	})

	// Middleware
	app.Use(recover.New())

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
		app.Use(m.Middleware())
		app.Get(metrics.Path, m.Handler())
		logger.Infof("Metrics enabled at %s", metrics.Path)
	}

	registerStatic(app, cfg.StaticDir)

	handlers.SetupRoutes(app, cfg, startTime)

	// Must stay last: anything not matched above is a 404.
	app.Use(NotFoundHandler)

	return &Server{
		app:     app,
		cfg:     cfg,
		metrics: m,
	}
}

// registerStatic serves files under dir at their relative path. Requests for
// files that do not exist fall through to the routes.
func registerStatic(app *fiber.App, dir string) {
	if dir == "" {
		return
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Debugf("Static directory %q not available, static file serving disabled", dir)
		return
	}
	app.Static("/", dir)
	logger.Debugf("Serving static files from %s", dir)
}

// App returns the underlying Fiber application.
func (s *Server) App() *fiber.App {
	return s.app
}

// Addr returns the listen address, all interfaces on the configured port.
func (s *Server) Addr() string {
	return net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Port))
}

// Start binds the configured port and serves until ctx is cancelled.
// A bind failure is returned immediately.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.Addr(), err)
	}

	logger.Infof("Server running on port %d in %s environment", s.cfg.Port, s.cfg.Environment)
	logger.Infof("Log level set to: %s", s.cfg.LogLevel)

	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled. On cancellation
// it stops accepting new connections and waits for in-flight requests, at
// most cfg.ShutdownTimeout, before returning. Running out of drain time is
// logged and still counts as a clean stop.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.app.Listener(ln)
	}()

	select {
	case err := <-serveErr:
		// The listener failed before shutdown was requested.
		if err != nil {
			return fmt.Errorf("server stopped unexpectedly: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	if err := s.Shutdown(); err != nil {
		logger.Warnf("Stopped waiting for in-flight requests: %v", err)
	}
	// Shutdown only closes listeners the server has already registered.
	_ = ln.Close()

	// Listener returns once the server has fully closed.
	if err := <-serveErr; err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests,
// bounded by the configured shutdown timeout.
func (s *Server) Shutdown() error {
	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = config.DefaultShutdownTimeout
	}
	if err := s.app.ShutdownWithTimeout(timeout); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// NotFoundHandler answers every request that no route matched.
func NotFoundHandler(c *fiber.Ctx) error {
	logger.Warnf("404 - Route not found: %s %s", c.Method(), c.Path())

	return c.Status(fiber.StatusNotFound).JSON(common.NotFoundResponse{
		Error:     common.RouteNotFound,
		Path:      c.Path(),
		Method:    c.Method(),
		Timestamp: common.Timestamp(),
	})
}

// ErrorHandler converts handler errors into JSON responses. Plain errors and
// recovered panics become 500s whose message is redacted when the environment
// is exactly "production". *fiber.Error values keep their status code.
func ErrorHandler(cfg *config.Config) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		logger.Errorf("Error: %v", err)

		message := err.Error()
		if code >= fiber.StatusInternalServerError && cfg.IsProduction() {
			message = common.RedactedMessage
		}

		label := common.InternalServerError
		if code < fiber.StatusInternalServerError {
			label = utils.StatusMessage(code)
		}

		return c.Status(code).JSON(common.ErrorResponse{
			Error:     label,
			Message:   message,
			Timestamp: common.Timestamp(),
		})
	}
}
