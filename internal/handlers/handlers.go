package handlers

import (
	"time"

	"github.com/redhat-appstudio/my-app/apis/health"
	"github.com/redhat-appstudio/my-app/apis/info"
	"github.com/redhat-appstudio/my-app/apis/status"
	"github.com/redhat-appstudio/my-app/internal/config"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes registers every fixed route of the service.
// Handlers receive the environment name and start time explicitly; nothing
// is read from package state at request time.
func SetupRoutes(app *fiber.App, cfg *config.Config, startTime time.Time) {
	app.Get("/", NewHomeHandler(cfg.Environment).Home)

	health.RegisterRoutes(app, health.NewHandler(cfg.Environment, startTime))
	info.RegisterRoutes(app, info.NewHandler(cfg.Environment, startTime))
	status.RegisterRoutes(app, status.NewHandler(cfg.Environment))
}
