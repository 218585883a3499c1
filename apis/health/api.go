package health

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the liveness and readiness probes at the root.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	// Kubernetes liveness probe
	app.Get("/health", handler.Health)

	// Kubernetes readiness probe
	app.Get("/ready", handler.Ready)
}
