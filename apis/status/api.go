package status

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the API status and greeting endpoints.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/status", handler.Status)
	api.Get("/hello", handler.Hello)
}
