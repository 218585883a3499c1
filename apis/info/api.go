package info

import (
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes registers the application information endpoint.
func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/info", handler.Info)
}
