package status

import (
	"fmt"

	"github.com/redhat-appstudio/my-app/apis/common"
	"github.com/redhat-appstudio/my-app/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// DefaultName is greeted when /api/hello has no name query parameter.
const DefaultName = "World"

// Handler serves the /api endpoints.
type Handler struct {
	environment string
}

// NewHandler creates an API handler for the given environment.
func NewHandler(environment string) *Handler {
	return &Handler{environment: environment}
}

// Status handles GET /api/status.
func (h *Handler) Status(c *fiber.Ctx) error {
	logger.Infof("API status requested")

	endpoints := make([]Endpoint, len(Endpoints))
	copy(endpoints, Endpoints)

	return c.JSON(StatusResponse{
		API:         "active",
		Status:      "operational",
		Environment: h.environment,
		Timestamp:   common.Timestamp(),
		Endpoints:   endpoints,
	})
}

// Hello handles GET /api/hello?name=...
func (h *Handler) Hello(c *fiber.Ctx) error {
	name := c.Query("name", DefaultName)
	if name == "" {
		name = DefaultName
	}
	logger.Infof("Hello API called with name: %s", name)

	return c.JSON(HelloResponse{
		Message:     fmt.Sprintf("Hello, %s!", name),
		Environment: h.environment,
		Timestamp:   common.Timestamp(),
	})
}
