package health

import (
	"time"

	"github.com/redhat-appstudio/my-app/apis/common"
	"github.com/redhat-appstudio/my-app/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler serves the health and readiness probes.
type Handler struct {
	// environment is the deployment environment name echoed in responses
	environment string

	// startTime is the process start time used to compute uptime
	startTime time.Time
}

// NewHandler creates a probe handler for the given environment.
func NewHandler(environment string, startTime time.Time) *Handler {
	return &Handler{
		environment: environment,
		startTime:   startTime,
	}
}

// Health handles GET /health.
// It reports that the process is alive together with its uptime in seconds.
func (h *Handler) Health(c *fiber.Ctx) error {
	logger.Debugf("Health check requested")

	return c.Status(fiber.StatusOK).JSON(HealthResponse{
		Status:      StatusHealthy,
		Timestamp:   common.Timestamp(),
		Uptime:      common.Uptime(h.startTime),
		Environment: h.environment,
	})
}

// Ready handles GET /ready.
// The process has no dependencies to wait on, so it is ready once it serves.
func (h *Handler) Ready(c *fiber.Ctx) error {
	logger.Debugf("Readiness check requested")

	return c.Status(fiber.StatusOK).JSON(ReadyResponse{
		Status:      StatusReady,
		Timestamp:   common.Timestamp(),
		Environment: h.environment,
	})
}
