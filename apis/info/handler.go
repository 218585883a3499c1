package info

import (
	"os"
	"runtime"
	"time"

	"github.com/redhat-appstudio/my-app/apis/common"
	"github.com/redhat-appstudio/my-app/internal/version"
	"github.com/redhat-appstudio/my-app/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// Handler serves GET /info.
type Handler struct {
	environment string
	startTime   time.Time

	// hostname is os.Hostname outside of tests
	hostname func() (string, error)
}

// NewHandler creates an info handler for the given environment.
func NewHandler(environment string, startTime time.Time) *Handler {
	return &Handler{
		environment: environment,
		startTime:   startTime,
		hostname:    os.Hostname,
	}
}

// Info handles GET /info.
// It returns application identity, host and runtime details and a memory snapshot.
func (h *Handler) Info(c *fiber.Ctx) error {
	logger.Infof("Info endpoint requested")

	hostname, err := h.hostname()
	if err != nil {
		logger.Warnf("Failed to resolve hostname: %v", err)
		hostname = "unknown"
	}

	return c.JSON(InfoResponse{
		App:         version.AppName,
		Version:     version.Version,
		Environment: h.environment,
		Hostname:    hostname,
		Platform:    runtime.GOOS,
		GoVersion:   runtime.Version(),
		Uptime:      common.Uptime(h.startTime),
		Memory:      readMemoryUsage(),
		Timestamp:   common.Timestamp(),
	})
}

func readMemoryUsage() MemoryUsage {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return MemoryUsage{
		Alloc:      m.Alloc,
		TotalAlloc: m.TotalAlloc,
		Sys:        m.Sys,
		HeapAlloc:  m.HeapAlloc,
		HeapInuse:  m.HeapInuse,
		HeapSys:    m.HeapSys,
		NumGC:      m.NumGC,
	}
}
