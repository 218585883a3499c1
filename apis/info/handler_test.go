package info

import (
	"errors"
	"io"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redhat-appstudio/my-app/internal/version"
)

func fetchInfo(t *testing.T, h *Handler) InfoResponse {
	t.Helper()
	app := fiber.New(fiber.Config{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal})
	RegisterRoutes(app, h)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/info", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var info InfoResponse
	require.NoError(t, json.Unmarshal(body, &info))
	return info
}

func TestInfo(t *testing.T) {
	h := NewHandler("production", time.Now().Add(-time.Minute))
	h.hostname = func() (string, error) { return "pod-abc123", nil }

	info := fetchInfo(t, h)

	assert.Equal(t, "my-app", info.App)
	assert.Equal(t, "1.0.0", info.Version)
	assert.Equal(t, "production", info.Environment)
	assert.Equal(t, "pod-abc123", info.Hostname)
	assert.Equal(t, runtime.GOOS, info.Platform)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.GreaterOrEqual(t, info.Uptime, 60.0)
	assert.NotZero(t, info.Memory.Sys)
	assert.NotZero(t, info.Memory.HeapSys)
	assert.NotEmpty(t, info.Timestamp)
}

func TestInfo_VersionIgnoresBuildVersion(t *testing.T) {
	previous := version.BuildVersion
	t.Cleanup(func() { version.BuildVersion = previous })
	version.BuildVersion = "v9.9.9"

	info := fetchInfo(t, NewHandler("local", time.Now()))
	assert.Equal(t, "1.0.0", info.Version)
}

func TestInfo_HostnameFailure(t *testing.T) {
	h := NewHandler("local", time.Now())
	h.hostname = func() (string, error) { return "", errors.New("no uts namespace") }

	info := fetchInfo(t, h)
	assert.Equal(t, "unknown", info.Hostname)
}
