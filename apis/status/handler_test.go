package status

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp() *fiber.App {
	app := fiber.New(fiber.Config{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal})
	RegisterRoutes(app, NewHandler("local"))
	return app
}

func getJSON(t *testing.T, app *fiber.App, target string, out interface{}) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out))
}

func TestStatus(t *testing.T) {
	var resp StatusResponse
	getJSON(t, newTestApp(), "/api/status", &resp)

	assert.Equal(t, "active", resp.API)
	assert.Equal(t, "operational", resp.Status)
	assert.Equal(t, "local", resp.Environment)
	assert.NotEmpty(t, resp.Timestamp)

	expected := []Endpoint{
		{Path: "/", Method: "GET", Description: "Home page"},
		{Path: "/health", Method: "GET", Description: "Health check"},
		{Path: "/ready", Method: "GET", Description: "Readiness check"},
		{Path: "/info", Method: "GET", Description: "App information"},
		{Path: "/api/status", Method: "GET", Description: "API status"},
	}
	assert.Len(t, resp.Endpoints, 5)
	assert.Equal(t, expected, resp.Endpoints)
}

func TestHello(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected string
	}{
		{name: "named", target: "/api/hello?name=Ada", expected: "Hello, Ada!"},
		{name: "default", target: "/api/hello", expected: "Hello, World!"},
		{name: "empty name", target: "/api/hello?name=", expected: "Hello, World!"},
		{name: "escaped name", target: "/api/hello?name=Grace%20Hopper", expected: "Hello, Grace Hopper!"},
	}

	app := newTestApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp HelloResponse
			getJSON(t, app, tt.target, &resp)
			assert.Equal(t, tt.expected, resp.Message)
			assert.Equal(t, "local", resp.Environment)
			assert.NotEmpty(t, resp.Timestamp)
		})
	}
}
