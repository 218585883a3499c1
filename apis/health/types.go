package health

const (
	StatusHealthy = "healthy"
	StatusReady   = "ready"
)

// HealthResponse represents the liveness probe response structure.
type HealthResponse struct {
	// Status is always "healthy" while the process serves requests
	Status string `json:"status"`

	// Timestamp is when the response was built
	Timestamp string `json:"timestamp"`

	// Uptime is the number of seconds since the process started
	Uptime float64 `json:"uptime"`

	// Environment is the deployment environment name
	Environment string `json:"environment"`
}

// ReadyResponse represents the readiness probe response structure.
type ReadyResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Environment string `json:"environment"`
}
