package status

// Endpoint describes one entry of the public endpoint catalog.
type Endpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

// Endpoints is the catalog reported by /api/status and linked from the
// home page. /api/hello is intentionally not part of it.
var Endpoints = []Endpoint{
	{Path: "/", Method: "GET", Description: "Home page"},
	{Path: "/health", Method: "GET", Description: "Health check"},
	{Path: "/ready", Method: "GET", Description: "Readiness check"},
	{Path: "/info", Method: "GET", Description: "App information"},
	{Path: "/api/status", Method: "GET", Description: "API status"},
}

// StatusResponse is the body of GET /api/status.
type StatusResponse struct {
	API         string     `json:"api"`
	Status      string     `json:"status"`
	Environment string     `json:"environment"`
	Timestamp   string     `json:"timestamp"`
	Endpoints   []Endpoint `json:"endpoints"`
}

// HelloResponse is the body of GET /api/hello.
type HelloResponse struct {
	Message     string `json:"message"`
	Environment string `json:"environment"`
	Timestamp   string `json:"timestamp"`
}
