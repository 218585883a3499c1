package common

import "time"

// TimeFormat renders timestamps as ISO-8601 UTC with milliseconds,
// e.g. "2024-05-01T12:00:00.000Z".
const TimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Error texts shared by the error handlers.
const (
	RouteNotFound       = "Route not found"
	InternalServerError = "Internal server error"
	// RedactedMessage replaces error details in production.
	RedactedMessage = "Something went wrong"
)

// Timestamp returns the current time formatted with TimeFormat.
func Timestamp() string {
	return FormatTime(time.Now())
}

// FormatTime formats t in UTC with TimeFormat.
func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// Uptime returns the seconds elapsed since start, never negative.
func Uptime(start time.Time) float64 {
	if d := time.Since(start); d > 0 {
		return d.Seconds()
	}
	return 0
}

// ErrorResponse is the body of 500 responses.
type ErrorResponse struct {
	// Error is always InternalServerError for handler failures
	Error string `json:"error"`

	// Message carries the error text, or RedactedMessage in production
	Message string `json:"message"`

	// Timestamp is when the response was built
	Timestamp string `json:"timestamp"`
}

// NotFoundResponse is the body of 404 responses.
type NotFoundResponse struct {
	Error     string `json:"error"`
	Path      string `json:"path"`
	Method    string `json:"method"`
	Timestamp string `json:"timestamp"`
}
