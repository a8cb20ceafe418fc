package api

import "github.com/ufal/maskit-web/pkg/render"

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// HealthCheck is the status of one component.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// RenderResponse is returned by POST /api/render.
type RenderResponse struct {
	Output string `json:"output"`
}

// OutputResponse carries a rendered variant of a session's result.
type OutputResponse struct {
	SessionID string                `json:"session_id"`
	Output    string                `json:"output"`
	Format    render.Format         `json:"format,omitempty"`
	Options   render.DisplayOptions `json:"options"`
}

// SubmitResponse is returned by POST /api/sessions/:id/submit.
type SubmitResponse struct {
	OutputResponse
	Stats string `json:"stats"`
}
