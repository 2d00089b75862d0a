package api

import "net/http"

// upResponse is shared by all probes; the process answering is the whole check.
func upResponse() HealthResponse {
	return HealthResponse{
		Status: StatusUp,
		Checks: []HealthCheck{},
	}
}

// Liveness reports that the process is running.
// GET /health/live
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, upResponse())
}

// Readiness reports that the process can serve traffic.
// GET /health/ready
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, upResponse())
}

// Health combines liveness and readiness.
// GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSONData(w, upResponse())
}
