package api

// ExamplePath is the collection path of the record endpoints.
const ExamplePath = "/api/example"

// StatusUp is the only status reported by the probes.
const StatusUp = "UP"

// HealthCheck is a single named check inside a probe response.
type HealthCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// HealthResponse is the body of every probe endpoint.
type HealthResponse struct {
	Status string        `json:"status"`
	Checks []HealthCheck `json:"checks"`
}
