package dto

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string                     `json:"status"`
	Time   string                     `json:"time"`
	Checks map[string]DependencyCheck `json:"checks"`
}

type DependencyCheck struct {
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
}
