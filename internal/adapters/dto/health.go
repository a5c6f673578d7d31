package dto

import "github.com/bnema/boxkeep/internal/domain"

// HealthCheck is one dependency probe.
type HealthCheck struct {
	Name    string `json:"name"`
	OK      bool   `json:"ok"`
	Detail  string `json:"detail,omitempty"`
	Elapsed string `json:"elapsed,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string        `json:"status"`
	Checks []HealthCheck `json:"checks,omitempty"`
}

// FromHealthReport converts a domain health report.
func FromHealthReport(report domain.HealthReport) HealthResponse {
	resp := HealthResponse{Status: string(report.Status)}
	for _, c := range report.Checks {
		resp.Checks = append(resp.Checks, HealthCheck(c))
	}
	return resp
}
