package domain

// HealthStatus summarizes readiness.
type HealthStatus string

const (
	HealthOK       HealthStatus = "ok"
	HealthDegraded HealthStatus = "degraded"
)

// HealthCheck is the result of probing one dependency.
type HealthCheck struct {
	Name    string
	OK      bool
	Detail  string
	Elapsed string
}

// HealthReport aggregates dependency checks.
type HealthReport struct {
	Status HealthStatus
	Checks []HealthCheck
}
