package in

import (
	"context"

	"github.com/bnema/boxkeep/internal/domain"
)

// HealthService reports whether the controller's dependencies are usable.
type HealthService interface {
	Check(ctx context.Context) domain.HealthReport
}
