// Package health implements the readiness check of the runtime and store.
package health

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/boxkeep/internal/boundaries/in"
	"github.com/bnema/boxkeep/internal/boundaries/out"
	"github.com/bnema/boxkeep/internal/domain"
	"github.com/bnema/boxkeep/internal/logging"
)

const checkTimeout = 5 * time.Second

var _ in.HealthService = (*Service)(nil)

// Service probes the dependencies the controller needs.
type Service struct {
	store   out.BindingStore
	runtime out.ContainerRuntime
}

// NewService creates a new health service.
func NewService(store out.BindingStore, runtime out.ContainerRuntime) *Service {
	return &Service{store: store, runtime: runtime}
}

// Check runs every probe concurrently. The report is degraded when any
// probe fails.
func (s *Service) Check(ctx context.Context) domain.HealthReport {
	ctx = logging.WithFields(ctx,
		logging.FieldLayer, "usecase",
		logging.FieldUseCase, "Check",
	)
	log := logging.FromCtx(ctx)

	probes := []struct {
		name string
		fn   func(context.Context) (string, error)
	}{
		{"runtime", s.checkRuntime},
		{"store", s.checkStore},
	}

	checks := make([]domain.HealthCheck, len(probes))
	var g errgroup.Group
	for i, p := range probes {
		g.Go(func() error {
			probeCtx, cancel := context.WithTimeout(ctx, checkTimeout)
			defer cancel()

			start := time.Now()
			detail, err := p.fn(probeCtx)
			check := domain.HealthCheck{
				Name:    p.name,
				OK:      err == nil,
				Detail:  detail,
				Elapsed: time.Since(start).Round(time.Millisecond).String(),
			}
			if err != nil {
				check.Detail = err.Error()
				log.Warn("health probe failed", "probe", p.name, "error", err)
			}
			checks[i] = check
			return nil
		})
	}
	_ = g.Wait()

	report := domain.HealthReport{Status: domain.HealthOK, Checks: checks}
	for _, c := range checks {
		if !c.OK {
			report.Status = domain.HealthDegraded
		}
	}
	return report
}

func (s *Service) checkRuntime(ctx context.Context) (string, error) {
	if err := s.runtime.Ping(ctx); err != nil {
		return "", err
	}
	version, err := s.runtime.Version(ctx)
	if err != nil {
		return "", err
	}
	return "docker " + version, nil
}

func (s *Service) checkStore(ctx context.Context) (string, error) {
	if _, err := s.store.FindActive(ctx, ""); err != nil {
		return "", err
	}
	return "reachable", nil
}
