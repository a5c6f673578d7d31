package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/bnema/boxkeep/internal/adapters/out/docker"
	"github.com/bnema/boxkeep/internal/adapters/out/eventbus"
	"github.com/bnema/boxkeep/internal/adapters/out/memory"
	"github.com/bnema/boxkeep/internal/adapters/out/sqlite"
	"github.com/bnema/boxkeep/internal/boundaries/out"
	"github.com/bnema/boxkeep/internal/usecase/audit"
	"github.com/bnema/boxkeep/internal/usecase/binding"
	"github.com/bnema/boxkeep/internal/usecase/health"
	"github.com/bnema/boxkeep/internal/usecase/policy"
)

// store is what both storage drivers provide.
type store interface {
	out.BindingStore
	out.TokenStore
}

// services holds the wired core shared by the server and local CLI commands.
type services struct {
	config   Config
	log      *log.Logger
	guard    *policy.Guard
	store    store
	runtime  *docker.Runtime
	bus      *eventbus.InMemory
	bindings *binding.Service
	health   *health.Service
}

func createServices(ctx context.Context, cfg Config, logger *log.Logger) (*services, error) {
	svc := &services{config: cfg, log: logger}

	svc.guard = policy.NewGuard(cfg.AuthorizedUsers)
	if svc.guard.Size() == 0 {
		logger.Warn("no authorized users configured, every privileged command will be denied")
	}

	st, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	svc.store = st

	runtime, err := docker.NewRuntime(cfg.Runtime.Host)
	if err != nil {
		_ = st.Close()
		return nil, err
	}
	svc.runtime = runtime

	svc.bus = eventbus.NewInMemory(100, logger)
	if err := svc.bus.Subscribe(audit.NewHandler(logger)); err != nil {
		_ = svc.Close()
		return nil, err
	}
	if err := svc.bus.Start(); err != nil {
		_ = svc.Close()
		return nil, err
	}

	svc.bindings = binding.NewService(svc.guard, st, runtime, svc.bus, binding.Config{
		DefaultImage:     cfg.Runtime.DefaultImage,
		Command:          cfg.Runtime.Command,
		RuntimeTimeout:   cfg.Runtime.Timeout,
		ProbeTimeout:     cfg.Runtime.ProbeTimeout,
		ProbeConcurrency: cfg.Runtime.ProbeConcurrency,
	})
	svc.health = health.NewService(st, runtime)

	return svc, nil
}

func openStore(ctx context.Context, cfg Config) (store, error) {
	switch cfg.Storage.Driver {
	case DriverMemory:
		return memory.NewStore(), nil
	case DriverSQLite:
		st, err := sqlite.Open(ctx, cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open store: %w", err)
		}
		return st, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Close stops the event bus after it delivered queued events, then releases
// the runtime client and the store.
func (s *services) Close() error {
	var errs []error
	if s.bus != nil {
		if err := s.bus.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.runtime != nil {
		if err := s.runtime.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
