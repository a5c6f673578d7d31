package app

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/bnema/boxkeep/internal/boundaries/in"
	"github.com/bnema/boxkeep/internal/logging"
)

// Kernel provides in-process service access for local CLI execution.
//
// It does not start the HTTP server or register signal handlers. Commands
// run against the same store file as a running server; the store's unique
// indexes keep the two processes consistent.
type Kernel struct {
	svc *services
}

// NewKernel wires the core services from cfg.
func NewKernel(ctx context.Context, cfg Config, logger *log.Logger) (*Kernel, error) {
	if logger == nil {
		logger = log.Default()
	}
	svc, err := createServices(logging.WithLogger(ctx, logger), cfg, logger)
	if err != nil {
		return nil, err
	}
	return &Kernel{svc: svc}, nil
}

// Close flushes pending events and releases the runtime and store.
func (k *Kernel) Close() error {
	if k == nil || k.svc == nil {
		return nil
	}
	return k.svc.Close()
}

func (k *Kernel) Bindings() in.BindingService { return k.svc.bindings }

func (k *Kernel) Health() in.HealthService { return k.svc.health }
