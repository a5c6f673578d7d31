// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (Docker, SQLite, etc.).
package out

import (
	"context"

	"github.com/bnema/boxkeep/internal/domain"
)

// ContainerRuntime defines the contract for container runtime operations.
// This interface abstracts the underlying container runtime (Docker, Podman, etc.).
//
// Implementations report a missing container with an error matching
// domain.ErrContainerNotFound.
type ContainerRuntime interface {
	// CreateContainer pulls the image if needed, creates the container and
	// starts it. It returns the runtime-assigned container ID.
	CreateContainer(ctx context.Context, spec domain.ContainerSpec) (string, error)

	// RemoveContainer stops the container if it is running and removes it.
	RemoveContainer(ctx context.Context, runtimeID string) error

	// InspectContainer returns the live state of a container.
	InspectContainer(ctx context.Context, runtimeID string) (*domain.LiveState, error)

	// Runtime information
	Ping(ctx context.Context) error
	Version(ctx context.Context) (string, error)
}
