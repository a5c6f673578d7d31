// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/bnema/boxkeep/internal/domain"
)

// BindingService defines the contract for owner-bound container management.
type BindingService interface {
	// Create provisions a container for owner on behalf of actor. An empty
	// owner means the actor itself.
	Create(ctx context.Context, actor, owner domain.OwnerID, image, name string) (*domain.ContainerRecord, error)

	// Destroy removes target's container on behalf of actor.
	Destroy(ctx context.Context, actor, target domain.OwnerID) (*domain.ContainerRecord, error)

	// Status reports target's record with its live state, reconciling drift.
	Status(ctx context.Context, target domain.OwnerID) (*domain.ContainerView, error)

	// List returns all records annotated with live state.
	List(ctx context.Context, opts domain.ListOptions) ([]domain.ContainerView, error)
}

// PolicyGuard decides whether an actor may perform privileged operations.
type PolicyGuard interface {
	IsAuthorized(actor domain.OwnerID) bool
}
