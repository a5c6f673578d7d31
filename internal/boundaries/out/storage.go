package out

import (
	"context"

	"github.com/bnema/boxkeep/internal/domain"
)

// BindingStore is the durable owner → container mapping.
//
// The store alone enforces that an owner has at most one record in a live
// state (pending or active). Mutations for the same owner are atomic with
// respect to each other. The store never attempts recovery; it only reports.
type BindingStore interface {
	// FindActive returns the owner's pending or active record, or nil.
	FindActive(ctx context.Context, owner domain.OwnerID) (*domain.ContainerRecord, error)

	// InsertPending atomically checks and inserts a pending record. It fails
	// with domain.ErrConflict when the owner already has a live record and
	// with domain.ErrNameInUse when a live record already uses name.
	InsertPending(ctx context.Context, owner domain.OwnerID, name, image string) (*domain.ContainerRecord, error)

	// MarkActive records the runtime ID and moves a pending record to active.
	// It fails with domain.ErrNotFound when the pending record is gone.
	MarkActive(ctx context.Context, recordID, runtimeID string) (*domain.ContainerRecord, error)

	// MarkDestroyed moves a record to destroyed. Destroying a destroyed
	// record is a no-op. It fails with domain.ErrNotFound for unknown IDs.
	MarkDestroyed(ctx context.Context, recordID string) error

	// RemovePending deletes a record that is still pending. Used for
	// compensating rollback; a missing record is not an error.
	RemovePending(ctx context.Context, recordID string) error

	// ListAll returns every record, destroyed ones included, sorted by
	// creation time.
	ListAll(ctx context.Context) ([]domain.ContainerRecord, error)

	// Close releases the underlying resources.
	Close() error
}
