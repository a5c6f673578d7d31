package in

import (
	"context"

	"github.com/bnema/boxkeep/internal/domain"
)

// TerminalService defines the contract for web terminal access.
type TerminalService interface {
	// IssueLink creates a one-time terminal URL for the actor's own container.
	IssueLink(ctx context.Context, actor domain.OwnerID) (*domain.TerminalLink, error)

	// OpenSession redeems a token and returns a live terminal session.
	OpenSession(ctx context.Context, runtimeID, token string) (*domain.TerminalSession, error)
}
