package out

import (
	"context"
	"time"

	"github.com/bnema/boxkeep/internal/domain"
)

// TokenStore defines the contract for storing one-time terminal tokens.
type TokenStore interface {
	// SaveTerminalToken stores a token. A newer token for the same runtime
	// container replaces the previous one.
	SaveTerminalToken(ctx context.Context, token domain.TerminalToken) error

	// ConsumeTerminalToken validates and deletes the token for the container.
	// Unknown, mismatching or expired tokens fail with domain.ErrNotFound.
	ConsumeTerminalToken(ctx context.Context, runtimeID, token string, now time.Time) (*domain.TerminalToken, error)

	// PurgeExpiredTokens deletes tokens expired at now and returns how many.
	PurgeExpiredTokens(ctx context.Context, now time.Time) (int, error)
}
