package out

import (
	"context"

	"github.com/bnema/boxkeep/internal/domain"
)

// TerminalProcess is a running web terminal process.
type TerminalProcess interface {
	Session() domain.TerminalSession
	// Done is closed when the process exits.
	Done() <-chan struct{}
	Stop() error
}

// SessionLauncher starts web terminal processes attached to containers.
type SessionLauncher interface {
	Launch(ctx context.Context, runtimeID string) (TerminalProcess, error)
}
