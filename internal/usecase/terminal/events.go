package terminal

import (
	"context"

	"github.com/bnema/boxkeep/internal/boundaries/out"
	"github.com/bnema/boxkeep/internal/domain"
	"github.com/bnema/boxkeep/internal/logging"
)

var _ out.EventHandler = (*SessionReaper)(nil)

// SessionReaper stops terminal sessions of containers that were destroyed
// or found missing.
type SessionReaper struct {
	svc *Service
}

// NewSessionReaper creates the handler for svc.
func NewSessionReaper(svc *Service) *SessionReaper {
	return &SessionReaper{svc: svc}
}

// CanHandle returns true for container removal events.
func (h *SessionReaper) CanHandle(eventType domain.EventType) bool {
	return eventType == domain.EventContainerDestroyed || eventType == domain.EventContainerDrift
}

// Handle stops the session bound to the event's container, if any.
func (h *SessionReaper) Handle(ctx context.Context, event domain.Event) error {
	if event.RuntimeID == "" {
		return nil
	}
	if h.svc.sessions.stop(event.RuntimeID) {
		logging.FromCtx(ctx).Info("terminal session closed", "runtime_id", event.RuntimeID, logging.FieldEvent, event.Type)
	}
	return nil
}
