// Package audit records container lifecycle events in the structured log.
package audit

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/bnema/boxkeep/internal/boundaries/out"
	"github.com/bnema/boxkeep/internal/domain"
	"github.com/bnema/boxkeep/internal/logging"
)

var _ out.EventHandler = (*Handler)(nil)

// Handler logs every lifecycle event. Partial failures are logged at error
// level since they need an operator.
type Handler struct {
	log *log.Logger
}

// NewHandler creates an audit handler writing to logger.
func NewHandler(logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{log: logger.With(logging.FieldLayer, "usecase", logging.FieldHandler, "audit")}
}

// CanHandle accepts every event.
func (h *Handler) CanHandle(domain.EventType) bool {
	return true
}

// Handle writes one log line for event.
func (h *Handler) Handle(_ context.Context, event domain.Event) error {
	keyvals := []any{
		"event_id", event.ID,
		logging.FieldEvent, event.Type,
		logging.FieldOwner, event.Owner,
	}
	if p, ok := event.Data.(domain.ContainerEventPayload); ok {
		if p.Actor != "" {
			keyvals = append(keyvals, logging.FieldActor, p.Actor)
		}
		if p.RuntimeID != "" {
			keyvals = append(keyvals, "runtime_id", p.RuntimeID)
		}
		if p.Name != "" {
			keyvals = append(keyvals, "container_name", p.Name)
		}
		if p.Reason != "" {
			keyvals = append(keyvals, "reason", p.Reason)
		}
	}

	switch event.Type {
	case domain.EventPartialFailure:
		h.log.Error("operator action required", keyvals...)
	case domain.EventContainerDrift:
		h.log.Warn("container drift reconciled", keyvals...)
	default:
		h.log.Info("audit", keyvals...)
	}
	return nil
}
