package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// Standard field keys shared by every layer.
const (
	FieldLayer    = "layer"
	FieldUseCase  = "usecase"
	FieldAdapter  = "adapter"
	FieldAction   = "action"
	FieldHandler  = "handler"
	FieldEntityID = "entity_id"
	FieldOwner    = "owner"
	FieldActor    = "actor"
	FieldEvent    = "event"
	FieldMethod   = "method"
	FieldPath     = "path"
)

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	return log.WithContext(ctx, logger)
}

// FromCtx returns the logger carried by ctx, or the default logger.
func FromCtx(ctx context.Context) *log.Logger {
	return log.FromContext(ctx)
}

// WithFields derives a child logger with keyvals and stores it in ctx.
// All downstream logs through FromCtx carry the fields.
func WithFields(ctx context.Context, keyvals ...any) context.Context {
	return log.WithContext(ctx, FromCtx(ctx).With(keyvals...))
}
