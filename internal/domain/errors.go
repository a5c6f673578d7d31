package domain

import "errors"

// ErrorKind is the stable, user-visible classification of a failure.
// Front-ends switch on it to render a specific message.
type ErrorKind string

const (
	KindUnauthorized         ErrorKind = "Unauthorized"
	KindAlreadyOwnsContainer ErrorKind = "AlreadyOwnsContainer"
	KindNoContainer          ErrorKind = "NoContainer"
	KindConflict             ErrorKind = "Conflict"
	KindNameInUse            ErrorKind = "NameInUse"
	KindNotFound             ErrorKind = "NotFound"
	KindInvalidArgument      ErrorKind = "InvalidArgument"
	KindRuntime              ErrorKind = "RuntimeError"
	KindPartialFailure       ErrorKind = "PartialFailure"
	KindStore                ErrorKind = "StoreError"
	KindInternal             ErrorKind = "Internal"
)

// Error is a classified domain error. Two errors match under errors.Is when
// the target is a bare kind sentinel and the kinds are equal.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches kind sentinels, so errors.Is(err, ErrNoContainer) holds for any
// *Error of kind NoContainer.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// NewError creates a classified error wrapping an optional cause.
func NewError(kind ErrorKind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// Kind sentinels for errors.Is comparisons.
var (
	ErrUnauthorized         = &Error{Kind: KindUnauthorized}
	ErrAlreadyOwnsContainer = &Error{Kind: KindAlreadyOwnsContainer}
	ErrNoContainer          = &Error{Kind: KindNoContainer}
	ErrConflict             = &Error{Kind: KindConflict}
	ErrNameInUse            = &Error{Kind: KindNameInUse}
	ErrNotFound             = &Error{Kind: KindNotFound}
	ErrInvalidArgument      = &Error{Kind: KindInvalidArgument}
	ErrRuntime              = &Error{Kind: KindRuntime}
	ErrPartialFailure       = &Error{Kind: KindPartialFailure}
	ErrStore                = &Error{Kind: KindStore}
)

// Runtime adapter errors. These never cross the controller boundary unclassified.
var (
	ErrContainerNotFound = errors.New("container not found")
	ErrImageNotFound     = errors.New("image not found")
)

// KindOf returns the kind of the outermost classified error in the chain,
// or KindInternal when the chain carries none.
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// PartialFailureError reports divergence between the store and the runtime
// that needs an operator. RuntimeID is set when an orphaned container is known.
type PartialFailureError struct {
	Owner     OwnerID
	RecordID  string
	RuntimeID string
	Reason    string
	Err       error
}

func (e *PartialFailureError) Error() string {
	msg := "partial failure for owner " + string(e.Owner) + ": " + e.Reason
	if e.RuntimeID != "" {
		msg += " (runtime container " + e.RuntimeID + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *PartialFailureError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrPartialFailure}
	}
	return []error{ErrPartialFailure, e.Err}
}
