package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound = errors.New("event not found")

	// ErrValidation marks field-level failures; the wrapped message names
	// the offending field.
	ErrValidation = errors.New("validation error")

	// ErrNotPermitted is deliberately generic: authorization failures never
	// leak why the action was refused.
	ErrNotPermitted = errors.New("not permitted")

	// ErrInvalidState marks a transition that is not legal from the event's
	// current status. Use StateError to carry the status back to the caller.
	ErrInvalidState = errors.New("invalid state")

	// ErrStaleState means the event changed between the caller's read and
	// this write. The caller must re-fetch and retry; the engine never
	// retries on its own.
	ErrStaleState = errors.New("event changed since last read, reload and retry")
)

// StateError reports the current status so the caller can refresh its view.
type StateError struct {
	Current Status
}

func (e *StateError) Error() string {
	return fmt.Sprintf("action not allowed while event is %s", e.Current)
}

func (e *StateError) Unwrap() error { return ErrInvalidState }
