package events

import (
	"errors"
	"fmt"
)

// Registration errors.
var (
	// ErrNilListener is returned when a nil listener, function or factory is registered.
	ErrNilListener = errors.New("listener cannot be nil")

	// ErrNotListener is returned when a type registered through NewTypeListener
	// or ListenType does not implement Listener.
	ErrNotListener = errors.New("type does not implement events.Listener")
)

// ListenerError describes a single listener failure during dispatch.
type ListenerError struct {
	Kind     Kind   // Kind of the event being dispatched
	Listener string // Identity of the failing listener
	Err      error  // Returned error, or a PanicError
}

// Error implements the error interface for ListenerError.
func (e *ListenerError) Error() string {
	return fmt.Sprintf("listener %s failed handling %s: %v", e.Listener, e.Kind, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ListenerError) Unwrap() error {
	return e.Err
}

// PanicError wraps a value recovered from a panicking listener.
type PanicError struct {
	Value any
}

// Error implements the error interface for PanicError.
func (e *PanicError) Error() string {
	return fmt.Sprintf("listener panicked: %v", e.Value)
}

// isPanic reports whether err came from a recovered panic.
func isPanic(err error) bool {
	var p *PanicError
	return errors.As(err, &p)
}
