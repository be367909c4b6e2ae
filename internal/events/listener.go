package events

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// Listener is the behavior attached to an event kind.
type Listener interface {
	// Handle processes the given event. A returned error is logged by the
	// dispatcher and does not affect the other listeners.
	Handle(ctx context.Context, evt Event) error
}

// Named is implemented by listeners that report a stable identity for logs
// and introspection.
type Named interface {
	Name() string
}

// ListenerFunc adapts an ordinary function to the Listener interface.
type ListenerFunc func(ctx context.Context, evt Event) error

// Handle calls f(ctx, evt).
func (f ListenerFunc) Handle(ctx context.Context, evt Event) error {
	return f(ctx, evt)
}

// funcListener is a ListenerFunc with an explicit name.
type funcListener struct {
	name string
	fn   ListenerFunc
}

func (l *funcListener) Handle(ctx context.Context, evt Event) error { return l.fn(ctx, evt) }
func (l *funcListener) Name() string                                { return l.name }

// NewListenerFunc wraps fn as a named Listener. If name is empty the function's
// symbol name is used.
func NewListenerFunc(name string, fn ListenerFunc) (Listener, error) {
	if fn == nil {
		return nil, ErrNilListener
	}
	if name == "" {
		name = funcName(fn)
	}
	return &funcListener{name: name, fn: fn}, nil
}

// factoryListener builds a fresh listener for every invocation.
type factoryListener struct {
	name  string
	build func() Listener
}

// NewFactoryListener returns a Listener that calls build on every dispatch and
// hands the event to the freshly built instance. Instances are never reused
// across dispatches or across registrations.
func NewFactoryListener(name string, build func() Listener) (Listener, error) {
	if build == nil {
		return nil, ErrNilListener
	}
	if name == "" {
		name = funcName(build)
	}
	return &factoryListener{name: name, build: build}, nil
}

// NewTypeListener returns a Listener that instantiates a new *T for every
// dispatch. It fails with ErrNotListener when *T has no Handle method, so a
// misconfigured type is rejected at registration rather than skipped later.
func NewTypeListener[T any]() (Listener, error) {
	typ := reflect.TypeFor[T]()
	if _, ok := any(new(T)).(Listener); !ok {
		return nil, fmt.Errorf("%w: *%s", ErrNotListener, typ.String())
	}
	return &factoryListener{
		name: typ.String(),
		build: func() Listener {
			return any(new(T)).(Listener)
		},
	}, nil
}

func (l *factoryListener) Name() string { return l.name }

func (l *factoryListener) Handle(ctx context.Context, evt Event) error {
	instance := l.build()
	if instance == nil {
		return fmt.Errorf("%w: factory %s returned nil", ErrNilListener, l.name)
	}
	return instance.Handle(ctx, evt)
}

// ListenerName returns the identity used for a listener in logs.
func ListenerName(l Listener) string {
	switch v := l.(type) {
	case nil:
		return "<nil>"
	case Named:
		if name := v.Name(); name != "" {
			return name
		}
	case ListenerFunc:
		return funcName(v)
	}

	typ := reflect.TypeOf(l)
	if name := strings.TrimPrefix(typ.String(), "*"); name != "" {
		return name
	}
	return "<anonymous>"
}

// funcName resolves the symbol name of a function value.
func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "<anonymous>"
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return "<anonymous>"
	}
	return f.Name()
}
