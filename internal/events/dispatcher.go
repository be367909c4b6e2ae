package events

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/phrazzld/taskdeck-api/internal/platform/logger"
	"github.com/phrazzld/taskdeck-api/internal/redact"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Registration is one listener attached to an event kind.
type Registration struct {
	// Name is the listener identity reported in logs.
	Name string

	// Priority orders listeners within a kind; higher values run first.
	Priority int

	// Listener is the handler invoked on dispatch.
	Listener Listener
}

// Dispatcher maps event kinds to priority-ordered listeners and delivers
// events to them synchronously.
//
// A Dispatcher is safe for concurrent use. Dispatch works on a snapshot of the
// listener sequence, so registrations made while a dispatch is in flight only
// affect later dispatches.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[Kind][]Registration
	logger    *slog.Logger
	metrics   MetricsRecorder
	tracer    trace.Tracer
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMetrics sets the recorder used for dispatch metrics.
func WithMetrics(m MetricsRecorder) Option {
	return func(d *Dispatcher) {
		if m != nil {
			d.metrics = m
		}
	}
}

// NewDispatcher creates an empty Dispatcher. If logger is nil, the default
// logger is used.
func NewDispatcher(log *slog.Logger, opts ...Option) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}

	d := &Dispatcher{
		listeners: make(map[Kind][]Registration),
		logger:    log.With("component", "event_dispatcher"),
		metrics:   NoopMetrics{},
		tracer:    otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Listen attaches listener to kind. The kind's sequence is re-sorted by
// descending priority immediately; listeners with equal priority keep their
// registration order. Registering the same listener twice yields two
// invocations per dispatch.
func (d *Dispatcher) Listen(kind Kind, listener Listener, priority int) error {
	if listener == nil {
		return ErrNilListener
	}

	reg := Registration{
		Name:     ListenerName(listener),
		Priority: priority,
		Listener: listener,
	}

	d.mu.Lock()
	seq := append(d.listeners[kind], reg)
	slices.SortStableFunc(seq, func(a, b Registration) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
	d.listeners[kind] = seq
	count := len(seq)
	d.mu.Unlock()

	d.logger.Debug("registered event listener",
		"event_kind", kind,
		"listener", reg.Name,
		"priority", priority,
		"listener_count", count)
	return nil
}

// ListenFunc attaches fn to kind under the given name.
func (d *Dispatcher) ListenFunc(kind Kind, name string, fn ListenerFunc, priority int) error {
	l, err := NewListenerFunc(name, fn)
	if err != nil {
		return err
	}
	return d.Listen(kind, l, priority)
}

// ListenType attaches a listener that instantiates a fresh *T for every
// dispatch of kind. It returns ErrNotListener if *T does not implement Listener.
func ListenType[T any](d *Dispatcher, kind Kind, priority int) error {
	l, err := NewTypeListener[T]()
	if err != nil {
		return err
	}
	return d.Listen(kind, l, priority)
}

// Dispatch delivers evt to every listener registered for its kind, in
// priority order, on the calling goroutine.
//
// Each listener runs in isolation: a returned error or a panic is logged with
// the event kind and the listener identity, and delivery continues with the
// next listener. Dispatch itself never fails.
func (d *Dispatcher) Dispatch(ctx context.Context, evt Event) {
	if evt == nil {
		d.logger.Warn("ignoring dispatch of nil event")
		return
	}

	kind := evt.Kind()
	d.mu.RLock()
	seq := slices.Clone(d.listeners[kind])
	d.mu.RUnlock()

	if len(seq) == 0 {
		d.logger.Debug("no listeners registered for event", "event_kind", kind)
		return
	}

	ctx, span := startDispatchSpan(ctx, d.tracer, kind, len(seq))
	start := time.Now()
	failures := 0
	for _, reg := range seq {
		if err := d.invoke(ctx, kind, evt, reg); err != nil {
			failures++
			d.metrics.RecordListenerFailure(ctx, kind, reg.Name)
			recordListenerFailure(span, reg, err)
			logger.FromContextOrDefault(ctx, d.logger).Error("event listener failed",
				"event_kind", kind,
				"listener", reg.Name,
				"priority", reg.Priority,
				"error", redact.Error(err))
		}
	}

	endDispatchSpan(span, failures)
	d.metrics.RecordDispatch(ctx, kind, len(seq), time.Since(start))
	d.logger.Debug("event dispatched",
		"event_kind", kind,
		"listener_count", len(seq),
		"failure_count", failures,
		"duration_ms", time.Since(start).Milliseconds())
}

// invoke runs a single listener, converting a panic into an error.
func (d *Dispatcher) invoke(ctx context.Context, kind Kind, evt Event, reg Registration) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = &ListenerError{Kind: kind, Listener: reg.Name, Err: &PanicError{Value: p}}
		}
	}()

	if err := reg.Listener.Handle(ctx, evt); err != nil {
		return &ListenerError{Kind: kind, Listener: reg.Name, Err: err}
	}
	return nil
}

// Forget removes every listener registered for kind.
func (d *Dispatcher) Forget(kind Kind) {
	d.mu.Lock()
	removed := len(d.listeners[kind])
	delete(d.listeners, kind)
	d.mu.Unlock()

	if removed > 0 {
		d.logger.Debug("removed event listeners", "event_kind", kind, "listener_count", removed)
	}
}

// Listeners returns a copy of the priority-ordered listener sequence for kind.
// The result is empty, never nil, when nothing is registered.
func (d *Dispatcher) Listeners(kind Kind) []Registration {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]Registration, len(d.listeners[kind]))
	copy(out, d.listeners[kind])
	return out
}

// HasListeners reports whether at least one listener is registered for kind.
func (d *Dispatcher) HasListeners(kind Kind) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.listeners[kind]) > 0
}

