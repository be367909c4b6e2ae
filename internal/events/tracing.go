package events

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// WithTracer sets the tracer used for dispatch spans. By default the
// dispatcher uses the global OpenTelemetry tracer provider, which is a no-op
// until one is installed.
func WithTracer(t trace.Tracer) Option {
	return func(d *Dispatcher) {
		if t != nil {
			d.tracer = t
		}
	}
}

// startDispatchSpan starts the span covering one dispatch. Listeners receive
// the returned context, so work they trace becomes a child of it.
func startDispatchSpan(ctx context.Context, tracer trace.Tracer, kind Kind, listenerCount int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "events.dispatch "+string(kind),
		trace.WithAttributes(
			attribute.String("event.kind", string(kind)),
			attribute.Int("event.listener_count", listenerCount),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// recordListenerFailure adds a span event for a failed listener.
func recordListenerFailure(span trace.Span, reg Registration, err error) {
	if !span.IsRecording() {
		return
	}
	span.AddEvent("listener failed", trace.WithAttributes(
		attribute.String("listener", reg.Name),
		attribute.Int("priority", reg.Priority),
		attribute.Bool("panic", isPanic(err)),
	))
}

// endDispatchSpan sets the span status from the failure count and ends it.
func endDispatchSpan(span trace.Span, failures int) {
	if failures > 0 {
		span.SetAttributes(attribute.Int("event.failure_count", failures))
		span.SetStatus(codes.Error, fmt.Sprintf("%d listener(s) failed", failures))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
