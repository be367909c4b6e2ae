package events

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumentationName is the OpenTelemetry scope for dispatcher metrics and spans.
const instrumentationName = "github.com/phrazzld/taskdeck-api/internal/events"

// MetricsRecorder records dispatcher metrics.
// Use NewMetricsRecorder for OpenTelemetry metrics or NoopMetrics when disabled.
type MetricsRecorder interface {
	// RecordDispatch records one completed dispatch of kind to listenerCount listeners.
	RecordDispatch(ctx context.Context, kind Kind, listenerCount int, duration time.Duration)

	// RecordListenerFailure records one failed listener invocation.
	RecordListenerFailure(ctx context.Context, kind Kind, listener string)
}

// NoopMetrics is a MetricsRecorder that does nothing.
type NoopMetrics struct{}

var _ MetricsRecorder = NoopMetrics{}

// RecordDispatch does nothing.
func (NoopMetrics) RecordDispatch(context.Context, Kind, int, time.Duration) {}

// RecordListenerFailure does nothing.
func (NoopMetrics) RecordListenerFailure(context.Context, Kind, string) {}

// otelMetrics implements MetricsRecorder using OpenTelemetry instruments.
type otelMetrics struct {
	dispatches  metric.Int64Counter
	invocations metric.Int64Counter
	failures    metric.Int64Counter
	latency     metric.Float64Histogram
}

// newOtelMetrics creates the dispatcher instruments on the given meter.
func newOtelMetrics(meter metric.Meter) (*otelMetrics, error) {
	dispatches, err := meter.Int64Counter("events.dispatches",
		metric.WithDescription("Number of dispatched events"),
	)
	if err != nil {
		return nil, err
	}

	invocations, err := meter.Int64Counter("events.listener.invocations",
		metric.WithDescription("Number of listener invocations"),
	)
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter("events.listener.failures",
		metric.WithDescription("Number of listener invocations that returned an error or panicked"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram("events.dispatch.latency_ms",
		metric.WithDescription("Time spent running all listeners for one event"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		dispatches:  dispatches,
		invocations: invocations,
		failures:    failures,
		latency:     latency,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder backed by the global
// OpenTelemetry meter provider. Configure the provider with
// otel.SetMeterProvider before calling it. If instrument creation fails, a
// no-op recorder is returned.
func NewMetricsRecorder() MetricsRecorder {
	m, err := newOtelMetrics(otel.Meter(instrumentationName))
	if err != nil {
		slog.Warn("event metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordDispatch records a dispatch.
func (m *otelMetrics) RecordDispatch(ctx context.Context, kind Kind, listenerCount int, duration time.Duration) {
	attrs := metric.WithAttributes(attribute.String("event_kind", string(kind)))
	m.dispatches.Add(ctx, 1, attrs)
	m.invocations.Add(ctx, int64(listenerCount), attrs)
	m.latency.Record(ctx, float64(duration.Microseconds())/1000, attrs)
}

// RecordListenerFailure records a listener failure.
func (m *otelMetrics) RecordListenerFailure(ctx context.Context, kind Kind, listener string) {
	m.failures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("event_kind", string(kind)),
		attribute.String("listener", listener),
	))
}
