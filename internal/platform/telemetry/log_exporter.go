package telemetry

import (
	"context"
	"log/slog"
	"sync/atomic"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// LogExporter is a metric exporter that writes one log record per metric.
type LogExporter struct {
	logger   *slog.Logger
	shutdown atomic.Bool
}

var _ sdkmetric.Exporter = (*LogExporter)(nil)

// NewLogExporter creates a LogExporter. A nil logger uses slog.Default.
func NewLogExporter(log *slog.Logger) *LogExporter {
	if log == nil {
		log = slog.Default()
	}
	return &LogExporter{logger: log.With(slog.String("component", "metrics"))}
}

// Temporality implements sdkmetric.Exporter.
func (e *LogExporter) Temporality(kind sdkmetric.InstrumentKind) metricdata.Temporality {
	return sdkmetric.DefaultTemporalitySelector(kind)
}

// Aggregation implements sdkmetric.Exporter.
func (e *LogExporter) Aggregation(kind sdkmetric.InstrumentKind) sdkmetric.Aggregation {
	return sdkmetric.DefaultAggregationSelector(kind)
}

// Export implements sdkmetric.Exporter.
func (e *LogExporter) Export(ctx context.Context, rm *metricdata.ResourceMetrics) error {
	if e.shutdown.Load() {
		return nil
	}

	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			attrs := []slog.Attr{
				slog.String("scope", sm.Scope.Name),
				slog.String("metric", m.Name),
			}
			attrs = append(attrs, summarize(m.Data)...)
			e.logger.LogAttrs(ctx, slog.LevelInfo, "metric snapshot", attrs...)
		}
	}
	return nil
}

// ForceFlush implements sdkmetric.Exporter. Nothing is buffered.
func (e *LogExporter) ForceFlush(context.Context) error { return nil }

// Shutdown implements sdkmetric.Exporter.
func (e *LogExporter) Shutdown(context.Context) error {
	e.shutdown.Store(true)
	return nil
}

// summarize reduces an aggregation to totals across its data points.
func summarize(data metricdata.Aggregation) []slog.Attr {
	switch d := data.(type) {
	case metricdata.Sum[int64]:
		var total int64
		for _, dp := range d.DataPoints {
			total += dp.Value
		}
		return []slog.Attr{slog.Int64("value", total), slog.Int("series", len(d.DataPoints))}
	case metricdata.Sum[float64]:
		var total float64
		for _, dp := range d.DataPoints {
			total += dp.Value
		}
		return []slog.Attr{slog.Float64("value", total), slog.Int("series", len(d.DataPoints))}
	case metricdata.Histogram[float64]:
		var count uint64
		var sum float64
		for _, dp := range d.DataPoints {
			count += dp.Count
			sum += dp.Sum
		}
		return []slog.Attr{slog.Uint64("count", count), slog.Float64("sum", sum), slog.Int("series", len(d.DataPoints))}
	default:
		return []slog.Attr{slog.String("type", "unsupported")}
	}
}
