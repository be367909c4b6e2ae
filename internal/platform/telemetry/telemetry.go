package telemetry

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultExportInterval is how often metrics are written to the log.
const DefaultExportInterval = time.Minute

// ShutdownFunc flushes and stops the meter provider.
type ShutdownFunc func(ctx context.Context) error

// NewMeterProvider creates a meter provider that exports to the log every
// interval. A non-positive interval uses DefaultExportInterval.
func NewMeterProvider(log *slog.Logger, interval time.Duration) *sdkmetric.MeterProvider {
	if interval <= 0 {
		interval = DefaultExportInterval
	}
	reader := sdkmetric.NewPeriodicReader(NewLogExporter(log), sdkmetric.WithInterval(interval))
	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
}

// Setup installs a log-exporting meter provider as the global provider.
func Setup(log *slog.Logger, interval time.Duration) ShutdownFunc {
	provider := NewMeterProvider(log, interval)
	otel.SetMeterProvider(provider)
	return provider.Shutdown
}
