// Package telemetry installs the OpenTelemetry meter provider used by the
// event dispatcher metrics. Collected metrics are written to the structured
// log at a fixed interval.
package telemetry
