// Package telemetry wires OpenTelemetry tracing and metrics behind a
// single Init call.
//
// Telemetry is disabled by default. When enabled, Init installs global
// OTLP/HTTP trace and metric providers and returns a Provider whose
// Shutdown must run on application exit. The helpers (StartSpan,
// SetSpanError, ClientMetrics) degrade to no-ops when telemetry is off,
// so calling code never branches on whether it is configured.
package telemetry
