package telemetry

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ClientMetrics holds instruments for outbound API calls. A nil
// *ClientMetrics is valid and records nothing.
type ClientMetrics struct {
	calls    metric.Int64Counter
	duration metric.Float64Histogram
	retries  metric.Int64Counter
}

// NewClientMetrics creates the API client instruments on the given meter.
func NewClientMetrics(meter metric.Meter) (*ClientMetrics, error) {
	calls, err := meter.Int64Counter("api.client.calls",
		metric.WithDescription("Total number of API calls by method, path and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating api.client.calls counter: %w", err)
	}

	duration, err := meter.Float64Histogram("api.client.duration",
		metric.WithDescription("Duration of API calls in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating api.client.duration histogram: %w", err)
	}

	retries, err := meter.Int64Counter("api.client.retries",
		metric.WithDescription("Total number of API call retries"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating api.client.retries counter: %w", err)
	}

	return &ClientMetrics{calls: calls, duration: duration, retries: retries}, nil
}

// Record records one completed API call. A status of 0 means the call
// failed before receiving a response.
func (m *ClientMetrics) Record(ctx context.Context, method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}

	m.calls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.String("status", strconv.Itoa(status)),
	))
	m.duration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
	))
}

// RecordRetry records one retry of an API call.
func (m *ClientMetrics) RecordRetry(ctx context.Context, method, path string, attempt int) {
	if m == nil {
		return
	}

	m.retries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("path", path),
		attribute.Int("attempt", attempt),
	))
}
