package apiclient

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/logger"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/result"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/telemetry"
)

// retryMarkers are message fragments that mark a failure retryable when
// no structured signal (kind, status code, retryable flag) matches.
var retryMarkers = []string{"timeout", "timed out", "rate limit", "429", "503", "502"}

// Policy controls retry behavior.
type Policy struct {
	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int
	// BaseDelay is the backoff before the first retry. Subsequent
	// delays double.
	BaseDelay time.Duration
	// MaxDelay caps each backoff delay. Zero means no cap.
	MaxDelay time.Duration
	// Jitter adds up to +/- this fraction of random variation to each
	// delay (0.0 to 1.0). Zero keeps delays deterministic.
	Jitter float64
	// Retryable decides whether a failure is worth retrying. Defaults
	// to DefaultRetryable.
	Retryable func(*result.Failure) bool
	// Idempotent decides whether a method may be retried at all.
	// Defaults to DefaultIdempotent.
	Idempotent func(method string) bool
	// OnRetry is called before each backoff sleep.
	OnRetry func(attempt int, f *result.Failure, delay time.Duration)
}

// DefaultPolicy returns the standard retry policy.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries: defaultMaxRetries,
		BaseDelay:  defaultBaseDelay,
		MaxDelay:   30 * time.Second,
	}
}

// DefaultRetryable reports whether a failure is worth retrying.
// Structured signals are checked first; the message markers are a
// fallback for failures that carry no kind or status information.
func DefaultRetryable(f *result.Failure) bool {
	if f == nil {
		return false
	}
	// Caller cancellation is never worth retrying.
	if errors.Is(f.Cause, context.Canceled) {
		return false
	}
	if f.Retryable {
		return true
	}
	switch f.Kind {
	case result.KindTimeout, result.KindNetwork:
		return true
	}
	switch f.StatusCode {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable:
		return true
	}

	msg := strings.ToLower(f.Message)
	for _, marker := range retryMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// DefaultIdempotent reports whether a method is safe to retry.
func DefaultIdempotent(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return true
	default:
		return false
	}
}

// Retrier decorates a Caller with bounded, idempotency-aware retries.
type Retrier struct {
	inner   Caller
	policy  Policy
	log     *logger.Logger
	metrics *telemetry.ClientMetrics
}

// RetrierOption configures a Retrier.
type RetrierOption func(*Retrier)

// WithRetrierLogger overrides the retrier logger.
func WithRetrierLogger(log *logger.Logger) RetrierOption {
	return func(r *Retrier) { r.log = log }
}

// WithRetrierMetrics attaches retry metrics.
func WithRetrierMetrics(m *telemetry.ClientMetrics) RetrierOption {
	return func(r *Retrier) { r.metrics = m }
}

// NewRetrier wraps inner with the given retry policy.
func NewRetrier(inner Caller, pol Policy, opts ...RetrierOption) *Retrier {
	if pol.MaxRetries < 0 {
		pol.MaxRetries = 0
	}
	if pol.BaseDelay <= 0 {
		pol.BaseDelay = defaultBaseDelay
	}
	if pol.Retryable == nil {
		pol.Retryable = DefaultRetryable
	}
	if pol.Idempotent == nil {
		pol.Idempotent = DefaultIdempotent
	}

	r := &Retrier{
		inner:  inner,
		policy: pol,
		log:    logger.WithComponent("apiclient.retry"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Call forwards the request, retrying failed attempts per the policy.
// Non-idempotent methods are forwarded exactly once. The failure from
// the final attempt is returned unmodified.
func (r *Retrier) Call(ctx context.Context, req Request) result.Result[Payload] {
	attempts := 1 + r.policy.MaxRetries
	if !r.policy.Idempotent(req.Method) {
		attempts = 1
	}

	var last result.Result[Payload]
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result.Fail[Payload](contextFailure(err, nil))
		}

		last = r.inner.Call(ctx, req)
		if last.IsOk() {
			return last
		}

		failure := last.Err()
		if attempt == attempts || !r.policy.Retryable(failure) {
			return last
		}
		// Retryable overrides must not turn cancellation into a retry.
		if ctx.Err() != nil {
			return last
		}

		delay := r.nextDelay(attempt, failure)
		r.log.Warn("retrying request", logger.Fields(
			logger.FieldMethod, req.Method,
			logger.FieldPath, req.Path,
			logger.FieldAttempt, attempt,
			"delay", delay.String(),
			logger.FieldError, failure.Error(),
		))
		r.metrics.RecordRetry(ctx, req.Method, req.Path, attempt)
		if r.policy.OnRetry != nil {
			r.policy.OnRetry(attempt, failure, delay)
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return result.Fail[Payload](contextFailure(ctx.Err(), nil))
		case <-timer.C:
		}
	}

	return last
}

// nextDelay computes the wait before the next retry. A server-provided
// Retry-After takes precedence over the computed backoff; both respect
// the policy's MaxDelay cap.
func (r *Retrier) nextDelay(attempt int, f *result.Failure) time.Duration {
	if f != nil && f.RetryAfter > 0 {
		delay := f.RetryAfter
		if r.policy.MaxDelay > 0 && delay > r.policy.MaxDelay {
			delay = r.policy.MaxDelay
		}
		return delay
	}
	return backoffDelay(attempt, r.policy)
}

// backoffDelay computes the exponential backoff for a retry attempt:
// BaseDelay doubled per attempt, plus optional jitter, capped at
// MaxDelay.
func backoffDelay(attempt int, pol Policy) time.Duration {
	backoff := float64(pol.BaseDelay) * math.Pow(2, float64(attempt-1))
	if pol.Jitter > 0 {
		jitter := backoff * pol.Jitter
		backoff += (rand.Float64()*2 - 1) * jitter
	}

	delay := time.Duration(backoff)
	if pol.MaxDelay > 0 && delay > pol.MaxDelay {
		delay = pol.MaxDelay
	}
	if delay < 0 {
		delay = 0
	}
	return delay
}
