package resilience

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrLimited is returned when a request is dropped instead of delayed.
var ErrLimited = errors.New("resilience: rate limit exceeded")

// LimiterConfig configures a token bucket rate limiter.
type LimiterConfig struct {
	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	// Burst is the number of requests that may momentarily exceed the rate.
	Burst int `yaml:"burst" mapstructure:"burst"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *LimiterConfig) ApplyDefaults() {
	if c.RequestsPerSecond <= 0 {
		c.RequestsPerSecond = 5
	}
	if c.Burst <= 0 {
		c.Burst = int(c.RequestsPerSecond)
		if c.Burst < 1 {
			c.Burst = 1
		}
	}
}

// Limiter is a token bucket rate limiter for outbound requests.
type Limiter struct {
	cfg LimiterConfig

	mu     sync.Mutex
	tokens float64
	last   time.Time
}

// NewLimiter creates a rate limiter with a full bucket.
func NewLimiter(cfg LimiterConfig) *Limiter {
	cfg.ApplyDefaults()
	return &Limiter{
		cfg:    cfg,
		tokens: float64(cfg.Burst),
		last:   time.Now(),
	}
}

// Allow consumes a token when one is available. Returns false when the
// request should be dropped.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	if l.tokens >= 1 {
		l.tokens--
		return true
	}
	return false
}

// Wait blocks until a token is available or ctx is done.
func (l *Limiter) Wait(ctx context.Context) error {
	wait := l.reserve()
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Tokens returns the currently available tokens.
func (l *Limiter) Tokens() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.refill()
	return l.tokens
}

// refill adds tokens for the time elapsed since the last refill.
// Callers must hold l.mu.
func (l *Limiter) refill() {
	now := time.Now()
	l.tokens += now.Sub(l.last).Seconds() * l.cfg.RequestsPerSecond
	l.last = now
	if l.tokens > float64(l.cfg.Burst) {
		l.tokens = float64(l.cfg.Burst)
	}
}

// reserve consumes a token, possibly going negative, and returns how long
// the caller must wait before proceeding.
func (l *Limiter) reserve() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.refill()
	l.tokens--
	if l.tokens >= 0 {
		return 0
	}
	waitSeconds := -l.tokens / l.cfg.RequestsPerSecond
	return time.Duration(waitSeconds * float64(time.Second))
}
