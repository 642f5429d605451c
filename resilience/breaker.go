package resilience

import (
	"errors"
	"sync"
	"time"
)

// BreakerState represents the state of a circuit breaker.
type BreakerState int

const (
	// BreakerClosed allows all requests through.
	BreakerClosed BreakerState = iota
	// BreakerOpen rejects all requests.
	BreakerOpen
	// BreakerHalfOpen allows a limited number of probe requests.
	BreakerHalfOpen
)

// String returns the state name.
func (s BreakerState) String() string {
	switch s {
	case BreakerClosed:
		return "closed"
	case BreakerOpen:
		return "open"
	case BreakerHalfOpen:
		return "half_open"
	default:
		return "unknown"
	}
}

// ErrBreakerOpen is returned when the circuit rejects a request.
var ErrBreakerOpen = errors.New("resilience: circuit breaker is open")

// BreakerConfig configures a circuit breaker.
type BreakerConfig struct {
	// FailureThreshold is the number of consecutive failures that opens
	// the circuit.
	FailureThreshold int `yaml:"failure_threshold" mapstructure:"failure_threshold"`
	// Cooldown is how long the circuit stays open before probing.
	Cooldown time.Duration `yaml:"cooldown" mapstructure:"cooldown"`
	// HalfOpenProbes is the number of consecutive successful probes that
	// close the circuit again.
	HalfOpenProbes int `yaml:"half_open_probes" mapstructure:"half_open_probes"`
	// OnStateChange is called on every state transition.
	OnStateChange func(from, to BreakerState) `yaml:"-" mapstructure:"-"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *BreakerConfig) ApplyDefaults() {
	if c.FailureThreshold <= 0 {
		c.FailureThreshold = 5
	}
	if c.Cooldown <= 0 {
		c.Cooldown = 30 * time.Second
	}
	if c.HalfOpenProbes <= 0 {
		c.HalfOpenProbes = 1
	}
}

// Breaker is a circuit breaker tracking consecutive request outcomes.
type Breaker struct {
	cfg BreakerConfig

	mu        sync.Mutex
	state     BreakerState
	failures  int
	successes int
	openedAt  time.Time
}

// NewBreaker creates a circuit breaker in the closed state.
func NewBreaker(cfg BreakerConfig) *Breaker {
	cfg.ApplyDefaults()
	return &Breaker{cfg: cfg, state: BreakerClosed}
}

// Allow reports whether a request may proceed. Returns ErrBreakerOpen
// when the circuit rejects it.
func (b *Breaker) Allow() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.currentState() {
	case BreakerOpen:
		return ErrBreakerOpen
	default:
		return nil
	}
}

// Record reports the outcome of a request that was allowed through.
func (b *Breaker) Record(success bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	state := b.currentState()
	if success {
		b.onSuccess(state)
	} else {
		b.onFailure(state)
	}
}

// State returns the current state, accounting for cooldown expiry.
func (b *Breaker) State() BreakerState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.currentState()
}

// Reset closes the circuit and clears all counters.
func (b *Breaker) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = 0
	b.successes = 0
	b.toState(BreakerClosed)
}

// currentState transitions open to half-open once the cooldown has
// elapsed. Callers must hold b.mu.
func (b *Breaker) currentState() BreakerState {
	if b.state == BreakerOpen && time.Since(b.openedAt) >= b.cfg.Cooldown {
		b.successes = 0
		b.toState(BreakerHalfOpen)
	}
	return b.state
}

func (b *Breaker) onSuccess(state BreakerState) {
	switch state {
	case BreakerClosed:
		b.failures = 0
	case BreakerHalfOpen:
		b.successes++
		if b.successes >= b.cfg.HalfOpenProbes {
			b.failures = 0
			b.toState(BreakerClosed)
		}
	}
}

func (b *Breaker) onFailure(state BreakerState) {
	switch state {
	case BreakerClosed:
		b.failures++
		if b.failures >= b.cfg.FailureThreshold {
			b.open()
		}
	case BreakerHalfOpen:
		b.open()
	}
}

// open moves the circuit to the open state. Callers must hold b.mu.
func (b *Breaker) open() {
	b.openedAt = time.Now()
	b.toState(BreakerOpen)
}

// toState transitions and fires the callback. Callers must hold b.mu.
func (b *Breaker) toState(next BreakerState) {
	if b.state == next {
		return
	}
	prev := b.state
	b.state = next
	if b.cfg.OnStateChange != nil {
		b.cfg.OnStateChange(prev, next)
	}
}
