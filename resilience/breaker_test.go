package resilience

import (
	"testing"
	"time"
)

func TestBreakerState_String(t *testing.T) {
	tests := []struct {
		state    BreakerState
		expected string
	}{
		{BreakerClosed, "closed"},
		{BreakerOpen, "open"},
		{BreakerHalfOpen, "half_open"},
		{BreakerState(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.state.String(); got != tt.expected {
			t.Errorf("BreakerState(%d).String() = %q, expected %q", tt.state, got, tt.expected)
		}
	}
}

func TestBreakerConfig_ApplyDefaults(t *testing.T) {
	cfg := BreakerConfig{}
	cfg.ApplyDefaults()

	if cfg.FailureThreshold != 5 {
		t.Errorf("expected threshold 5, got %d", cfg.FailureThreshold)
	}
	if cfg.Cooldown != 30*time.Second {
		t.Errorf("expected cooldown 30s, got %v", cfg.Cooldown)
	}
	if cfg.HalfOpenProbes != 1 {
		t.Errorf("expected 1 probe, got %d", cfg.HalfOpenProbes)
	}
}

func TestBreaker_Allow_ClosedByDefault(t *testing.T) {
	breaker := NewBreaker(BreakerConfig{})

	if err := breaker.Allow(); err != nil {
		t.Errorf("closed breaker should allow requests, got %v", err)
	}
	if breaker.State() != BreakerClosed {
		t.Errorf("expected closed state, got %v", breaker.State())
	}
}

func TestBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	breaker := NewBreaker(BreakerConfig{FailureThreshold: 3, Cooldown: time.Minute})

	breaker.Record(false)
	breaker.Record(false)
	if breaker.State() != BreakerClosed {
		t.Fatal("breaker should stay closed below the threshold")
	}

	breaker.Record(false)
	if breaker.State() != BreakerOpen {
		t.Errorf("expected open state after 3 failures, got %v", breaker.State())
	}
	if err := breaker.Allow(); err != ErrBreakerOpen {
		t.Errorf("expected ErrBreakerOpen, got %v", err)
	}
}

func TestBreaker_SuccessResetsFailureCount(t *testing.T) {
	breaker := NewBreaker(BreakerConfig{FailureThreshold: 2, Cooldown: time.Minute})

	breaker.Record(false)
	breaker.Record(true)
	breaker.Record(false)

	if breaker.State() != BreakerClosed {
		t.Errorf("interleaved success should reset the count, got %v", breaker.State())
	}
}

func TestBreaker_HalfOpenAfterCooldown(t *testing.T) {
	breaker := NewBreaker(BreakerConfig{FailureThreshold: 1, Cooldown: 10 * time.Millisecond})

	breaker.Record(false)
	if breaker.State() != BreakerOpen {
		t.Fatal("breaker should open after the threshold")
	}

	time.Sleep(20 * time.Millisecond)

	if breaker.State() != BreakerHalfOpen {
		t.Errorf("expected half-open after cooldown, got %v", breaker.State())
	}
	if err := breaker.Allow(); err != nil {
		t.Errorf("half-open breaker should allow probes, got %v", err)
	}
}

func TestBreaker_ClosesAfterSuccessfulProbes(t *testing.T) {
	breaker := NewBreaker(BreakerConfig{
		FailureThreshold: 1,
		Cooldown:         10 * time.Millisecond,
		HalfOpenProbes:   2,
	})

	breaker.Record(false)
	time.Sleep(20 * time.Millisecond)

	breaker.Record(true)
	if breaker.State() != BreakerHalfOpen {
		t.Fatal("breaker should stay half-open until all probes succeed")
	}

	breaker.Record(true)
	if breaker.State() != BreakerClosed {
		t.Errorf("expected closed after successful probes, got %v", breaker.State())
	}
}

func TestBreaker_ReopensOnProbeFailure(t *testing.T) {
	breaker := NewBreaker(BreakerConfig{FailureThreshold: 1, Cooldown: 10 * time.Millisecond})

	breaker.Record(false)
	time.Sleep(20 * time.Millisecond)

	if breaker.State() != BreakerHalfOpen {
		t.Fatal("breaker should be half-open after cooldown")
	}

	breaker.Record(false)
	if breaker.State() != BreakerOpen {
		t.Errorf("expected open after probe failure, got %v", breaker.State())
	}
}

func TestBreaker_OnStateChange(t *testing.T) {
	var transitions []string
	breaker := NewBreaker(BreakerConfig{
		FailureThreshold: 1,
		Cooldown:         10 * time.Millisecond,
		OnStateChange: func(from, to BreakerState) {
			transitions = append(transitions, from.String()+"->"+to.String())
		},
	})

	breaker.Record(false)
	time.Sleep(20 * time.Millisecond)
	breaker.Record(true)

	expected := []string{"closed->open", "open->half_open", "half_open->closed"}
	if len(transitions) != len(expected) {
		t.Fatalf("expected %d transitions, got %d: %v", len(expected), len(transitions), transitions)
	}
	for i, want := range expected {
		if transitions[i] != want {
			t.Errorf("transition %d = %q, expected %q", i, transitions[i], want)
		}
	}
}

func TestBreaker_Reset(t *testing.T) {
	breaker := NewBreaker(BreakerConfig{FailureThreshold: 1, Cooldown: time.Minute})

	breaker.Record(false)
	if breaker.State() != BreakerOpen {
		t.Fatal("breaker should be open")
	}

	breaker.Reset()

	if breaker.State() != BreakerClosed {
		t.Errorf("expected closed after reset, got %v", breaker.State())
	}
	if err := breaker.Allow(); err != nil {
		t.Errorf("reset breaker should allow requests, got %v", err)
	}
}
