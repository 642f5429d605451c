package apiclient

import (
	"fmt"
	"strings"
	"time"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/resilience"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/version"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultBaseDelay  = time.Second
)

// Config configures the API client.
type Config struct {
	// BaseURL is the base URL prepended to all request paths. Required.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// MaxRetries is the number of retries after the initial attempt.
	// Defaults to 3. A negative value disables retries.
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries"`

	// RetryBaseDelay is the backoff before the first retry. Subsequent
	// delays double. Defaults to 1s.
	RetryBaseDelay time.Duration `yaml:"retry_base_delay" mapstructure:"retry_base_delay"`

	// UserAgent is sent with every request.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// Headers are default headers applied to all requests.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// RateLimit throttles outbound requests. Nil disables it.
	RateLimit *resilience.LimiterConfig `yaml:"rate_limit" mapstructure:"rate_limit"`

	// Breaker configures circuit breaking. Nil disables it.
	Breaker *resilience.BreakerConfig `yaml:"breaker" mapstructure:"breaker"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = defaultMaxRetries
	}
	if c.RetryBaseDelay <= 0 {
		c.RetryBaseDelay = defaultBaseDelay
	}
	if c.UserAgent == "" {
		c.UserAgent = "jsonplaceholder-analyzer/" + version.Version
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("apiclient: base URL is required")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("apiclient: timeout must be positive")
	}
	if c.RetryBaseDelay <= 0 {
		return fmt.Errorf("apiclient: retry base delay must be positive")
	}
	return nil
}

// RetryPolicy derives the retry policy for this configuration.
func (c *Config) RetryPolicy() Policy {
	pol := DefaultPolicy()
	pol.MaxRetries = c.MaxRetries
	if pol.MaxRetries < 0 {
		pol.MaxRetries = 0
	}
	pol.BaseDelay = c.RetryBaseDelay
	return pol
}
