package config

import (
	"time"

	"github.com/LivedOma/JsonPlaceholderAnalyzer/apiclient"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/logger"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/resilience"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/telemetry"
	"github.com/LivedOma/JsonPlaceholderAnalyzer/validation"
)

const defaultBaseURL = "https://jsonplaceholder.typicode.com"

// Config is the root analyzer configuration.
type Config struct {
	App       AppConfig        `yaml:"app" mapstructure:"app"`
	API       APIConfig        `yaml:"api" mapstructure:"api"`
	Cache     CacheConfig      `yaml:"cache" mapstructure:"cache"`
	Log       logger.Config    `yaml:"log" mapstructure:"log"`
	Telemetry telemetry.Config `yaml:"telemetry" mapstructure:"telemetry"`
	Serve     ServeConfig      `yaml:"serve" mapstructure:"serve"`
}

// AppConfig identifies the application instance.
type AppConfig struct {
	Name        string `yaml:"name" mapstructure:"name"`
	Environment string `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`
	Debug       bool   `yaml:"debug" mapstructure:"debug"`
}

// APIConfig configures the upstream JSONPlaceholder client.
type APIConfig struct {
	// BaseURL is the API root. Defaults to the public JSONPlaceholder
	// instance.
	BaseURL string `yaml:"base_url" mapstructure:"base_url" validate:"required,url"`
	// Timeout is the per-request timeout. Zero defers to the client
	// default (30s).
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// MaxRetries is the retry count after the initial attempt. Zero
	// defers to the client default (3).
	MaxRetries int `yaml:"max_retries" mapstructure:"max_retries"`
	// RetryBaseDelay is the first backoff delay. Zero defers to the
	// client default (1s).
	RetryBaseDelay time.Duration `yaml:"retry_base_delay" mapstructure:"retry_base_delay"`
	// UserAgent overrides the default client user agent.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
	// RateLimit throttles outbound requests per second. Zero disables
	// throttling.
	RateLimit float64 `yaml:"rate_limit" mapstructure:"rate_limit"`
	// RateBurst is the rate limiter burst size.
	RateBurst int `yaml:"rate_burst" mapstructure:"rate_burst"`
	// BreakerThreshold is the consecutive-failure count that opens the
	// circuit. Zero disables circuit breaking.
	BreakerThreshold int `yaml:"breaker_threshold" mapstructure:"breaker_threshold"`
	// BreakerCooldown is how long the circuit stays open.
	BreakerCooldown time.Duration `yaml:"breaker_cooldown" mapstructure:"breaker_cooldown"`
}

// CacheConfig configures the read cache in front of the API.
type CacheConfig struct {
	// TTL bounds how long cached reads stay fresh. Zero defaults to
	// 5m; a negative value disables the cache.
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ServeConfig configures the local sandbox API server.
type ServeConfig struct {
	Host string `yaml:"host" mapstructure:"host"`
	Port int    `yaml:"port" mapstructure:"port" validate:"gte=0,lte=65535"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "analyzer"
	}
	if c.App.Environment == "" {
		c.App.Environment = "development"
	}
	if c.App.Environment == "development" {
		c.App.Debug = true
	}
	if c.API.BaseURL == "" {
		c.API.BaseURL = defaultBaseURL
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 5 * time.Minute
	}
	if c.Serve.Host == "" {
		c.Serve.Host = "127.0.0.1"
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = 8980
	}
	c.Log.ApplyDefaults()
	if c.App.Debug && c.Log.Level == "info" {
		c.Log.Level = "debug"
	}
}

// Validate checks the configuration after defaults are applied.
func (c *Config) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.Log.Validate()
}

// ClientConfig derives the API client configuration.
func (c *APIConfig) ClientConfig() apiclient.Config {
	cfg := apiclient.Config{
		BaseURL:        c.BaseURL,
		Timeout:        c.Timeout,
		MaxRetries:     c.MaxRetries,
		RetryBaseDelay: c.RetryBaseDelay,
		UserAgent:      c.UserAgent,
	}
	if c.RateLimit > 0 {
		cfg.RateLimit = &resilience.LimiterConfig{
			RequestsPerSecond: c.RateLimit,
			Burst:             c.RateBurst,
		}
	}
	if c.BreakerThreshold > 0 {
		cfg.Breaker = &resilience.BreakerConfig{
			FailureThreshold: c.BreakerThreshold,
			Cooldown:         c.BreakerCooldown,
		}
	}
	return cfg
}
