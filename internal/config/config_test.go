package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Name != "analyzer" {
		t.Errorf("App.Name = %q, want analyzer", cfg.App.Name)
	}
	if cfg.App.Environment != "development" {
		t.Errorf("App.Environment = %q, want development", cfg.App.Environment)
	}
	if !cfg.App.Debug {
		t.Error("App.Debug = false, want true in development")
	}
	if cfg.API.BaseURL != "https://jsonplaceholder.typicode.com" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.MaxRetries != 0 {
		t.Errorf("API.MaxRetries = %d, want 0 (client default applies later)", cfg.API.MaxRetries)
	}
	if cfg.Cache.TTL != 5*time.Minute {
		t.Errorf("Cache.TTL = %v, want 5m", cfg.Cache.TTL)
	}
	if cfg.Serve.Host != "127.0.0.1" || cfg.Serve.Port != 8980 {
		t.Errorf("Serve = %s:%d, want 127.0.0.1:8980", cfg.Serve.Host, cfg.Serve.Port)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug (raised by App.Debug)", cfg.Log.Level)
	}
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())

	path := writeFile(t, dir, "config.yml", `
app:
  name: analyzer-test
  environment: staging
api:
  base_url: https://api.example.com
  timeout: 5s
  max_retries: 2
  retry_base_delay: 250ms
  rate_limit: 10
  rate_burst: 5
  breaker_threshold: 4
  breaker_cooldown: 45s
cache:
  ttl: 90s
log:
  level: warn
serve:
  host: 0.0.0.0
  port: 9000
`)

	cfg, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.App.Name != "analyzer-test" {
		t.Errorf("App.Name = %q", cfg.App.Name)
	}
	if cfg.App.Environment != "staging" {
		t.Errorf("App.Environment = %q", cfg.App.Environment)
	}
	if cfg.App.Debug {
		t.Error("App.Debug = true, want false outside development")
	}
	if cfg.API.BaseURL != "https://api.example.com" {
		t.Errorf("API.BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("API.Timeout = %v, want 5s", cfg.API.Timeout)
	}
	if cfg.API.MaxRetries != 2 {
		t.Errorf("API.MaxRetries = %d, want 2", cfg.API.MaxRetries)
	}
	if cfg.API.RetryBaseDelay != 250*time.Millisecond {
		t.Errorf("API.RetryBaseDelay = %v, want 250ms", cfg.API.RetryBaseDelay)
	}
	if cfg.API.RateLimit != 10 || cfg.API.RateBurst != 5 {
		t.Errorf("rate limit = %v burst %d", cfg.API.RateLimit, cfg.API.RateBurst)
	}
	if cfg.API.BreakerThreshold != 4 || cfg.API.BreakerCooldown != 45*time.Second {
		t.Errorf("breaker = %d %v", cfg.API.BreakerThreshold, cfg.API.BreakerCooldown)
	}
	if cfg.Cache.TTL != 90*time.Second {
		t.Errorf("Cache.TTL = %v, want 90s", cfg.Cache.TTL)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want warn", cfg.Log.Level)
	}
	if cfg.Serve.Host != "0.0.0.0" || cfg.Serve.Port != 9000 {
		t.Errorf("Serve = %s:%d", cfg.Serve.Host, cfg.Serve.Port)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())

	path := writeFile(t, dir, "config.yml", `
api:
  base_url: https://file.example.com
`)
	t.Setenv("API_BASE_URL", "https://env.example.com")

	cfg, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.BaseURL != "https://env.example.com" {
		t.Errorf("API.BaseURL = %q, want the env value", cfg.API.BaseURL)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())

	path := writeFile(t, dir, ".env", "API_MAX_RETRIES=5\nCACHE_TTL=30s\n")
	// godotenv writes into the process environment.
	defer os.Unsetenv("API_MAX_RETRIES")
	defer os.Unsetenv("CACHE_TTL")

	cfg, err := Load(WithEnvFile(path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.MaxRetries != 5 {
		t.Errorf("API.MaxRetries = %d, want 5", cfg.API.MaxRetries)
	}
	if cfg.Cache.TTL != 30*time.Second {
		t.Errorf("Cache.TTL = %v, want 30s", cfg.Cache.TTL)
	}
}

func TestLoad_ProcessEnvWinsOverEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())

	path := writeFile(t, dir, ".env", "API_MAX_RETRIES=5\n")
	t.Setenv("API_MAX_RETRIES", "7")

	cfg, err := Load(WithEnvFile(path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.API.MaxRetries != 7 {
		t.Errorf("API.MaxRetries = %d, want 7 (process env wins)", cfg.API.MaxRetries)
	}
}

func TestLoad_MissingExplicitConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Load(WithConfigFile("/nonexistent/config.yml"))
	if err == nil {
		t.Fatal("Load() error = nil, want not-found error")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want mention of not found", err)
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())

	path := writeFile(t, dir, "config.yml", "api: [unclosed\n")

	_, err := Load(WithConfigFile(path))
	if err == nil {
		t.Fatal("Load() error = nil, want parse error")
	}
	if !strings.Contains(err.Error(), "reading config file") {
		t.Errorf("error = %v, want reading config file wrap", err)
	}
}

func TestLoad_InvalidBaseURL(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())

	path := writeFile(t, dir, "config.yml", `
api:
  base_url: "not a url"
`)

	_, err := Load(WithConfigFile(path))
	if err == nil {
		t.Fatal("Load() error = nil, want validation error")
	}
	if !strings.Contains(err.Error(), "must be a valid URL") {
		t.Errorf("error = %v, want URL validation message", err)
	}
}

func TestLoad_InvalidEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())

	path := writeFile(t, dir, "config.yml", `
app:
  environment: prod
`)

	_, err := Load(WithConfigFile(path))
	if err == nil {
		t.Fatal("Load() error = nil, want validation error")
	}
	if !strings.Contains(err.Error(), "must be one of") {
		t.Errorf("error = %v, want oneof validation message", err)
	}
}

func TestLoad_DebugRaisesLogLevel(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(t.TempDir())

	path := writeFile(t, dir, "config.yml", `
app:
  environment: production
  debug: true
`)

	cfg, err := Load(WithConfigFile(path))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestEnvKeyVariants(t *testing.T) {
	tests := []struct {
		key  string
		want []string
	}{
		{"DEBUG", []string{"debug"}},
		{"CACHE_TTL", []string{"cache_ttl", "cache.ttl"}},
		{"API_BASE_URL", []string{"api_base_url", "api.base.url", "api.base_url"}},
		{"API_RETRY_BASE_DELAY", []string{
			"api_retry_base_delay",
			"api.retry.base.delay",
			"api.retry_base_delay",
			"api.retry.base_delay",
		}},
	}

	for _, tt := range tests {
		got := envKeyVariants(tt.key)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("envKeyVariants(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestAPIConfig_ClientConfig(t *testing.T) {
	api := APIConfig{BaseURL: "https://example.com"}
	cc := api.ClientConfig()
	if cc.BaseURL != "https://example.com" {
		t.Errorf("BaseURL = %q", cc.BaseURL)
	}
	if cc.RateLimit != nil {
		t.Error("RateLimit != nil for zero rate")
	}
	if cc.Breaker != nil {
		t.Error("Breaker != nil for zero threshold")
	}

	api = APIConfig{
		BaseURL:          "https://example.com",
		Timeout:          5 * time.Second,
		MaxRetries:       2,
		RetryBaseDelay:   250 * time.Millisecond,
		UserAgent:        "custom/1.0",
		RateLimit:        10,
		RateBurst:        5,
		BreakerThreshold: 4,
		BreakerCooldown:  45 * time.Second,
	}
	cc = api.ClientConfig()
	if cc.Timeout != 5*time.Second || cc.MaxRetries != 2 || cc.RetryBaseDelay != 250*time.Millisecond {
		t.Errorf("client config = %+v", cc)
	}
	if cc.UserAgent != "custom/1.0" {
		t.Errorf("UserAgent = %q", cc.UserAgent)
	}
	if cc.RateLimit == nil || cc.RateLimit.RequestsPerSecond != 10 || cc.RateLimit.Burst != 5 {
		t.Errorf("RateLimit = %+v", cc.RateLimit)
	}
	if cc.Breaker == nil || cc.Breaker.FailureThreshold != 4 || cc.Breaker.Cooldown != 45*time.Second {
		t.Errorf("Breaker = %+v", cc.Breaker)
	}
}
