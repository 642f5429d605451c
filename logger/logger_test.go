package logger

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNew(t *testing.T) {
	cfg := &Config{
		Level:  "debug",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "my-service")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "my-service" {
		t.Errorf("expected service 'my-service', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{
		Level:  "invalid-level",
		Format: "json",
		Output: "stdout",
	}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	l := NewFromEnv("env-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("test")
	cl := l.WithComponent("apiclient")
	if cl == nil {
		t.Fatal("expected non-nil logger")
	}
	if cl.service != "test" {
		t.Errorf("service should be preserved, got %q", cl.service)
	}
}

func TestWithContext_RequestID(t *testing.T) {
	l := NewDefault("test")
	ctx := ContextWithRequestID(context.Background(), "req-123")
	cl := l.WithContext(ctx)
	if cl == l {
		t.Error("expected a derived logger when the context carries a request ID")
	}

	plain := l.WithContext(context.Background())
	if plain != l {
		t.Error("expected the same logger when the context has no request ID")
	}
}

func TestConfig_ApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected default level info, got %q", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected default format console, got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected default output stdout, got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamps enabled by default")
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{Level: "info", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}

	cfg = Config{Level: "verbose", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}

	cfg = Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestFields(t *testing.T) {
	m := Fields("operation", "fetch", "id", 42)
	if m["operation"] != "fetch" {
		t.Errorf("expected operation=fetch, got %v", m["operation"])
	}
	if m["id"] != 42 {
		t.Errorf("expected id=42, got %v", m["id"])
	}
}

func TestFields_OddArguments(t *testing.T) {
	m := Fields("only-key")
	if len(m) != 0 {
		t.Errorf("expected empty map for dangling key, got %v", m)
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("fetch", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", m[FieldDuration])
	}
	if m[FieldOperation] != "fetch" {
		t.Errorf("expected operation fetch, got %v", m[FieldOperation])
	}
}

func TestGlobalLogger(t *testing.T) {
	SetGlobalLogger(nil)
	l := GetGlobalLogger()
	if l == nil {
		t.Fatal("expected a default global logger")
	}
	custom := NewDefault("custom")
	SetGlobalLogger(custom)
	if GetGlobalLogger() != custom {
		t.Error("expected the configured global logger")
	}
}
