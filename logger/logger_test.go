package logger

import (
	"testing"
	"time"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level info, got %s", cfg.Level)
	}
	if cfg.Format != "console" {
		t.Errorf("expected format console, got %s", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output stdout, got %s", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled")
	}
}

func TestConfig_Validate_InvalidLevel(t *testing.T) {
	cfg := Config{Level: "loud", Format: "json"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestConfig_Validate_InvalidFormat(t *testing.T) {
	cfg := Config{Level: "info", Format: "xml"}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for invalid format")
	}
}

func TestConfig_Validate_Success(t *testing.T) {
	cfg := Config{Level: "debug", Format: "json"}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNew_InvalidLevelFallsBack(t *testing.T) {
	cfg := &Config{Level: "bogus", Format: "json", Output: "stdout"}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger")
	}
}

func TestWithComponent(t *testing.T) {
	l := NewDefault("test").WithComponent("dag")
	if l == nil {
		t.Fatal("expected logger")
	}
	// component loggers must not share state with the parent
	l2 := l.WithFields(map[string]interface{}{"k": "v"})
	if l2 == l {
		t.Error("expected a new logger instance")
	}
}

func TestFields(t *testing.T) {
	m := Fields("task", "normalize", "count", 42)
	if m["task"] != "normalize" {
		t.Errorf("expected task=normalize, got %v", m["task"])
	}
	if m["count"] != 42 {
		t.Errorf("expected count=42, got %v", m["count"])
	}
}

func TestFields_OddArgs(t *testing.T) {
	m := Fields("only-key")
	if len(m) != 0 {
		t.Errorf("expected empty map, got %v", m)
	}
}

func TestFields_NonStringKey(t *testing.T) {
	m := Fields(42, "value")
	if len(m) != 0 {
		t.Errorf("expected non-string keys skipped, got %v", m)
	}
}

func TestDurationFields(t *testing.T) {
	m := DurationFields("run", 1500*time.Millisecond)
	if m[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", m[FieldDuration])
	}
}

func TestGetGlobalLogger_LazyInit(t *testing.T) {
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected lazily created global logger")
	}
}
