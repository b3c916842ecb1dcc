package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	log, err := New(Config{Level: "debug", Development: true, Encoding: "console"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if log == nil {
		t.Fatal("New() returned nil logger")
	}
	if !log.Core().Enabled(zap.DebugLevel) {
		t.Error("debug level should be enabled")
	}
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log, err := New(Config{Level: "loud", Encoding: "json"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if log.Core().Enabled(zap.DebugLevel) {
		t.Error("debug should be disabled after falling back to info")
	}
	if !log.Core().Enabled(zap.InfoLevel) {
		t.Error("info level should be enabled")
	}
}

func TestDefault(t *testing.T) {
	t.Setenv("BLOG_LOG_LEVEL", "warn")
	t.Setenv("BLOG_ENVIRONMENT", "production")

	log := Default()
	if log == nil {
		t.Fatal("Default() returned nil logger")
	}
	if log.Core().Enabled(zap.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
}

func TestWithContext(t *testing.T) {
	log := Default()
	child := WithContext(log, zap.String("component", "seed"))
	if child == nil {
		t.Fatal("WithContext() returned nil logger")
	}
}
