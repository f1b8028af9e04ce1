package config

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestResolve_EnvOverridesFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "fd-env-key")

	cfg := DefaultConfig()
	cfg.API.APIKey = "fd-file-key"
	if err := cfg.Resolve(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.APIKey != "fd-env-key" {
		t.Errorf("expected env key to win, got %q", cfg.API.APIKey)
	}
}

func TestResolve_FileKeyWithoutEnv(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	cfg := DefaultConfig()
	cfg.API.APIKey = "fd-file-key"
	if err := cfg.Resolve(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.APIKey != "fd-file-key" {
		t.Errorf("expected file key kept, got %q", cfg.API.APIKey)
	}
}

func TestResolve_MissingKey(t *testing.T) {
	t.Setenv(EnvAPIKey, "")

	cfg := DefaultConfig()
	err := cfg.Resolve()
	if err == nil {
		t.Fatal("expected an error when no key is configured")
	}
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Errorf("expected ErrMissingAPIKey, got %v", err)
	}
	if !strings.Contains(err.Error(), EnvAPIKey) {
		t.Errorf("expected the error to mention %s, got %q", EnvAPIKey, err)
	}
}

func TestResolve_TimeoutDefaulted(t *testing.T) {
	t.Setenv(EnvAPIKey, "fd-env-key")

	cfg := Config{}
	if err := cfg.Resolve(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.API.TimeoutSeconds != 30 {
		t.Errorf("expected timeout defaulted to 30, got %d", cfg.API.TimeoutSeconds)
	}
}

func TestConfig_Timeout(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.Timeout(); got != 30*time.Second {
		t.Errorf("expected 30s, got %v", got)
	}

	cfg.API.TimeoutSeconds = 90
	if got := cfg.Timeout(); got != 90*time.Second {
		t.Errorf("expected 90s, got %v", got)
	}

	cfg.API.TimeoutSeconds = -1
	if got := cfg.Timeout(); got != 30*time.Second {
		t.Errorf("expected fallback 30s for negative value, got %v", got)
	}
}
