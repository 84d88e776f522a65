package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "DEFAULT_LENGTH", "MAX_LENGTH", "RATE_LIMIT_RPS", "API_TOKEN_SECRET", "CLIPBOARD_CLEAR_AFTER"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.DefaultLength != 12 {
		t.Errorf("DefaultLength = %d, want 12", cfg.DefaultLength)
	}
	if cfg.MaxLength != 128 {
		t.Errorf("MaxLength = %d, want 128", cfg.MaxLength)
	}
	if cfg.RateLimitRPS != 5 {
		t.Errorf("RateLimitRPS = %v, want 5", cfg.RateLimitRPS)
	}
	if cfg.ClipboardClearAfter != 30*time.Second {
		t.Errorf("ClipboardClearAfter = %v, want 30s", cfg.ClipboardClearAfter)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_LENGTH", "20")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("API_TOKEN_TTL", "15m")
	t.Setenv("CLIPBOARD_CLEAR_AFTER", "0s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Port)
	}
	if cfg.DefaultLength != 20 {
		t.Errorf("DefaultLength = %d, want 20", cfg.DefaultLength)
	}
	if cfg.RateLimitRPS != 0.5 {
		t.Errorf("RateLimitRPS = %v, want 0.5", cfg.RateLimitRPS)
	}
	if cfg.TokenTTL != 15*time.Minute {
		t.Errorf("TokenTTL = %v, want 15m", cfg.TokenTTL)
	}
	if cfg.ClipboardClearAfter != 0 {
		t.Errorf("ClipboardClearAfter = %v, want 0", cfg.ClipboardClearAfter)
	}
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("MAX_LENGTH", "lots")
	t.Setenv("RATE_LIMIT_BURST", "")
	t.Setenv("API_TOKEN_TTL", "forever")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.MaxLength != 128 {
		t.Errorf("MaxLength = %d, want 128", cfg.MaxLength)
	}
	if cfg.RateLimitBurst != 10 {
		t.Errorf("RateLimitBurst = %d, want 10", cfg.RateLimitBurst)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %v, want 24h", cfg.TokenTTL)
	}
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("API_TOKEN_SECRET", "")

	if _, err := Load(); err != ErrMissingTokenSecret {
		t.Errorf("Load() error = %v, want %v", err, ErrMissingTokenSecret)
	}

	t.Setenv("API_TOKEN_SECRET", "s3cret")
	if _, err := Load(); err != nil {
		t.Errorf("Load() unexpected error: %v", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
