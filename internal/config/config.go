package config

import (
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

var ErrMissingTokenSecret = errors.New("API_TOKEN_SECRET must be set in production environment")

type Config struct {
	Port      string
	Env       string
	LogLevel  string
	LogFormat string

	DefaultLength int
	MaxLength     int

	RateLimitRPS   float64
	RateLimitBurst int

	TokenSecret string
	TokenTTL    time.Duration

	ClipboardClearAfter time.Duration
}

// Load reads the configuration from the environment, falling back to
// defaults for anything unset or unparsable.
func Load() (Config, error) {
	cfg := Config{
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFormat:           getEnv("LOG_FORMAT", "text"),
		DefaultLength:       getEnvInt("DEFAULT_LENGTH", 12),
		MaxLength:           getEnvInt("MAX_LENGTH", 128),
		RateLimitRPS:        getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst:      getEnvInt("RATE_LIMIT_BURST", 10),
		TokenSecret:         os.Getenv("API_TOKEN_SECRET"),
		TokenTTL:            getEnvDuration("API_TOKEN_TTL", 24*time.Hour),
		ClipboardClearAfter: getEnvDuration("CLIPBOARD_CLEAR_AFTER", 30*time.Second),
	}

	if cfg.Env == "production" && cfg.TokenSecret == "" {
		return cfg, ErrMissingTokenSecret
	}

	return cfg, nil
}

// SetupLogger installs the default slog logger described by cfg.
func SetupLogger(cfg Config) {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}

	var h slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(h))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		slog.Warn("invalid number in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("invalid duration in environment, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
