package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/bfb/corebank/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ACCOUNTS_DATABASE_URL", "")
	t.Setenv("TRANSACTION_API_KEY", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.AccountsDatabaseURL == "" {
		t.Fatalf("expected default accounts database URL to be set")
	}

	if cfg.TransactionAPIKey != "" {
		t.Fatalf("expected API key default to be empty, got %q", cfg.TransactionAPIKey)
	}

	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default HTTP port 8080, got %s", cfg.HTTPPort)
	}

	if cfg.RetryMaxAttempts != 3 || cfg.RetryBaseDelay != 500*time.Millisecond {
		t.Fatalf("expected default retry policy 3/500ms, got %d/%s", cfg.RetryMaxAttempts, cfg.RetryBaseDelay)
	}

	if !cfg.IsDevelopment() {
		t.Fatalf("expected development mode by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ACCOUNTS_DATABASE_URL", "postgres://example")
	t.Setenv("MONGO_URL", "mongodb://example:27017")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("TRANSACTION_API_TIMEOUT", "45s")
	t.Setenv("CACHE_ENTITY_TTL", "2m")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.AccountsDatabaseURL != "postgres://example" {
		t.Fatalf("expected custom accounts database URL, got %s", cfg.AccountsDatabaseURL)
	}

	if cfg.MongoURL != "mongodb://example:27017" {
		t.Fatalf("expected custom mongo URL, got %s", cfg.MongoURL)
	}

	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected HTTP port override, got %s", cfg.HTTPPort)
	}

	if cfg.TransactionAPITimeout != 45*time.Second {
		t.Fatalf("expected API timeout override, got %s", cfg.TransactionAPITimeout)
	}

	if cfg.CacheEntityTTL != 2*time.Minute {
		t.Fatalf("expected cache TTL override, got %s", cfg.CacheEntityTTL)
	}

	if cfg.IsDevelopment() {
		t.Fatalf("expected production mode")
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	original := os.Getenv("HTTP_READ_TIMEOUT")
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")
	t.Cleanup(func() {
		t.Setenv("HTTP_READ_TIMEOUT", original)
	})

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
