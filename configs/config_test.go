package config

import (
	"strings"
	"testing"
	"time"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.DB.Port != "5432" {
		t.Fatalf("expected default db port 5432, got %q", cfg.DB.Port)
	}
	if cfg.SessionTTL != 72*time.Hour {
		t.Fatalf("expected 72h session ttl, got %v", cfg.SessionTTL)
	}
	if cfg.Email.Enabled() {
		t.Fatal("expected email disabled without api key")
	}
}

func TestParseReadsPrefixedDBVars(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "pesu")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "pesuconnect")
	t.Setenv("DB_AUTO_MIGRATE", "true")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !cfg.DB.AutoMigrate {
		t.Fatal("expected auto migrate enabled")
	}
	dsn := cfg.DB.DSN()
	for _, want := range []string{"host=db.internal", "port=6543", "user=pesu", "password=secret", "dbname=pesuconnect"} {
		if !strings.Contains(dsn, want) {
			t.Fatalf("expected dsn to contain %q, got %q", want, dsn)
		}
	}
}

func TestParseError(t *testing.T) {
	t.Setenv("SESSION_TTL", "forever")

	_, err := Parse()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}
