package config

import (
	"testing"
	"time"

	"deviceInventoryManagement/internal/db"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabasePath != db.DefaultPath {
		t.Fatalf("unexpected database path: %q", cfg.DatabasePath)
	}
	if cfg.SessionFile == "" {
		t.Fatalf("expected a default session file path")
	}
	if cfg.SessionTTL != 12*time.Hour {
		t.Fatalf("unexpected session ttl: %s", cfg.SessionTTL)
	}
	if cfg.Debug {
		t.Fatalf("expected debug off by default")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DEVINV_DATABASE", "/tmp/custom.sqlite")
	t.Setenv("DEVINV_DEBUG", "true")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabasePath != "/tmp/custom.sqlite" {
		t.Fatalf("env override ignored: %q", cfg.DatabasePath)
	}
	if !cfg.Debug {
		t.Fatalf("expected debug enabled from env")
	}
}

func TestString_MasksSecret(t *testing.T) {
	cfg := &Config{DatabasePath: "x.sqlite", JWTSecret: "topsecret"}
	s := cfg.String()
	if s == "" {
		t.Fatalf("empty string representation")
	}
	for i := 0; i+len("topsecret") <= len(s); i++ {
		if s[i:i+len("topsecret")] == "topsecret" {
			t.Fatalf("secret leaked in String(): %s", s)
		}
	}
}
