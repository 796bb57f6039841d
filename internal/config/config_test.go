package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("PORT", "")
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("LIST_CACHE_TTL", "")

	cfg := LoadConfig()
	if cfg.Port != "8000" {
		t.Fatalf("expected port 8000, got %s", cfg.Port)
	}
	if cfg.DatabaseName != "grain_business" {
		t.Fatalf("unexpected database name %s", cfg.DatabaseName)
	}
	if cfg.StoreBackend != "mongo" {
		t.Fatalf("unexpected backend %s", cfg.StoreBackend)
	}
	if cfg.ListCacheTTL != 0 {
		t.Fatalf("expected cache disabled, got %s", cfg.ListCacheTTL)
	}
	if cfg.DatabaseURLSet() {
		t.Fatal("expected DATABASE_URL unset")
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("PORT", "9090")
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("LIST_CACHE_TTL", "30s")

	cfg := LoadConfig()
	if !cfg.DatabaseURLSet() || cfg.Port != "9090" || cfg.StoreBackend != "memory" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.ListCacheTTL != 30*time.Second {
		t.Fatalf("expected 30s, got %s", cfg.ListCacheTTL)
	}
}

func TestInvalidCacheTTLFallsBack(t *testing.T) {
	t.Setenv("LIST_CACHE_TTL", "soon")
	cfg := LoadConfig()
	if cfg.ListCacheTTL != 0 {
		t.Fatalf("expected fallback 0, got %s", cfg.ListCacheTTL)
	}
	if len(cfg.Notes) == 0 || !strings.Contains(cfg.Notes[len(cfg.Notes)-1], "LIST_CACHE_TTL") {
		t.Fatalf("expected a note about LIST_CACHE_TTL, got %v", cfg.Notes)
	}
}

func TestLoadConfigReadsLogModeFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_MODE=production\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// t.Setenv restaura el valor original; Unsetenv deja que godotenv lo cargue
	t.Setenv("LOG_MODE", "")
	os.Unsetenv("LOG_MODE")

	cfg := LoadConfig()
	if cfg.LogMode != "production" {
		t.Fatalf("expected LOG_MODE from .env, got %q", cfg.LogMode)
	}
	if len(cfg.Notes) == 0 || !strings.Contains(cfg.Notes[0], ".env file loaded") {
		t.Fatalf("expected .env load note, got %v", cfg.Notes)
	}
}
