package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MemoryHost != "localhost:8080" {
		t.Errorf("memory host = %q", cfg.MemoryHost)
	}
	if cfg.MemoryScheme != "http" {
		t.Errorf("memory scheme = %q", cfg.MemoryScheme)
	}
	if cfg.MemoryEnabled {
		t.Error("memory should default to disabled")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MATHCOACH_DB", "/tmp/events.db")
	t.Setenv("MATHCOACH_PROFILES", "/tmp/profiles")
	t.Setenv("MATHCOACH_CATALOG", "/tmp/objectives.json")
	t.Setenv("MATHCOACH_MEMORY_ENABLED", "true")
	t.Setenv("MATHCOACH_MEMORY_HOST", "weaviate:9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/events.db" {
		t.Errorf("db path = %q", cfg.DBPath)
	}
	if cfg.ProfileDir != "/tmp/profiles" {
		t.Errorf("profile dir = %q", cfg.ProfileDir)
	}
	if cfg.CatalogPath != "/tmp/objectives.json" {
		t.Errorf("catalog path = %q", cfg.CatalogPath)
	}
	if !cfg.MemoryEnabled {
		t.Error("memory should be enabled")
	}
	if cfg.MemoryHost != "weaviate:9000" {
		t.Errorf("memory host = %q", cfg.MemoryHost)
	}
}
