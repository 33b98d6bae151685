// Package config holds the process-level settings read from MATHCOACH_*
// environment variables. LLM provider credentials are resolved separately
// by the llm package, and InfluxDB telemetry by the telemetry package.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the application configuration.
type Config struct {
	// DBPath overrides the default event database location.
	DBPath string `env:"DB"`

	// ProfileDir overrides the default student profile directory.
	ProfileDir string `env:"PROFILES"`

	// CatalogPath points at a custom objectives JSON document. Empty
	// means the embedded catalog.
	CatalogPath string `env:"CATALOG"`

	// MemoryEnabled turns the Weaviate session memory on.
	MemoryEnabled bool `env:"MEMORY_ENABLED"`

	// MemoryHost and MemoryScheme locate the Weaviate instance.
	MemoryHost   string `env:"MEMORY_HOST" envDefault:"localhost:8080"`
	MemoryScheme string `env:"MEMORY_SCHEME" envDefault:"http"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Prefix: "MATHCOACH_"})
	if err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}
	return cfg, nil
}
