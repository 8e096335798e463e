package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the veriflow CLI. Everything comes from
// the environment; flags override per-invocation where the CLI exposes them.
type Config struct {
	// DBPath is the SQLite store location. Empty means ~/.veriflow/veriflow.db.
	DBPath string `env:"VERIFLOW_DB"`
	// NoColor disables styled terminal output.
	NoColor bool `env:"VERIFLOW_NO_COLOR"`
	// LogUseCases enables structured logging of service use-case events to
	// stderr.
	LogUseCases bool `env:"VERIFLOW_LOG_USE_CASES"`
}

// Load parses configuration from environment variables and resolves the
// default database path.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".veriflow", "veriflow.db")
	}
	return cfg, nil
}
