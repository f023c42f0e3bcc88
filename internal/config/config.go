// Package config loads server configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds every runtime setting. Defaults suit local development; the
// JWT secret must be overridden in any real deployment.
type Config struct {
	HTTPAddr  string `env:"POINTHUB_HTTP_ADDR" envDefault:":8080"`
	DBPath    string `env:"POINTHUB_DB_PATH" envDefault:"./data/pointhub.db"`
	JWTSecret string `env:"POINTHUB_JWT_SECRET" envDefault:"dev-secret-change-me"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
