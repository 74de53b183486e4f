package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the app-wide settings read from the environment.
type Config struct {
	// DBPath overrides the default XDG database location.
	DBPath string `env:"ATTUNE_DB"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"ATTUNE_LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
