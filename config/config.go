// Package config loads process configuration from the environment, with an
// optional .env file for development.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Config carries everything the process needs at startup.
type Config struct {
	DatabasePath string
	LogLevel     string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first when present; a missing file is not an error.
func Load() *Config {
	_ = godotenv.Load()
	cfg := &Config{
		DatabasePath: "rentals.db",
		LogLevel:     "info",
	}
	if v := os.Getenv("RENTALS_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("RENTALS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}

// Logger builds a structured logger at the configured level.
func (c *Config) Logger() (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", c.LogLevel, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	return zc.Build()
}
