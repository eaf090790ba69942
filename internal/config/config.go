// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Clinical fallback defaults, applied once at record construction or
// quick-assessment intake rather than scattered across per-field lookups.
const (
	// DefaultDiabetes is used when the wizard never collected a diabetes
	// flag (the two-page flow does not ask for it).
	DefaultDiabetes = 0
	// DefaultHeartRate is substituted when recommendations are generated
	// for a session that carries no heart-rate value at all. 60 sits on
	// the normal boundary so the absent value triggers no tip.
	DefaultHeartRate = 60
	// DefaultRisk is the risk flag assumed when the recommendation page is
	// visited before any assessment ran.
	DefaultRisk = 0
)

// Config holds all application configuration.
type Config struct {
	Port        string
	DBPath      string
	ModelPath   string // optional pretrained model artifact; empty disables it
	FrontendURL string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", "./data/heart.db"),
		ModelPath:   getEnv("MODEL_PATH", ""),
		FrontendURL: getEnv("FRONTEND_URL", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
