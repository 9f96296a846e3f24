// Package config provides environment-based configuration for the analyzer.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds runtime configuration for the server and CLI. All values come
// from environment variables; flags may override individual fields afterwards.
type Config struct {
	Port         int    // HTTP listen port
	TaxonomyPath string // optional JSON file overriding the embedded role tables
	GeminiAPIKey string // optional, enables the grammar checker
	JSONLogs     bool   // emit JSON instead of console logs
	Debug        bool   // enable debug-level logging
	AuthRequired bool   // require a bearer token on analysis endpoints
}

// Load reads configuration from environment variables, applying defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnvInt("PORT", 8080),
		TaxonomyPath: os.Getenv("TAXONOMY_PATH"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		JSONLogs:     getEnvBool("JSON_LOGS", false),
		Debug:        getEnvBool("DEBUG", false),
		AuthRequired: getEnvBool("AUTH_REQUIRED", false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("config error: port must be in 1-65535, got %d", c.Port)
	}
	if c.TaxonomyPath != "" {
		if _, err := os.Stat(c.TaxonomyPath); err != nil {
			return fmt.Errorf("config error: taxonomy file %s: %w", c.TaxonomyPath, err)
		}
	}
	if c.AuthRequired {
		if _, err := NewJWTConfig(); err != nil {
			return fmt.Errorf("config error: auth required but %w", err)
		}
	}
	return nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
