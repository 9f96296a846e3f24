package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// JWTConfig holds settings for bearer-token validation on the API. Tokens are
// issued out of band; the server only needs the shared secret to verify them.
type JWTConfig struct {
	Secret          string
	ExpirationHours int
}

// NewJWTConfig reads JWT settings from the environment. JWT_SECRET is
// required; JWT_EXPIRATION_HOURS defaults to 24.
func NewJWTConfig() (*JWTConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	hours := 24
	if v := os.Getenv("JWT_EXPIRATION_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid JWT_EXPIRATION_HOURS: %w", err)
		}
		hours = n
	}

	cfg := &JWTConfig{Secret: secret, ExpirationHours: hours}
	if cfg.ExpirationHours < 1 {
		return nil, fmt.Errorf("JWT_EXPIRATION_HOURS must be at least 1, got %d", cfg.ExpirationHours)
	}
	return cfg, nil
}

// TokenTTL returns the configured token lifetime.
func (c *JWTConfig) TokenTTL() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}
