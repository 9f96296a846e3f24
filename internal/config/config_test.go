package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "TAXONOMY_PATH", "GEMINI_API_KEY", "JSON_LOGS", "DEBUG", "AUTH_REQUIRED"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.JSONLogs)
	assert.False(t, cfg.Debug)
	assert.False(t, cfg.AuthRequired)
	assert.Empty(t, cfg.TaxonomyPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	taxonomy := filepath.Join(t.TempDir(), "roles.json")
	require.NoError(t, os.WriteFile(taxonomy, []byte("{}"), 0o600))

	t.Setenv("PORT", "9090")
	t.Setenv("TAXONOMY_PATH", taxonomy)
	t.Setenv("JSON_LOGS", "true")
	t.Setenv("DEBUG", "1")
	t.Setenv("AUTH_REQUIRED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, taxonomy, cfg.TaxonomyPath)
	assert.True(t, cfg.JSONLogs)
	assert.True(t, cfg.Debug)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{Port: 8080}, ""},
		{"port too low", Config{Port: 0}, "port"},
		{"port too high", Config{Port: 70000}, "port"},
		{"missing taxonomy file", Config{Port: 8080, TaxonomyPath: "/nonexistent/roles.json"}, "taxonomy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateAuthRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")

	cfg := Config{Port: 8080, AuthRequired: true}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "test-secret")
	assert.NoError(t, cfg.Validate())
}

func TestNewJWTConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "")
	os.Unsetenv("JWT_EXPIRATION_HOURS")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
	assert.Equal(t, 24.0, cfg.TokenTTL().Hours())
}

func TestNewJWTConfigErrors(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		os.Unsetenv("JWT_SECRET")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("non-numeric expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")
		t.Setenv("JWT_EXPIRATION_HOURS", "soon")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})

	t.Run("zero expiration", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s")
		t.Setenv("JWT_EXPIRATION_HOURS", "0")
		_, err := NewJWTConfig()
		assert.Error(t, err)
	})
}
