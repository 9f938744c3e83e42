package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HOST", "PORT", "CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_FORMAT", "PROVIDER_TIMEOUT_SECONDS", "RANDOM_SEED", "METHANE_BASE_URL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 5*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, int64(0), cfg.RandomSeed)
	assert.Empty(t, cfg.MethaneBaseURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9001")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("PROVIDER_TIMEOUT_SECONDS", "12")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("LOG_FORMAT", "TEXT")
	t.Setenv("METHANE_BASE_URL", "https://methane.internal.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9001", cfg.Port)
	assert.Equal(t, "https://methane.internal.example", cfg.MethaneBaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 12*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadIgnoresBadNumbers(t *testing.T) {
	t.Setenv("PROVIDER_TIMEOUT_SECONDS", "not-a-number")
	t.Setenv("RANDOM_SEED", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, int64(0), cfg.RandomSeed)
}
