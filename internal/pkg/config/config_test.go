package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "GOTENBERG_URL", "ACTS_CACHE_TTL", "ACTS_MAX_BODY_BYTES", "ACTS_CITY"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.Gotenberg.URL)
	assert.Equal(t, 10*time.Minute, cfg.Acts.CacheTTL)
	assert.Equal(t, int64(32<<20), cfg.MaxBodyBytes)
	assert.Equal(t, 400, cfg.Acts.ImageMaxWidth)
	assert.Equal(t, 300, cfg.Acts.ImageMaxHeight)
	assert.Empty(t, cfg.Acts.City)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GOTENBERG_URL", "http://gotenberg:3000")
	t.Setenv("ACTS_CACHE_TTL", "30s")
	t.Setenv("ACTS_CITY", "Москва")
	t.Setenv("CIRCUIT_BREAKER_FAILURE_THRESHOLD", "7")
	t.Setenv("GOTENBERG_RETRY_BACKOFF_FACTOR", "1.5")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://gotenberg:3000", cfg.Gotenberg.URL)
	assert.Equal(t, 30*time.Second, cfg.Acts.CacheTTL)
	assert.Equal(t, "Москва", cfg.Acts.City)
	assert.Equal(t, 7, cfg.Breaker.FailureThreshold)
	assert.InDelta(t, 1.5, cfg.Gotenberg.RetryBackoff, 1e-9)
}

func TestGetEnvHelpers_InvalidValues(t *testing.T) {
	t.Setenv("X_INT", "abc")
	t.Setenv("X_DUR", "soon")
	t.Setenv("X_FLOAT", "half")

	assert.Equal(t, 5, getEnvIntWithDefault("X_INT", 5))
	assert.Equal(t, time.Second, getEnvDurationWithDefault("X_DUR", time.Second))
	assert.InDelta(t, 0.5, getEnvFloatWithDefault("X_FLOAT", 0.5), 1e-9)
}
