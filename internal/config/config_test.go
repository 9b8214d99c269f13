package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "civic-voice-api", cfg.App.Name)
	assert.Equal(t, 30, cfg.Auth.TokenTTLDays)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.False(t, cfg.App.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("AUTH_TOKEN_TTL_DAYS", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.App.Port)
	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 7, cfg.Auth.TokenTTLDays)
}

func TestDerivedValues(t *testing.T) {
	app := AppConfig{Host: "0.0.0.0", Port: "3000", RequestTimeoutSeconds: 15}
	assert.Equal(t, "0.0.0.0:3000", app.Addr())
	assert.Equal(t, 15*time.Second, app.RequestTimeout())

	assert.Equal(t, 30*time.Second, RedisConfig{}.FeedTTL())
	assert.Equal(t, time.Minute, RedisConfig{FeedTTLSec: 60}.FeedTTL())
}
