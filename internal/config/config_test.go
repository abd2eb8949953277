package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{"APP_ENV", "PORT", "DATABASE_URL", "JWT_SECRET", "ENCRYPTION_SECRET",
		"LOG_LEVEL", "LOG_FILE", "DB_MAX_OPEN_CONNS", "ALLOWED_ORIGINS", "DISPLAY_TZ"} {
		t.Setenv(k, "")
	}
}

func Test_Load_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 10, cfg.DBMaxOpenConns)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.UTC, cfg.DisplayLocation)
}

func Test_Load_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_MAX_OPEN_CONNS", "3")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("DISPLAY_TZ", "Europe/Lisbon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3, cfg.DBMaxOpenConns)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, "Europe/Lisbon", cfg.DisplayLocation.String())
}

func Test_Load_Errors(t *testing.T) {
	clearEnv(t)
	_, err := Load()
	assert.EqualError(t, err, "JWT_SECRET is required")

	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_MAX_OPEN_CONNS", "zero")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("DB_MAX_OPEN_CONNS", "")
	t.Setenv("DISPLAY_TZ", "Mars/Olympus")
	_, err = Load()
	assert.Error(t, err)
}
