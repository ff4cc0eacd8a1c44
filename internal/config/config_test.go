package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "bookshelf", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTPAddr())
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "bookshelf_session", cfg.Session.CookieName)
	assert.Equal(t, 720, cfg.Session.TTLMinute)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "8081")
	t.Setenv("MYSQL_USER", "books")
	t.Setenv("MYSQL_PASSWORD", "secret")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("SESSION_TTL_MINUTE", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.App.Port)
	assert.True(t, cfg.Session.CookieSecure)
	assert.Equal(t, 30, cfg.Session.TTLMinute)
	assert.Equal(t, "books:secret@tcp(127.0.0.1:3306)/bookshelf?parseTime=true&loc=Local&charset=utf8mb4", cfg.MySQLDSN())
}

func TestEnvOverrideIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CONFIG_FILE", "does-not-exist.toml")
	t.Setenv("APP_PORT", "not-a-port")
	t.Setenv("SESSION_COOKIE_SECURE", "definitely")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.App.Port)
	assert.False(t, cfg.Session.CookieSecure)
}
