package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(body), 0o600))
	return dir
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	dir := writeConfig(t, `
port: "9090"
log:
  level: debug
db:
  path: /tmp/x.db
auth:
  token_ttl: 30m
translator:
  base_url: http://translator.local/
ratelimit:
  requests_per_minute: 5
  burst: 2
server:
  trusted_proxies: ["127.0.0.1", "10.0.0.0/8"]
`)
	t.Setenv("JWT_SECRET_KEY", "s3cret")
	t.Setenv("RAPIDAPI_KEY", "rapid")
	t.Setenv("PORT", "7070")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port, "env must override file")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/x.db", cfg.DB.Path)
	assert.Equal(t, "s3cret", cfg.Auth.SigningKey)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "http://translator.local", cfg.Translator.BaseURL)
	assert.Equal(t, "rapid", cfg.Translator.APIKey)
	assert.Equal(t, "google-translator9.p.rapidapi.com", cfg.Translator.Host)
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerMinute)
	assert.Equal(t, 2, cfg.RateLimit.Burst)
	assert.Equal(t, []string{"127.0.0.1", "10.0.0.0/8"}, cfg.Server.TrustedProxies)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "k")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 10*time.Second, cfg.Translator.Timeout)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Server.TrustedProxies)
}

func TestLoad_MissingSigningKey(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrMissingSigningKey)
}
