package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "development.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return dir
}

func TestLoadFrom_AppliesFileAndDefaults(t *testing.T) {
	dir := writeConfigFile(t, `
log_level: debug
bot:
  token: "123456:test-token"
intent:
  backend: memory
`)

	cfg, v, err := LoadFrom(dir)
	require.NoError(t, err)
	require.NotNil(t, v)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "123456:test-token", cfg.Bot.Token)
	assert.Equal(t, "memory", cfg.Intent.Backend)

	// Defaults fill everything the file omits.
	assert.Equal(t, "https://api.aevo.xyz", cfg.Market.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Market.Timeout)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Zero(t, cfg.Intent.TTL)
}

func TestLoadFrom_MissingTokenFailsValidation(t *testing.T) {
	dir := writeConfigFile(t, `
log_level: info
`)

	_, _, err := LoadFrom(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestLoadFrom_RejectsUnknownIntentBackend(t *testing.T) {
	dir := writeConfigFile(t, `
bot:
  token: "123456:test-token"
intent:
  backend: postgres
`)

	_, _, err := LoadFrom(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate config")
}

func TestLoadFrom_MissingFileFails(t *testing.T) {
	_, _, err := LoadFrom(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}
