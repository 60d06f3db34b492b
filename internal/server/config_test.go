package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "localhost", cfg.Server.Address)
	assert.Equal(t, 8090, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 300, cfg.Server.StrengthTrials)
	assert.Equal(t, 3000, cfg.Server.EquityTrials)
	assert.Equal(t, "localhost:8090", cfg.Server.Addr())
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	content := `
server {
  address         = "0.0.0.0"
  port            = 9000
  log_level       = "debug"
  strength_trials = 500
  equity_trials   = 10000
}
`
	path := writeConfig(t, content)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Address)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 500, cfg.Server.StrengthTrials)
	assert.Equal(t, 10000, cfg.Server.EquityTrials)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr())
}

func TestLoadConfigPartial(t *testing.T) {
	content := `
server {
  port = 9999
}
`
	path := writeConfig(t, content)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	// Unset fields fall back to defaults.
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Server.Address)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 300, cfg.Server.StrengthTrials)
	assert.Equal(t, 3000, cfg.Server.EquityTrials)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := writeConfig(t, `server { port = `)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
