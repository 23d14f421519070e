package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "abook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "what do you want? ", cfg.Prompts.Command)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
	assert.True(t, cfg.Terminal.Color)
}

func TestLoadConfig_OverlaysFile(t *testing.T) {
	path := writeConfig(t, `
prompts:
  command: "> "
logging:
  level: debug
  file: /tmp/abook.log
terminal:
  color: false
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "> ", cfg.Prompts.Command)
	assert.Equal(t, DefaultPrompts().Name, cfg.Prompts.Name)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/tmp/abook.log", cfg.Logging.File)
	assert.False(t, cfg.Terminal.Color)
	assert.False(t, cfg.Terminal.Plain)
}

func TestLoadConfig_EmptyPromptFallsBack(t *testing.T) {
	path := writeConfig(t, "prompts:\n  search: \"\"\n")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultPrompts().Search, cfg.Prompts.Search)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeConfig(t, "prompts: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")

	_, err = LoadConfig(writeConfig(t, "logging:\n  level: loud\n"))
	assert.ErrorIs(t, err, ErrUnknownLogLevel)
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(LoggingConfig{Level: "info"})
	require.NoError(t, err)
	assert.NotNil(t, logger)

	path := filepath.Join(t.TempDir(), "abook.log")
	logger, err = newLogger(LoggingConfig{Level: "debug", File: path})
	require.NoError(t, err)
	logger.Debug("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)

	_, err = newLogger(LoggingConfig{Level: "loud", File: path})
	assert.ErrorIs(t, err, ErrUnknownLogLevel)
}
