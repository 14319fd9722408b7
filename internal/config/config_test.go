package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/duckpond/internal/core/observability/log"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, OutputStdout, cfg.Output.Mode)
	assert.Empty(t, cfg.Roster.Path)
	assert.Equal(t, log.LevelInfo, cfg.LogLevel())
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "duckpond.yaml")
	content := `
log:
  level: debug
  format: json
roster:
  path: ponds/default.yaml
output:
  mode: bus
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, log.LevelDebug, cfg.LogLevel())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "ponds/default.yaml", cfg.Roster.Path)
	assert.Equal(t, OutputBus, cfg.Output.Mode)

	t.Setenv("DUCKPOND_LOG_LEVEL", "warn")
	t.Setenv("DUCKPOND_ROSTER_PATH", "other.yaml")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, cfg.LogLevel())
	assert.Equal(t, "other.yaml", cfg.Roster.Path)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("DUCKPOND_OUTPUT_MODE", "carrier-pigeon")
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Log:    LogConfig{Level: "info", Format: "xml"},
		Output: OutputConfig{Mode: OutputStdout},
	}
	assert.Error(t, cfg.Validate())

	cfg.Log.Format = "json"
	assert.NoError(t, cfg.Validate())

	cfg.Log.Level = "chatty"
	assert.Error(t, cfg.Validate())
}
