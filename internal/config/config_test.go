package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cuelist.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, FormatText, cfg.Log.Format)
	assert.Empty(t, cfg.Log.File)
	assert.False(t, cfg.OSC.Enabled)
	assert.Equal(t, DefaultOSCPort, cfg.OSC.Port)
	assert.Equal(t, "/cuelist", cfg.OSC.Prefix)
	assert.Equal(t, "cue", cfg.Editor.DefaultLabel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
  file: /tmp/cuelist.log
osc:
  enabled: true
  host: 10.0.0.5
editor:
  seed: 3
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/cuelist.log", cfg.Log.File)
	assert.Equal(t, FormatText, cfg.Log.Format, "unset keys keep defaults")
	assert.True(t, cfg.OSC.Enabled)
	assert.Equal(t, "10.0.0.5", cfg.OSC.Host)
	assert.Equal(t, DefaultOSCPort, cfg.OSC.Port)
	assert.Equal(t, 3, cfg.Editor.Seed)
	assert.Equal(t, "cue", cfg.Editor.DefaultLabel)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "log: [unterminated"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "loud"
	cfg.Log.Format = "xml"
	cfg.OSC.Enabled = true
	cfg.OSC.Host = ""
	cfg.OSC.Port = 70000
	cfg.OSC.Prefix = "cuelist"
	cfg.Editor.Seed = -1

	err := cfg.Validate()
	require.Error(t, err)

	for _, field := range []string{"log.level", "log.format", "osc.host", "osc.port", "osc.prefix", "editor.seed"} {
		assert.Contains(t, err.Error(), field)
	}
}

func TestValidate_OSCDisabledSkipsOSCChecks(t *testing.T) {
	cfg := Default()
	cfg.OSC.Port = 0
	cfg.OSC.Prefix = ""

	assert.NoError(t, cfg.Validate())
}
