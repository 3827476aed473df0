package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 50*time.Millisecond, cfg.FrameDuration())
	require.Equal(t, 10, cfg.FrameCount)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
frame_duration_ms: 20
keys:
  m: R2
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 20, cfg.FrameDurationMs)
	require.Equal(t, 10, cfg.FrameCount) // untouched default
	require.Equal(t, "R2", cfg.Keys["m"])
}

func TestLoadRejectsBadRanges(t *testing.T) {
	_, err := Load(writeConfig(t, "frame_duration_ms: 0\n"))
	require.ErrorContains(t, err, "frame_duration_ms")

	_, err = Load(writeConfig(t, "frame_count: 500\n"))
	require.ErrorContains(t, err, "frame_count")
}

func TestLoadRejectsBadKeyBindings(t *testing.T) {
	_, err := Load(writeConfig(t, "keys:\n  m: Q7\n"))
	require.ErrorContains(t, err, `key "m"`)

	_, err = Load(writeConfig(t, "keys:\n  mm: R\n"))
	require.ErrorContains(t, err, "single character")
}

func TestLoadRejectsBadYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "frame_count: [oops\n"))
	require.ErrorContains(t, err, "failed to parse YAML")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
