package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCellWidthPx, cfg.CellWidthPx)
	assert.Equal(t, DefaultDateLayout, cfg.DateLayout)
	assert.Equal(t, DefaultLogFile(), cfg.LogFile)
	assert.True(t, cfg.Mouse)
	assert.True(t, cfg.WatchConfig)
	assert.False(t, cfg.Debug)
	assert.Empty(t, cfg.File)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dash.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cell_width_px: 10\ndebug: true\nmouse: false\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.CellWidthPx)
	assert.True(t, cfg.Debug)
	assert.False(t, cfg.Mouse)
	assert.Equal(t, path, cfg.File)
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	t.Setenv("POSDASH_CELL_WIDTH_PX", "12")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.CellWidthPx)
}

func TestLoadNonPositiveCellWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cell_width_px: 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultCellWidthPx, cfg.CellWidthPx)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cell_width_px: [\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDirectoryHonoursXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "posdash"), Directory())
}
