package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"rsnake/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, types.Grid{Width: 20, Height: 15}, cfg.GridDims())
	assert.Equal(t, 120*time.Millisecond, cfg.TickInterval())
	assert.Equal(t, 60, cfg.Screen.TargetFPS)
	assert.Equal(t, 100, cfg.Headless.Games)
	assert.Empty(t, cfg.Telemetry.OutputDir)
	assert.Equal(t, types.Right, cfg.StartFacing())
}

func TestStartDirection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("game:\n  start_direction: Down\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, types.Down, cfg.StartFacing())

	require.NoError(t, os.WriteFile(path, []byte("game:\n  start_direction: sideways\n"), 0644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "start_direction")
}

func TestLoadMergesUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  width: 8\ngame:\n  seed: 42\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Grid.Width)
	assert.Equal(t, 15, cfg.Grid.Height)
	assert.Equal(t, uint64(42), cfg.Game.Seed)
}

func TestLoadRejectsInvalidGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  width: 0\n"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, types.ErrInvalidGrid)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid: [1, 2"), 0644))
	_, err = Load(path)
	assert.Error(t, err)

	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Tick.IntervalMS = 0
	assert.Error(t, cfg.Validate())
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	cfg.Grid.Width = 33

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
