package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 50.0, cfg.Chopper.MaxHSpeed)
	assert.Equal(t, 25.0, cfg.Chopper.MaxVSpeed)
	assert.Equal(t, 0.8, cfg.Chopper.SpeedCrashFactor)
	assert.Equal(t, 16, cfg.Chopper.Capacity)
	assert.Equal(t, 7.0, cfg.Chopper.CrashDuration)
	assert.Equal(t, 3, cfg.Game.Lives)
	assert.Len(t, cfg.World.Prisons, 4)
	assert.Equal(t, 32, cfg.TotalPrisoners())
	assert.InDelta(t, 40.0, cfg.CrashSpeed(), 1e-9)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nachtmission.yaml")
	body := `
world:
  ceiling: 55
  prisons:
    - x: -50
      captives: 3
    - x: -150
      captives: 2
chopper:
  capacity: 4
game:
  lives: 5
log:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 55.0, cfg.World.Ceiling)
	assert.Equal(t, 5, cfg.TotalPrisoners())
	assert.Equal(t, 4, cfg.Chopper.Capacity)
	assert.Equal(t, 5, cfg.Game.Lives)
	assert.Equal(t, "debug", cfg.Log.Level)
	// untouched keys keep defaults
	assert.Equal(t, 50.0, cfg.Chopper.MaxHSpeed)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/nachtmission.toml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestLoad_InvalidGeometry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"world": {"ground": 80}}`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestValidate_PrisonOutsideEnemyTerritory(t *testing.T) {
	cfg := Default()
	cfg.World.Prisons = []Prison{{X: cfg.World.LandingPadX, Captives: 2}}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestWorldTerrain(t *testing.T) {
	w := Default().World

	assert.True(t, w.InEnemyTerritory(w.LeftRiverBoundary-1))
	assert.False(t, w.InEnemyTerritory(w.LandingPadX))
	assert.True(t, w.OverRiver((w.LeftRiverBoundary+w.RightRiverBoundary)/2))
	assert.Equal(t, w.RiverBedY, w.TerrainHeight((w.LeftRiverBoundary+w.RightRiverBoundary)/2))
	assert.Equal(t, w.TerrainY, w.TerrainHeight(w.LandingPadX))
}
