package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgw4/cetools/internal/config"
	cerrors "github.com/lgw4/cetools/internal/errors"
)

// isolate points XDG_CONFIG_HOME at a temp dir so tests never touch the
// real user configuration.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoad_CreatesDefaultFile(t *testing.T) {
	dir := isolate(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.General.ExportFormat)
	assert.Equal(t, "traveller", cfg.Character.DefaultTemplate)
	assert.False(t, cfg.Dice.D66Unordered)

	_, err = os.Stat(filepath.Join(dir, "cetools", "config.toml"))
	assert.NoError(t, err, "load should create the config file")
}

func TestLoad_RoundTrip(t *testing.T) {
	isolate(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	require.NoError(t, cfg.Set("dice.d66_unordered", "true"))
	require.NoError(t, cfg.Set("character.default_template", "soldier"))
	require.NoError(t, cfg.Save())

	reloaded, err := config.Load()
	require.NoError(t, err)
	assert.True(t, reloaded.Dice.D66Unordered)
	assert.Equal(t, "soldier", reloaded.Character.DefaultTemplate)
}

func TestLoad_CorruptFileFallsBack(t *testing.T) {
	dir := isolate(t)

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cetools"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cetools", "config.toml"), []byte("not [valid toml"), 0o644))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.General.ExportFormat)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("CETOOLS_D66_UNORDERED", "true")
	t.Setenv("CETOOLS_REDIS_URL", "redis://localhost:6379/3")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.Dice.D66Unordered)
	assert.Equal(t, "redis://localhost:6379/3", cfg.Storage.RedisURL)
}

func TestGetSet(t *testing.T) {
	cfg := config.Default()

	for _, key := range config.Keys() {
		_, err := cfg.Get(key)
		assert.NoError(t, err, key)
	}

	require.NoError(t, cfg.Set("general.export_format", "csv"))
	v, err := cfg.Get("general.export_format")
	require.NoError(t, err)
	assert.Equal(t, "csv", v)

	err = cfg.Set("dice.d66_unordered", "maybe")
	require.Error(t, err)
	assert.True(t, cerrors.IsInvalidArgument(err))

	_, err = cfg.Get("no.such_key")
	assert.True(t, cerrors.IsNotFound(err))

	err = cfg.Set("no.such_key", "x")
	assert.True(t, cerrors.IsNotFound(err))
}
