package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "LOG_LEVEL",
		"ENV", "FARKLE_DICE_SEED", "FARKLE_MAX_PLAYERS",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	cfg, err := LoadFiles(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, uint64(0), cfg.DiceSeed)
	assert.Equal(t, 10, cfg.MaxPlayers)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.HistoryEnabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("ENV", "production")
	t.Setenv("FARKLE_DICE_SEED", "42")
	t.Setenv("FARKLE_MAX_PLAYERS", "4")

	cfg, err := LoadFiles()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, uint64(42), cfg.DiceSeed)
	assert.Equal(t, 4, cfg.MaxPlayers)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.HistoryEnabled())
}

func TestLoadDotenvFile(t *testing.T) {
	t.Setenv("FARKLE_DICE_SEED", "")
	require.NoError(t, os.Unsetenv("FARKLE_DICE_SEED"))
	t.Setenv("FARKLE_MAX_PLAYERS", "6")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("FARKLE_DICE_SEED=7\nFARKLE_MAX_PLAYERS=3\n"), 0o600))

	cfg, err := LoadFiles(path)
	require.NoError(t, err)

	// the file fills gaps but never overrides the environment
	assert.Equal(t, uint64(7), cfg.DiceSeed)
	assert.Equal(t, 6, cfg.MaxPlayers)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("FARKLE_MAX_PLAYERS", "0")
	_, err := LoadFiles()
	assert.Error(t, err)

	t.Setenv("FARKLE_MAX_PLAYERS", "ten")
	_, err = LoadFiles()
	assert.Error(t, err)
}
