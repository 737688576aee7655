package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8088", cfg.App.Port)
	assert.Equal(t, 4, cfg.Squad.DefaultMinSize)
	assert.Equal(t, 6, cfg.Squad.DefaultMaxSize)
	assert.Equal(t, 10, cfg.Squad.MaxCapacity)
	assert.False(t, cfg.StorageEnabled())
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_TX_ISOLATION", "read_committed")
	t.Setenv("SQUAD_DEFAULT_MIN_SIZE", "2")
	t.Setenv("SQUAD_DEFAULT_MAX_SIZE", "5")
	t.Setenv("STORAGE_BUCKET", "logos")
	t.Setenv("STORAGE_ACCESS_KEY_ID", "key")
	t.Setenv("STORAGE_SECRET_ACCESS_KEY", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "read_committed", cfg.DB.TxIsolation)
	assert.Equal(t, 2, cfg.Squad.DefaultMinSize)
	assert.Equal(t, 5, cfg.Squad.DefaultMaxSize)
	assert.True(t, cfg.StorageEnabled())
}

func TestLoadConfigRejectsInvertedSizes(t *testing.T) {
	t.Setenv("SQUAD_DEFAULT_MIN_SIZE", "7")
	t.Setenv("SQUAD_DEFAULT_MAX_SIZE", "6")

	_, err := LoadConfig()
	assert.Error(t, err)
}
