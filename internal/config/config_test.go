package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "HazardWatch", cfg.App.Name)
	assert.Equal(t, 4000, cfg.App.Port)
	assert.False(t, cfg.App.IsProduction())

	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "hazardwatch", cfg.Database.Database)
	assert.Equal(t, 10*time.Second, cfg.Database.ConnectTimeout)

	assert.Equal(t, "./uploads", cfg.Storage.BasePath)
	assert.Equal(t, int64(10*1024*1024), cfg.Storage.MaxFileSize)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "8080")
	t.Setenv("MONGODB_DATABASE", "hazards_test")
	t.Setenv("STORAGE_MAX_FILE_SIZE", "1048576")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "hazards_test", cfg.Database.Database)
	assert.Equal(t, int64(1048576), cfg.Storage.MaxFileSize)
}

func TestLoad_IgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4000, cfg.App.Port)
}
