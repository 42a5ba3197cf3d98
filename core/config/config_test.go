package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "nzsl.db", cfg.Database.Path)
	assert.Equal(t, 5, cfg.Fetch.MaxAttempts)
	assert.Equal(t, "https://signbank.nzsl.nz", cfg.Signbank.Host)
	assert.Equal(t, "1", cfg.Signbank.DatasetID)
	assert.Equal(t, "nzsl.dat", cfg.Build.DatFile)
	assert.Equal(t, 92, cfg.Images.ThumbnailHeight)
	assert.True(t, cfg.Build.DownloadAssets)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SIGNBANK_HOST", "https://staging.example.com")
	t.Setenv("SIGNBANK_USERNAME", "builder")
	t.Setenv("BUILD_DOWNLOAD_ASSETS", "false")
	t.Setenv("FETCH_MAX_ATTEMPTS", "2")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com", cfg.Signbank.Host)
	assert.Equal(t, "builder", cfg.Signbank.Username)
	assert.False(t, cfg.Build.DownloadAssets)
	assert.Equal(t, 2, cfg.Fetch.MaxAttempts)
}
