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

	assert.Equal(t, "matrimony-matcher", cfg.App.Name)
	assert.Equal(t, "data/profiles.json", cfg.Data.ProfilesPath)
	assert.Equal(t, "data/tables", cfg.Data.TablesDir)
	assert.Equal(t, time.Second, cfg.Engine.SnapshotTTL)
	assert.Equal(t, ":9464", cfg.Metrics.Listen)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MATCHER_LOGGING_LEVEL", "debug")
	t.Setenv("MATCHER_DATA_TABLES_DIR", "/srv/tables")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/srv/tables", cfg.Data.TablesDir)
}

func TestLoad_RejectsUnknownLogLevel(t *testing.T) {
	t.Setenv("MATCHER_LOGGING_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestLoad_EnvironmentDrivesLogFormat(t *testing.T) {
	t.Setenv("APP_ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "json", cfg.Logging.Format)
}
