package config_test

import (
	"testing"

	"logdiff/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "timed-query", cfg.Compare.Marker)
	assert.False(t, cfg.Compare.Timestamps)
	assert.Equal(t, ".", cfg.Compare.OutputDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("COMPARE_MARKER", "QUERY_MS")
	t.Setenv("COMPARE_TIMESTAMPS", "true")
	t.Setenv("COMPARE_OUTPUT_DIR", "/tmp/out")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "QUERY_MS", cfg.Compare.Marker)
	assert.True(t, cfg.Compare.Timestamps)
	assert.Equal(t, "/tmp/out", cfg.Compare.OutputDir)
	assert.Equal(t, "debug", cfg.Log.Level)
}
