package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Server.Backend)
	assert.Equal(t, "alpha", cfg.Sorter.Mode)
	assert.True(t, cfg.Sorter.Verbose)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 30, cfg.Database.TimeoutSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SORTER_MODE", "count")
	t.Setenv("SORTER_VERBOSE", "false")
	t.Setenv("SERVER_BACKEND", "database")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "count", cfg.Sorter.Mode)
	assert.False(t, cfg.Sorter.Verbose)
	assert.Equal(t, "database", cfg.Server.Backend)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SORTER_SORT_WITHOUT_SNEAK=true\nLOG_FORMAT=console\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("SORTER_SORT_WITHOUT_SNEAK")
		os.Unsetenv("LOG_FORMAT")
	})

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.True(t, cfg.Sorter.SortWithoutSneak)
	assert.Equal(t, "console", cfg.Log.Format)
}
