package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ".fable-cache", cfg.CacheDir)
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fable.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"out_dir = \"build\"\ncache_dir = \"/tmp/cache\"\nquiet = true\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "build", cfg.OutDir)
	assert.Equal(t, "/tmp/cache", cfg.CacheDir)
	assert.True(t, cfg.Quiet)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fable.toml")
	require.NoError(t, os.WriteFile(path, []byte("out_dir = \"build\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "build", cfg.OutDir)
	assert.Equal(t, ".fable-cache", cfg.CacheDir, "unset keys keep their defaults")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fable.toml")
	require.NoError(t, os.WriteFile(path, []byte("out_dir = [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
