package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/minihs-lang/minihs/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesOnlyGivenFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minihs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("show_types: true\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.ShowTypes)
	assert.Equal(t, config.Default().Prompt, cfg.Prompt)
	assert.True(t, cfg.Color)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
