package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSettings_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	settings, err := openSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "p5-ref.json", settings.Get().InputPath)
	assert.Equal(t, path, settings.Path())
}

func TestOpenSettings_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[input]\npath = \"docs/ref.json\"\n"), 0o600))

	settings, err := openSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "docs/ref.json", settings.Get().InputPath)
}

func TestOpenSettings_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [toml"), 0o600))

	_, err := openSettings(path)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
