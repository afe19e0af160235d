package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	store, err := NewConfigStore(path)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, path, store.Path())

	// Nothing is written until a value is set.
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestNewConfigStore_DefaultPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("Cannot determine home directory")
	}

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".refslim", "config.toml"), store.Path())
}

func TestNewConfigStore_ReadsNestedTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[input]
path = "data/p5-ref.json"

[output]
path = "data/p5-ref-slim.json"
ascii_only = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	store, err := NewConfigStore(path)

	require.NoError(t, err)
	assert.Equal(t, "data/p5-ref.json", store.GetString("input.path"))
	assert.Equal(t, "data/p5-ref-slim.json", store.GetString("output.path"))
	assert.True(t, store.GetBool("output.ascii_only"))
}

func TestNewConfigStore_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output\npath = "), 0600))

	store, err := NewConfigStore(path)

	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestConfigStore_SetPersistsAsTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	store, err := NewConfigStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set("output.path", "slim.json"))
	require.NoError(t, store.Set("output.ascii_only", true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[output]")

	reloaded, err := NewConfigStore(path)
	require.NoError(t, err)
	assert.Equal(t, "slim.json", reloaded.GetString("output.path"))
	assert.True(t, reloaded.GetBool("output.ascii_only"))
}

func TestConfigStore_TypeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\nascii_only = \"yes\"\npath = 3\n"), 0600))

	store, err := NewConfigStore(path)
	require.NoError(t, err)

	assert.False(t, store.GetBool("output.ascii_only"))
	assert.Equal(t, "", store.GetString("output.path"))
	assert.Equal(t, "", store.GetString("missing"))

	val, ok := store.Get("output.path")
	assert.True(t, ok)
	assert.EqualValues(t, 3, val)
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"input":  map[string]any{"path": "a.json"},
		"output": map[string]any{"path": "b.json", "ascii_only": false},
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{
		"input.path":        "a.json",
		"output.path":       "b.json",
		"output.ascii_only": false,
	}, flat)

	assert.Equal(t, nested, nestMap(flat))
}
