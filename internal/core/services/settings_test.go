package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/refslim/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/refslim/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, domain.DefaultSettings(), service.Get())
}

func TestSettingsService_Get_NilStore(t *testing.T) {
	service := NewSettingsService(nil)

	assert.Equal(t, domain.DefaultSettings(), service.Get())
	assert.Equal(t, "", service.Path())
	assert.ErrorIs(t, service.Set(KeyInputPath, "x.json"), domain.ErrInvalidInput)
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set("input.path", "data/full.json")
	_ = store.Set("output.path", "data/slim.json")
	_ = store.Set("output.ascii_only", true)

	settings := NewSettingsService(store).Get()

	assert.Equal(t, "data/full.json", settings.InputPath)
	assert.Equal(t, "data/slim.json", settings.OutputPath)
	assert.True(t, settings.ASCIIOnly)
}

func TestSettingsService_Set(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	require.NoError(t, service.Set(KeyInputPath, "in.json"))
	require.NoError(t, service.Set(KeyOutputPath, "out.json"))
	require.NoError(t, service.Set(KeyOutputASCIIOnly, "true"))

	settings := service.Get()
	assert.Equal(t, "in.json", settings.InputPath)
	assert.Equal(t, "out.json", settings.OutputPath)
	assert.True(t, settings.ASCIIOnly)

	val, ok := store.Get(KeyOutputASCIIOnly)
	require.True(t, ok)
	assert.Equal(t, true, val)
}

func TestSettingsService_Set_Invalid(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "search.mode", "hybrid"},
		{"empty input path", KeyInputPath, ""},
		{"empty output path", KeyOutputPath, ""},
		{"bad bool", KeyOutputASCIIOnly, "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, service.Set(tt.key, tt.value), domain.ErrInvalidInput)
		})
	}
}

func TestSettingsService_Keys(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	assert.Equal(t, []string{"input.path", "output.path", "output.ascii_only"}, service.Keys())
	assert.Equal(t, ":memory:", service.Path())
}
