package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/refslim/internal/core/domain"
)

func TestSettingsCmd_Show(t *testing.T) {
	buf, _ := setupCLITest(t)

	err := runCLI("settings")

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Input:       p5-ref.json")
	assert.Contains(t, out, "Output:      p5-ref-slim.json")
	assert.Contains(t, out, "ASCII only:  false")
	assert.Contains(t, out, "Config file: :memory:")
}

func TestSettingsCmd_ShowReflectsFlags(t *testing.T) {
	buf, _ := setupCLITest(t)

	err := runCLI("settings", "show", "--output", "elsewhere.json")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Output:      elsewhere.json")
}

func TestSettingsCmd_Set(t *testing.T) {
	buf, _ := setupCLITest(t)

	err := runCLI("settings", "set", "output.path", "slim/out.json")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Set output.path = slim/out.json")
	assert.Equal(t, "slim/out.json", settingsService.Get().OutputPath)
}

func TestSettingsCmd_SetInvalid(t *testing.T) {
	setupCLITest(t)

	err := runCLI("settings", "set", "output.ascii_only", "maybe")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsCmd_ServiceNotConfigured(t *testing.T) {
	setupCLITest(t)
	settingsService = nil

	err := runCLI("settings")

	assert.Error(t, err)
}
