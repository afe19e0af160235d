package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Short(t *testing.T) {
	assert.Equal(t, "Print the version number", versionCmd.Short)
}

func TestVersionCmd_Executes(t *testing.T) {
	buf, _ := setupCLITest(t)

	originalVersion := version
	SetVersion("test-version-1.0.0")
	defer func() { version = originalVersion }()

	err := runCLI("version")

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "refslim version test-version-1.0.0")
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	buf, _ := setupCLITest(t)

	err := runCLI("version")

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "refslim version dev")
}
