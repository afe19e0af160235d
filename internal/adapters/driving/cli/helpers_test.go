package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/refslim/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/refslim/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/refslim/internal/core/services"
	"github.com/custodia-labs/refslim/internal/normalisers/description"
)

const sampleDataset = `{
  "circle": {
    "description": "<p>Draws a <code>circle</code> on the canvas.</p>\n<p>It&#39;s round &amp; filled.</p>",
    "params": [{"name": "x", "type": "Number"}, {"name": "d", "type": "Number"}],
    "return": {"type": "p5"}
  },
  "noLoop": {
    "description": "<p>Stops   draw().</p>"
  }
}`

const sampleSlim = `{"circle":{"description":"Draws a ` + "`circle`" + ` on the canvas. It's round & filled.",` +
	`"params":[{"name":"x","type":"Number"},{"name":"d","type":"Number"}],"return":{"type":"p5"}},` +
	`"noLoop":{"description":"Stops draw().","params":[],"return":{}}}`

// setupCLITest wires real services over a temporary working directory and
// restores global command state afterwards.
func setupCLITest(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	oldSlim, oldWatch, oldSettings, oldLoader := slimService, watchService, settingsService, settingsLoader
	dir := t.TempDir()
	t.Chdir(dir)

	slimmer := services.NewSlimmerService(jsonfile.New(), description.New())
	slimService = slimmer
	watchService = nil
	settingsService = services.NewSettingsService(memory.NewConfigStore())
	settingsLoader = nil

	resetFlags()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)

	t.Cleanup(func() {
		slimService, watchService, settingsService, settingsLoader = oldSlim, oldWatch, oldSettings, oldLoader
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags()
	})
	return buf, dir
}

func resetFlags() {
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	reset(lookupCmd.Flags())
}

func writeDataset(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// runCLI executes rootCmd with args. A nil slice would make cobra fall back
// to os.Args, which holds the test binary's flags.
func runCLI(args ...string) error {
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}
