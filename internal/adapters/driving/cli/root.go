// Package cli implements the refslim command-line interface using cobra.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/refslim/internal/core/domain"
	"github.com/custodia-labs/refslim/internal/core/ports/driving"
	"github.com/custodia-labs/refslim/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=1.2.3".
var version = "dev"

// Services used by commands. They are injected by main and replaced in tests.
var (
	slimService     driving.SlimService
	watchService    driving.WatchService
	settingsService driving.SettingsService
)

// SettingsLoader opens settings backed by the config file at configPath.
// An empty configPath selects the default location.
type SettingsLoader func(configPath string) (driving.SettingsService, error)

var settingsLoader SettingsLoader

// Persistent flags.
var (
	inputPath  string
	outputPath string
	configPath string
	asciiOnly  bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "refslim",
	Short: "Slim a reference-documentation dataset",
	Long: `refslim reads a JSON reference dataset (symbol -> {description, params, return}),
turns each HTML description into single-line plain text, and writes a compact
JSON dataset with the same symbols.

Run without arguments to slim p5-ref.json into p5-ref-slim.json.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE:              runSlim,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&inputPath, "input", "i", domain.DefaultInputPath, "Source dataset")
	flags.StringVarP(&outputPath, "output", "o", domain.DefaultOutputPath, "Slim dataset")
	flags.StringVarP(&configPath, "config", "c", "", "Config file (default ~/.refslim/config.toml)")
	flags.BoolVar(&asciiOnly, "ascii", false, "Escape non-ASCII characters in the output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Print progress to stderr")
}

// SetServices injects the core services.
func SetServices(slim driving.SlimService, watch driving.WatchService) {
	slimService = slim
	watchService = watch
}

// SetSettingsLoader injects how settings are opened once flags are parsed.
func SetSettingsLoader(loader SettingsLoader) {
	settingsLoader = loader
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func loadSettings(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if settingsLoader == nil {
		return nil
	}
	s, err := settingsLoader(configPath)
	if err != nil {
		return err
	}
	settingsService = s
	return nil
}

// effectiveSettings layers explicitly set flags over stored settings.
func effectiveSettings(cmd *cobra.Command) domain.Settings {
	settings := domain.DefaultSettings()
	if settingsService != nil {
		settings = settingsService.Get()
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		settings.InputPath = inputPath
	}
	if flags.Changed("output") {
		settings.OutputPath = outputPath
	}
	if flags.Changed("ascii") {
		settings.ASCIIOnly = asciiOnly
	}
	return settings
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
