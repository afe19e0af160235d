// Command refslim turns a reference-documentation dataset into a compact,
// plain-text variant.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/custodia-labs/refslim/internal/adapters/driven/config/file"
	"github.com/custodia-labs/refslim/internal/adapters/driven/filewatch"
	"github.com/custodia-labs/refslim/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/refslim/internal/adapters/driving/cli"
	"github.com/custodia-labs/refslim/internal/core/ports/driving"
	"github.com/custodia-labs/refslim/internal/core/services"
	"github.com/custodia-labs/refslim/internal/normalisers/description"
)

func main() {
	slimmer := services.NewSlimmerService(jsonfile.New(), description.New())
	cli.SetServices(slimmer, services.NewWatchService(slimmer, filewatch.New()))
	cli.SetSettingsLoader(openSettings)

	if err := cli.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openSettings backs settings with the TOML file at configPath. Without an
// explicit path and without a home directory, defaults apply.
func openSettings(configPath string) (driving.SettingsService, error) {
	if configPath == "" {
		p, err := file.DefaultPath()
		if err != nil {
			return services.NewSettingsService(nil), nil
		}
		configPath = p
	}

	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}
	return services.NewSettingsService(store), nil
}
