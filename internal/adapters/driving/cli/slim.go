package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/refslim/internal/logger"
)

func runSlim(cmd *cobra.Command, _ []string) error {
	if slimService == nil {
		return errors.New("slim service not configured")
	}

	settings := effectiveSettings(cmd)

	report, err := slimService.Slim(commandContext(cmd), settings)
	if err != nil {
		return err
	}

	logger.Info("Slimmed %d entries: %s -> %s", report.Entries, report.Source, report.Destination)
	return nil
}
