package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/refslim/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-slim whenever the source dataset changes",
	Long: `Slim once, then watch the source dataset and slim again after every change.
A failed run is reported and watching continues. Stop with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, _ []string) error {
	if watchService == nil {
		return errors.New("watch service not configured")
	}

	settings := effectiveSettings(cmd)

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd.Printf("Watching %s for changes (Ctrl+C to stop)...\n", settings.InputPath)

	err := watchService.Run(ctx, settings, func(report *domain.SlimReport, err error) {
		if err != nil {
			cmd.Printf("Slim failed: %v\n", err)
			return
		}
		cmd.Printf("Wrote %d entries to %s\n", report.Entries, report.Destination)
	})
	if err != nil {
		return err
	}

	cmd.Println("Stopped watching.")
	return nil
}
