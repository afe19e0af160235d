package driving

import (
	"context"

	"github.com/custodia-labs/refslim/internal/core/domain"
)

// SlimService produces and queries slim reference datasets.
type SlimService interface {
	// Slim reads the source dataset, projects every entry and writes the
	// slim dataset, all according to settings.
	Slim(ctx context.Context, settings domain.Settings) (*domain.SlimReport, error)

	// Lookup returns the slim entry for symbol from the dataset at path.
	// Returns ErrNotFound if the symbol is absent.
	Lookup(ctx context.Context, path, symbol string) (*domain.SlimEntry, error)
}

// WatchService reruns slimming whenever the source dataset changes.
type WatchService interface {
	// Run slims once, then again after every change to the source, until
	// ctx is cancelled. onRun is called after every run with its outcome.
	Run(ctx context.Context, settings domain.Settings, onRun func(*domain.SlimReport, error)) error
}
