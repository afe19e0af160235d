package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/refslim/internal/core/domain"
	"github.com/custodia-labs/refslim/internal/core/ports/driven"
	"github.com/custodia-labs/refslim/internal/core/ports/driving"
	"github.com/custodia-labs/refslim/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatchService keeps the slim dataset in step with its source.
type WatchService struct {
	slimmer driving.SlimService
	watcher driven.FileWatcher
}

// NewWatchService creates a new watch service.
func NewWatchService(slimmer driving.SlimService, watcher driven.FileWatcher) *WatchService {
	return &WatchService{
		slimmer: slimmer,
		watcher: watcher,
	}
}

// Run slims once and then after every change until ctx is cancelled.
// A failed run is reported to onRun and does not stop the loop.
func (w *WatchService) Run(
	ctx context.Context, settings domain.Settings, onRun func(*domain.SlimReport, error),
) error {
	if w.slimmer == nil || w.watcher == nil {
		return errors.New("watch service not configured")
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	// Subscribe first so changes made during the initial run are not lost.
	changes, err := w.watcher.Watch(ctx, settings.InputPath)
	if err != nil {
		return fmt.Errorf("watch %s: %w", settings.InputPath, err)
	}

	w.runOnce(ctx, settings, onRun)

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			logger.Debug("Change detected: %s", settings.InputPath)
			w.runOnce(ctx, settings, onRun)
		}
	}
}

func (w *WatchService) runOnce(ctx context.Context, settings domain.Settings, onRun func(*domain.SlimReport, error)) {
	report, err := w.slimmer.Slim(ctx, settings)
	if err != nil {
		logger.Warn("Slim failed: %v", err)
	}
	if onRun != nil {
		onRun(report, err)
	}
}
