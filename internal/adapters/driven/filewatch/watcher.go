// Package filewatch implements driven.FileWatcher on top of fsnotify.
package filewatch

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/refslim/internal/core/ports/driven"
	"github.com/custodia-labs/refslim/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// Watcher signals when a single file changes.
type Watcher struct{}

// New creates a new file watcher.
func New() *Watcher {
	return &Watcher{}
}

// Watch watches the parent directory of path, so editors that save by
// writing a new file and renaming it over the old one are still seen.
// Signals are coalesced: at most one is pending at a time.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	target, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(target)); err != nil {
		_ = fw.Close()
		return nil, err
	}
	logger.Debug("Watching %s", target)

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer fw.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if !isChange(event, target) {
					continue
				}
				select {
				case out <- struct{}{}:
				default:
				}
			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				logger.Warn("Watch error on %s: %v", target, err)
			}
		}
	}()

	return out, nil
}

// isChange reports whether event means target has new contents.
func isChange(event fsnotify.Event, target string) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
