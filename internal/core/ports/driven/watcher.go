package driven

import "context"

// FileWatcher reports changes to a single file.
type FileWatcher interface {
	// Watch emits on the returned channel whenever path is created, written
	// or replaced. Bursts of changes may be coalesced into one signal.
	// The channel is closed once ctx is done.
	Watch(ctx context.Context, path string) (<-chan struct{}, error)
}
