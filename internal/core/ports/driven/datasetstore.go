package driven

import (
	"context"

	"github.com/custodia-labs/refslim/internal/core/domain"
)

// SaveOptions controls how a slim dataset is serialised.
type SaveOptions struct {
	// ASCIIOnly escapes non-ASCII characters as \uXXXX.
	ASCIIOnly bool
}

// DatasetStore reads and writes reference datasets.
type DatasetStore interface {
	// LoadReference reads the full dataset at path.
	// Returns ErrInputAccess if the file cannot be read and
	// ErrMalformedInput if it is not a JSON object of objects.
	LoadReference(ctx context.Context, path string) (*domain.Reference, error)

	// SaveSlim writes the slim dataset to path in compact form and
	// returns the number of bytes written.
	// Returns ErrOutputAccess if the file cannot be written.
	SaveSlim(ctx context.Context, path string, slim *domain.SlimReference, opts SaveOptions) (int, error)

	// LoadSlim reads a previously written slim dataset.
	LoadSlim(ctx context.Context, path string) (*domain.SlimReference, error)
}
