package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/refslim/internal/core/domain"
	"github.com/custodia-labs/refslim/internal/core/ports/driven"
)

// Ensure DatasetStore implements the interface.
var _ driven.DatasetStore = (*DatasetStore)(nil)

// DatasetStore is an in-memory implementation of driven.DatasetStore for testing.
// Datasets are keyed by path. Byte counts are not tracked.
type DatasetStore struct {
	mu         sync.RWMutex
	references map[string]*domain.Reference
	slims      map[string]*domain.SlimReference
	saveErr    error
	saves      int
}

// NewDatasetStore creates a new in-memory dataset store.
func NewDatasetStore() *DatasetStore {
	return &DatasetStore{
		references: make(map[string]*domain.Reference),
		slims:      make(map[string]*domain.SlimReference),
	}
}

// PutReference stores a full dataset at path.
func (s *DatasetStore) PutReference(path string, ref *domain.Reference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.references[path] = ref
}

// FailSaves makes every subsequent SaveSlim return err wrapped in ErrOutputAccess.
func (s *DatasetStore) FailSaves(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}

// Saves returns how many slim datasets were written.
func (s *DatasetStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

// LoadReference returns the dataset stored at path.
func (s *DatasetStore) LoadReference(_ context.Context, path string) (*domain.Reference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ref, ok := s.references[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s: no such dataset", domain.ErrInputAccess, path)
	}
	return ref, nil
}

// SaveSlim stores the slim dataset at path.
func (s *DatasetStore) SaveSlim(
	_ context.Context, path string, slim *domain.SlimReference, _ driven.SaveOptions,
) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return 0, fmt.Errorf("%w: %s: %w", domain.ErrOutputAccess, path, s.saveErr)
	}
	s.slims[path] = slim
	s.saves++
	return 0, nil
}

// LoadSlim returns the slim dataset stored at path.
func (s *DatasetStore) LoadSlim(_ context.Context, path string) (*domain.SlimReference, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slim, ok := s.slims[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s: no such dataset", domain.ErrInputAccess, path)
	}
	return slim, nil
}
