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

// Ensure SlimmerService implements the interface.
var _ driving.SlimService = (*SlimmerService)(nil)

// SlimmerService turns full reference datasets into slim ones.
type SlimmerService struct {
	store   driven.DatasetStore
	cleaner driven.DescriptionCleaner
}

// NewSlimmerService creates a new slimmer service.
func NewSlimmerService(store driven.DatasetStore, cleaner driven.DescriptionCleaner) *SlimmerService {
	return &SlimmerService{
		store:   store,
		cleaner: cleaner,
	}
}

// Slim loads the source dataset, projects it and writes the result.
// Nothing is written unless the whole source loads and projects.
func (s *SlimmerService) Slim(ctx context.Context, settings domain.Settings) (*domain.SlimReport, error) {
	if s.store == nil || s.cleaner == nil {
		return nil, errors.New("slimmer service not configured")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	logger.Section("Slim")
	defer logger.Timed("Slim")()
	logger.Debug("Source: %s", settings.InputPath)
	logger.Debug("Destination: %s", settings.OutputPath)

	ref, err := s.store.LoadReference(ctx, settings.InputPath)
	if err != nil {
		return nil, fmt.Errorf("load reference: %w", err)
	}
	logger.Info("Loaded %d entries", ref.Len())

	slim := s.Project(ref)

	n, err := s.store.SaveSlim(ctx, settings.OutputPath, slim, driven.SaveOptions{
		ASCIIOnly: settings.ASCIIOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("save slim reference: %w", err)
	}
	logger.Info("Wrote %d entries (%d bytes) to %s", slim.Len(), n, settings.OutputPath)

	return &domain.SlimReport{
		Source:      settings.InputPath,
		Destination: settings.OutputPath,
		Entries:     slim.Len(),
		Bytes:       n,
	}, nil
}

// Project derives the slim dataset from ref. Every symbol maps to exactly
// one slim entry, in the same order.
func (s *SlimmerService) Project(ref *domain.Reference) *domain.SlimReference {
	slim := domain.NewSlimReference()
	for _, symbol := range ref.Keys() {
		entry, _ := ref.Get(symbol)
		slim.Set(symbol, s.projectEntry(entry))
	}
	return slim
}

func (s *SlimmerService) projectEntry(entry domain.ReferenceEntry) domain.SlimEntry {
	params := entry.Params
	if params == nil {
		params = domain.DefaultParams
	}
	ret := entry.Return
	if ret == nil {
		ret = domain.DefaultReturn
	}
	return domain.SlimEntry{
		Description: s.cleaner.Clean(entry.Description),
		Params:      params,
		Return:      ret,
	}
}

// Lookup finds a single symbol in the slim dataset at path.
func (s *SlimmerService) Lookup(ctx context.Context, path, symbol string) (*domain.SlimEntry, error) {
	if s.store == nil {
		return nil, errors.New("slimmer service not configured")
	}
	if symbol == "" {
		return nil, fmt.Errorf("%w: symbol is empty", domain.ErrInvalidInput)
	}

	logger.Debug("Lookup %q in %s", symbol, path)

	slim, err := s.store.LoadSlim(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load slim reference: %w", err)
	}

	entry, ok := slim.Get(symbol)
	if !ok {
		return nil, fmt.Errorf("symbol %q: %w", symbol, domain.ErrNotFound)
	}
	return &entry, nil
}
