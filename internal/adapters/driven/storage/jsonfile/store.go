package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/custodia-labs/refslim/internal/core/domain"
	"github.com/custodia-labs/refslim/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.DatasetStore = (*Store)(nil)

// Store reads and writes datasets as JSON files.
type Store struct{}

// New creates a new JSON file store.
func New() *Store {
	return &Store{}
}

// LoadReference reads the whole source dataset into memory.
func (s *Store) LoadReference(ctx context.Context, path string) (*domain.Reference, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	ref := domain.NewReference()
	err = decodeObject(data, func(symbol string, value json.RawMessage) error {
		entry, err := decodeEntry(symbol, value)
		if err != nil {
			return err
		}
		ref.Set(symbol, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ref, nil
}

// LoadSlim reads a slim dataset. Fields missing from an entry take the
// same defaults slimming would have applied.
func (s *Store) LoadSlim(ctx context.Context, path string) (*domain.SlimReference, error) {
	data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	slim := domain.NewSlimReference()
	err = decodeObject(data, func(symbol string, value json.RawMessage) error {
		entry, err := decodeEntry(symbol, value)
		if err != nil {
			return err
		}
		params, ret := entry.Params, entry.Return
		if params == nil {
			params = domain.DefaultParams
		}
		if ret == nil {
			ret = domain.DefaultReturn
		}
		slim.Set(symbol, domain.SlimEntry{Description: entry.Description, Params: params, Return: ret})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return slim, nil
}

// SaveSlim encodes slim and replaces path with it.
func (s *Store) SaveSlim(
	ctx context.Context, path string, slim *domain.SlimReference, opts driven.SaveOptions,
) (int, error) {
	data, err := encodeSlim(slim, opts.ASCIIOnly)
	if err != nil {
		return 0, err
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if err := writeFileAtomic(path, data); err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrOutputAccess, err)
	}
	return len(data), nil
}

func readFile(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInputAccess, err)
	}
	return data, nil
}

// writeFileAtomic writes data to a uniquely named sibling of path and
// renames it over path. A symlinked destination is written through to its
// target and an existing file keeps its permissions. The temporary file is
// removed on failure.
func writeFileAtomic(path string, data []byte) (err error) {
	if resolved, evalErr := filepath.EvalSymlinks(path); evalErr == nil {
		path = resolved
	}
	perm := os.FileMode(0o644)
	keepMode := false
	if info, statErr := os.Stat(path); statErr == nil && info.Mode().IsRegular() {
		perm = info.Mode().Perm()
		keepMode = true
	}

	dir, base := filepath.Split(path)
	tmp := filepath.Join(dir, "."+base+"."+uuid.New().String()+".tmp")

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if keepMode {
		// OpenFile applies the umask.
		if err = f.Chmod(perm); err != nil {
			_ = f.Close()
			return err
		}
	}
	if err = f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
