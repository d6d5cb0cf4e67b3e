// Package jsonfile implements a WorldStore backed by a single JSON file.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/geocache/internal/core/domain"
	"go.trai.ch/geocache/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.WorldStore = (*Store)(nil)

// Store implements ports.WorldStore using a flat JSON file.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a Store for the file at the given path.
// The file is created on the first Save.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Path returns the save file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the saved world. It returns nil when nothing has been saved yet.
func (s *Store) Load(ctx context.Context) (*domain.SaveRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSaveReadFailed.Error()), "path", s.path)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var rec domain.SaveRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Join(domain.ErrSaveCorrupt,
			zerr.With(zerr.Wrap(err, domain.ErrSaveUnmarshalFailed.Error()), "path", s.path))
	}

	return &rec, nil
}

// Save writes the world record, replacing any previous save.
// The record is written to a temporary file first and renamed into place.
func (s *Store) Save(ctx context.Context, rec *domain.SaveRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrSaveMarshalFailed.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "dir", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrSaveWriteFailed.Error()), "path", s.path)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrSaveWriteFailed.Error()), "path", s.path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrSaveWriteFailed.Error()), "path", s.path)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrSaveWriteFailed.Error()), "path", s.path)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return zerr.With(zerr.Wrap(err, domain.ErrSaveWriteFailed.Error()), "path", s.path)
	}

	return nil
}

// Clear deletes the save file. A missing file is not an error.
func (s *Store) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrSaveWriteFailed.Error()), "path", s.path)
	}
	return nil
}

// Close is a no-op; the file is only held open during Load and Save.
func (s *Store) Close() error {
	return nil
}
