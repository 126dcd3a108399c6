// Package storage provides the blob store backing resource uploads. Files
// are written to a local directory served statically by the HTTP layer.
package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// LocalStore writes blobs to a directory on local disk. Save writes the full
// buffer in one call so a partially-written file is never referenced by a
// committed database row.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the directory when missing and returns the store.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Save(_ context.Context, name string, data []byte) error {
	if err := os.WriteFile(filepath.Join(s.dir, filepath.Base(name)), data, 0o644); err != nil {
		return fmt.Errorf("write blob: %w", err)
	}
	return nil
}

func (s *LocalStore) Remove(_ context.Context, name string) error {
	if err := os.Remove(filepath.Join(s.dir, filepath.Base(name))); err != nil {
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}
