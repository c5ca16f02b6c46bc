// Package file persists the ledger document as a single JSON file on disk,
// the default backend for a single-process deployment.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cascosjhc/ledger/internal/storage"
)

type Slot struct {
	path string
}

func New(path string) *Slot {
	return &Slot{path: path}
}

func (s *Slot) Load(_ context.Context) ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: %w", s.path, storage.ErrNoState)
	}
	if err != nil {
		return nil, err
	}
	return raw, nil
}

// Save writes to a temp file in the same directory and renames it over the
// slot, so a crash mid-write never leaves a truncated document behind.
func (s *Slot) Save(_ context.Context, doc []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(doc); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, s.path)
}

func (s *Slot) Close() error {
	return nil
}
