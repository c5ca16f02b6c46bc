// Package memory is an in-process storage slot used by tests and demo mode.
// Nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"cascosjhc/ledger/internal/storage"
)

type Slot struct {
	mu     sync.RWMutex
	doc    []byte
	stored bool
}

func New() *Slot {
	return &Slot{}
}

// Seed pre-loads the slot with a document, as if a previous process had
// persisted it.
func Seed(doc []byte) *Slot {
	return &Slot{doc: append([]byte{}, doc...), stored: true}
}

func (s *Slot) Load(_ context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.stored {
		return nil, storage.ErrNoState
	}
	return append([]byte{}, s.doc...), nil
}

func (s *Slot) Save(_ context.Context, doc []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = append([]byte{}, doc...)
	s.stored = true
	return nil
}

func (s *Slot) Close() error {
	return nil
}
