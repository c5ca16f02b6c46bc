// Package storage defines the durable slot the ledger persists its single
// JSON document into. Backends only move opaque bytes; the document shape is
// owned by the ledger.
package storage

import (
	"context"
	"errors"
)

// ErrNoState is returned by Load when the slot has never been written.
var ErrNoState = errors.New("no persisted state")

type Backend interface {
	// Load returns the last saved document, or ErrNoState if none exists.
	Load(ctx context.Context) ([]byte, error)
	// Save overwrites the slot with the full document.
	Save(ctx context.Context, doc []byte) error
	Close() error
}
