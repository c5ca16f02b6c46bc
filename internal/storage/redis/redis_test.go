package redis

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"

	"cascosjhc/ledger/internal/storage"
)

func newTestSlot(t *testing.T) *Slot {
	t.Helper()
	mr := miniredis.RunT(t)
	slot := New(mr.Addr(), "", 0, "cascos_app_state")
	t.Cleanup(func() { _ = slot.Close() })
	return slot
}

func TestLoadMissingKeyReturnsNoState(t *testing.T) {
	slot := newTestSlot(t)

	_, err := slot.Load(context.Background())
	if !errors.Is(err, storage.ErrNoState) {
		t.Fatalf("expected ErrNoState, got %v", err)
	}
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	slot := newTestSlot(t)
	ctx := context.Background()

	doc := []byte(`{"history":{"esquina":[],"principal":[]}}`)
	if err := slot.Save(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := slot.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != string(doc) {
		t.Fatalf("round-trip mismatch: %s", got)
	}
}

func TestPing(t *testing.T) {
	slot := newTestSlot(t)
	if err := slot.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
