package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"cascosjhc/ledger/internal/storage"
)

func TestSlotRoundTrip(t *testing.T) {
	databaseURL := os.Getenv("CASCOS_TEST_DATABASE_URL")
	if databaseURL == "" {
		t.Skip("set CASCOS_TEST_DATABASE_URL to run postgres integration test")
	}

	ctx := context.Background()
	key := fmt.Sprintf("cascos_app_state_it_%d", time.Now().UnixNano())

	slot, err := New(ctx, databaseURL, key)
	if err != nil {
		t.Fatalf("new slot: %v", err)
	}
	t.Cleanup(func() {
		_, _ = slot.db.ExecContext(ctx, `DELETE FROM app_state WHERE state_key = $1`, key)
		_ = slot.Close()
	})

	if _, err := slot.Load(ctx); !errors.Is(err, storage.ErrNoState) {
		t.Fatalf("expected ErrNoState before first save, got %v", err)
	}

	doc := []byte(`{"currentSales":{"esquina":[],"principal":[]},"history":{"esquina":[],"principal":[]}}`)
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

	updated := []byte(`{"currentSales":{"esquina":[],"principal":[]},"history":{"esquina":[],"principal":[]},"x":1}`)
	if err := slot.Save(ctx, updated); err != nil {
		t.Fatalf("second save: %v", err)
	}
	got, err = slot.Load(ctx)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if string(got) != string(updated) {
		t.Fatalf("upsert must replace the document, got %s", got)
	}
}
