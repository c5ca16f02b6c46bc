// Package ledger owns the AppState document: it is the only writer of
// durable storage and serializes every mutation behind its lock. The full
// document is persisted after each mutation, never a delta.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cascosjhc/ledger/internal/domain"
	"cascosjhc/ledger/internal/storage"
)

var (
	ErrInvalidSale  = errors.New("invalid sale")
	ErrUnknownLocal = errors.New("unknown local")
)

type Store struct {
	mu      sync.RWMutex
	backend storage.Backend
	state   domain.AppState
	sellers map[string]struct{}
	methods map[string]struct{}
}

// New loads the previously persisted AppState from the backend, or starts
// from the empty default when none exists. An unreadable or unparseable
// document is not fatal: the store starts empty and logs the loss, matching
// the legacy behavior.
func New(ctx context.Context, backend storage.Backend, sellers []string, methods []string) *Store {
	s := &Store{
		backend: backend,
		state:   domain.NewAppState(),
		sellers: toSet(sellers),
		methods: toSet(methods),
	}

	raw, err := backend.Load(ctx)
	switch {
	case errors.Is(err, storage.ErrNoState):
		// First run, nothing to restore.
	case err != nil:
		log.Printf("[ledger] WARN: reading persisted state: %v; starting empty", err)
	default:
		var loaded domain.AppState
		if err := json.Unmarshal(raw, &loaded); err != nil {
			log.Printf("[ledger] WARN: persisted state unparseable: %v; starting empty", err)
		} else {
			loaded.Normalize()
			s.state = loaded
		}
	}

	return s
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

// RecordSale validates the request, builds the Sale and prepends it to the
// location's active list. Newest-first ordering is a contract, not an
// accident: readers rely on index 0 being the latest sale.
func (s *Store) RecordSale(ctx context.Context, req domain.RecordSaleRequest) (domain.Sale, error) {
	if !req.Local.Valid() {
		return domain.Sale{}, fmt.Errorf("%w: %q", ErrUnknownLocal, req.Local)
	}
	if math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return domain.Sale{}, fmt.Errorf("%w: amount must be a finite number", ErrInvalidSale)
	}
	if req.Amount < 0 {
		return domain.Sale{}, fmt.Errorf("%w: amount must not be negative", ErrInvalidSale)
	}

	seller := strings.TrimSpace(req.SellerName)
	method := strings.TrimSpace(req.PaymentMethod)
	if seller == "" {
		return domain.Sale{}, fmt.Errorf("%w: seller name required", ErrInvalidSale)
	}
	if method == "" {
		return domain.Sale{}, fmt.Errorf("%w: payment method required", ErrInvalidSale)
	}
	if len(s.sellers) > 0 {
		if _, ok := s.sellers[seller]; !ok {
			return domain.Sale{}, fmt.Errorf("%w: unknown seller %q", ErrInvalidSale, seller)
		}
	}
	if len(s.methods) > 0 {
		if _, ok := s.methods[method]; !ok {
			return domain.Sale{}, fmt.Errorf("%w: unknown payment method %q", ErrInvalidSale, method)
		}
	}

	sale := domain.Sale{
		ID:            uuid.NewString(),
		SellerName:    seller,
		PaymentMethod: method,
		Amount:        req.Amount,
		Timestamp:     time.Now().UnixMilli(),
		Local:         req.Local,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.state.CurrentSales.Get(sale.Local)
	s.state.CurrentSales.Set(sale.Local, append([]domain.Sale{sale}, current...))

	if err := s.persistLocked(ctx); err != nil {
		return sale, err
	}
	return sale, nil
}

// CloseDay archives the location's active sales into a new DayRecord and
// empties the active list, atomically under the store lock. Closing an empty
// day is valid and produces a zero-total record. The archived sales and
// total are snapshots: later mutations never alter them.
func (s *Store) CloseDay(ctx context.Context, local domain.LocalType) (domain.DayRecord, error) {
	if !local.Valid() {
		return domain.DayRecord{}, fmt.Errorf("%w: %q", ErrUnknownLocal, local)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	salesToClose := append([]domain.Sale{}, s.state.CurrentSales.Get(local)...)
	var total float64
	for _, sale := range salesToClose {
		total += sale.Amount
	}

	now := time.Now().UTC()
	record := domain.DayRecord{
		ID:          uuid.NewString(),
		Date:        now.Format(time.RFC3339),
		DateDisplay: domain.FormatDisplayDate(now),
		Sales:       salesToClose,
		Total:       total,
		Local:       local,
		ClosedAt:    now.UnixMilli(),
	}

	s.state.History.Set(local, append([]domain.DayRecord{record}, s.state.History.Get(local)...))
	s.state.CurrentSales.Set(local, []domain.Sale{})

	if err := s.persistLocked(ctx); err != nil {
		return record, err
	}
	return record, nil
}

// Snapshot returns a deep copy of the whole document. Callers never see the
// live state.
func (s *Store) Snapshot() domain.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// CurrentSales returns a copy of the location's active sales, newest first.
func (s *Store) CurrentSales(local domain.LocalType) []domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Sale{}, s.state.CurrentSales.Get(local)...)
}

// History returns a copy of the location's closed days, newest first.
func (s *Store) History(local domain.LocalType) []domain.DayRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRecords(s.state.History.Get(local))
}

func cloneRecords(days []domain.DayRecord) []domain.DayRecord {
	out := make([]domain.DayRecord, len(days))
	for i, day := range days {
		day.Sales = append([]domain.Sale{}, day.Sales...)
		out[i] = day
	}
	return out
}

// persistLocked serializes the full document into the storage slot. The
// in-memory mutation is already committed when this runs; a failed write is
// reported but does not roll it back.
func (s *Store) persistLocked(ctx context.Context) error {
	doc, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("marshal app state: %w", err)
	}
	if err := s.backend.Save(ctx, doc); err != nil {
		return fmt.Errorf("persist app state: %w", err)
	}
	return nil
}
