// Package service composes the ledger store with the aggregation and search
// routines into the operations the HTTP surface exposes, and enforces which
// role may call what.
package service

import (
	"context"
	"errors"
	"sort"

	"cascosjhc/ledger/internal/domain"
	"cascosjhc/ledger/internal/ledger"
	"cascosjhc/ledger/internal/report"
	"cascosjhc/ledger/internal/search"
)

var ErrOwnerOnly = errors.New("owner role required")

type actorContextKey struct{}

func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorContextKey{}).(domain.Actor)
	return actor, ok
}

type Service struct {
	ledger         *ledger.Store
	sellers        []string
	paymentMethods []string
	locals         []domain.LocalInfo
}

func New(store *ledger.Store, sellers []string, paymentMethods []string, locals []domain.LocalInfo) *Service {
	return &Service{
		ledger:         store,
		sellers:        sellers,
		paymentMethods: paymentMethods,
		locals:         locals,
	}
}

func (s *Service) requireOwner(ctx context.Context) error {
	actor, ok := ActorFromContext(ctx)
	if !ok || actor.Role != domain.RoleOwner {
		return ErrOwnerOnly
	}
	return nil
}

// Config returns the fixed enumerations clients render their forms from.
// Available to both roles.
func (s *Service) Config(_ context.Context) domain.ConfigResponse {
	return domain.ConfigResponse{
		Sellers:        s.sellers,
		PaymentMethods: s.paymentMethods,
		Locals:         s.locals,
	}
}

// RecordSale is the one operation the employee role shares with the owner.
func (s *Service) RecordSale(ctx context.Context, req domain.RecordSaleRequest) (domain.Sale, error) {
	if _, ok := ActorFromContext(ctx); !ok {
		return domain.Sale{}, ErrOwnerOnly
	}
	return s.ledger.RecordSale(ctx, req)
}

func (s *Service) CloseDay(ctx context.Context, local domain.LocalType) (domain.DayRecord, error) {
	if err := s.requireOwner(ctx); err != nil {
		return domain.DayRecord{}, err
	}
	return s.ledger.CloseDay(ctx, local)
}

// LocalSummary assembles the owner's per-location view of the running day:
// the active sales, their total, and the per-method and per-seller tables.
func (s *Service) LocalSummary(ctx context.Context, local domain.LocalType) (domain.LocalSummaryResponse, error) {
	if err := s.requireOwner(ctx); err != nil {
		return domain.LocalSummaryResponse{}, err
	}
	if !local.Valid() {
		return domain.LocalSummaryResponse{}, ledger.ErrUnknownLocal
	}

	sales := s.ledger.CurrentSales(local)
	return domain.LocalSummaryResponse{
		Local:    local,
		Name:     s.localName(local),
		Total:    report.TotalAmount(sales),
		Count:    len(sales),
		ByMethod: report.StatsByMethod(sales),
		BySeller: report.StatsBySeller(sales),
		Sales:    sales,
	}, nil
}

func (s *Service) History(ctx context.Context, local domain.LocalType) (domain.HistoryResponse, error) {
	if err := s.requireOwner(ctx); err != nil {
		return domain.HistoryResponse{}, err
	}
	if !local.Valid() {
		return domain.HistoryResponse{}, ledger.ErrUnknownLocal
	}
	return domain.HistoryResponse{Local: local, Days: s.ledger.History(local)}, nil
}

// Dashboard assembles the owner's global view: per-location active totals,
// the method breakdown over both locations' active sales, and the combined
// history grouped by calendar day, newest day first.
func (s *Service) Dashboard(ctx context.Context) (domain.DashboardResponse, error) {
	if err := s.requireOwner(ctx); err != nil {
		return domain.DashboardResponse{}, err
	}

	state := s.ledger.Snapshot()
	activeEsquina := report.TotalAmount(state.CurrentSales.Esquina)
	activePrincipal := report.TotalAmount(state.CurrentSales.Principal)

	allActive := append(append([]domain.Sale{}, state.CurrentSales.Esquina...), state.CurrentSales.Principal...)

	allHistory := append(append([]domain.DayRecord{}, state.History.Esquina...), state.History.Principal...)
	sort.SliceStable(allHistory, func(i, j int) bool {
		// RFC3339 strings sort chronologically; newest first.
		return allHistory[i].Date > allHistory[j].Date
	})

	return domain.DashboardResponse{
		ActiveEsquina:   activeEsquina,
		ActivePrincipal: activePrincipal,
		ActiveGlobal:    activeEsquina + activePrincipal,
		ByMethod:        report.TotalsByPaymentMethod(allActive),
		History:         report.GroupHistoryByDay(allHistory),
	}, nil
}

type SearchRequest struct {
	// Local narrows the scope to one location; empty means both.
	Local     domain.LocalType
	Term      string
	MinAmount *float64
	ExactDate string
}

// Search filters across active and archived sales. Scope order mirrors the
// views: active sales first, then archived sales day by day.
func (s *Service) Search(ctx context.Context, req SearchRequest) (domain.SearchResponse, error) {
	if err := s.requireOwner(ctx); err != nil {
		return domain.SearchResponse{}, err
	}
	if req.Local != "" && !req.Local.Valid() {
		return domain.SearchResponse{}, ledger.ErrUnknownLocal
	}

	state := s.ledger.Snapshot()
	var scope []domain.Sale
	if req.Local != "" {
		scope = append(scope, state.CurrentSales.Get(req.Local)...)
		for _, day := range state.History.Get(req.Local) {
			scope = append(scope, day.Sales...)
		}
	} else {
		scope = append(scope, state.CurrentSales.Esquina...)
		scope = append(scope, state.CurrentSales.Principal...)
		for _, day := range state.History.Esquina {
			scope = append(scope, day.Sales...)
		}
		for _, day := range state.History.Principal {
			scope = append(scope, day.Sales...)
		}
	}

	results := search.Filter(scope, req.Term, req.MinAmount, req.ExactDate)
	return domain.SearchResponse{Results: results, Count: len(results)}, nil
}

func (s *Service) localName(local domain.LocalType) string {
	for _, info := range s.locals {
		if info.Key == local {
			return info.Name
		}
	}
	return string(local)
}
