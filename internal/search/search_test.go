package search

import (
	"testing"
	"time"

	"cascosjhc/ledger/internal/domain"
)

func tsOf(value string) int64 {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t.UnixMilli()
}

func testSales() []domain.Sale {
	return []domain.Sale{
		{ID: "1", SellerName: "Estedan", PaymentMethod: "Efectivo", Amount: 10000, Timestamp: tsOf("2026-01-05T14:00:00Z"), Local: domain.LocalEsquina},
		{ID: "2", SellerName: "Javier", PaymentMethod: "QR Bancolombia", Amount: 5000, Timestamp: tsOf("2026-01-05T16:30:00Z"), Local: domain.LocalEsquina},
		{ID: "3", SellerName: "Andrés", PaymentMethod: "Bolt", Amount: 7000, Timestamp: tsOf("2026-01-06T09:15:00Z"), Local: domain.LocalPrincipal},
	}
}

func ids(sales []domain.Sale) []string {
	out := make([]string, len(sales))
	for i, s := range sales {
		out[i] = s.ID
	}
	return out
}

func TestFilterNoConstraintsIsIdentity(t *testing.T) {
	sales := testSales()
	got := Filter(sales, "", nil, "")
	if len(got) != len(sales) {
		t.Fatalf("expected all %d sales, got %d", len(sales), len(got))
	}
	for i := range sales {
		if got[i].ID != sales[i].ID {
			t.Fatalf("expected input order preserved, got %v", ids(got))
		}
	}
}

func TestFilterTermMatchesSellerOrMethodCaseInsensitive(t *testing.T) {
	sales := testSales()

	bySeller := Filter(sales, "esTEDan", nil, "")
	if len(bySeller) != 1 || bySeller[0].ID != "1" {
		t.Fatalf("expected seller match, got %v", ids(bySeller))
	}

	byMethod := Filter(sales, "bancolombia", nil, "")
	if len(byMethod) != 1 || byMethod[0].ID != "2" {
		t.Fatalf("expected method match, got %v", ids(byMethod))
	}

	if got := Filter(sales, "no-such-thing", nil, ""); len(got) != 0 {
		t.Fatalf("expected no match, got %v", ids(got))
	}
}

func TestFilterMinAmount(t *testing.T) {
	sales := testSales()

	min := 7000.0
	got := Filter(sales, "", &min, "")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("expected sales >= 7000 in order, got %v", ids(got))
	}

	impossible := 1e12
	if got := Filter(sales, "", &impossible, ""); len(got) != 0 {
		t.Fatalf("expected empty result for impossible minimum, got %v", ids(got))
	}
}

func TestFilterExactDate(t *testing.T) {
	sales := testSales()

	got := Filter(sales, "", nil, "2026-01-05")
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "2" {
		t.Fatalf("expected the two Jan 5 sales, got %v", ids(got))
	}

	if got := Filter(sales, "", nil, "2030-12-31"); len(got) != 0 {
		t.Fatalf("expected no sales on that date, got %v", ids(got))
	}
}

func TestFilterPredicatesCombineWithAnd(t *testing.T) {
	sales := testSales()

	min := 6000.0
	got := Filter(sales, "efectivo", &min, "2026-01-05")
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only sale 1 to pass all predicates, got %v", ids(got))
	}

	// Same term and date, but the minimum excludes it.
	min = 20000.0
	if got := Filter(sales, "efectivo", &min, "2026-01-05"); len(got) != 0 {
		t.Fatalf("expected AND semantics to exclude everything, got %v", ids(got))
	}
}

func TestFilterEmptyInput(t *testing.T) {
	if got := Filter(nil, "x", nil, ""); len(got) != 0 {
		t.Fatalf("expected empty result for empty input, got %v", got)
	}
}
