// Package report holds the aggregation routines over sale and day records.
// Everything here is pure: no state, no side effects, and every function is
// defined for empty input.
package report

import (
	"sort"

	"cascosjhc/ledger/internal/domain"
)

// TotalAmount sums the amounts of the given sales. Empty input yields 0.
func TotalAmount(sales []domain.Sale) float64 {
	var total float64
	for _, sale := range sales {
		total += sale.Amount
	}
	return total
}

// TotalsByPaymentMethod groups sales by payment method and sums each group,
// ordered by descending total. Only methods with at least one sale appear.
// Ties keep first-encountered order.
func TotalsByPaymentMethod(sales []domain.Sale) []domain.MethodTotal {
	totals := make(map[string]float64)
	order := make([]string, 0)
	for _, sale := range sales {
		if _, seen := totals[sale.PaymentMethod]; !seen {
			order = append(order, sale.PaymentMethod)
		}
		totals[sale.PaymentMethod] += sale.Amount
	}

	out := make([]domain.MethodTotal, 0, len(order))
	for _, method := range order {
		out = append(out, domain.MethodTotal{Method: method, Total: totals[method]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// StatsByMethod groups sales by payment method, tracking count and total per
// group, ordered by descending total.
func StatsByMethod(sales []domain.Sale) []domain.GroupStat {
	return statsBy(sales, func(s domain.Sale) string { return s.PaymentMethod })
}

// StatsBySeller groups sales by seller name, tracking count and total per
// group, ordered by descending total.
func StatsBySeller(sales []domain.Sale) []domain.GroupStat {
	return statsBy(sales, func(s domain.Sale) string { return s.SellerName })
}

func statsBy(sales []domain.Sale, keyOf func(domain.Sale) string) []domain.GroupStat {
	index := make(map[string]int)
	out := make([]domain.GroupStat, 0)
	for _, sale := range sales {
		key := keyOf(sale)
		i, seen := index[key]
		if !seen {
			i = len(out)
			index[key] = i
			out = append(out, domain.GroupStat{Key: key})
		}
		out[i].Count++
		out[i].Total += sale.Amount
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Total > out[j].Total
	})
	return out
}

// GroupHistoryByDay merges day records from both locations that fall on the
// same calendar day into one row, adding each record's frozen total into its
// location's slot. Rows appear in the order the records were supplied; the
// caller pre-sorts when a particular ordering is wanted. A location normally
// contributes one record per day, but several are tolerated and summed.
func GroupHistoryByDay(records []domain.DayRecord) []domain.DayGroup {
	index := make(map[string]int)
	out := make([]domain.DayGroup, 0)
	for _, record := range records {
		key := record.DayKey()
		i, seen := index[key]
		if !seen {
			i = len(out)
			index[key] = i
			out = append(out, domain.DayGroup{Day: key, DateDisplay: record.DateDisplay})
		}
		switch record.Local {
		case domain.LocalPrincipal:
			out[i].Principal += record.Total
		default:
			out[i].Esquina += record.Total
		}
	}
	return out
}
