// Package search filters sale records for the owner's search views. Pure and
// order-preserving: results keep the input sequence's relative order.
package search

import (
	"strings"

	"cascosjhc/ledger/internal/domain"
)

// Filter returns the sales matching all three predicates:
//   - term: case-insensitive substring of seller name OR payment method;
//     the empty term matches everything.
//   - minAmount: amount >= *minAmount when supplied.
//   - exactDate: the sale's UTC calendar day (YYYY-MM-DD) equals the given
//     date string when supplied.
func Filter(sales []domain.Sale, term string, minAmount *float64, exactDate string) []domain.Sale {
	needle := strings.ToLower(strings.TrimSpace(term))

	out := make([]domain.Sale, 0, len(sales))
	for _, sale := range sales {
		if needle != "" &&
			!strings.Contains(strings.ToLower(sale.SellerName), needle) &&
			!strings.Contains(strings.ToLower(sale.PaymentMethod), needle) {
			continue
		}
		if minAmount != nil && sale.Amount < *minAmount {
			continue
		}
		if exactDate != "" && domain.DayKeyOf(sale.Time()) != exactDate {
			continue
		}
		out = append(out, sale)
	}
	return out
}
