// Package receipt implements the receipt computation and rendering core.
// Everything in this package is pure: no I/O, no shared state, safe for
// concurrent use.
package receipt

import "github.com/shopspring/decimal"

// LineItem is a single purchased product as supplied by the caller.
type LineItem struct {
	Name     string
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// ComputedLineItem is a LineItem with its extended total filled in.
type ComputedLineItem struct {
	LineItem
	Total decimal.Decimal
}

// Payment describes how the receipt was paid for.
type Payment struct {
	Type   string
	Amount decimal.Decimal
}

// Computed holds the derived amounts for one receipt.
type Computed struct {
	Items   []ComputedLineItem
	Payment Payment
	Total   decimal.Decimal
	Rest    decimal.Decimal
}

// Compute derives per-line totals, the receipt total and the change (rest)
// due. The sum over an empty item list is zero. Rest may be negative: the
// calculator does not reject underpayment, nor does it validate signs of
// prices or quantities; callers are expected to validate input shape upstream.
func Compute(items []LineItem, payment Payment) Computed {
	computed := make([]ComputedLineItem, 0, len(items))
	total := decimal.Zero

	for _, item := range items {
		lineTotal := item.Price.Mul(item.Quantity)
		computed = append(computed, ComputedLineItem{LineItem: item, Total: lineTotal})
		total = total.Add(lineTotal)
	}

	return Computed{
		Items:   computed,
		Payment: payment,
		Total:   total,
		Rest:    payment.Amount.Sub(total),
	}
}
