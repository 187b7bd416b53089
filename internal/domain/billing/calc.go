// Package billing is the pure invoice calculation engine: per-line and
// per-invoice monetary aggregates and sequential identifier derivation.
//
// Leniency policy: numeric fields that were never set arrive as decimal zero
// values and are computed as 0 — the engine never rejects absent optionals.
// Range validation (quantity >= 0, percentages 0-100, required fields) happens
// upstream, before any of these functions run. Results are NOT rounded here;
// rounding to 2 decimals happens only at presentation/serialization time.
package billing

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Totals aggregates an invoice's derived monetary values.
type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// LineSubtotal returns quantity * unitPrice * (1 - discountPercent/100),
// unrounded.
func LineSubtotal(item *entity.InvoiceItem) decimal.Decimal {
	gross := item.Quantity.Mul(item.UnitPrice)
	return gross.Sub(gross.Mul(item.DiscountPercent.Div(hundred)))
}

// LineTax returns LineSubtotal * taxRatePercent/100, unrounded.
func LineTax(item *entity.InvoiceItem) decimal.Decimal {
	return LineSubtotal(item).Mul(item.TaxRatePercent.Div(hundred))
}

// InvoiceTotals sums the line aggregates. Summation order is irrelevant:
// decimal arithmetic is exact, so no floating-point epsilon applies.
func InvoiceTotals(items []*entity.InvoiceItem) Totals {
	var subtotal, tax decimal.Decimal
	for _, item := range items {
		subtotal = subtotal.Add(LineSubtotal(item))
		tax = tax.Add(LineTax(item))
	}
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
