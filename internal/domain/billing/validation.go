package billing

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
)

// ErrInvalidInvoice groups invoice validation failures.
var ErrInvalidInvoice = errors.New("invalid invoice")

// ValidateInvoice checks that the cached header totals equal the aggregates
// recomputed from the items, and that each item's financial fields are within
// range. Run before persisting or serializing an invoice: the stored totals
// are a caching optimization, never a second source of truth.
func ValidateInvoice(invoice *entity.Invoice, items []*entity.InvoiceItem) error {
	if invoice == nil {
		return fmt.Errorf("%w: nil invoice", ErrInvalidInvoice)
	}
	var errs []error

	if len(items) == 0 {
		errs = append(errs, fmt.Errorf("%w: invoice must have at least one item", ErrInvalidInvoice))
	}
	for _, item := range items {
		if item.Quantity.IsNegative() {
			errs = append(errs, fmt.Errorf("item %d: quantity is negative", item.LineNumber))
		}
		if item.UnitPrice.IsNegative() {
			errs = append(errs, fmt.Errorf("item %d: unit price is negative", item.LineNumber))
		}
		if item.DiscountPercent.IsNegative() || item.DiscountPercent.GreaterThan(hundred) {
			errs = append(errs, fmt.Errorf("item %d: discount out of 0-100 range", item.LineNumber))
		}
		if item.TaxRatePercent.IsNegative() || item.TaxRatePercent.GreaterThan(hundred) {
			errs = append(errs, fmt.Errorf("item %d: tax rate out of 0-100 range", item.LineNumber))
		}
	}

	if len(items) > 0 {
		totals := InvoiceTotals(items)
		if !equalTo2dp(invoice.Subtotal, totals.Subtotal) {
			errs = append(errs, fmt.Errorf("subtotal (%s) does not match sum of line subtotals (%s)", invoice.Subtotal, totals.Subtotal.Round(2)))
		}
		if !equalTo2dp(invoice.Tax, totals.Tax) {
			errs = append(errs, fmt.Errorf("tax (%s) does not match sum of line taxes (%s)", invoice.Tax, totals.Tax.Round(2)))
		}
		if !equalTo2dp(invoice.Total, totals.Total) {
			errs = append(errs, fmt.Errorf("total (%s) does not match subtotal + tax (%s)", invoice.Total, totals.Total.Round(2)))
		}
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidInvoice}, errs...)...)
	}
	return nil
}

// equalTo2dp compares amounts at presentation precision (0.01 tolerance).
func equalTo2dp(a, b decimal.Decimal) bool {
	return a.Round(2).Equal(b.Round(2))
}
