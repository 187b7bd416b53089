package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/myinvois-pro/internal/domain/billing"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
)

// consistentInvoice builds an invoice whose cached totals match two reference
// lines (subtotal 360, tax 21.60, total 381.60).
func consistentInvoice() (*entity.Invoice, []*entity.InvoiceItem) {
	items := []*entity.InvoiceItem{referenceItem(), referenceItem()}
	items[0].LineNumber = 1
	items[1].LineNumber = 2
	inv := &entity.Invoice{
		Number:   "INV0001",
		Subtotal: decimal.NewFromInt(360),
		Tax:      decimal.NewFromFloat(21.60),
		Total:    decimal.NewFromFloat(381.60),
	}
	return inv, items
}

func TestValidateInvoice_NilInvoice(t *testing.T) {
	err := billing.ValidateInvoice(nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, billing.ErrInvalidInvoice)
}

// Comparison happens at presentation precision: a cached total within half a
// cent of the recomputed aggregate is still consistent.
func TestValidateInvoice_ToleratesSubCentRounding(t *testing.T) {
	inv, items := consistentInvoice()
	inv.Total = inv.Total.Add(decimal.NewFromFloat(0.004))
	assert.NoError(t, billing.ValidateInvoice(inv, items))
}

// errors.Join keeps every failure reachable: one pass reports all problems.
func TestValidateInvoice_ReportsAllFailures(t *testing.T) {
	inv, items := consistentInvoice()
	items[0].Quantity = decimal.NewFromInt(-1)
	items[1].TaxRatePercent = decimal.NewFromInt(-5)
	inv.Subtotal = decimal.Zero
	err := billing.ValidateInvoice(inv, items)
	require.Error(t, err)

	assert.ErrorIs(t, err, billing.ErrInvalidInvoice)
	assert.Contains(t, err.Error(), "quantity is negative")
	assert.Contains(t, err.Error(), "tax rate out of 0-100 range")
	assert.Contains(t, err.Error(), "subtotal")
}
