package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/myinvois-pro/internal/domain/billing"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Reference vector: {quantity: 2, unitPrice: 100, discount: 10%, tax: 6%}
//
//	lineSubtotal = 2 * 100 * (1 - 10/100) = 180.00
//	lineTax      = 180.00 * 6/100        = 10.80
//
// Two such lines: subtotal 360.00, tax 21.60, total 381.60.
// ──────────────────────────────────────────────────────────────────────────────

func referenceItem() *entity.InvoiceItem {
	return &entity.InvoiceItem{
		Quantity:        decimal.NewFromInt(2),
		UnitPrice:       decimal.NewFromInt(100),
		DiscountPercent: decimal.NewFromInt(10),
		TaxRatePercent:  decimal.NewFromInt(6),
	}
}

func TestLineSubtotal_ReferenceVector(t *testing.T) {
	got := billing.LineSubtotal(referenceItem())
	assert.True(t, got.Equal(decimal.NewFromInt(180)),
		"2 * 100 with 10%% discount must be 180, got %s", got)
}

func TestLineTax_ReferenceVector(t *testing.T) {
	got := billing.LineTax(referenceItem())
	want := decimal.NewFromFloat(10.80)
	assert.True(t, got.Equal(want), "6%% of 180 must be 10.80, got %s", got)
}

func TestInvoiceTotals_TwoReferenceLines(t *testing.T) {
	items := []*entity.InvoiceItem{referenceItem(), referenceItem()}
	totals := billing.InvoiceTotals(items)

	assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(360)), "subtotal, got %s", totals.Subtotal)
	assert.True(t, totals.Tax.Equal(decimal.NewFromFloat(21.60)), "tax, got %s", totals.Tax)
	assert.True(t, totals.Total.Equal(decimal.NewFromFloat(381.60)), "total, got %s", totals.Total)
}

// Total must always equal subtotal + tax, whatever the line mix.
func TestInvoiceTotals_TotalIsSubtotalPlusTax(t *testing.T) {
	items := []*entity.InvoiceItem{
		{Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromFloat(19.99), TaxRatePercent: decimal.NewFromInt(10)},
		{Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromFloat(250), DiscountPercent: decimal.NewFromFloat(12.5), TaxRatePercent: decimal.NewFromInt(6)},
		{Quantity: decimal.NewFromInt(7), UnitPrice: decimal.NewFromFloat(0.35)},
	}
	totals := billing.InvoiceTotals(items)
	assert.True(t, totals.Total.Equal(totals.Subtotal.Add(totals.Tax)))
}

// Zero quantity or zero price zeroes the whole line, tax included.
func TestLineSubtotal_ZeroQuantityOrPrice(t *testing.T) {
	zeroQty := &entity.InvoiceItem{UnitPrice: decimal.NewFromInt(100), TaxRatePercent: decimal.NewFromInt(6)}
	zeroPrice := &entity.InvoiceItem{Quantity: decimal.NewFromInt(5), TaxRatePercent: decimal.NewFromInt(6)}

	assert.True(t, billing.LineSubtotal(zeroQty).IsZero())
	assert.True(t, billing.LineTax(zeroQty).IsZero())
	assert.True(t, billing.LineSubtotal(zeroPrice).IsZero())
	assert.True(t, billing.LineTax(zeroPrice).IsZero())
}

// Unset fields are decimal zero values: the engine computes 0, never panics.
// This is the documented leniency policy; validation happens upstream.
func TestLineSubtotal_UnsetFieldsDefaultToZero(t *testing.T) {
	var item entity.InvoiceItem
	assert.True(t, billing.LineSubtotal(&item).IsZero())
	assert.True(t, billing.LineTax(&item).IsZero())
}

func TestInvoiceTotals_EmptyItems(t *testing.T) {
	totals := billing.InvoiceTotals(nil)
	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.Tax.IsZero())
	assert.True(t, totals.Total.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// ValidateInvoice — derived-total invariant
// ──────────────────────────────────────────────────────────────────────────────

func TestValidateInvoice_CoherentTotalsPass(t *testing.T) {
	items := []*entity.InvoiceItem{referenceItem(), referenceItem()}
	totals := billing.InvoiceTotals(items)
	inv := &entity.Invoice{
		Subtotal: totals.Subtotal,
		Tax:      totals.Tax,
		Total:    totals.Total,
	}
	require.NoError(t, billing.ValidateInvoice(inv, items))
}

func TestValidateInvoice_StaleCachedTotalFails(t *testing.T) {
	items := []*entity.InvoiceItem{referenceItem()}
	inv := &entity.Invoice{
		Subtotal: decimal.NewFromInt(180),
		Tax:      decimal.NewFromFloat(10.80),
		Total:    decimal.NewFromInt(999), // cached value drifted from the items
	}
	err := billing.ValidateInvoice(inv, items)
	require.Error(t, err)
	assert.ErrorIs(t, err, billing.ErrInvalidInvoice)
}

func TestValidateInvoice_NoItemsFails(t *testing.T) {
	err := billing.ValidateInvoice(&entity.Invoice{}, nil)
	assert.ErrorIs(t, err, billing.ErrInvalidInvoice)
}

func TestValidateInvoice_DiscountOutOfRangeFails(t *testing.T) {
	item := referenceItem()
	item.DiscountPercent = decimal.NewFromInt(150)
	inv := &entity.Invoice{}
	err := billing.ValidateInvoice(inv, []*entity.InvoiceItem{item})
	assert.Error(t, err)
}
