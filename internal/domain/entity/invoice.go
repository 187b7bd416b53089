package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice lifecycle statuses. An invoice is created as pending (or draft) and
// later transitions only change Status; items are immutable after creation.
const (
	StatusDraft   = "draft"
	StatusPending = "pending"
	StatusPaid    = "paid"
	StatusOverdue = "overdue"
)

// Invoice represents the header of an issued invoice.
//
// Subtotal, Tax and Total are derived values cached from the calculation
// engine; they must always equal the aggregates recomputed from the items
// (billing.ValidateInvoice enforces this before serialization).
type Invoice struct {
	ID           string
	BusinessID   string
	CustomerID   string
	Number       string // prefix + zero-padded sequence, e.g. INV0007
	Date         time.Time
	Time         string // issue time of day, "HH:MM" (minute precision)
	CurrencyCode string
	Subtotal     decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
	Status       string // draft, pending, paid, overdue
	Notes        string
	Terms        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// InvoiceItem represents one priced line on an invoice. Pricing fields are
// copied from the product at selection time; ProductID is kept only to
// resolve the description and tax category when serializing, and may dangle
// if the product was deleted later.
type InvoiceItem struct {
	ID              string
	InvoiceID       string
	ProductID       string
	LineNumber      int // 1-based position on the invoice
	Quantity        decimal.Decimal
	UnitPrice       decimal.Decimal
	DiscountPercent decimal.Decimal // 0-100
	TaxRatePercent  decimal.Decimal // 0-100
}
