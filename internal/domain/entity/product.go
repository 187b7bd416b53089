package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a sellable product or service. Code is unique per
// business and strictly increasing within the "P" prefix (P0001, P0002, ...).
// UnitPrice, TaxType and TaxRate are defaults copied into new invoice line
// items at selection time; issued invoices never read live product state
// again, so later edits do not retroactively change them.
type Product struct {
	ID         string
	BusinessID string
	Code       string
	Name       string
	UnitPrice  decimal.Decimal
	TaxType    string          // SST tax type code: 01, 02, 06
	TaxRate    decimal.Decimal // percentage, 0-100
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
