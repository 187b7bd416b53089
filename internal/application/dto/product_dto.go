package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body for POST /api/products. The code is always
// allocated server-side under the "P" prefix.
type CreateProductRequest struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxType   string          `json:"tax_type"` // SST code: 01, 02, 06
	TaxRate   decimal.Decimal `json:"tax_rate"` // percentage, 0-100
}

// UpdateProductRequest body for PUT /api/products/:id. Code is immutable.
type UpdateProductRequest struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxType   string          `json:"tax_type"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
}

// ProductResponse product in responses.
type ProductResponse struct {
	ID         string          `json:"id"`
	BusinessID string          `json:"business_id"`
	Code       string          `json:"code"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TaxType    string          `json:"tax_type"`
	TaxRate    decimal.Decimal `json:"tax_rate"`
}
