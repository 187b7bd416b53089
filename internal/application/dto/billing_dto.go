package dto

import "github.com/shopspring/decimal"

// CreateCustomerRequest body for POST /api/customers.
type CreateCustomerRequest struct {
	Name           string     `json:"name"`
	TIN            string     `json:"tin"`
	RegistrationNo string     `json:"registration_no"`
	IDType         string     `json:"id_type"` // BRN, NRIC, PASSPORT
	ContactNumber  string     `json:"contact_number,omitempty"`
	Address        AddressDTO `json:"address"`
}

// CustomerResponse customer in responses.
type CustomerResponse struct {
	ID             string     `json:"id"`
	BusinessID     string     `json:"business_id"`
	Name           string     `json:"name"`
	TIN            string     `json:"tin"`
	RegistrationNo string     `json:"registration_no"`
	IDType         string     `json:"id_type"`
	ContactNumber  string     `json:"contact_number,omitempty"`
	Address        AddressDTO `json:"address"`
}

// CreateInvoiceRequest body for POST /api/invoices. The invoice number is
// always allocated server-side from the business prefix; it cannot be chosen
// by the caller.
type CreateInvoiceRequest struct {
	CustomerID   string               `json:"customer_id"`
	Date         string               `json:"date"` // YYYY-MM-DD; defaults to today
	Time         string               `json:"time"` // HH:MM; defaults to now
	CurrencyCode string               `json:"currency_code,omitempty"`
	Notes        string               `json:"notes,omitempty"`
	Terms        string               `json:"terms,omitempty"`
	Items        []InvoiceItemRequest `json:"items"`
}

// InvoiceItemRequest one line of the invoice. Zero UnitPrice/TaxRatePercent
// pull the product's defaults; an explicit value overrides them.
type InvoiceItemRequest struct {
	ProductID       string          `json:"product_id"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxRatePercent  decimal.Decimal `json:"tax_rate_percent"`
}

// InvoiceResponse invoice with items for GET /api/invoices/:id.
type InvoiceResponse struct {
	ID           string                `json:"id"`
	BusinessID   string                `json:"business_id"`
	CustomerID   string                `json:"customer_id"`
	CustomerName string                `json:"customer_name,omitempty"`
	Number       string                `json:"number"`
	Date         string                `json:"date"`
	Time         string                `json:"time"`
	CurrencyCode string                `json:"currency_code"`
	Subtotal     decimal.Decimal       `json:"subtotal"`
	Tax          decimal.Decimal       `json:"tax"`
	Total        decimal.Decimal       `json:"total"`
	Status       string                `json:"status"`
	Notes        string                `json:"notes,omitempty"`
	Terms        string                `json:"terms,omitempty"`
	Items        []InvoiceItemResponse `json:"items"`
}

// InvoiceItemResponse one line in the response, with derived amounts.
type InvoiceItemResponse struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"product_id"`
	LineNumber      int             `json:"line_number"`
	Quantity        decimal.Decimal `json:"quantity"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	TaxRatePercent  decimal.Decimal `json:"tax_rate_percent"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"tax"`
}

// UpdateInvoiceStatusRequest body for PATCH /api/invoices/:id/status.
type UpdateInvoiceStatusRequest struct {
	Status string `json:"status"` // draft, pending, paid, overdue
}

// ComplianceDocumentResponse response for GET /api/invoices/:id/document:
// the raw compliance document plus its content hash.
type ComplianceDocumentResponse struct {
	InvoiceID string `json:"invoice_id"`
	Number    string `json:"number"`
	Hash      string `json:"hash"` // SHA-256 hex over the canonical JSON
	Document  any    `json:"document"`
}
