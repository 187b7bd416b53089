// Package myinvois builds the LHDN MyInvois compliance document for an
// invoice: a UBL-flavored nested JSON structure plus a deterministic content
// hash used for audit/integrity comparison.
//
// The document is modeled as typed structs, not maps: encoding/json emits
// struct fields in declaration order, so the serialized form has a fixed,
// canonical key order and hashing it is deterministic. Field names, nesting
// depth and the {"_": value, ...attributes} leaf convention are contractual —
// they must match the authority schema byte for byte, including which fields
// are arrays-of-one.
package myinvois

import (
	"github.com/shopspring/decimal"
)

// Official UBL 2.1 namespace URNs, carried as the _D/_A/_B markers.
const (
	NsInvoice = "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"
	NsCac     = "urn:oasis:names:specification:ubl:schema:xsd:CommonAggregateComponents-2"
	NsCbc     = "urn:oasis:names:specification:ubl:schema:xsd:CommonBasicComponents-2"
)

// Amount is a monetary leaf value. It marshals as a bare JSON number rounded
// to 2 decimals: rounding happens here, at the serialization boundary, never
// inside the calculation engine.
type Amount struct {
	decimal.Decimal
}

// NewAmount wraps a decimal for serialization.
func NewAmount(d decimal.Decimal) Amount { return Amount{d} }

// MarshalJSON emits the amount as an unquoted number with exactly 2 decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.Round(2).StringFixed(2)), nil
}

// Quantity is a numeric leaf that keeps its natural scale (no 2dp forcing).
type Quantity struct {
	decimal.Decimal
}

// MarshalJSON emits the quantity as an unquoted number.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.Decimal.String()), nil
}

// TextNode is the plain {"_": "value"} leaf.
type TextNode struct {
	Value string `json:"_"`
}

// CodeNode is a coded leaf with its optional scheme/list attributes.
type CodeNode struct {
	Value          string `json:"_"`
	ListVersionID  string `json:"listVersionID,omitempty"`
	SchemeID       string `json:"schemeID,omitempty"`
	SchemeAgencyID string `json:"schemeAgencyID,omitempty"`
	ListID         string `json:"listID,omitempty"`
}

// AmountNode is a monetary leaf. Every amount node carries its currencyID —
// the dual tagging is mandatory for all amounts, not just totals.
type AmountNode struct {
	Value      Amount `json:"_"`
	CurrencyID string `json:"currencyID"`
}

// QuantityNode is the InvoicedQuantity leaf with its fixed unit code.
type QuantityNode struct {
	Value    Quantity `json:"_"`
	UnitCode string   `json:"unitCode"`
}

// InvoiceDocument is the top-level compliance document: namespace markers and
// a single-element Invoice array.
type InvoiceDocument struct {
	D       string        `json:"_D"`
	A       string        `json:"_A"`
	B       string        `json:"_B"`
	Invoice []InvoiceBody `json:"Invoice"`
}

// InvoiceBody is the invoice element inside the document.
type InvoiceBody struct {
	ID                      []TextNode      `json:"ID"`
	IssueDate               []TextNode      `json:"IssueDate"`
	IssueTime               []TextNode      `json:"IssueTime"`
	InvoiceTypeCode         []CodeNode      `json:"InvoiceTypeCode"`
	DocumentCurrencyCode    []TextNode      `json:"DocumentCurrencyCode"`
	AccountingSupplierParty []PartyWrapper  `json:"AccountingSupplierParty"`
	AccountingCustomerParty []PartyWrapper  `json:"AccountingCustomerParty"`
	TaxTotal                []TaxTotal      `json:"TaxTotal"`
	LegalMonetaryTotal      []MonetaryTotal `json:"LegalMonetaryTotal"`
	InvoiceLine             []InvoiceLine   `json:"InvoiceLine"`
}

// PartyWrapper wraps the Party block of a supplier/customer element.
type PartyWrapper struct {
	Party []Party `json:"Party"`
}

// Party identifies one side of the transaction.
type Party struct {
	PartyIdentification []PartyIdentification `json:"PartyIdentification"`
	PartyLegalEntity    []PartyLegalEntity    `json:"PartyLegalEntity"`
	PostalAddress       []PostalAddress       `json:"PostalAddress"`
	Contact             []Contact             `json:"Contact"`
}

type PartyIdentification struct {
	ID []CodeNode `json:"ID"`
}

type PartyLegalEntity struct {
	RegistrationName []TextNode `json:"RegistrationName"`
}

type PostalAddress struct {
	CityName             []TextNode    `json:"CityName"`
	PostalZone           []TextNode    `json:"PostalZone"`
	CountrySubentityCode []TextNode    `json:"CountrySubentityCode"`
	AddressLine          []AddressLine `json:"AddressLine"`
	Country              []Country     `json:"Country"`
}

type AddressLine struct {
	Line []TextNode `json:"Line"`
}

type Country struct {
	IdentificationCode []TextNode `json:"IdentificationCode"`
}

type Contact struct {
	Telephone []TextNode `json:"Telephone"`
}

// TaxTotal carries the invoice-level tax amount; per line it also nests the
// TaxSubtotal breakdown.
type TaxTotal struct {
	TaxAmount   []AmountNode  `json:"TaxAmount"`
	TaxSubtotal []TaxSubtotal `json:"TaxSubtotal,omitempty"`
}

type TaxSubtotal struct {
	TaxableAmount []AmountNode  `json:"TaxableAmount"`
	TaxAmount     []AmountNode  `json:"TaxAmount"`
	TaxCategory   []TaxCategory `json:"TaxCategory"`
}

type TaxCategory struct {
	ID        []TextNode  `json:"ID"`
	TaxScheme []TaxScheme `json:"TaxScheme"`
}

type TaxScheme struct {
	ID []CodeNode `json:"ID"`
}

// MonetaryTotal is the LegalMonetaryTotal block; all four amounts are
// currency-tagged with the invoice's currency.
type MonetaryTotal struct {
	LineExtensionAmount []AmountNode `json:"LineExtensionAmount"`
	TaxExclusiveAmount  []AmountNode `json:"TaxExclusiveAmount"`
	TaxInclusiveAmount  []AmountNode `json:"TaxInclusiveAmount"`
	PayableAmount       []AmountNode `json:"PayableAmount"`
}

// InvoiceLine is one line item entry, 1-based ID.
type InvoiceLine struct {
	ID                  []TextNode     `json:"ID"`
	InvoicedQuantity    []QuantityNode `json:"InvoicedQuantity"`
	LineExtensionAmount []AmountNode   `json:"LineExtensionAmount"`
	TaxTotal            []TaxTotal     `json:"TaxTotal"`
	Item                []Item         `json:"Item"`
	Price               []Price        `json:"Price"`
}

type Item struct {
	Description             []TextNode                `json:"Description"`
	CommodityClassification []CommodityClassification `json:"CommodityClassification"`
}

type CommodityClassification struct {
	ItemClassificationCode []CodeNode `json:"ItemClassificationCode"`
}

type Price struct {
	PriceAmount []AmountNode `json:"PriceAmount"`
}
