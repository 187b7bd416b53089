package myinvois_test

import (
	"encoding/json"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/myinvois-pro/internal/domain"
	"github.com/tu-usuario/myinvois-pro/internal/domain/billing"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
	"github.com/tu-usuario/myinvois-pro/internal/infrastructure/myinvois"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: one business, one customer, one product, an invoice with two
// identical lines (2 x 100, 10% discount, 6% tax). Engine reference values:
// per line 180.00 / 10.80, invoice 360.00 / 21.60 / 381.60.
// ──────────────────────────────────────────────────────────────────────────────

const (
	fixtureBusinessID = "0d4f3b1a-8a54-4a2e-9d8e-111111111111"
	fixtureCustomerID = "0d4f3b1a-8a54-4a2e-9d8e-222222222222"
	fixtureProductID  = "0d4f3b1a-8a54-4a2e-9d8e-333333333333"
)

func fixtureInput() *myinvois.BuildInput {
	item := func(n int) *entity.InvoiceItem {
		return &entity.InvoiceItem{
			ProductID:       fixtureProductID,
			LineNumber:      n,
			Quantity:        decimal.NewFromInt(2),
			UnitPrice:       decimal.NewFromInt(100),
			DiscountPercent: decimal.NewFromInt(10),
			TaxRatePercent:  decimal.NewFromInt(6),
		}
	}
	return &myinvois.BuildInput{
		Invoice: &entity.Invoice{
			BusinessID:   fixtureBusinessID,
			CustomerID:   fixtureCustomerID,
			Number:       "INV0042",
			Date:         time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
			Time:         "09:30",
			CurrencyCode: "MYR",
			Subtotal:     decimal.NewFromInt(360),
			Tax:          decimal.NewFromFloat(21.60),
			Total:        decimal.NewFromFloat(381.60),
			Status:       entity.StatusPending,
		},
		Items: []*entity.InvoiceItem{item(1), item(2)},
		Business: &entity.Business{
			ID:            fixtureBusinessID,
			Name:          "Kedai Maju Sdn Bhd",
			TIN:           "C1234567890",
			ContactNumber: "+60312345678",
			Address: entity.Address{
				Line:        "12 Jalan Ampang",
				City:        "Kuala Lumpur",
				PostalCode:  "50450",
				StateCode:   "14",
				CountryCode: "MYS",
			},
		},
		Customer: &entity.Customer{
			ID:            fixtureCustomerID,
			BusinessID:    fixtureBusinessID,
			Name:          "Syarikat Pelanggan Sdn Bhd",
			TIN:           "C0987654321",
			ContactNumber: "+60398765432",
			Address: entity.Address{
				Line:        "8 Lebuh Armenian",
				City:        "George Town",
				PostalCode:  "10200",
				StateCode:   "07",
				CountryCode: "MYS",
			},
		},
		Products: []*entity.Product{{
			ID:        fixtureProductID,
			Code:      "P0001",
			Name:      "Consulting hours",
			UnitPrice: decimal.NewFromInt(100),
			TaxType:   "02",
			TaxRate:   decimal.NewFromInt(6),
		}},
	}
}

func TestBuild_DocumentShape(t *testing.T) {
	doc, err := myinvois.NewDocumentBuilderService().Build(fixtureInput())
	require.NoError(t, err)

	assert.Equal(t, "urn:oasis:names:specification:ubl:schema:xsd:Invoice-2", doc.D)
	require.Len(t, doc.Invoice, 1)

	inv := doc.Invoice[0]
	assert.Equal(t, "INV0042", inv.ID[0].Value)
	assert.Equal(t, "2026-03-14", inv.IssueDate[0].Value)
	assert.Equal(t, "09:30:00Z", inv.IssueTime[0].Value)
	assert.Equal(t, "01", inv.InvoiceTypeCode[0].Value)
	assert.Equal(t, "1.0", inv.InvoiceTypeCode[0].ListVersionID)
	assert.Equal(t, "MYR", inv.DocumentCurrencyCode[0].Value)

	supplier := inv.AccountingSupplierParty[0].Party[0]
	assert.Equal(t, "C1234567890", supplier.PartyIdentification[0].ID[0].Value)
	assert.Equal(t, "TIN", supplier.PartyIdentification[0].ID[0].SchemeID)
	assert.Equal(t, "Kedai Maju Sdn Bhd", supplier.PartyLegalEntity[0].RegistrationName[0].Value)
	assert.Equal(t, "14", supplier.PostalAddress[0].CountrySubentityCode[0].Value)
	assert.Equal(t, "MYS", supplier.PostalAddress[0].Country[0].IdentificationCode[0].Value)

	require.Len(t, inv.InvoiceLine, 2)
	line := inv.InvoiceLine[0]
	assert.Equal(t, "1", line.ID[0].Value)
	assert.Equal(t, "EA", line.InvoicedQuantity[0].UnitCode)
	assert.Equal(t, "Consulting hours", line.Item[0].Description[0].Value)
	assert.Equal(t, "02", line.TaxTotal[0].TaxSubtotal[0].TaxCategory[0].ID[0].Value)
	assert.Equal(t, "OTH", line.TaxTotal[0].TaxSubtotal[0].TaxCategory[0].TaxScheme[0].ID[0].Value)
	assert.Equal(t, "2", inv.InvoiceLine[1].ID[0].Value)
}

// Two builds over identical input must produce byte-identical JSON and the
// same hash. The hash feeds audit comparison, so this is load-bearing.
func TestBuild_Idempotent(t *testing.T) {
	svc := myinvois.NewDocumentBuilderService()

	first, err := svc.Build(fixtureInput())
	require.NoError(t, err)
	second, err := svc.Build(fixtureInput())
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)

	firstHash, err := myinvois.HashDocument(first)
	require.NoError(t, err)
	secondHash, err := myinvois.HashDocument(second)
	require.NoError(t, err)
	assert.Equal(t, firstHash, secondHash)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), firstHash)
}

func TestHashDocument_SensitiveToContent(t *testing.T) {
	svc := myinvois.NewDocumentBuilderService()

	base, err := svc.Build(fixtureInput())
	require.NoError(t, err)
	baseHash, err := myinvois.HashDocument(base)
	require.NoError(t, err)

	changed := fixtureInput()
	changed.Invoice.Number = "INV0043"
	other, err := svc.Build(changed)
	require.NoError(t, err)
	otherHash, err := myinvois.HashDocument(other)
	require.NoError(t, err)

	assert.NotEqual(t, baseHash, otherHash)
}

func TestBuild_UnresolvedCustomer(t *testing.T) {
	in := fixtureInput()
	in.Customer.ID = "ffffffff-0000-0000-0000-000000000000" // no longer matches the invoice's CustomerID
	_, err := myinvois.NewDocumentBuilderService().Build(in)
	assert.ErrorIs(t, err, domain.ErrUnresolvedCustomer)

	in = fixtureInput()
	in.Customer = nil
	_, err = myinvois.NewDocumentBuilderService().Build(in)
	assert.ErrorIs(t, err, domain.ErrUnresolvedCustomer)
}

func TestBuild_UnresolvedBusiness(t *testing.T) {
	in := fixtureInput()
	in.Business = nil
	_, err := myinvois.NewDocumentBuilderService().Build(in)
	assert.ErrorIs(t, err, domain.ErrUnresolvedBusiness)
}

// A missing product degrades the line (empty description, default "01" tax
// category) but never fails the build: the item's cached pricing is enough.
func TestBuild_UnresolvedProductDegrades(t *testing.T) {
	in := fixtureInput()
	in.Products = nil

	doc, err := myinvois.NewDocumentBuilderService().Build(in)
	require.NoError(t, err)

	line := doc.Invoice[0].InvoiceLine[0]
	assert.Equal(t, "", line.Item[0].Description[0].Value)
	assert.Equal(t, "01", line.TaxTotal[0].TaxSubtotal[0].TaxCategory[0].ID[0].Value)
	assert.True(t, line.LineExtensionAmount[0].Value.Equal(decimal.NewFromInt(180)),
		"amounts come from the item's cached pricing, got %s", line.LineExtensionAmount[0].Value)
}

// LegalMonetaryTotal must agree with the engine's totals within 0.01.
func TestBuild_MonetaryTotalMatchesEngine(t *testing.T) {
	in := fixtureInput()
	doc, err := myinvois.NewDocumentBuilderService().Build(in)
	require.NoError(t, err)

	totals := billing.InvoiceTotals(in.Items)
	mt := doc.Invoice[0].LegalMonetaryTotal[0]
	tolerance := decimal.NewFromFloat(0.01)

	assert.True(t, mt.LineExtensionAmount[0].Value.Sub(totals.Subtotal).Abs().LessThanOrEqual(tolerance))
	assert.True(t, mt.TaxExclusiveAmount[0].Value.Sub(totals.Subtotal).Abs().LessThanOrEqual(tolerance))
	assert.True(t, mt.TaxInclusiveAmount[0].Value.Sub(totals.Total).Abs().LessThanOrEqual(tolerance))
	assert.True(t, mt.PayableAmount[0].Value.Sub(totals.Total).Abs().LessThanOrEqual(tolerance))
}

// ──────────────────────────────────────────────────────────────────────────────
// Wire format: key order, leaf convention, amount rendering
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentJSON_CanonicalKeyOrder(t *testing.T) {
	doc, err := myinvois.NewDocumentBuilderService().Build(fixtureInput())
	require.NoError(t, err)

	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	s := string(raw)

	// Namespace markers lead, then the Invoice array.
	assert.True(t, strings.HasPrefix(s, `{"_D":"urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"`), s[:80])

	inOrder := func(keys ...string) {
		t.Helper()
		prev := -1
		for _, k := range keys {
			idx := strings.Index(s, `"`+k+`"`)
			require.GreaterOrEqual(t, idx, 0, "key %s missing", k)
			assert.Greater(t, idx, prev, "key %s out of order", k)
			prev = idx
		}
	}
	inOrder("_D", "_A", "_B", "Invoice", "ID", "IssueDate", "IssueTime",
		"InvoiceTypeCode", "DocumentCurrencyCode", "AccountingSupplierParty",
		"AccountingCustomerParty", "TaxTotal", "LegalMonetaryTotal", "InvoiceLine")

	// Monetary leaves are bare numbers at 2dp with currency tagging.
	assert.Contains(t, s, `{"_":360.00,"currencyID":"MYR"}`)
	assert.Contains(t, s, `{"_":381.60,"currencyID":"MYR"}`)
	// Quantities keep their natural scale.
	assert.Contains(t, s, `{"_":2,"unitCode":"EA"}`)
}

// ──────────────────────────────────────────────────────────────────────────────
// XML rendition
// ──────────────────────────────────────────────────────────────────────────────

func TestXMLBuild_Rendition(t *testing.T) {
	doc, err := myinvois.NewDocumentBuilderService().Build(fixtureInput())
	require.NoError(t, err)

	xmlData, err := myinvois.NewXMLBuilderService().Build(doc)
	require.NoError(t, err)
	s := string(xmlData)

	assert.Contains(t, s, `xmlns="urn:oasis:names:specification:ubl:schema:xsd:Invoice-2"`)
	assert.Contains(t, s, "<cbc:ID>INV0042</cbc:ID>")
	assert.Contains(t, s, "<cbc:IssueTime>09:30:00Z</cbc:IssueTime>")
	assert.Contains(t, s, `<cbc:TaxAmount currencyID="MYR">21.60</cbc:TaxAmount>`)
	assert.Contains(t, s, `<cbc:InvoicedQuantity unitCode="EA">2</cbc:InvoicedQuantity>`)
	assert.Contains(t, s, "<cbc:RegistrationName>Kedai Maju Sdn Bhd</cbc:RegistrationName>")
}

// The canonical digest must not depend on indentation.
func TestXMLBuild_CanonicalDigestStable(t *testing.T) {
	doc, err := myinvois.NewDocumentBuilderService().Build(fixtureInput())
	require.NoError(t, err)

	svc := myinvois.NewXMLBuilderService()
	xmlData, err := svc.Build(doc)
	require.NoError(t, err)

	digest1, err := svc.CanonicalDigest(xmlData)
	require.NoError(t, err)
	digest2, err := svc.CanonicalDigest(xmlData)
	require.NoError(t, err)
	assert.Equal(t, digest1, digest2)
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{64}$`), digest1)
}
