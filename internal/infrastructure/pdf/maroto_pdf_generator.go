// Package pdf renders the printable rendition of an e-Invoice.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Business name + TIN  │  Invoice number + date      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SUPPLIER: address / phone                                  │
//	│  BUYER: name + TIN + contact                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Qty | Description | Unit Price | Disc% | SST% | Amt │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALS: Subtotal / SST / TOTAL DUE                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: document hash + QR + legend                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	appbilling "github.com/tu-usuario/myinvois-pro/internal/application/billing"
	dombilling "github.com/tu-usuario/myinvois-pro/internal/domain/billing"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
)

// ── Color palette ─────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// ringgit formats amounts with thousand separators (2,450.00).
var ringgit = message.NewPrinter(language.English)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implements billing.InvoicePDFGenerator using Maroto v2.
type MarotoPDFGenerator struct {
	// PortalBaseURL feeds the validation QR in the footer.
	portalBaseURL string
}

// NewMarotoPDFGenerator builds the generator.
func NewMarotoPDFGenerator(portalBaseURL string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{portalBaseURL: portalBaseURL}
}

// GenerateInvoicePDF renders the PDF and returns its bytes.
func (g *MarotoPDFGenerator) GenerateInvoicePDF(
	_ context.Context,
	invoice *entity.Invoice,
	business *entity.Business,
	customer *entity.Customer,
	items []appbilling.InvoiceItemForPDF,
	documentHash string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("e-Invoice", true).
		WithAuthor(business.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(invoice, business))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(business))
	m.AddRows(buyerRow(customer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(invoice))

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range g.footerRows(invoice, documentHash) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

// headerRow: business name + TIN (left), invoice number + date (right).
func headerRow(invoice *entity.Invoice, business *entity.Business) core.Row {
	date := invoice.Date.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(business.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("TIN: "+business.TIN, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("e-INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(invoice.Number, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Date: "+date+"  "+invoice.Time, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// supplierRow: issuing business details.
func supplierRow(business *entity.Business) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("SUPPLIER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Address: %s, %s %s   |   Tel: %s   |   Reg. No: %s",
				nonEmpty(business.Address.Line, "—"),
				business.Address.PostalCode, business.Address.City,
				nonEmpty(business.ContactNumber, "—"),
				nonEmpty(business.RegistrationNo, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// buyerRow: customer details.
func buyerRow(customer *entity.Customer) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("BUYER", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(customer.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("TIN: %s   |   %s: %s   |   Tel: %s",
				customer.TIN,
				customer.IDType, nonEmpty(customer.RegistrationNo, "—"),
				nonEmpty(customer.ContactNumber, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: item table header.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qty", 1, align.Center),
		h("Description", 4, align.Left),
		h("Unit Price", 2, align.Right),
		h("Disc%", 1, align.Center),
		h("SST%", 1, align.Center),
		h("Amount", 3, align.Right),
	)
}

// tableItemRows: one row per line item, amounts from the calculation engine.
func tableItemRows(items []appbilling.InvoiceItemForPDF) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i := range items {
		item := &items[i]
		subtotal := dombilling.LineSubtotal(&item.InvoiceItem)
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				item.Quantity.String(),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				nonEmpty(item.ProductName, "(item)"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"RM "+formatAmount(item.UnitPrice),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				item.DiscountPercent.StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(1).Add(text.New(
				item.TaxRatePercent.StringFixed(0)+"%",
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				"RM "+formatAmount(subtotal),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalsRow: totals block aligned right.
func totalsRow(invoice *entity.Invoice) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(3).Add(
			label("Subtotal:"),
			label("SST:"),
			grandLabel("TOTAL DUE:"),
		),
		col.New(3).Add(
			value("RM "+formatAmount(invoice.Subtotal)),
			value("RM "+formatAmount(invoice.Tax)),
			grandValue("RM "+formatAmount(invoice.Total)),
		),
		col.New(3),
	)
}

// footerRows: document hash split into chunks + validation QR + legend.
func (g *MarotoPDFGenerator) footerRows(invoice *entity.Invoice, documentHash string) []core.Row {
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("e-INVOICE DOCUMENT DETAILS", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}

	if documentHash != "" {
		rows = append(rows, row.New(5).Add(col.New(12).Add(
			text.New("Document hash (SHA-256):", props.Text{
				Style: fontstyle.Bold, Size: 7, Top: 1,
			}),
		)))
		for _, chunk := range splitEvery(documentHash, 80) {
			rows = append(rows, row.New(4).Add(col.New(12).Add(
				text.New(chunk, props.Text{Size: 6.5, Color: colorGray, Top: 0.5, Left: 2}),
			)))
		}
	}

	rows = append(rows, row.New(3))

	qrData := fmt.Sprintf("%s|%s|%s", invoice.Number, invoice.Date.Format("2006-01-02"), documentHash)
	if g.portalBaseURL != "" {
		qrData = g.portalBaseURL + "/validate?doc=" + documentHash
	}
	rows = append(rows, row.New(50).Add(
		col.New(4).Add(code.NewQr(qrData, props.Rect{
			Percent: 95,
			Center:  true,
		})),
		col.New(8).Add(
			text.New("Scan the QR code to validate\nthis invoice on the MyInvois portal.", props.Text{
				Size: 8, Top: 4, Left: 3, Color: colorGray,
			}),
			text.New("e-INVOICE", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 22,
				Left: 3, Color: colorPrimary,
			}),
		),
	))

	rows = append(rows, row.New(8).Add(col.New(12).Add(
		text.New(
			"This e-Invoice was generated under the LHDN MyInvois guideline. "+
				"Keep this document as your tax record.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	)))

	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatAmount renders a 2dp amount with thousand separators (2,450.00).
func formatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return ringgit.Sprintf("%.2f", f)
}

// splitEvery splits s into chunks of at most n characters.
func splitEvery(s string, n int) []string {
	var parts []string
	for len(s) > n {
		parts = append(parts, s[:n])
		s = s[n:]
	}
	if s != "" {
		parts = append(parts, s)
	}
	return parts
}
