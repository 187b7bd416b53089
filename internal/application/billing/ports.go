package billing

import (
	"context"

	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
	"github.com/tu-usuario/myinvois-pro/internal/domain/repository"
)

// BillingTxRunner runs a function inside a transaction with the repos invoice
// creation needs. Number allocation and the header/item inserts must share
// one transaction so that a lost race on the unique invoice number rolls the
// whole invoice back.
type BillingTxRunner interface {
	RunBilling(ctx context.Context, fn func(
		customerRepo repository.CustomerRepository,
		productRepo repository.ProductRepository,
		invoiceRepo repository.InvoiceRepository,
	) error) error
}

// InvoicePDFGenerator renders the printable rendition of an invoice.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(
		ctx context.Context,
		invoice *entity.Invoice,
		business *entity.Business,
		customer *entity.Customer,
		items []InvoiceItemForPDF,
		documentHash string,
	) ([]byte, error)
}

// InvoiceItemForPDF pairs a line item with its resolved product name.
type InvoiceItemForPDF struct {
	entity.InvoiceItem
	ProductName string
}
