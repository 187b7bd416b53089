package billing

import (
	"context"
	"fmt"

	"github.com/tu-usuario/myinvois-pro/internal/domain"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
	"github.com/tu-usuario/myinvois-pro/internal/domain/repository"
	inframyinvois "github.com/tu-usuario/myinvois-pro/internal/infrastructure/myinvois"
)

// PDFUseCase generates the printable rendition of an invoice, stamped with
// the compliance document's content hash.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	businessRepo repository.BusinessRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	builder      *inframyinvois.DocumentBuilderService
	generator    InvoicePDFGenerator
}

// NewPDFUseCase builds the use case.
func NewPDFUseCase(
	invoiceRepo repository.InvoiceRepository,
	businessRepo repository.BusinessRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	builder *inframyinvois.DocumentBuilderService,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo:  invoiceRepo,
		businessRepo: businessRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		builder:      builder,
		generator:    generator,
	}
}

// DownloadInvoicePDF loads the invoice data, computes the document hash and
// renders the PDF.
//
// Returns:
//   - (pdfBytes, filename, nil) on success.
//   - domain.ErrNotFound  when the invoice does not exist.
//   - domain.ErrForbidden when the invoice belongs to another business.
func (uc *PDFUseCase) DownloadInvoicePDF(ctx context.Context, businessID, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load invoice: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	if inv.BusinessID != businessID {
		return nil, "", domain.ErrForbidden
	}

	business, err := uc.businessRepo.GetByID(businessID)
	if err != nil || business == nil {
		return nil, "", fmt.Errorf("pdf: load business: %w", err)
	}
	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil || customer == nil {
		return nil, "", fmt.Errorf("pdf: load customer: %w", err)
	}
	rawItems, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: load items: %w", err)
	}

	enriched := make([]InvoiceItemForPDF, 0, len(rawItems))
	var products []*entity.Product
	for _, item := range rawItems {
		name := ""
		if p, pErr := uc.productRepo.GetByID(item.ProductID); pErr == nil && p != nil {
			name = p.Name
			products = append(products, p)
		}
		enriched = append(enriched, InvoiceItemForPDF{
			InvoiceItem: *item,
			ProductName: name,
		})
	}

	// Hash of the compliance document, printed on the PDF for audit.
	doc, err := uc.builder.Build(&inframyinvois.BuildInput{
		Invoice:  inv,
		Items:    rawItems,
		Business: business,
		Customer: customer,
		Products: products,
	})
	if err != nil {
		return nil, "", err
	}
	hash, err := inframyinvois.HashDocument(doc)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GenerateInvoicePDF(ctx, inv, business, customer, enriched, hash)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: render: %w", err)
	}
	return pdfBytes, fmt.Sprintf("invoice-%s.pdf", inv.Number), nil
}
