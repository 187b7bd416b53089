package billing

import (
	"fmt"

	"github.com/tu-usuario/myinvois-pro/internal/application/dto"
	"github.com/tu-usuario/myinvois-pro/internal/domain"
	dombilling "github.com/tu-usuario/myinvois-pro/internal/domain/billing"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
	"github.com/tu-usuario/myinvois-pro/internal/domain/repository"
	inframyinvois "github.com/tu-usuario/myinvois-pro/internal/infrastructure/myinvois"
)

// DocumentUseCase produces the compliance document (and its renditions) for
// an issued invoice.
type DocumentUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	businessRepo repository.BusinessRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	builder      *inframyinvois.DocumentBuilderService
	xmlBuilder   *inframyinvois.XMLBuilderService
}

// NewDocumentUseCase builds the use case.
func NewDocumentUseCase(
	invoiceRepo repository.InvoiceRepository,
	businessRepo repository.BusinessRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	builder *inframyinvois.DocumentBuilderService,
	xmlBuilder *inframyinvois.XMLBuilderService,
) *DocumentUseCase {
	return &DocumentUseCase{
		invoiceRepo:  invoiceRepo,
		businessRepo: businessRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		builder:      builder,
		xmlBuilder:   xmlBuilder,
	}
}

// BuildDocument loads the invoice with its reference records and returns the
// compliance document plus its content hash. Cached totals are re-validated
// against the items before serializing; a drifted invoice never produces a
// document.
func (uc *DocumentUseCase) BuildDocument(businessID, invoiceID string) (*dto.ComplianceDocumentResponse, error) {
	in, err := uc.loadBuildInput(businessID, invoiceID)
	if err != nil {
		return nil, err
	}
	doc, err := uc.builder.Build(in)
	if err != nil {
		return nil, err
	}
	hash, err := inframyinvois.HashDocument(doc)
	if err != nil {
		return nil, err
	}
	return &dto.ComplianceDocumentResponse{
		InvoiceID: in.Invoice.ID,
		Number:    in.Invoice.Number,
		Hash:      hash,
		Document:  doc,
	}, nil
}

// BuildDocumentXML returns the UBL XML rendition and its canonical digest.
func (uc *DocumentUseCase) BuildDocumentXML(businessID, invoiceID string) (xmlData []byte, digest string, err error) {
	in, err := uc.loadBuildInput(businessID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.builder.Build(in)
	if err != nil {
		return nil, "", err
	}
	xmlData, err = uc.xmlBuilder.Build(doc)
	if err != nil {
		return nil, "", err
	}
	digest, err = uc.xmlBuilder.CanonicalDigest(xmlData)
	if err != nil {
		return nil, "", err
	}
	return xmlData, digest, nil
}

func (uc *DocumentUseCase) loadBuildInput(businessID, invoiceID string) (*inframyinvois.BuildInput, error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("document: load invoice: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}

	items, err := uc.invoiceRepo.GetItemsByInvoiceID(invoiceID)
	if err != nil {
		return nil, fmt.Errorf("document: load items: %w", err)
	}
	if err := dombilling.ValidateInvoice(inv, items); err != nil {
		return nil, err
	}

	business, err := uc.businessRepo.GetByID(businessID)
	if err != nil {
		return nil, fmt.Errorf("document: load business: %w", err)
	}
	customer, err := uc.customerRepo.GetByID(inv.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("document: load customer: %w", err)
	}

	// Products are best-effort: a deleted product degrades its lines instead
	// of blocking the document.
	var products []*entity.Product
	for _, item := range items {
		if p, err := uc.productRepo.GetByID(item.ProductID); err == nil && p != nil {
			products = append(products, p)
		}
	}

	return &inframyinvois.BuildInput{
		Invoice:  inv,
		Items:    items,
		Business: business,
		Customer: customer,
		Products: products,
	}, nil
}
