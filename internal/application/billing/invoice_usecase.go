package billing

import (
	"github.com/tu-usuario/myinvois-pro/internal/application/dto"
	"github.com/tu-usuario/myinvois-pro/internal/domain"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
	"github.com/tu-usuario/myinvois-pro/internal/domain/repository"
)

// InvoiceUseCase read and lifecycle operations on issued invoices.
type InvoiceUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
}

// NewInvoiceUseCase builds the use case.
func NewInvoiceUseCase(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

// Get fetches an invoice with its items.
func (uc *InvoiceUseCase) Get(businessID, id string) (*dto.InvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.BusinessID != businessID {
		return nil, domain.ErrForbidden
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(id)
	if err != nil {
		return nil, err
	}
	customerName := ""
	if customer, err := uc.customerRepo.GetByID(inv.CustomerID); err == nil && customer != nil {
		customerName = customer.Name
	}
	return toInvoiceResponse(inv, items, customerName), nil
}

// List pages through the invoices of the business, headers only.
func (uc *InvoiceUseCase) List(businessID string, limit, offset int) ([]*dto.InvoiceResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	invoices, err := uc.invoiceRepo.ListByBusiness(businessID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toInvoiceResponse(inv, nil, ""))
	}
	return out, nil
}

// UpdateStatus transitions the invoice lifecycle status. Items and totals are
// immutable after creation; status is the only mutable field.
func (uc *InvoiceUseCase) UpdateStatus(businessID, id, status string) error {
	switch status {
	case entity.StatusDraft, entity.StatusPending, entity.StatusPaid, entity.StatusOverdue:
	default:
		return domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if inv == nil {
		return domain.ErrNotFound
	}
	if inv.BusinessID != businessID {
		return domain.ErrForbidden
	}
	return uc.invoiceRepo.UpdateStatus(id, status)
}
