package repository

import "github.com/tu-usuario/myinvois-pro/internal/domain/entity"

// InvoiceRepository is the persistence port for invoice headers and items.
type InvoiceRepository interface {
	Create(invoice *entity.Invoice) error
	CreateItem(item *entity.InvoiceItem) error
	GetByID(id string) (*entity.Invoice, error)
	GetItemsByInvoiceID(invoiceID string) ([]*entity.InvoiceItem, error)
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Invoice, error)
	// ListNumbers returns every invoice number of the business; the caller
	// picks the latest and derives the next one inside the same transaction.
	ListNumbers(businessID string) ([]string, error)
	UpdateStatus(id, status string) error
}
