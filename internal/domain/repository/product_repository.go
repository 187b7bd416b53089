package repository

import "github.com/tu-usuario/myinvois-pro/internal/domain/entity"

// ProductRepository is the persistence port for products.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetByCode(businessID, code string) (*entity.Product, error)
	Update(product *entity.Product) error
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Product, error)
	// ListCodes returns every product code of the business; the caller picks
	// the latest and derives the next one.
	ListCodes(businessID string) ([]string, error)
	Delete(id string) error
}
