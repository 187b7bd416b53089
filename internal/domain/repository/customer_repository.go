package repository

import "github.com/tu-usuario/myinvois-pro/internal/domain/entity"

// CustomerRepository is the persistence port for customers.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	Update(customer *entity.Customer) error
	ListByBusiness(businessID string, limit, offset int) ([]*entity.Customer, error)
	Delete(id string) error
}
