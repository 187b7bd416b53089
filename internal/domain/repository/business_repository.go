package repository

import "github.com/tu-usuario/myinvois-pro/internal/domain/entity"

// BusinessRepository is the persistence port for the issuing business profile.
type BusinessRepository interface {
	Create(business *entity.Business) error
	GetByID(id string) (*entity.Business, error)
	GetByTIN(tin string) (*entity.Business, error)
	Update(business *entity.Business) error
}
