package repository

import "github.com/tu-usuario/myinvois-pro/internal/domain/entity"

// UserRepository is the persistence port for application users.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
}
