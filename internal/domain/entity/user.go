package entity

import "time"

// Valid roles for User.
const (
	RoleAdmin  = "admin"
	RoleBiller = "biller"
)

// User represents a system user (belongs to a Business).
type User struct {
	ID           string
	BusinessID   string
	Email        string
	PasswordHash string // bcrypt hash, never plaintext past registration
	Name         string
	Role         string // admin, biller
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
