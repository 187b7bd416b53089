package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")

	// ErrInvalidSequenceFormat: the last invoice/product number does not
	// decompose into prefix + base-10 integer.
	ErrInvalidSequenceFormat = errors.New("invalid sequence number format")

	// Serializer failures. The compliance document never invents party data,
	// so a missing business profile or customer record is fatal.
	ErrUnresolvedCustomer = errors.New("invoice customer cannot be resolved")
	ErrUnresolvedBusiness = errors.New("business profile cannot be resolved")
)
