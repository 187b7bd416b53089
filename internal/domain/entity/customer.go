package entity

import "time"

// Customer represents a billable customer of the business. The party fields
// mirror Business because both sides of the compliance document share the
// same UBL Party shape.
type Customer struct {
	ID             string
	BusinessID     string
	Name           string
	TIN            string
	RegistrationNo string
	IDType         string // BRN, NRIC, PASSPORT
	ContactNumber  string
	Address        Address
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
