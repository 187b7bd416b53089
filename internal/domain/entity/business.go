package entity

import "time"

// Identification document schemes accepted by MyInvois for party registration.
const (
	IDTypeBRN      = "BRN"      // Business Registration Number (SSM)
	IDTypeNRIC     = "NRIC"     // National Registration Identity Card
	IDTypePassport = "PASSPORT" // Foreign passport
)

// Address is a Malaysian postal address. StateCode is the two-digit LHDN
// state code ("01".."16"), CountryCode is ISO 3166-1 alpha-3 ("MYS").
type Address struct {
	Line        string
	City        string
	PostalCode  string
	StateCode   string
	CountryCode string
}

// BusinessActivity classifies the business per the MSIC 2008 catalogue.
type BusinessActivity struct {
	Category    string
	MSICCode    string
	Description string
}

// Business represents the issuing business profile (single tenant = one row).
// TIN is the LHDN Tax Identification Number used as PartyIdentification in the
// compliance document.
type Business struct {
	ID                string
	Name              string
	TIN               string
	RegistrationNo    string
	IDType            string // BRN, NRIC, PASSPORT
	ContactNumber     string
	Address           Address
	SSTRegistrationNo string // empty if not SST-registered
	Activity          BusinessActivity
	InvoicePrefix     string // e.g. "INV"; invoice numbers are prefix + 4-digit sequence
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
