package dto

// UpsertBusinessRequest body for POST/PUT /api/business. A fresh install has
// no business profile yet; the first save creates it.
type UpsertBusinessRequest struct {
	Name              string     `json:"name"`
	TIN               string     `json:"tin"`
	RegistrationNo    string     `json:"registration_no"`
	IDType            string     `json:"id_type"` // BRN, NRIC, PASSPORT
	ContactNumber     string     `json:"contact_number,omitempty"`
	Address           AddressDTO `json:"address"`
	SSTRegistrationNo string     `json:"sst_registration_no,omitempty"`
	MSICCategory      string     `json:"msic_category,omitempty"`
	MSICCode          string     `json:"msic_code,omitempty"`
	MSICDescription   string     `json:"msic_description,omitempty"`
	InvoicePrefix     string     `json:"invoice_prefix,omitempty"` // defaults to INV
}

// BusinessResponse business profile in responses.
type BusinessResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	TIN               string     `json:"tin"`
	RegistrationNo    string     `json:"registration_no"`
	IDType            string     `json:"id_type"`
	ContactNumber     string     `json:"contact_number,omitempty"`
	Address           AddressDTO `json:"address"`
	SSTRegistrationNo string     `json:"sst_registration_no,omitempty"`
	MSICCategory      string     `json:"msic_category,omitempty"`
	MSICCode          string     `json:"msic_code,omitempty"`
	MSICDescription   string     `json:"msic_description,omitempty"`
	InvoicePrefix     string     `json:"invoice_prefix"`
}
