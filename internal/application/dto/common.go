package dto

// PageRequest pagination for listings.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage applies defaults when Limit/Offset are zero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// PageResponse page metadata in responses.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse HTTP error body.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AddressDTO Malaysian postal address in requests and responses.
type AddressDTO struct {
	Line        string `json:"line"`
	City        string `json:"city"`
	PostalCode  string `json:"postal_code"`
	StateCode   string `json:"state_code"`   // LHDN two-digit state code, "01".."16"
	CountryCode string `json:"country_code"` // ISO 3166-1 alpha-3, defaults to MYS
}
