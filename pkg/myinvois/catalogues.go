// Package myinvois contains code lists aligned to the LHDN MyInvois e-Invoice
// guideline (Malaysia) used across the billing domain and the compliance
// document serializer.
package myinvois

// =============================================================================
// Currency and country defaults
// =============================================================================

const (
	// CurrencyMYR is the default document currency (Malaysian Ringgit).
	CurrencyMYR = "MYR"
	// CountryMYS is the ISO 3166-1 alpha-3 code carried in every PostalAddress.
	CountryMYS = "MYS"
)

// =============================================================================
// Tax types (SST) — per-line TaxCategory/ID in the compliance document
// =============================================================================

const (
	TaxTypeSales         = "01" // Sales Tax
	TaxTypeService       = "02" // Service Tax
	TaxTypeNotApplicable = "06" // Not Applicable
)

// TaxTypeNames maps SST tax type codes to display names.
var TaxTypeNames = map[string]string{
	TaxTypeSales:         "Sales Tax",
	TaxTypeService:       "Service Tax",
	TaxTypeNotApplicable: "Not Applicable",
}

// DefaultTaxType is written into an invoice line whose product can no longer
// be resolved. Deliberate degradation: cached line pricing keeps the line
// billable after product deletion.
const DefaultTaxType = TaxTypeSales

// =============================================================================
// Party identification
// =============================================================================

const (
	// SchemeTIN is the PartyIdentification scheme for the LHDN Tax
	// Identification Number.
	SchemeTIN = "TIN"
)

// =============================================================================
// Malaysian state codes (CountrySubentityCode, "01".."16")
// =============================================================================

var MalaysianStates = map[string]string{
	"01": "Johor",
	"02": "Kedah",
	"03": "Kelantan",
	"04": "Melaka",
	"05": "Negeri Sembilan",
	"06": "Pahang",
	"07": "Pulau Pinang",
	"08": "Perak",
	"09": "Perlis",
	"10": "Selangor",
	"11": "Terengganu",
	"12": "Sabah",
	"13": "Sarawak",
	"14": "Kuala Lumpur",
	"15": "Labuan",
	"16": "Putrajaya",
}

// ValidStateCode reports whether code is a known two-digit state code.
func ValidStateCode(code string) bool {
	_, ok := MalaysianStates[code]
	return ok
}

// =============================================================================
// Units and document type codes
// =============================================================================

const (
	// UnitEach is the fixed InvoicedQuantity unit code.
	UnitEach = "EA"

	// InvoiceTypeCode "01" = standard invoice; listVersionID of the code list.
	InvoiceTypeCode        = "01"
	InvoiceTypeListVersion = "1.0"

	// Tax scheme constants (UN/ECE 5153 "other").
	TaxSchemeID         = "OTH"
	TaxSchemeAgencyID   = "6"
	TaxSchemeAgencyCode = "UN/ECE 5153"

	// Item commodity classification placeholder used by the document.
	ItemClassificationCode   = "001"
	ItemClassificationListID = "CLASS"
)
