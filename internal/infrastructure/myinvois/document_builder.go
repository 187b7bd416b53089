package myinvois

import (
	"fmt"
	"strconv"

	"github.com/tu-usuario/myinvois-pro/internal/domain"
	"github.com/tu-usuario/myinvois-pro/internal/domain/billing"
	"github.com/tu-usuario/myinvois-pro/internal/domain/entity"
	pkgmyinvois "github.com/tu-usuario/myinvois-pro/pkg/myinvois"
)

// BuildInput groups the invoice with the reference records the document needs.
// Customers and Products are candidate sets: the builder resolves the
// invoice's foreign keys against them and never reaches into ambient state.
type BuildInput struct {
	Invoice  *entity.Invoice
	Items    []*entity.InvoiceItem
	Business *entity.Business
	Customer *entity.Customer
	Products []*entity.Product
}

// DocumentBuilderService maps an invoice into the compliance document.
type DocumentBuilderService struct{}

// NewDocumentBuilderService creates the service.
func NewDocumentBuilderService() *DocumentBuilderService {
	return &DocumentBuilderService{}
}

// Build produces the compliance document for an invoice.
//
// Party data is strict: a nil business or a customer that does not match the
// invoice's CustomerID fails with ErrUnresolvedBusiness/ErrUnresolvedCustomer
// rather than emitting a placeholder party block. Product references are
// lenient: an item whose product is missing from Products degrades to an
// empty description and the default tax category, because the item carries
// its own cached pricing.
func (s *DocumentBuilderService) Build(in *BuildInput) (*InvoiceDocument, error) {
	if in == nil || in.Invoice == nil {
		return nil, fmt.Errorf("myinvois: nil invoice in build input")
	}
	if in.Business == nil {
		return nil, domain.ErrUnresolvedBusiness
	}
	if in.Customer == nil || in.Customer.ID != in.Invoice.CustomerID {
		return nil, fmt.Errorf("%w: invoice %s references customer %s", domain.ErrUnresolvedCustomer, in.Invoice.Number, in.Invoice.CustomerID)
	}

	currency := in.Invoice.CurrencyCode
	if currency == "" {
		currency = pkgmyinvois.CurrencyMYR
	}

	products := make(map[string]*entity.Product, len(in.Products))
	for _, p := range in.Products {
		products[p.ID] = p
	}

	lines := make([]InvoiceLine, 0, len(in.Items))
	for i, item := range in.Items {
		lines = append(lines, buildInvoiceLine(i+1, item, products[item.ProductID], currency))
	}

	body := InvoiceBody{
		ID:        []TextNode{{Value: in.Invoice.Number}},
		IssueDate: []TextNode{{Value: in.Invoice.Date.Format("2006-01-02")}},
		// Stored time is minute precision; seconds are forced to 00 and the
		// literal UTC marker appended. True timezone is not tracked.
		IssueTime: []TextNode{{Value: in.Invoice.Time + ":00Z"}},
		InvoiceTypeCode: []CodeNode{{
			Value:         pkgmyinvois.InvoiceTypeCode,
			ListVersionID: pkgmyinvois.InvoiceTypeListVersion,
		}},
		DocumentCurrencyCode: []TextNode{{Value: currency}},
		AccountingSupplierParty: []PartyWrapper{{Party: []Party{buildParty(
			in.Business.TIN, in.Business.Name, in.Business.ContactNumber, in.Business.Address,
		)}}},
		AccountingCustomerParty: []PartyWrapper{{Party: []Party{buildParty(
			in.Customer.TIN, in.Customer.Name, in.Customer.ContactNumber, in.Customer.Address,
		)}}},
		TaxTotal: []TaxTotal{{
			TaxAmount: []AmountNode{{Value: NewAmount(in.Invoice.Tax), CurrencyID: currency}},
		}},
		LegalMonetaryTotal: []MonetaryTotal{{
			LineExtensionAmount: []AmountNode{{Value: NewAmount(in.Invoice.Subtotal), CurrencyID: currency}},
			TaxExclusiveAmount:  []AmountNode{{Value: NewAmount(in.Invoice.Subtotal), CurrencyID: currency}},
			TaxInclusiveAmount:  []AmountNode{{Value: NewAmount(in.Invoice.Total), CurrencyID: currency}},
			PayableAmount:       []AmountNode{{Value: NewAmount(in.Invoice.Total), CurrencyID: currency}},
		}},
		InvoiceLine: lines,
	}

	return &InvoiceDocument{
		D:       NsInvoice,
		A:       NsCac,
		B:       NsCbc,
		Invoice: []InvoiceBody{body},
	}, nil
}

func buildParty(tin, name, telephone string, addr entity.Address) Party {
	country := addr.CountryCode
	if country == "" {
		country = pkgmyinvois.CountryMYS
	}
	return Party{
		PartyIdentification: []PartyIdentification{{
			ID: []CodeNode{{Value: tin, SchemeID: pkgmyinvois.SchemeTIN}},
		}},
		PartyLegalEntity: []PartyLegalEntity{{
			RegistrationName: []TextNode{{Value: name}},
		}},
		PostalAddress: []PostalAddress{{
			CityName:             []TextNode{{Value: addr.City}},
			PostalZone:           []TextNode{{Value: addr.PostalCode}},
			CountrySubentityCode: []TextNode{{Value: addr.StateCode}},
			AddressLine:          []AddressLine{{Line: []TextNode{{Value: addr.Line}}}},
			Country:              []Country{{IdentificationCode: []TextNode{{Value: country}}}},
		}},
		Contact: []Contact{{
			Telephone: []TextNode{{Value: telephone}},
		}},
	}
}

// buildInvoiceLine emits one line entry. Amounts come from the calculation
// engine on the item's own cached pricing, so a deleted product never changes
// the money; only description and tax category degrade.
func buildInvoiceLine(lineNum int, item *entity.InvoiceItem, product *entity.Product, currency string) InvoiceLine {
	subtotal := billing.LineSubtotal(item)
	tax := billing.LineTax(item)

	description := ""
	taxType := pkgmyinvois.DefaultTaxType
	if product != nil {
		description = product.Name
		taxType = product.TaxType
	}

	return InvoiceLine{
		ID: []TextNode{{Value: strconv.Itoa(lineNum)}},
		InvoicedQuantity: []QuantityNode{{
			Value:    Quantity{item.Quantity},
			UnitCode: pkgmyinvois.UnitEach,
		}},
		LineExtensionAmount: []AmountNode{{Value: NewAmount(subtotal), CurrencyID: currency}},
		TaxTotal: []TaxTotal{{
			TaxAmount: []AmountNode{{Value: NewAmount(tax), CurrencyID: currency}},
			TaxSubtotal: []TaxSubtotal{{
				TaxableAmount: []AmountNode{{Value: NewAmount(subtotal), CurrencyID: currency}},
				TaxAmount:     []AmountNode{{Value: NewAmount(tax), CurrencyID: currency}},
				TaxCategory: []TaxCategory{{
					ID: []TextNode{{Value: taxType}},
					TaxScheme: []TaxScheme{{
						ID: []CodeNode{{
							Value:          pkgmyinvois.TaxSchemeID,
							SchemeID:       pkgmyinvois.TaxSchemeAgencyCode,
							SchemeAgencyID: pkgmyinvois.TaxSchemeAgencyID,
						}},
					}},
				}},
			}},
		}},
		Item: []Item{{
			Description: []TextNode{{Value: description}},
			CommodityClassification: []CommodityClassification{{
				ItemClassificationCode: []CodeNode{{
					Value:  pkgmyinvois.ItemClassificationCode,
					ListID: pkgmyinvois.ItemClassificationListID,
				}},
			}},
		}},
		Price: []Price{{
			PriceAmount: []AmountNode{{Value: NewAmount(item.UnitPrice), CurrencyID: currency}},
		}},
	}
}
