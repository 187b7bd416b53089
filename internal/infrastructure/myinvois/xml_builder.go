package myinvois

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"
)

// XMLBuilderService renders the compliance document as UBL 2.1 XML. The JSON
// form is the submission format; the XML rendition is the human-auditable
// export (download endpoint, archival) and carries the same values.
type XMLBuilderService struct{}

// NewXMLBuilderService creates the service.
func NewXMLBuilderService() *XMLBuilderService {
	return &XMLBuilderService{}
}

// Build serializes the document as indented UBL 2.1 XML.
func (s *XMLBuilderService) Build(doc *InvoiceDocument) ([]byte, error) {
	if doc == nil || len(doc.Invoice) == 0 {
		return nil, fmt.Errorf("myinvois: empty document")
	}
	inv := doc.Invoice[0]

	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := out.CreateElement("Invoice")
	root.CreateAttr("xmlns", NsInvoice)
	root.CreateAttr("xmlns:cac", NsCac)
	root.CreateAttr("xmlns:cbc", NsCbc)

	addText(root, "cbc:ID", first(inv.ID))
	addText(root, "cbc:IssueDate", first(inv.IssueDate))
	addText(root, "cbc:IssueTime", first(inv.IssueTime))
	if len(inv.InvoiceTypeCode) > 0 {
		e := root.CreateElement("cbc:InvoiceTypeCode")
		e.CreateAttr("listVersionID", inv.InvoiceTypeCode[0].ListVersionID)
		e.SetText(inv.InvoiceTypeCode[0].Value)
	}
	addText(root, "cbc:DocumentCurrencyCode", first(inv.DocumentCurrencyCode))

	s.writeParty(root, "cac:AccountingSupplierParty", inv.AccountingSupplierParty)
	s.writeParty(root, "cac:AccountingCustomerParty", inv.AccountingCustomerParty)

	for _, tt := range inv.TaxTotal {
		s.writeTaxTotal(root, tt)
	}
	if len(inv.LegalMonetaryTotal) > 0 {
		mt := inv.LegalMonetaryTotal[0]
		e := root.CreateElement("cac:LegalMonetaryTotal")
		addAmount(e, "cbc:LineExtensionAmount", mt.LineExtensionAmount)
		addAmount(e, "cbc:TaxExclusiveAmount", mt.TaxExclusiveAmount)
		addAmount(e, "cbc:TaxInclusiveAmount", mt.TaxInclusiveAmount)
		addAmount(e, "cbc:PayableAmount", mt.PayableAmount)
	}
	for _, line := range inv.InvoiceLine {
		s.writeInvoiceLine(root, line)
	}

	out.Indent(2)
	var buf bytes.Buffer
	if _, err := out.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("myinvois: serializing xml: %w", err)
	}
	return buf.Bytes(), nil
}

// CanonicalDigest returns the SHA-256 digest (lowercase hex) of the C14N
// canonical form of the XML rendition. Two renditions of the same document
// digest identically regardless of indentation.
func (s *XMLBuilderService) CanonicalDigest(xmlData []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(xmlData))
	dec.Entity = map[string]string{}
	canonical, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("myinvois: canonicalizing xml: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func (s *XMLBuilderService) writeParty(parent *etree.Element, tag string, wrappers []PartyWrapper) {
	if len(wrappers) == 0 || len(wrappers[0].Party) == 0 {
		return
	}
	party := wrappers[0].Party[0]
	wrap := parent.CreateElement(tag)
	pe := wrap.CreateElement("cac:Party")

	if len(party.PartyIdentification) > 0 && len(party.PartyIdentification[0].ID) > 0 {
		pi := pe.CreateElement("cac:PartyIdentification")
		id := pi.CreateElement("cbc:ID")
		id.CreateAttr("schemeID", party.PartyIdentification[0].ID[0].SchemeID)
		id.SetText(party.PartyIdentification[0].ID[0].Value)
	}
	if len(party.PartyLegalEntity) > 0 {
		le := pe.CreateElement("cac:PartyLegalEntity")
		addText(le, "cbc:RegistrationName", first(party.PartyLegalEntity[0].RegistrationName))
	}
	if len(party.PostalAddress) > 0 {
		addr := party.PostalAddress[0]
		pa := pe.CreateElement("cac:PostalAddress")
		addText(pa, "cbc:CityName", first(addr.CityName))
		addText(pa, "cbc:PostalZone", first(addr.PostalZone))
		addText(pa, "cbc:CountrySubentityCode", first(addr.CountrySubentityCode))
		for _, al := range addr.AddressLine {
			le := pa.CreateElement("cac:AddressLine")
			addText(le, "cbc:Line", first(al.Line))
		}
		if len(addr.Country) > 0 {
			c := pa.CreateElement("cac:Country")
			addText(c, "cbc:IdentificationCode", first(addr.Country[0].IdentificationCode))
		}
	}
	if len(party.Contact) > 0 {
		c := pe.CreateElement("cac:Contact")
		addText(c, "cbc:Telephone", first(party.Contact[0].Telephone))
	}
}

func (s *XMLBuilderService) writeTaxTotal(parent *etree.Element, tt TaxTotal) {
	e := parent.CreateElement("cac:TaxTotal")
	addAmount(e, "cbc:TaxAmount", tt.TaxAmount)
	for _, sub := range tt.TaxSubtotal {
		se := e.CreateElement("cac:TaxSubtotal")
		addAmount(se, "cbc:TaxableAmount", sub.TaxableAmount)
		addAmount(se, "cbc:TaxAmount", sub.TaxAmount)
		for _, cat := range sub.TaxCategory {
			ce := se.CreateElement("cac:TaxCategory")
			addText(ce, "cbc:ID", first(cat.ID))
			for _, scheme := range cat.TaxScheme {
				if len(scheme.ID) == 0 {
					continue
				}
				sce := ce.CreateElement("cac:TaxScheme")
				id := sce.CreateElement("cbc:ID")
				id.CreateAttr("schemeAgencyID", scheme.ID[0].SchemeAgencyID)
				id.CreateAttr("schemeID", scheme.ID[0].SchemeID)
				id.SetText(scheme.ID[0].Value)
			}
		}
	}
}

func (s *XMLBuilderService) writeInvoiceLine(parent *etree.Element, line InvoiceLine) {
	e := parent.CreateElement("cac:InvoiceLine")
	addText(e, "cbc:ID", first(line.ID))
	if len(line.InvoicedQuantity) > 0 {
		q := e.CreateElement("cbc:InvoicedQuantity")
		q.CreateAttr("unitCode", line.InvoicedQuantity[0].UnitCode)
		q.SetText(line.InvoicedQuantity[0].Value.String())
	}
	addAmount(e, "cbc:LineExtensionAmount", line.LineExtensionAmount)
	for _, tt := range line.TaxTotal {
		s.writeTaxTotal(e, tt)
	}
	if len(line.Item) > 0 {
		item := line.Item[0]
		ie := e.CreateElement("cac:Item")
		addText(ie, "cbc:Description", first(item.Description))
		for _, cc := range item.CommodityClassification {
			if len(cc.ItemClassificationCode) == 0 {
				continue
			}
			ce := ie.CreateElement("cac:CommodityClassification")
			code := ce.CreateElement("cbc:ItemClassificationCode")
			code.CreateAttr("listID", cc.ItemClassificationCode[0].ListID)
			code.SetText(cc.ItemClassificationCode[0].Value)
		}
	}
	if len(line.Price) > 0 {
		pe := e.CreateElement("cac:Price")
		addAmount(pe, "cbc:PriceAmount", line.Price[0].PriceAmount)
	}
}

func first(nodes []TextNode) string {
	if len(nodes) == 0 {
		return ""
	}
	return nodes[0].Value
}

func addText(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}

func addAmount(parent *etree.Element, tag string, nodes []AmountNode) {
	if len(nodes) == 0 {
		return
	}
	e := parent.CreateElement(tag)
	e.CreateAttr("currencyID", nodes[0].CurrencyID)
	e.SetText(nodes[0].Value.Round(2).StringFixed(2))
}
