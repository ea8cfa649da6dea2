// Package extract pulls named fields out of OCR text with regular
// expressions and shallow capitalization heuristics.
package extract

import (
	"docreview/internal/domain"
)

// Extractor is stateless; the zero value is ready to use.
type Extractor struct{}

func New() *Extractor { return &Extractor{} }

// Extract returns the fields found in text for the given document type.
// Fields that are not found are omitted; malformed input yields an empty map.
func (x *Extractor) Extract(text string, t domain.DocumentType) map[string]string {
	fields := make(map[string]string)
	switch t {
	case domain.TypeInvoice:
		invoice(text, fields)
	case domain.TypeContract:
		contract(text, fields)
	default:
		generic(text, fields)
	}
	return fields
}

func invoice(text string, f map[string]string) {
	if id, ok := identifier(invoiceNumberRe, text); ok {
		f[domain.FieldInvoiceNumber] = id
	}
	if ds := dates(text); len(ds) > 0 {
		f[domain.FieldDate] = ds[0]
	}
	if a, ok := largest(amounts(text)); ok {
		f[domain.FieldAmount] = a.display
	}
	contactFields(text, f)
	e := findEntities(text)
	switch {
	case len(e.organizations) > 0:
		f[domain.FieldVendor] = e.organizations[0]
	case len(e.multiword) > 0:
		f[domain.FieldVendor] = e.multiword[0]
	}
}

func contract(text string, f map[string]string) {
	if id, ok := identifier(contractNumberRe, text); ok {
		f[domain.FieldContractNumber] = id
	}
	e := findEntities(text)
	if len(e.people) > 0 {
		f[domain.FieldParty1] = e.people[0]
	}
	if len(e.people) > 1 {
		f[domain.FieldParty2] = e.people[1]
	}
	if len(e.organizations) > 0 {
		f[domain.FieldCompany] = e.organizations[0]
	}
	ds := dates(text)
	if len(ds) > 0 {
		f[domain.FieldEffectiveDate] = ds[0]
	}
	if len(ds) > 1 {
		f[domain.FieldExpirationDate] = ds[1]
	}
	if t, ok := term(text); ok {
		f[domain.FieldTerm] = t
	}
	if as := amounts(text); len(as) > 0 {
		f[domain.FieldValue] = as[0].display
	}
}

// generic serves document types added through the policy table.
func generic(text string, f map[string]string) {
	if ds := dates(text); len(ds) > 0 {
		f[domain.FieldDate] = ds[0]
	}
	if a, ok := largest(amounts(text)); ok {
		f[domain.FieldAmount] = a.display
	}
	contactFields(text, f)
	if e := findEntities(text); len(e.organizations) > 0 {
		f[domain.FieldCompany] = e.organizations[0]
	}
}

func contactFields(text string, f map[string]string) {
	if m, ok := first(emailRe, text); ok {
		f[domain.FieldEmail] = m
	}
	if m, ok := first(phoneRe, text); ok {
		f[domain.FieldPhone] = m
	}
}
