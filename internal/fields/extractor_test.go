package fields

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiskaldesk/belegwerk/constants"
	"github.com/fiskaldesk/belegwerk/internal/entity"
)

func extractText(text string) Fields {
	return NewExtractor(nil).Extract(entity.RawDocument{Text: text, FileName: "scan.pdf"})
}

const richInvoice = `Telekom Deutschland GmbH
Landgrabenweg 151
53227 Bonn
USt-IdNr.: DE123456789
Steuernummer: 205/5311/0303
HRB 5919
Tel: +49 228 181 0
rechnung@telekom.de
www.telekom.de

Rechnungsnummer: RE-2026-1001
Rechnungsdatum: 15.03.2026

Pos  Beschreibung                 Betrag
1  DSL Anschluss                  39,95
2  Mobilfunk Tarif                19,99

Zahlbar innerhalb 14 Tagen
IBAN: DE89 3704 0044 0532 0130 00
BIC: COBADEFFXXX
`

func TestExtractRichInvoice(t *testing.T) {
	f := extractText(richInvoice)

	assert.Equal(t, "Telekom Deutschland GmbH", f.Vendor.Name)
	require.NotNil(t, f.Vendor.LegalForm)
	assert.Equal(t, "GmbH", *f.Vendor.LegalForm)
	require.NotNil(t, f.Vendor.VATID)
	assert.Equal(t, "DE123456789", *f.Vendor.VATID)
	assert.False(t, f.VATIDUnrecognized)
	require.NotNil(t, f.Vendor.TaxNumber)
	assert.Equal(t, "205/5311/0303", *f.Vendor.TaxNumber)
	require.NotNil(t, f.Vendor.PostalCode)
	assert.Equal(t, "53227", *f.Vendor.PostalCode)
	require.NotNil(t, f.Vendor.City)
	assert.Equal(t, "Bonn", *f.Vendor.City)
	require.NotNil(t, f.Vendor.RegisterID)
	assert.Equal(t, "HRB 5919", *f.Vendor.RegisterID)
	require.NotNil(t, f.Vendor.Email)
	assert.Equal(t, "rechnung@telekom.de", *f.Vendor.Email)
	require.NotNil(t, f.Vendor.Website)
	assert.Equal(t, "www.telekom.de", *f.Vendor.Website)
	require.NotNil(t, f.Vendor.Phone)
	assert.Equal(t, "+49 228 181 0", *f.Vendor.Phone)

	require.NotNil(t, f.DocumentNumber)
	assert.Equal(t, "RE-2026-1001", *f.DocumentNumber)
	require.NotNil(t, f.DocumentDate)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), f.DocumentDate.UTC())
	assert.Equal(t, constants.Eingangsrechnung, f.DocumentType)

	require.NotNil(t, f.PaymentTerms)
	assert.Equal(t, 14, f.PaymentTerms.DueInDays)
	assert.False(t, f.PaymentTerms.Dunning)

	require.NotNil(t, f.Bank)
	assert.Equal(t, "DE89370400440532013000", f.Bank.IBAN)
	require.NotNil(t, f.Bank.BIC)
	assert.Equal(t, "COBADEFFXXX", *f.Bank.BIC)

	require.Len(t, f.LineItems, 2)
	assert.Equal(t, 1, f.LineItems[0].Position)
	assert.Equal(t, "DSL Anschluss", f.LineItems[0].Description)
	require.NotNil(t, f.LineItems[0].Total)
	assert.Equal(t, "39.95", f.LineItems[0].Total.String())
	assert.Equal(t, "Mobilfunk Tarif", f.LineItems[1].Description)
}

func TestExtractVendorNameFallback(t *testing.T) {
	f := extractText("12345\n999\nGesamt: 10,00\nDatum: 01.01.2026\nSumme\n")
	assert.Equal(t, constants.UnknownVendor, f.Vendor.Name)
}

func TestExtractVendorNameSkipsStructuralLines(t *testing.T) {
	f := extractText("Rechnung Nr. 100\nSeite 1 von 1\nMusterbau AG\nHauptstr. 1\n80331 München\n")
	assert.Equal(t, "Musterbau AG", f.Vendor.Name)
}

func TestShortKeywordsMatchOnWordBoundary(t *testing.T) {
	// "Telekom" contains "tel" but is a vendor name, not a phone line.
	assert.False(t, isStructural("Telekom Deutschland GmbH"))
	assert.True(t, isStructural("Tel: 0228 181 0"))
	assert.True(t, isStructural("Telefax 0228 181 1"))
	assert.False(t, isStructural("Privatbrauerei Hofmühl GmbH"))
}

func TestExtractVATIDUnrecognizedShape(t *testing.T) {
	f := extractText("Beispiel GmbH\nUSt-IdNr.: ATU12345678\n")
	require.NotNil(t, f.Vendor.VATID)
	assert.Equal(t, "ATU12345678", *f.Vendor.VATID)
	assert.True(t, f.VATIDUnrecognized)
}

func TestExtractDocNumberVariants(t *testing.T) {
	cases := map[string]string{
		"Rechnungsnummer: RE-2026-1001": "RE-2026-1001",
		"Rechnung Nr. 12345":            "12345",
		"Rechnungs-Nr.: 2026/0815":      "2026/0815",
		"Belegnummer KB-77-A":           "KB-77-A",
		"Invoice no: INV-77":            "INV-77",
	}
	for text, want := range cases {
		f := extractText(text)
		require.NotNil(t, f.DocumentNumber, "text %q", text)
		assert.Equal(t, want, *f.DocumentNumber, "text %q", text)
	}

	assert.Nil(t, extractText("kein Beleg hier").DocumentNumber)
}

func TestExtractDocDate(t *testing.T) {
	f := extractText("Datum: 1.3.2026")
	require.NotNil(t, f.DocumentDate)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), f.DocumentDate.UTC())

	f = extractText("Ausgestellt am 2026-03-01")
	require.NotNil(t, f.DocumentDate)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), f.DocumentDate.UTC())

	assert.Nil(t, extractText("ohne Datum").DocumentDate)
}

func TestExtractDocType(t *testing.T) {
	assert.Equal(t, constants.Gutschrift, extractText("Gutschrift zur Rechnung RE-1").DocumentType)
	assert.Equal(t, constants.Kassenbeleg, extractText("Quittung über 10,00 EUR").DocumentType)
	assert.Equal(t, constants.Eingangsrechnung, extractText("Rechnung RE-1").DocumentType)
}

func TestExtractPaymentTerms(t *testing.T) {
	f := extractText("Zahlungsziel: 30 Tage netto")
	require.NotNil(t, f.PaymentTerms)
	assert.Equal(t, 30, f.PaymentTerms.DueInDays)

	f = extractText("Dies ist bereits die zweite Mahnung.")
	require.NotNil(t, f.PaymentTerms)
	assert.True(t, f.PaymentTerms.Dunning)
	assert.Zero(t, f.PaymentTerms.DueInDays)

	assert.Nil(t, extractText("Vielen Dank für Ihren Einkauf").PaymentTerms)
}

func TestExtractBankRejectsShortRuns(t *testing.T) {
	// A VAT identifier must not be mistaken for an IBAN.
	f := extractText("USt-IdNr.: DE123456789\n")
	assert.Nil(t, f.Bank)
}
