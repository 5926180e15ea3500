package compliance

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiskaldesk/belegwerk/constants"
	"github.com/fiskaldesk/belegwerk/internal/entity"
	"github.com/fiskaldesk/belegwerk/internal/vatlookup"
)

type fakeVAT struct {
	result vatlookup.Result
}

func (f fakeVAT) Validate(context.Context, string) vatlookup.Result { return f.result }

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func completeRecord() *entity.ComplianceRecord {
	rec := &entity.ComplianceRecord{
		DocumentNumber: "ER-2026-0001",
		DocumentDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	rec.Vendor.Name = "Telekom"
	rec.Tax.Net = dec("100.00")
	rec.Tax.VATAmount = dec("19.00")
	rec.Tax.Gross = dec("119.00")
	return rec
}

func TestMissingDocumentNumberFailsCompliance(t *testing.T) {
	v := NewValidator(Config{}, nil, nil)
	rec := completeRecord()
	rec.DocumentNumber = ""

	res := v.Validate(context.Background(), rec)

	assert.False(t, res.IsCompliant)
	require.NotEmpty(t, res.Issues)
	assert.Equal(t, "belegnummer", res.Issues[0].Field)
	assert.Equal(t, constants.SeverityError, res.Issues[0].Severity)
}

func TestUnknownVendorFailsCompliance(t *testing.T) {
	v := NewValidator(Config{}, nil, nil)
	rec := completeRecord()
	rec.Vendor.Name = constants.UnknownVendor

	res := v.Validate(context.Background(), rec)

	assert.False(t, res.IsCompliant)
	found := false
	for _, i := range res.Issues {
		if i.Field == "lieferant.name" && i.Severity == constants.SeverityError {
			found = true
		}
	}
	assert.True(t, found)
}

func TestWarningsDoNotFailCompliance(t *testing.T) {
	// Registry says the VAT ID is unknown and the arithmetic is off by more
	// than the tolerance: two warnings, still compliant.
	v := NewValidator(Config{}, fakeVAT{}, nil)
	rec := completeRecord()
	rec.Vendor.VATID = strPtr("DE123456789")
	rec.Tax.Gross = dec("119.50")

	res := v.Validate(context.Background(), rec)

	assert.True(t, res.IsCompliant)
	assert.Equal(t, 0, res.ErrorCount())
	assert.Len(t, res.Issues, 2)
	for _, i := range res.Issues {
		assert.Equal(t, constants.SeverityWarning, i.Severity)
	}
}

func TestToleranceBoundary(t *testing.T) {
	v := NewValidator(Config{}, nil, nil)

	rec := completeRecord()
	rec.Tax.Gross = dec("119.05") // exactly at the tolerance
	res := v.Validate(context.Background(), rec)
	assert.True(t, res.IsCompliant)
	assert.Empty(t, res.Issues)

	rec.Tax.Gross = dec("119.06") // just beyond
	res = v.Validate(context.Background(), rec)
	assert.True(t, res.IsCompliant, "arithmetic drift is a warning, not an error")
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "steuer.brutto", res.Issues[0].Field)
}

func TestUnrecognizedVATIDFormatIsWarning(t *testing.T) {
	v := NewValidator(Config{}, nil, nil)
	rec := completeRecord()
	rec.Vendor.VATID = strPtr("ESX1234567X")

	res := v.Validate(context.Background(), rec)

	assert.True(t, res.IsCompliant)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "lieferant.ustid", res.Issues[0].Field)
}

func TestFullyCompliantSuggestion(t *testing.T) {
	v := NewValidator(Config{}, fakeVAT{result: vatlookup.Result{Valid: true, Conclusive: true}}, nil)
	rec := completeRecord()
	rec.Vendor.VATID = strPtr("DE123456789")
	cc := "K100"
	rec.Classification.CostCenter = &cc
	rec.PaymentTerms = &entity.PaymentTerms{DueInDays: 14}

	res := v.Validate(context.Background(), rec)

	assert.True(t, res.IsCompliant)
	assert.Empty(t, res.Issues)
	require.Len(t, res.Suggestions, 1)
	assert.Contains(t, res.Suggestions[0], "GoBD-konform")
}

func TestSuggestionsForMissingOptionalData(t *testing.T) {
	v := NewValidator(Config{}, nil, nil)
	res := v.Validate(context.Background(), completeRecord())

	assert.True(t, res.IsCompliant)
	require.Len(t, res.Suggestions, 2)
	assert.Contains(t, res.Suggestions[0], "Kostenstelle")
	assert.Contains(t, res.Suggestions[1], "Zahlungsziel")
}

func strPtr(s string) *string { return &s }
