package amount

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOneLocaleNormalization(t *testing.T) {
	cases := []struct {
		token string
		want  string
	}{
		{"1.234,56", "1234.56"},
		{"1,234.56", "1234.56"},
		{"99,99", "99.99"},
		{"100", "100"},
		{"10.000,00", "10000"},
		{"7,500.00", "7500"},
		{"0,5", "0.5"},
	}
	for _, tc := range cases {
		t.Run(tc.token, func(t *testing.T) {
			got, ok := ParseOne(tc.token)
			require.True(t, ok)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"got %s want %s", got, tc.want)
		})
	}
}

func TestParseOneRejectsGarbage(t *testing.T) {
	for _, token := range []string{"", "   ", "abc", ",,", "1234567890123456"} {
		_, ok := ParseOne(token)
		assert.False(t, ok, "token %q", token)
	}
}

func TestParseSortsDescendingAndSkipsNoise(t *testing.T) {
	text := "Zwischensumme: 100,00\nUSt 19%\nMwSt: 19,00\nGesamt: 119,00\nDatum 01.02.2026"
	got := Parse(text)
	require.Len(t, got, 3)
	assert.Equal(t, "119", got[0].String())
	assert.Equal(t, "100", got[1].String())
	assert.Equal(t, "19", got[2].String())
}

func TestParsePercentTokensExcluded(t *testing.T) {
	got := Parse("Rabatt 7% auf alles")
	assert.Empty(t, got)
}

func TestParseIdentifierFragmentsExcluded(t *testing.T) {
	text := "Rechnungsnummer: RE-2026-1001\nL-1855 Luxemburg\nGesamt: 59,95"
	got := Parse(text)
	require.Len(t, got, 1)
	assert.Equal(t, "59.95", got[0].String())
}

func TestParseEmptyOnNoMatch(t *testing.T) {
	assert.Empty(t, Parse("kein Betrag weit und breit"))
}

func TestSelectGrossPrefersTotalLine(t *testing.T) {
	text := "Telekom Deutschland GmbH\nLandgrabenweg 151\n53227 Bonn\n\nMwSt 19%\nGesamt: 59,95 EUR\n"
	amounts := Parse(text)
	require.NotEmpty(t, amounts)
	assert.Equal(t, "53227", amounts[0].String(), "postal code is the largest digit run")

	got := SelectGross(text, amounts)
	assert.Equal(t, "59.95", got.String())
}

func TestSelectGrossSubtotalLineGetsNoBoost(t *testing.T) {
	text := "Zwischensumme: 100,00\nMwSt: 19,00\nGesamt: 119,00"
	got := SelectGross(text, Parse(text))
	assert.Equal(t, "119", got.String())
}

func TestSelectGrossFallsBackToLargest(t *testing.T) {
	// The amounts came from elsewhere; none of them appear in the text.
	amounts := Parse("Netto 100,00 Brutto 119,00")
	got := SelectGross("kein Betrag im Text", amounts)
	assert.Equal(t, "119", got.String())
}
