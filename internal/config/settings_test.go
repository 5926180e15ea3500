package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSettingsEmptyPayloadYieldsDefaults(t *testing.T) {
	s, err := ParseSettings(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestParseSettingsPartialOverride(t *testing.T) {
	raw := []byte(`{
		"compliance": {"minimumConfidence": 80},
		"intelligence": {"supplierLearning": false}
	}`)
	s, err := ParseSettings(raw)
	require.NoError(t, err)

	assert.Equal(t, float64(80), s.Compliance.MinimumConfidence)
	assert.False(t, s.Intelligence.SupplierLearning)

	// Everything omitted keeps its default.
	assert.True(t, s.Intelligence.CategoryPrediction)
	assert.True(t, s.Intelligence.DuplicateDetection)
	assert.Equal(t, 30, s.Defaults.PaymentTermsDays)
	assert.Equal(t, "EUR", s.Defaults.Currency)
	assert.Equal(t, 0.80, s.Tuning.SimilarityThreshold)
}

func TestParseSettingsRejectsUnknownProperty(t *testing.T) {
	_, err := ParseSettings([]byte(`{"complianse": {"minimumConfidence": 80}}`))
	assert.Error(t, err)
}

func TestParseSettingsRejectsOutOfRange(t *testing.T) {
	for _, raw := range []string{
		`{"compliance": {"minimumConfidence": 150}}`,
		`{"tuning": {"similarityThreshold": 1.5}}`,
		`{"tuning": {"taxTolerance": "viel"}}`,
		`{"defaults": {"expenseAccount": "49000"}}`,
	} {
		_, err := ParseSettings([]byte(raw))
		assert.Error(t, err, "payload %s", raw)
	}
}

func TestParseSettingsTuning(t *testing.T) {
	s, err := ParseSettings([]byte(`{"tuning": {"similarityThreshold": 0.9, "taxTolerance": "0.10", "defaultVATRate": 7}}`))
	require.NoError(t, err)
	assert.Equal(t, 0.9, s.Tuning.SimilarityThreshold)
	assert.Equal(t, "0.10", s.Tuning.TaxTolerance)
	assert.Equal(t, 7, s.Tuning.DefaultVATRate)
	assert.True(t, s.TaxToleranceDecimal().Equal(decimal.RequireFromString("0.10")))
}

func TestTaxToleranceDecimalFallback(t *testing.T) {
	s := DefaultSettings()
	s.Tuning.TaxTolerance = "kaputt"
	assert.Equal(t, "0.05", s.TaxToleranceDecimal().String())

	s.Tuning.TaxTolerance = "-1"
	assert.Equal(t, "0.05", s.TaxToleranceDecimal().String())
}
