package config

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fiskaldesk/belegwerk/constants"
	"github.com/fiskaldesk/belegwerk/internal/common"
)

// ComplianceSettings gates how strictly extracted records are handled.
type ComplianceSettings struct {
	MinimumConfidence     float64 `json:"minimumConfidence"`     // 0..100
	RequireManualApproval bool    `json:"requireManualApproval"`
}

// IntelligenceSettings toggles the learned behaviors.
type IntelligenceSettings struct {
	SupplierLearning     bool `json:"supplierLearning"`
	CategoryPrediction   bool `json:"categoryPrediction"`
	CostCenterSuggestion bool `json:"costCenterSuggestion"`
	DuplicateDetection   bool `json:"duplicateDetection"`
}

// DefaultsSettings carries per-company fallback values.
type DefaultsSettings struct {
	PaymentTermsDays int    `json:"paymentTermsDays"`
	Currency         string `json:"currency"`
	ExpenseAccount   string `json:"expenseAccount"`
}

// TuningSettings exposes the constants the engines would otherwise hard-code.
// They default to the documented values but are deliberately configurable.
type TuningSettings struct {
	SimilarityThreshold float64 `json:"similarityThreshold"` // fuzzy vendor match, 0..1
	TaxTolerance        string  `json:"taxTolerance"`        // currency units, decimal string
	DefaultVATRate      int     `json:"defaultVATRate"`      // percent
}

// CompanySettings is the per-company configuration document. Options omitted
// from the JSON payload keep their defaults.
type CompanySettings struct {
	Compliance   ComplianceSettings   `json:"compliance"`
	Intelligence IntelligenceSettings `json:"intelligence"`
	Defaults     DefaultsSettings     `json:"defaults"`
	Tuning       TuningSettings       `json:"tuning"`
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() CompanySettings {
	return CompanySettings{
		Compliance: ComplianceSettings{
			MinimumConfidence:     60,
			RequireManualApproval: false,
		},
		Intelligence: IntelligenceSettings{
			SupplierLearning:     true,
			CategoryPrediction:   true,
			CostCenterSuggestion: true,
			DuplicateDetection:   true,
		},
		Defaults: DefaultsSettings{
			PaymentTermsDays: 30,
			Currency:         "EUR",
			ExpenseAccount:   constants.DefaultExpenseAccount,
		},
		Tuning: TuningSettings{
			SimilarityThreshold: 0.80,
			TaxTolerance:        "0.05",
			DefaultVATRate:      constants.VATRateStandard,
		},
	}
}

// TaxToleranceDecimal parses the configured tolerance, falling back to the
// default when the stored string is unusable.
func (s CompanySettings) TaxToleranceDecimal() decimal.Decimal {
	d, err := decimal.NewFromString(s.Tuning.TaxTolerance)
	if err != nil || d.IsNegative() {
		return decimal.RequireFromString("0.05")
	}
	return d
}

// ParseSettings validates raw settings JSON against the schema and merges it
// over the defaults. An empty payload yields the defaults unchanged.
func ParseSettings(raw []byte) (CompanySettings, error) {
	settings := DefaultSettings()
	if len(raw) == 0 {
		return settings, nil
	}
	if err := ValidateJSONAgainstSchema(BuildSettingsJSONSchema(), raw); err != nil {
		return settings, common.NewAppError("SETTINGS_INVALID", "company settings rejected", err)
	}

	// Unmarshal over the defaults so omitted options keep theirs.
	if err := json.Unmarshal(raw, &settings); err != nil {
		return DefaultSettings(), fmt.Errorf("decode settings: %w", err)
	}
	if settings.Defaults.Currency == "" {
		settings.Defaults.Currency = "EUR"
	}
	if settings.Defaults.ExpenseAccount == "" {
		settings.Defaults.ExpenseAccount = constants.DefaultExpenseAccount
	}
	if settings.Tuning.SimilarityThreshold <= 0 || settings.Tuning.SimilarityThreshold > 1 {
		settings.Tuning.SimilarityThreshold = 0.80
	}
	if settings.Tuning.DefaultVATRate < 0 {
		settings.Tuning.DefaultVATRate = constants.VATRateStandard
	}
	return settings, nil
}
