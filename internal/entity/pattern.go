package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VendorPattern is a learned vendor record keyed by the normalized name.
// Patterns are created the first time an unmatched vendor is seen and refined
// on every subsequent match; this subsystem never deletes them.
type VendorPattern struct {
	ID             uuid.UUID `json:"id"`
	CompanyID      uuid.UUID `json:"company_id"`
	NormalizedName string    `json:"normalized_name"`
	CanonicalName  string    `json:"canonical_name"`
	NameVariants   []string  `json:"name_variants,omitempty"`
	KnownTaxIDs    []string  `json:"known_tax_ids,omitempty"`

	DefaultAccount    *string `json:"default_account,omitempty"`
	DefaultCostCenter *string `json:"default_cost_center,omitempty"`

	// Running statistics, refined on every match. LastAmount feeds the
	// duplicate/outlier detection hook.
	MatchCount int              `json:"match_count"`
	Confidence float64          `json:"confidence"` // 0..1
	LastAmount *decimal.Decimal `json:"last_amount,omitempty"`
	LastSeen   time.Time        `json:"last_seen"`
}

// HasVariant reports whether the pattern already stores the given normalized
// name variant.
func (p *VendorPattern) HasVariant(normalized string) bool {
	for _, v := range p.NameVariants {
		if v == normalized {
			return true
		}
	}
	return false
}

// HasTaxID reports whether the given identifier is already known.
func (p *VendorPattern) HasTaxID(id string) bool {
	for _, v := range p.KnownTaxIDs {
		if v == id {
			return true
		}
	}
	return false
}
