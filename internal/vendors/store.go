package vendors

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fiskaldesk/belegwerk/internal/entity"
)

// Store is the narrow interface to the externally persisted vendor
// catalogue. Reads may come from a stale snapshot; writes are append/merge
// operations that must be safe under concurrent extraction requests for the
// same vendor.
type Store interface {
	// FindByName returns patterns whose canonical name or variants equal
	// the given normalized name.
	FindByName(ctx context.Context, companyID uuid.UUID, normalizedName string) ([]*entity.VendorPattern, error)

	// ListByCompany returns the catalogue snapshot used for fuzzy matching.
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.VendorPattern, error)

	// AddVariant appends a newly observed normalized name variant to an
	// existing pattern. Adding an already-known variant is a no-op.
	AddVariant(ctx context.Context, patternID uuid.UUID, variant string) error

	// UpsertStatistics atomically increments the pattern's match count,
	// refines its confidence and records the most recent observed amount.
	UpsertStatistics(ctx context.Context, patternID uuid.UUID, observedAmount *decimal.Decimal) error

	// CreateDraft registers a new candidate pattern for future learning.
	CreateDraft(ctx context.Context, pattern *entity.VendorPattern) (uuid.UUID, error)
}

// RefineConfidence is the bounded moving average applied on every match:
// the score moves a quarter of the remaining distance towards certainty and
// never reaches it. Store implementations share it so statistics evolve
// identically everywhere.
func RefineConfidence(old float64) float64 {
	if old < 0 {
		old = 0
	}
	refined := old + (0.99-old)*0.25
	if refined > 0.99 {
		refined = 0.99
	}
	return refined
}
