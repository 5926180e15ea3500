package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqljson"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fiskaldesk/belegwerk/gen/ent"
	"github.com/fiskaldesk/belegwerk/gen/ent/predicate"
	"github.com/fiskaldesk/belegwerk/gen/ent/vendorpattern"
	"github.com/fiskaldesk/belegwerk/internal/common"
	"github.com/fiskaldesk/belegwerk/internal/entity"
	"github.com/fiskaldesk/belegwerk/internal/vendors"
)

// vendorPatternStore is the database-backed vendors.Store.
type vendorPatternStore struct {
	client *ent.Client
	logger *slog.Logger
}

func NewVendorPatternStore(client *ent.Client, logger *slog.Logger) vendors.Store {
	return &vendorPatternStore{
		client: client,
		logger: logger,
	}
}

func (s *vendorPatternStore) FindByName(ctx context.Context, companyID uuid.UUID, normalizedName string) ([]*entity.VendorPattern, error) {
	rows, err := s.client.VendorPattern.Query().
		Where(
			vendorpattern.CompanyID(companyID),
			vendorpattern.Or(
				vendorpattern.NormalizedName(normalizedName),
				predicate.VendorPattern(func(sel *sql.Selector) {
					sel.Where(sqljson.ValueContains(vendorpattern.FieldNameVariants, normalizedName))
				}),
			),
		).
		All(ctx)
	if err != nil {
		s.logger.Error("failed to look up vendor pattern",
			"company_id", companyID, "name", normalizedName, "error", err)
		return nil, storeErr(err)
	}
	return toPatterns(rows), nil
}

func (s *vendorPatternStore) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]*entity.VendorPattern, error) {
	rows, err := s.client.VendorPattern.Query().
		Where(vendorpattern.CompanyID(companyID)).
		All(ctx)
	if err != nil {
		s.logger.Error("failed to list vendor patterns", "company_id", companyID, "error", err)
		return nil, storeErr(err)
	}
	return toPatterns(rows), nil
}

func (s *vendorPatternStore) AddVariant(ctx context.Context, patternID uuid.UUID, variant string) error {
	row, err := s.client.VendorPattern.Get(ctx, patternID)
	if err != nil {
		return storeErr(err)
	}
	for _, v := range row.NameVariants {
		if v == variant {
			return nil
		}
	}
	return storeErr(s.client.VendorPattern.UpdateOneID(patternID).
		AppendNameVariants([]string{variant}).
		Exec(ctx))
}

func (s *vendorPatternStore) UpsertStatistics(ctx context.Context, patternID uuid.UUID, observedAmount *decimal.Decimal) error {
	upd := s.client.VendorPattern.UpdateOneID(patternID).
		AddMatchCount(1).
		SetLastSeen(time.Now().UTC()).
		Modify(func(u *sql.UpdateBuilder) {
			// In-place form of vendors.RefineConfidence; two documents from
			// the same vendor processed at once must not lose a refinement
			// to a stale read.
			u.Set(vendorpattern.FieldConfidence,
				sql.Expr(vendorpattern.FieldConfidence+" * 0.75 + 0.2475"))
		})
	if observedAmount != nil {
		upd = upd.SetLastAmount(observedAmount.InexactFloat64())
	}
	return storeErr(upd.Exec(ctx))
}

func (s *vendorPatternStore) CreateDraft(ctx context.Context, pattern *entity.VendorPattern) (uuid.UUID, error) {
	builder := s.client.VendorPattern.Create().
		SetCompanyID(pattern.CompanyID).
		SetNormalizedName(pattern.NormalizedName).
		SetCanonicalName(pattern.CanonicalName).
		SetNameVariants(pattern.NameVariants).
		SetKnownTaxIdentifiers(pattern.KnownTaxIDs).
		SetMatchCount(pattern.MatchCount).
		SetConfidence(pattern.Confidence).
		SetNillableDefaultAccount(pattern.DefaultAccount).
		SetNillableDefaultCostCenter(pattern.DefaultCostCenter)
	if pattern.ID != uuid.Nil {
		builder = builder.SetID(pattern.ID)
	}
	if pattern.LastAmount != nil {
		builder = builder.SetLastAmount(pattern.LastAmount.InexactFloat64())
	}
	if !pattern.LastSeen.IsZero() {
		builder = builder.SetLastSeen(pattern.LastSeen)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		s.logger.Error("failed to create vendor pattern draft",
			"company_id", pattern.CompanyID, "name", pattern.CanonicalName, "error", err)
		return uuid.Nil, storeErr(err)
	}
	return created.ID, nil
}

// storeErr maps ent errors onto the shared sentinels so callers can
// classify without importing the generated package.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case ent.IsNotFound(err):
		return common.ErrNotFound
	default:
		return fmt.Errorf("%w: %w", common.ErrDatabase, err)
	}
}

func toPatterns(rows []*ent.VendorPattern) []*entity.VendorPattern {
	out := make([]*entity.VendorPattern, len(rows))
	for i, row := range rows {
		out[i] = toPattern(row)
	}
	return out
}

func toPattern(row *ent.VendorPattern) *entity.VendorPattern {
	p := &entity.VendorPattern{
		ID:                row.ID,
		CompanyID:         row.CompanyID,
		NormalizedName:    row.NormalizedName,
		CanonicalName:     row.CanonicalName,
		NameVariants:      row.NameVariants,
		KnownTaxIDs:       row.KnownTaxIdentifiers,
		DefaultAccount:    row.DefaultAccount,
		DefaultCostCenter: row.DefaultCostCenter,
		MatchCount:        row.MatchCount,
		Confidence:        row.Confidence,
		LastSeen:          row.LastSeen,
	}
	if row.LastAmount != nil {
		a := decimal.NewFromFloat(*row.LastAmount).Round(2)
		p.LastAmount = &a
	}
	return p
}
