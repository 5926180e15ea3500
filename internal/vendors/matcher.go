// Package vendors maintains the learned vendor catalogue lookup: exact and
// fuzzy resolution of extracted vendor names against known patterns, plus
// the statistics updates that refine a pattern on every sighting.
package vendors

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/fiskaldesk/belegwerk/constants"
	"github.com/fiskaldesk/belegwerk/internal/entity"
)

// Config carries the matcher tunables.
type Config struct {
	// SimilarityThreshold is the minimum normalized edit-distance ratio for
	// the fuzzy tier. Defaults to 0.80.
	SimilarityThreshold float64
}

// MatchResult describes how (and whether) a vendor name was resolved.
type MatchResult struct {
	Matched    bool
	Pattern    *entity.VendorPattern
	Method     string // "exact" | "variant" | "fuzzy"
	Similarity float64
}

type Matcher struct {
	store  Store
	cfg    Config
	logger *slog.Logger
}

func NewMatcher(store Store, cfg Config, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.SimilarityThreshold <= 0 || cfg.SimilarityThreshold > 1 {
		cfg.SimilarityThreshold = 0.80
	}
	return &Matcher{store: store, cfg: cfg, logger: logger}
}

// Match resolves an extracted vendor name against the catalogue. Tiers are
// tried in order, first match wins: exact canonical name, stored variant,
// fuzzy similarity against the canonical name. Match never writes; learning
// happens separately in Learn.
func (m *Matcher) Match(ctx context.Context, companyID uuid.UUID, vendorName string) (MatchResult, error) {
	normalized := Normalize(vendorName)
	if normalized == "" || vendorName == constants.UnknownVendor {
		return MatchResult{}, nil
	}

	// Exact and variant tiers share one indexed lookup.
	candidates, err := m.store.FindByName(ctx, companyID, normalized)
	if err != nil {
		return MatchResult{}, err
	}
	for _, p := range candidates {
		if p.NormalizedName == normalized {
			return MatchResult{Matched: true, Pattern: p, Method: "exact", Similarity: 1.0}, nil
		}
	}
	for _, p := range candidates {
		if p.HasVariant(normalized) {
			return MatchResult{Matched: true, Pattern: p, Method: "variant", Similarity: 1.0}, nil
		}
	}

	// Fuzzy tier over the catalogue snapshot.
	all, err := m.store.ListByCompany(ctx, companyID)
	if err != nil {
		return MatchResult{}, err
	}
	var best *entity.VendorPattern
	bestSim := 0.0
	for _, p := range all {
		sim := Similarity(normalized, p.NormalizedName)
		if sim > bestSim {
			bestSim = sim
			best = p
		}
	}
	if best != nil && bestSim >= m.cfg.SimilarityThreshold {
		m.logger.Info("vendors.match.fuzzy",
			"name", vendorName, "canonical", best.CanonicalName, "similarity", bestSim)
		return MatchResult{Matched: true, Pattern: best, Method: "fuzzy", Similarity: bestSim}, nil
	}
	return MatchResult{}, nil
}

// ApplyOptions gates which learned defaults a match may write back.
type ApplyOptions struct {
	ApplyAccount    bool
	ApplyCostCenter bool
}

// ApplyToRecord copies learned defaults from the matched pattern into the
// record. Classification defaults are only applied when the options allow
// it; learned tax identifiers only fill gaps and never overwrite a value
// the extractor actually found.
func ApplyToRecord(rec *entity.ComplianceRecord, p *entity.VendorPattern, opts ApplyOptions) {
	id := p.ID
	rec.MatchedPatternID = &id

	if opts.ApplyAccount && p.DefaultAccount != nil {
		rec.Classification.Account = *p.DefaultAccount
	}
	if opts.ApplyCostCenter && p.DefaultCostCenter != nil {
		cc := *p.DefaultCostCenter
		rec.Classification.CostCenter = &cc
	}

	if rec.Vendor.VATID == nil || rec.Vendor.TaxNumber == nil {
		for _, known := range p.KnownTaxIDs {
			if looksLikeVATID(known) {
				if rec.Vendor.VATID == nil {
					v := known
					rec.Vendor.VATID = &v
				}
			} else if rec.Vendor.TaxNumber == nil {
				v := known
				rec.Vendor.TaxNumber = &v
			}
		}
	}
}

// Learn persists what this document taught us. On a match the pattern
// statistics are refreshed and a previously unseen name variant is recorded;
// on a miss a draft pattern is proposed. Callers invoke this after the
// response record is fully assembled, never on the critical path.
func (m *Matcher) Learn(ctx context.Context, companyID uuid.UUID, res MatchResult, rec *entity.ComplianceRecord) error {
	if rec.Vendor.Name == constants.UnknownVendor {
		return nil
	}
	if res.Matched {
		// A fuzzy hit means a spelling we had not seen before; remember it
		// so the next sighting resolves on the cheap exact tier.
		if res.Method == "fuzzy" {
			norm := Normalize(rec.Vendor.Name)
			if norm != res.Pattern.NormalizedName && !res.Pattern.HasVariant(norm) {
				if err := m.store.AddVariant(ctx, res.Pattern.ID, norm); err != nil {
					m.logger.Warn("vendors.learn.variant_failed", "err", err)
				}
			}
		}
		return m.store.UpsertStatistics(ctx, res.Pattern.ID, rec.Tax.Gross)
	}

	draft := ProposeDraft(companyID, rec)
	if _, err := m.store.CreateDraft(ctx, draft); err != nil {
		return err
	}
	m.logger.Info("vendors.learn.draft", "name", rec.Vendor.Name)
	return nil
}

// ProposeDraft builds a new candidate pattern from an unmatched record.
func ProposeDraft(companyID uuid.UUID, rec *entity.ComplianceRecord) *entity.VendorPattern {
	p := &entity.VendorPattern{
		ID:             uuid.New(),
		CompanyID:      companyID,
		NormalizedName: Normalize(rec.Vendor.Name),
		CanonicalName:  rec.Vendor.Name,
		MatchCount:     1,
		Confidence:     0.5,
		LastSeen:       time.Now().UTC(),
	}
	if rec.Vendor.VATID != nil {
		p.KnownTaxIDs = append(p.KnownTaxIDs, *rec.Vendor.VATID)
	}
	if rec.Vendor.TaxNumber != nil {
		p.KnownTaxIDs = append(p.KnownTaxIDs, *rec.Vendor.TaxNumber)
	}
	if rec.Classification.Account != "" {
		acct := rec.Classification.Account
		p.DefaultAccount = &acct
	}
	if rec.Tax.Gross != nil {
		g := *rec.Tax.Gross
		p.LastAmount = &g
	}
	return p
}

func looksLikeVATID(id string) bool {
	if len(id) < 4 {
		return false
	}
	return id[0] >= 'A' && id[0] <= 'Z' && id[1] >= 'A' && id[1] <= 'Z'
}
