package vendors

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiskaldesk/belegwerk/constants"
	"github.com/fiskaldesk/belegwerk/internal/entity"
)

func TestSimilaritySymmetryAndIdentity(t *testing.T) {
	pairs := [][2]string{
		{"amazon eu sarl", "amazon eu"},
		{"telekom", "telecom"},
		{"", "abc"},
		{"kitten", "sitting"},
	}
	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), "pair %v", p)
	}
	for _, s := range []string{"", "a", "amazon eu sarl"} {
		assert.Equal(t, 1.0, Similarity(s, s))
	}
}

func TestSimilarityKnownDistances(t *testing.T) {
	// kitten -> sitting: distance 3, max length 7.
	assert.InDelta(t, (7.0-3.0)/7.0, Similarity("kitten", "sitting"), 1e-9)
	assert.Equal(t, 0.0, Similarity("amazon", "google"))
}

func TestSimilarityAmazonExample(t *testing.T) {
	sim := Similarity(Normalize("Amazon EU S.a.r.l."), Normalize("Amazon EU Sarl"))
	assert.GreaterOrEqual(t, sim, 0.80)
	assert.Less(t, Similarity(Normalize("Amazon"), Normalize("Google")), 0.80)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "amazon eu sarl", Normalize("Amazon EU S.a.r.l."))
	assert.Equal(t, "telekom", Normalize("  Telekom "))
	assert.Equal(t, "müller gmbh", Normalize("Müller GmbH"))
	assert.Equal(t, "", Normalize("***"))
}

func seedPattern(t *testing.T, store *MemoryStore, companyID uuid.UUID, canonical string) uuid.UUID {
	t.Helper()
	acct := "4930"
	id, err := store.CreateDraft(context.Background(), &entity.VendorPattern{
		CompanyID:      companyID,
		NormalizedName: Normalize(canonical),
		CanonicalName:  canonical,
		DefaultAccount: &acct,
		MatchCount:     1,
		Confidence:     0.5,
	})
	require.NoError(t, err)
	return id
}

func TestMatchLadder(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	store := NewMemoryStore()
	patternID := seedPattern(t, store, companyID, "Amazon EU Sarl")
	m := NewMatcher(store, Config{}, nil)

	// Exact after normalization.
	res, err := m.Match(ctx, companyID, "Amazon EU S.a.r.l.")
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, "exact", res.Method)
	assert.Equal(t, patternID, res.Pattern.ID)

	// Variant tier.
	require.NoError(t, store.AddVariant(ctx, patternID, "amazon eu"))
	res, err = m.Match(ctx, companyID, "AMAZON EU")
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, "variant", res.Method)

	// Fuzzy tier: one OCR typo.
	res, err = m.Match(ctx, companyID, "Amazn EU Sarl")
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, "fuzzy", res.Method)
	assert.GreaterOrEqual(t, res.Similarity, 0.80)

	// Unrelated name: no match.
	res, err = m.Match(ctx, companyID, "Google Ireland Ltd")
	require.NoError(t, err)
	assert.False(t, res.Matched)

	// Sentinel never matches.
	res, err = m.Match(ctx, companyID, constants.UnknownVendor)
	require.NoError(t, err)
	assert.False(t, res.Matched)
}

func TestApplyToRecord(t *testing.T) {
	acct := "4930"
	cc := "K100"
	extractedVAT := "DE999999999"
	p := &entity.VendorPattern{
		ID:                uuid.New(),
		DefaultAccount:    &acct,
		DefaultCostCenter: &cc,
		KnownTaxIDs:       []string{"DE123456789", "12/345/6789"},
	}

	rec := &entity.ComplianceRecord{}
	ApplyToRecord(rec, p, ApplyOptions{ApplyAccount: true, ApplyCostCenter: true})
	assert.Equal(t, "4930", rec.Classification.Account)
	require.NotNil(t, rec.Classification.CostCenter)
	assert.Equal(t, "K100", *rec.Classification.CostCenter)
	require.NotNil(t, rec.Vendor.VATID)
	assert.Equal(t, "DE123456789", *rec.Vendor.VATID)
	require.NotNil(t, rec.Vendor.TaxNumber)
	assert.Equal(t, "12/345/6789", *rec.Vendor.TaxNumber)
	require.NotNil(t, rec.MatchedPatternID)

	// Extracted values are never overwritten, defaults not applied when
	// auto-apply is off.
	rec = &entity.ComplianceRecord{}
	rec.Vendor.VATID = &extractedVAT
	ApplyToRecord(rec, p, ApplyOptions{})
	assert.Equal(t, "", rec.Classification.Account)
	assert.Equal(t, "DE999999999", *rec.Vendor.VATID)
}

func TestLearnUpdatesStatistics(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	store := NewMemoryStore()
	patternID := seedPattern(t, store, companyID, "Telekom")
	m := NewMatcher(store, Config{}, nil)

	gross := decimal.RequireFromString("59.95")
	rec := &entity.ComplianceRecord{}
	rec.Vendor.Name = "Telekomm" // OCR doubled the m
	rec.Tax.Gross = &gross

	res, err := m.Match(ctx, companyID, "Telekomm")
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, "fuzzy", res.Method)

	require.NoError(t, m.Learn(ctx, companyID, res, rec))

	p, ok := store.Get(patternID)
	require.True(t, ok)
	assert.Equal(t, 2, p.MatchCount)
	assert.Greater(t, p.Confidence, 0.5)
	assert.Less(t, p.Confidence, 0.99)
	require.NotNil(t, p.LastAmount)
	assert.Equal(t, "59.95", p.LastAmount.StringFixed(2))
	assert.True(t, p.HasVariant("telekomm"), "fuzzy spelling becomes a variant")
}

// The SQL-backed store refines confidence in place as c*0.75 + 0.2475;
// both forms must agree so memory and database runs learn identically.
func TestRefineConfidenceMatchesLinearForm(t *testing.T) {
	for _, old := range []float64{0, 0.1, 0.5, 0.8, 0.95, 0.99} {
		assert.InDelta(t, old*0.75+0.2475, RefineConfidence(old), 1e-9, "old %v", old)
	}
}

func TestLearnProposesDraftOnMiss(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New()
	store := NewMemoryStore()
	m := NewMatcher(store, Config{}, nil)

	gross := decimal.RequireFromString("119.00")
	rec := &entity.ComplianceRecord{}
	rec.CompanyID = companyID
	rec.Vendor.Name = "Telekom"
	rec.Tax.Gross = &gross
	rec.Classification.Account = "4900"

	require.NoError(t, m.Learn(ctx, companyID, MatchResult{}, rec))

	// The next document from the same vendor (case-different) resolves on
	// the exact-normalized tier and inherits the learned default account.
	res, err := m.Match(ctx, companyID, "telekom")
	require.NoError(t, err)
	require.True(t, res.Matched)
	assert.Equal(t, "exact", res.Method)
	require.NotNil(t, res.Pattern.DefaultAccount)
	assert.Equal(t, "4900", *res.Pattern.DefaultAccount)
}
