package vendors

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fiskaldesk/belegwerk/internal/common"
	"github.com/fiskaldesk/belegwerk/internal/entity"
)

// MemoryStore is an in-process Store. It backs tests and the one-shot CLI
// when no database is configured. Statistics updates are merge operations
// under one lock, mirroring the upsert-with-increment semantics the
// database-backed store uses.
type MemoryStore struct {
	mu       sync.Mutex
	patterns map[uuid.UUID]*entity.VendorPattern
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{patterns: make(map[uuid.UUID]*entity.VendorPattern)}
}

func (s *MemoryStore) FindByName(_ context.Context, companyID uuid.UUID, normalizedName string) ([]*entity.VendorPattern, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.VendorPattern
	for _, p := range s.patterns {
		if p.CompanyID != companyID {
			continue
		}
		if p.NormalizedName == normalizedName || p.HasVariant(normalizedName) {
			out = append(out, clonePattern(p))
		}
	}
	return out, nil
}

func (s *MemoryStore) ListByCompany(_ context.Context, companyID uuid.UUID) ([]*entity.VendorPattern, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.VendorPattern
	for _, p := range s.patterns {
		if p.CompanyID == companyID {
			out = append(out, clonePattern(p))
		}
	}
	return out, nil
}

func (s *MemoryStore) UpsertStatistics(_ context.Context, patternID uuid.UUID, observedAmount *decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.patterns[patternID]
	if !ok {
		return common.ErrNotFound
	}
	p.MatchCount++
	p.Confidence = RefineConfidence(p.Confidence)
	if observedAmount != nil {
		a := *observedAmount
		p.LastAmount = &a
	}
	p.LastSeen = time.Now().UTC()
	return nil
}

func (s *MemoryStore) CreateDraft(_ context.Context, pattern *entity.VendorPattern) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if pattern.ID == uuid.Nil {
		pattern.ID = uuid.New()
	}
	s.patterns[pattern.ID] = clonePattern(pattern)
	return pattern.ID, nil
}

// AddVariant records a new normalized name variant on an existing pattern.
func (s *MemoryStore) AddVariant(_ context.Context, patternID uuid.UUID, variant string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.patterns[patternID]
	if !ok {
		return common.ErrNotFound
	}
	if !p.HasVariant(variant) {
		p.NameVariants = append(p.NameVariants, variant)
	}
	return nil
}

// Get returns a copy of the stored pattern, for assertions in tests.
func (s *MemoryStore) Get(patternID uuid.UUID) (*entity.VendorPattern, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.patterns[patternID]
	if !ok {
		return nil, false
	}
	return clonePattern(p), true
}

func clonePattern(p *entity.VendorPattern) *entity.VendorPattern {
	cp := *p
	cp.NameVariants = append([]string(nil), p.NameVariants...)
	cp.KnownTaxIDs = append([]string(nil), p.KnownTaxIDs...)
	if p.LastAmount != nil {
		a := *p.LastAmount
		cp.LastAmount = &a
	}
	return &cp
}
