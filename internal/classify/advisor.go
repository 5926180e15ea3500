// Package classify assigns the bookkeeping routing for an extracted record:
// ledger account, offsetting account, document series and booking text.
package classify

import (
	"github.com/fiskaldesk/belegwerk/constants"
	"github.com/fiskaldesk/belegwerk/internal/entity"
)

// Config carries the per-company fallbacks.
type Config struct {
	DefaultExpenseAccount string
	OffsetAccount         string
}

type Advisor struct {
	cfg Config
}

func NewAdvisor(cfg Config) *Advisor {
	if cfg.DefaultExpenseAccount == "" {
		cfg.DefaultExpenseAccount = constants.DefaultExpenseAccount
	}
	if cfg.OffsetAccount == "" {
		cfg.OffsetAccount = constants.DefaultPayablesAccount
	}
	return &Advisor{cfg: cfg}
}

// Advise fills the record's classification. A matched vendor pattern may
// already have placed its learned defaults on the record; those are kept and
// only the gaps are filled. The booking text is always generated, since the
// downstream export requires a non-empty narrative field.
func (a *Advisor) Advise(rec *entity.ComplianceRecord) {
	if rec.Classification.Account == "" {
		rec.Classification.Account = a.cfg.DefaultExpenseAccount
	}
	if rec.Classification.OffsetAccount == "" {
		rec.Classification.OffsetAccount = a.cfg.OffsetAccount
	}
	if rec.Classification.SeriesCode == "" {
		rec.Classification.SeriesCode = rec.DocumentType.SeriesCode()
	}
	rec.Classification.BookingText = BookingText(rec.Vendor.Name)
}

// BookingText builds the deterministic booking narrative for a vendor.
func BookingText(vendorName string) string {
	return vendorName + " - " + constants.BookingTextSuffix
}
