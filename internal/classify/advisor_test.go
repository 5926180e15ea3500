package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fiskaldesk/belegwerk/constants"
	"github.com/fiskaldesk/belegwerk/internal/entity"
)

func TestAdviseFallbackDefaults(t *testing.T) {
	a := NewAdvisor(Config{})
	rec := &entity.ComplianceRecord{DocumentType: constants.Eingangsrechnung}
	rec.Vendor.Name = "Telekom"

	a.Advise(rec)

	assert.Equal(t, constants.DefaultExpenseAccount, rec.Classification.Account)
	assert.Equal(t, constants.DefaultPayablesAccount, rec.Classification.OffsetAccount)
	assert.Nil(t, rec.Classification.CostCenter)
	assert.Equal(t, "ER", rec.Classification.SeriesCode)
	assert.Equal(t, "Telekom - Rechnung", rec.Classification.BookingText)
}

func TestAdviseKeepsLearnedAccount(t *testing.T) {
	a := NewAdvisor(Config{})
	rec := &entity.ComplianceRecord{DocumentType: constants.Gutschrift}
	rec.Vendor.Name = "Amazon EU Sarl"
	rec.Classification.Account = "4930"

	a.Advise(rec)

	assert.Equal(t, "4930", rec.Classification.Account)
	assert.Equal(t, "GS", rec.Classification.SeriesCode)
	assert.NotEmpty(t, rec.Classification.BookingText)
}
