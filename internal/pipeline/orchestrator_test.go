package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fiskaldesk/belegwerk/constants"
	"github.com/fiskaldesk/belegwerk/internal/config"
	"github.com/fiskaldesk/belegwerk/internal/entity"
	"github.com/fiskaldesk/belegwerk/internal/recognition"
	"github.com/fiskaldesk/belegwerk/internal/vendors"
)

type failingProvider struct{}

func (failingProvider) Name() string { return "failing" }
func (failingProvider) Recognize(context.Context, []byte, string) (recognition.Result, error) {
	return recognition.Result{}, errors.New("provider exploded")
}

type brokenStore struct{}

func (brokenStore) FindByName(context.Context, uuid.UUID, string) ([]*entity.VendorPattern, error) {
	return nil, errors.New("store unreachable")
}
func (brokenStore) ListByCompany(context.Context, uuid.UUID) ([]*entity.VendorPattern, error) {
	return nil, errors.New("store unreachable")
}
func (brokenStore) AddVariant(context.Context, uuid.UUID, string) error {
	return errors.New("store unreachable")
}
func (brokenStore) UpsertStatistics(context.Context, uuid.UUID, *decimal.Decimal) error {
	return errors.New("store unreachable")
}
func (brokenStore) CreateDraft(context.Context, *entity.VendorPattern) (uuid.UUID, error) {
	return uuid.Nil, errors.New("store unreachable")
}

func fixedClock() func() time.Time {
	at := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func newTestOrchestrator(store vendors.Store) *Orchestrator {
	o := NewOrchestrator(nil, recognition.PlainTextProvider{}, time.Second, store, nil)
	o.now = fixedClock()
	return o
}

func extract(o *Orchestrator, companyID uuid.UUID, text string) entity.ExtractionResult {
	return o.Extract(context.Background(), Request{
		FileBytes: []byte(text),
		FileName:  "scan.pdf",
		MimeType:  "application/pdf",
		CompanyID: companyID,
		Settings:  config.DefaultSettings(),
	})
}

const scenarioAText = "Amazon EU S.a.r.l.\n38 avenue John F. Kennedy\nL-1855 Luxemburg\n\nPos  Artikel                                    Betrag\nZwischensumme enthalten\nMwSt 19%\nGesamt: 119,00 EUR\n"

func TestScenarioAGrossOnly(t *testing.T) {
	o := newTestOrchestrator(vendors.NewMemoryStore())
	res := extract(o, uuid.New(), scenarioAText)

	require.True(t, res.Success)
	rec := res.Record
	require.NotNil(t, rec)

	assert.Equal(t, "Amazon EU S.a.r.l.", rec.Vendor.Name)
	assert.Equal(t, "119.00", rec.Tax.Gross.StringFixed(2))
	assert.Equal(t, "100.00", rec.Tax.Net.StringFixed(2))
	assert.Equal(t, "19.00", rec.Tax.VATAmount.StringFixed(2))
	assert.True(t, rec.Tax.VATRate.Equal(decimal.NewFromInt(19)))

	// The generated document number satisfies the mandatory-field rule.
	assert.NotEmpty(t, rec.DocumentNumber)
	assert.True(t, res.Validation.IsCompliant)
	assert.Equal(t, constants.ValidationValid, rec.Processing.ValidationStatus)
	assert.Equal(t, "Amazon EU S.a.r.l. - Rechnung", rec.Classification.BookingText)
	assert.Equal(t, constants.DefaultExpenseAccount, rec.Classification.Account)
	assert.Equal(t, "EUR", rec.CurrencyCode)
}

func TestPaymentTermsDefaultFromSettings(t *testing.T) {
	o := newTestOrchestrator(vendors.NewMemoryStore())

	// No terms in the text: the company default fills in.
	res := extract(o, uuid.New(), scenarioAText)
	require.True(t, res.Success)
	require.NotNil(t, res.Record.PaymentTerms)
	assert.Equal(t, 30, res.Record.PaymentTerms.DueInDays)

	// Stated terms win over the default.
	res = extract(o, uuid.New(), scenarioAText+"Zahlbar innerhalb 14 Tagen\n")
	require.True(t, res.Success)
	require.NotNil(t, res.Record.PaymentTerms)
	assert.Equal(t, 14, res.Record.PaymentTerms.DueInDays)

	// A zero default leaves absent terms absent.
	settings := config.DefaultSettings()
	settings.Defaults.PaymentTermsDays = 0
	res = o.Extract(context.Background(), Request{
		FileBytes: []byte(scenarioAText),
		FileName:  "scan.pdf",
		MimeType:  "application/pdf",
		CompanyID: uuid.New(),
		Settings:  settings,
	})
	require.True(t, res.Success)
	assert.Nil(t, res.Record.PaymentTerms)
}

func TestLetterheadNumbersDoNotBecomeGross(t *testing.T) {
	o := newTestOrchestrator(vendors.NewMemoryStore())
	text := "Telekom Deutschland GmbH\nLandgrabenweg 151\n53227 Bonn\n\nMwSt 19%\nGesamt: 59,95 EUR\n"
	res := extract(o, uuid.New(), text)

	require.True(t, res.Success)
	require.NotNil(t, res.Record)
	assert.Equal(t, "59.95", res.Record.Tax.Gross.StringFixed(2))
	assert.Equal(t, "50.38", res.Record.Tax.Net.StringFixed(2))
	assert.True(t, res.Validation.IsCompliant)
}

func TestScenarioBNoVendorLine(t *testing.T) {
	o := newTestOrchestrator(vendors.NewMemoryStore())
	res := extract(o, uuid.New(), "Datum: 01.03.2026\nGesamt: 50,00\n")

	require.True(t, res.Success)
	require.NotNil(t, res.Record)
	assert.Equal(t, constants.UnknownVendor, res.Record.Vendor.Name)
	assert.False(t, res.Validation.IsCompliant)

	var vendorIssue *entity.ValidationIssue
	for i := range res.Validation.Issues {
		if res.Validation.Issues[i].Field == "lieferant.name" {
			vendorIssue = &res.Validation.Issues[i]
		}
	}
	require.NotNil(t, vendorIssue)
	assert.Equal(t, constants.SeverityError, vendorIssue.Severity)
}

func TestScenarioCLearningAcrossDocuments(t *testing.T) {
	ctx := context.Background()
	store := vendors.NewMemoryStore()
	o := newTestOrchestrator(store)
	companyID := uuid.New()

	first := extract(o, companyID, "Telekom Deutschland GmbH\nRechnungsnummer: TK-100\nGesamt: 59,95\n19% USt\n")
	require.True(t, first.Success)
	assert.False(t, first.Learning.VendorMatched, "first sighting creates a draft")

	drafts, err := store.FindByName(ctx, companyID, vendors.Normalize("Telekom Deutschland GmbH"))
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	require.NotNil(t, drafts[0].DefaultAccount)
	assert.Equal(t, 1, drafts[0].MatchCount)

	second := extract(o, companyID, "telekom deutschland gmbh\nRechnungsnummer: TK-101\nGesamt: 59,95\n19% USt\n")
	require.True(t, second.Success)
	assert.True(t, second.Learning.VendorMatched, "case-different name resolves via exact normalized match")
	require.NotNil(t, second.Record.MatchedPatternID)
	assert.Equal(t, drafts[0].ID, *second.Record.MatchedPatternID)
	assert.Equal(t, *drafts[0].DefaultAccount, second.Record.Classification.Account,
		"second document inherits the learned default account")

	updated, ok := store.Get(drafts[0].ID)
	require.True(t, ok)
	assert.Equal(t, 2, updated.MatchCount)
}

func TestRecognitionFailureDegrades(t *testing.T) {
	o := NewOrchestrator(nil, failingProvider{}, time.Second, vendors.NewMemoryStore(), nil)
	o.now = fixedClock()
	res := extract(o, uuid.New(), "whatever")

	require.True(t, res.Success, "recognition failure is not an infrastructure fault for the caller")
	assert.Equal(t, float64(0), res.OCRMeta.Confidence)
	require.NotNil(t, res.Record)
	assert.Equal(t, constants.UnknownVendor, res.Record.Vendor.Name)
	assert.False(t, res.Validation.IsCompliant)
	assert.Equal(t, constants.ApprovalPending, res.Record.Processing.ApprovalStatus,
		"zero-confidence records are flagged for human review")
}

func TestStoreFaultFailsRun(t *testing.T) {
	o := newTestOrchestrator(brokenStore{})
	res := extract(o, uuid.New(), scenarioAText)

	assert.False(t, res.Success)
	assert.Nil(t, res.Record)
	require.Len(t, res.Validation.Issues, 1)
	assert.Equal(t, "pipeline."+string(constants.StageMatching), res.Validation.Issues[0].Field)
	assert.Equal(t, constants.SeverityError, res.Validation.Issues[0].Severity)
	assert.Equal(t, float64(0), res.OCRMeta.Confidence)
}

func TestCancellationBetweenStages(t *testing.T) {
	o := newTestOrchestrator(vendors.NewMemoryStore())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := o.Extract(ctx, Request{
		FileBytes: []byte(scenarioAText),
		CompanyID: uuid.New(),
		Settings:  config.DefaultSettings(),
	})
	assert.False(t, res.Success)
	require.NotEmpty(t, res.Validation.Issues)
}

func TestIdempotence(t *testing.T) {
	companyID := uuid.New()

	run := func() []byte {
		// Fresh store each run: no pattern mutation between runs.
		o := newTestOrchestrator(vendors.NewMemoryStore())
		res := extract(o, companyID, scenarioAText)
		require.True(t, res.Success)
		b, err := json.Marshal(res.Record)
		require.NoError(t, err)
		return b
	}

	assert.Equal(t, string(run()), string(run()))
}

func TestManualApprovalSetting(t *testing.T) {
	o := newTestOrchestrator(vendors.NewMemoryStore())
	settings := config.DefaultSettings()
	settings.Compliance.RequireManualApproval = true

	res := o.Extract(context.Background(), Request{
		FileBytes: []byte(scenarioAText),
		FileName:  "scan.pdf",
		CompanyID: uuid.New(),
		Settings:  settings,
	})
	require.True(t, res.Success)
	assert.Equal(t, constants.ApprovalPending, res.Record.Processing.ApprovalStatus)
}
