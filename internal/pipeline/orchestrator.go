// Package pipeline sequences the extraction stages into one call: recognize,
// parse, reconcile, match, classify, validate. Missing or ambiguous fields
// degrade to sentinel values and the run continues; only true infrastructure
// faults terminate a run in the FAILED state.
package pipeline

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fiskaldesk/belegwerk/constants"
	"github.com/fiskaldesk/belegwerk/internal/amount"
	"github.com/fiskaldesk/belegwerk/internal/classify"
	"github.com/fiskaldesk/belegwerk/internal/common"
	"github.com/fiskaldesk/belegwerk/internal/compliance"
	"github.com/fiskaldesk/belegwerk/internal/config"
	"github.com/fiskaldesk/belegwerk/internal/entity"
	"github.com/fiskaldesk/belegwerk/internal/fields"
	"github.com/fiskaldesk/belegwerk/internal/recognition"
	"github.com/fiskaldesk/belegwerk/internal/tax"
	"github.com/fiskaldesk/belegwerk/internal/vatlookup"
	"github.com/fiskaldesk/belegwerk/internal/vendors"
)

// defaultOCRConfidence applies when the provider succeeded but reported no
// usable confidence. A failed provider call yields confidence 0 instead.
const defaultOCRConfidence = 75

// recordNamespace salts the deterministic record identity so re-running the
// same document yields the same record ID.
var recordNamespace = uuid.MustParse("7b7d2a52-1a6e-4b86-9a51-f1f0c84f2b11")

// Request is one extraction call.
type Request struct {
	FileBytes []byte
	FileName  string
	MimeType  string
	CompanyID uuid.UUID
	Settings  config.CompanySettings
}

// Orchestrator owns the RawDocument and the in-progress record for the
// lifetime of one call. It holds no mutable state of its own, so a single
// instance serves concurrent extractions.
type Orchestrator struct {
	logger             *slog.Logger
	provider           recognition.Provider
	recognitionTimeout time.Duration
	extractor          *fields.Extractor
	store              vendors.Store
	vat                vatlookup.Validator

	// now is injectable for deterministic tests.
	now func() time.Time
}

func NewOrchestrator(
	logger *slog.Logger,
	provider recognition.Provider,
	recognitionTimeout time.Duration,
	store vendors.Store,
	vat vatlookup.Validator,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		logger:             logger,
		provider:           provider,
		recognitionTimeout: recognitionTimeout,
		extractor:          fields.NewExtractor(logger),
		store:              store,
		vat:                vat,
		now:                time.Now,
	}
}

// Extract runs the full pipeline. It never panics outward and only reports
// Success=false for infrastructure faults; a non-compliant record is still a
// successful extraction.
func (o *Orchestrator) Extract(ctx context.Context, req Request) (result entity.ExtractionResult) {
	start := o.now()
	stage := constants.StageReceived

	result.OCRMeta.ProviderName = o.provider.Name()

	// A stage that panics must not take the process down; the run ends in
	// the FAILED state naming the stage, with no partial record attached.
	defer func() {
		if r := recover(); r != nil {
			o.logger.Error("pipeline.stage.panic", "stage", string(stage), "panic", r)
			result = failedResult(result.OCRMeta, stage)
		}
	}()

	fail := func(stage constants.Stage, err error) entity.ExtractionResult {
		serr := &common.StageError{Stage: string(stage), Cause: err}
		o.logger.Error("pipeline.stage.failed", "stage", string(stage), "err", serr)
		return failedResult(result.OCRMeta, stage)
	}

	// Recognition boundary: a provider failure degrades to the empty-text,
	// zero-confidence path and the run continues.
	recStart := o.now()
	recRes, recErr := recognition.Run(ctx, o.provider, req.FileBytes, req.MimeType, o.recognitionTimeout, o.logger)
	result.OCRMeta.ProcessingTimeMs = o.now().Sub(recStart).Milliseconds()
	switch {
	case recErr != nil:
		result.OCRMeta.Confidence = 0
	case recRes.Confidence <= 0:
		result.OCRMeta.Confidence = defaultOCRConfidence
	default:
		result.OCRMeta.Confidence = recRes.Confidence
	}

	doc := entity.RawDocument{
		Text:     recRes.Text,
		Blocks:   recRes.Blocks,
		FileName: req.FileName,
		MimeType: req.MimeType,
	}

	// Parsing: the field extractor and the amount parser are independent
	// and run as two joined tasks. Both are total.
	stage = constants.StageParsing
	if err := ctx.Err(); err != nil {
		return fail(stage, err)
	}
	var (
		wg      sync.WaitGroup
		parsed  fields.Fields
		amounts []decimal.Decimal
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		parsed = o.extractor.Extract(doc)
	}()
	go func() {
		defer wg.Done()
		amounts = amount.Parse(doc.Text)
	}()
	wg.Wait()

	rec := o.newRecord(req, parsed)

	// Reconciling.
	stage = constants.StageReconciling
	if err := ctx.Err(); err != nil {
		return fail(stage, err)
	}
	engine := tax.NewEngine(tax.Config{
		DefaultRate: req.Settings.Tuning.DefaultVATRate,
		Tolerance:   req.Settings.TaxToleranceDecimal(),
	}, o.logger)
	breakdown, taxIssues := engine.Reconcile(amounts, doc.Text)
	rec.Tax = breakdown

	// Matching. A store failure here is an infrastructure fault: the
	// record's classification could silently diverge from the learned
	// state, so the run fails instead of guessing.
	stage = constants.StageMatching
	if err := ctx.Err(); err != nil {
		return fail(stage, err)
	}
	matcher := vendors.NewMatcher(o.store, vendors.Config{
		SimilarityThreshold: req.Settings.Tuning.SimilarityThreshold,
	}, o.logger)
	match, err := matcher.Match(ctx, req.CompanyID, rec.Vendor.Name)
	if err != nil {
		return fail(stage, err)
	}
	if match.Matched {
		vendors.ApplyToRecord(rec, match.Pattern, vendors.ApplyOptions{
			ApplyAccount:    req.Settings.Intelligence.CategoryPrediction,
			ApplyCostCenter: req.Settings.Intelligence.CostCenterSuggestion,
		})
	}

	// Classifying.
	stage = constants.StageClassifying
	if err := ctx.Err(); err != nil {
		return fail(stage, err)
	}
	classify.NewAdvisor(classify.Config{
		DefaultExpenseAccount: req.Settings.Defaults.ExpenseAccount,
	}).Advise(rec)

	// Validating.
	stage = constants.StageValidating
	if err := ctx.Err(); err != nil {
		return fail(stage, err)
	}
	validator := compliance.NewValidator(compliance.Config{
		Tolerance: req.Settings.TaxToleranceDecimal(),
	}, o.vat, o.logger)
	validation := validator.Validate(ctx, rec)
	validation.Issues = append(taxIssues, validation.Issues...)
	validation.IsCompliant = validation.ErrorCount() == 0

	if validation.IsCompliant {
		rec.Processing.ValidationStatus = constants.ValidationValid
	} else {
		rec.Processing.ValidationStatus = constants.ValidationInvalid
	}

	// Confidence is informational only; low-confidence records are still
	// returned and flagged for review, never dropped.
	confidence := result.OCRMeta.Confidence * 0.8
	if match.Matched {
		confidence += 20
	}
	if confidence > 100 {
		confidence = 100
	}
	rec.Processing.OCRConfidence = result.OCRMeta.Confidence
	rec.Processing.ApprovalStatus = constants.ApprovalDraft
	if confidence < req.Settings.Compliance.MinimumConfidence || req.Settings.Compliance.RequireManualApproval {
		rec.Processing.ApprovalStatus = constants.ApprovalPending
	}

	result.Success = true
	result.Record = rec
	result.Validation = validation
	result.Learning = entity.Learning{
		VendorMatched:            match.Matched,
		ClassificationConfidence: classificationConfidence(match),
	}

	// Learning runs after the record is fully assembled; its failures are
	// logged, never surfaced, so a flaky store cannot spoil the response.
	if req.Settings.Intelligence.SupplierLearning {
		if err := matcher.Learn(ctx, req.CompanyID, match, rec); err != nil {
			o.logger.Warn("pipeline.learn.failed", "vendor", rec.Vendor.Name, "err", err)
		}
	}

	o.logger.Info("pipeline.extract.ok",
		"request_id", common.RequestIDFromContext(ctx),
		"company_id", common.CompanyIDFromContext(ctx),
		"file", req.FileName,
		"vendor", rec.Vendor.Name,
		"compliant", validation.IsCompliant,
		"matched", match.Matched,
		"confidence", confidence,
		"duration_ms", o.now().Sub(start).Milliseconds(),
	)
	return result
}

// newRecord assembles the initial record from the parsed fields. Identity is
// derived from the document content so re-running the same input yields the
// same record, which is what the duplicate-detection hook keys on.
func (o *Orchestrator) newRecord(req Request, parsed fields.Fields) *entity.ComplianceRecord {
	today := o.now().UTC().Truncate(24 * time.Hour)

	rec := &entity.ComplianceRecord{
		ID:           deterministicID(req.CompanyID, req.FileBytes),
		CompanyID:    req.CompanyID,
		DocumentType: parsed.DocumentType,
		Vendor:       parsed.Vendor,
		CurrencyCode: req.Settings.Defaults.Currency,
		ReceiptDate:  today,
		Bank:         parsed.Bank,
		LineItems:    parsed.LineItems,
		PaymentTerms: parsed.PaymentTerms,
	}
	rec.Processing.ValidationStatus = constants.ValidationPending
	rec.Processing.ApprovalStatus = constants.ApprovalDraft

	if parsed.DocumentDate != nil {
		rec.DocumentDate = *parsed.DocumentDate
	} else {
		rec.DocumentDate = today
	}
	if parsed.DocumentNumber != nil {
		rec.DocumentNumber = *parsed.DocumentNumber
	} else {
		rec.DocumentNumber = generateDocumentNumber(rec.DocumentType, rec.DocumentDate, req.FileBytes)
	}
	// Stated payment terms win over the company default; a zero default
	// leaves absent terms absent.
	if rec.PaymentTerms == nil && req.Settings.Defaults.PaymentTermsDays > 0 {
		rec.PaymentTerms = &entity.PaymentTerms{DueInDays: req.Settings.Defaults.PaymentTermsDays}
	}
	return rec
}

// generateDocumentNumber builds a content-derived number so the mandatory
// field is always satisfiable and idempotent across re-runs.
func generateDocumentNumber(t constants.DocumentType, date time.Time, content []byte) string {
	sum := sha256.Sum256(content)
	return fmt.Sprintf("%s-%d-%s", t.SeriesCode(), date.Year(), hex.EncodeToString(sum[:4]))
}

func deterministicID(companyID uuid.UUID, content []byte) uuid.UUID {
	return uuid.NewSHA1(recordNamespace, append(companyID[:], content...))
}

func classificationConfidence(match vendors.MatchResult) float64 {
	if !match.Matched {
		return 25
	}
	c := match.Pattern.Confidence * 100
	if c < 50 {
		c = 50
	}
	return c
}

// failedResult is the single shape of an unrecoverable run: zero confidence
// and one error-severity issue naming the failing stage. No partial record
// is attached, since its integrity cannot be guaranteed.
func failedResult(meta entity.OCRMeta, stage constants.Stage) entity.ExtractionResult {
	meta.Confidence = 0
	return entity.ExtractionResult{
		Success: false,
		OCRMeta: meta,
		Validation: entity.ValidationResult{
			IsCompliant: false,
			Issues: []entity.ValidationIssue{{
				Field:    "pipeline." + string(stage),
				Severity: constants.SeverityError,
				Message:  "Verarbeitung in Stufe " + string(stage) + " fehlgeschlagen",
			}},
		},
	}
}
