// Package compliance applies the GoBD rule set to a fully assembled record
// and produces the verdict, the issue list and improvement suggestions.
package compliance

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/fiskaldesk/belegwerk/constants"
	"github.com/fiskaldesk/belegwerk/internal/entity"
	"github.com/fiskaldesk/belegwerk/internal/vatlookup"
)

var reVATIDFormat = regexp.MustCompile(`^[A-Z]{2}\d{9}$`)

// Config carries the validator tunables.
type Config struct {
	// Tolerance for the record-level tax arithmetic check, in currency
	// units. The record may have been hand-edited after parsing, so the
	// check is restated here.
	Tolerance decimal.Decimal
}

type Validator struct {
	cfg    Config
	vat    vatlookup.Validator // nil disables the registry check
	logger *slog.Logger
}

func NewValidator(cfg Config, vat vatlookup.Validator, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tolerance.IsZero() {
		cfg.Tolerance = decimal.RequireFromString("0.05")
	}
	return &Validator{cfg: cfg, vat: vat, logger: logger}
}

// Validate runs every rule. Warnings never fail compliance by themselves:
// OCR-sourced data is inherently noisy and legitimate entries must not be
// blocked on warning-level uncertainty.
func (v *Validator) Validate(ctx context.Context, rec *entity.ComplianceRecord) entity.ValidationResult {
	var res entity.ValidationResult

	addError := func(field, msg string) {
		res.Issues = append(res.Issues, entity.ValidationIssue{
			Field: field, Severity: constants.SeverityError, Message: msg,
		})
	}
	addWarning := func(field, msg string) {
		res.Issues = append(res.Issues, entity.ValidationIssue{
			Field: field, Severity: constants.SeverityWarning, Message: msg,
		})
	}

	// Mandatory fields.
	if rec.DocumentNumber == "" {
		addError("belegnummer", "Belegnummer fehlt")
	}
	if rec.DocumentDate.IsZero() {
		addError("belegdatum", "Belegdatum fehlt")
	}
	if rec.Vendor.Name == "" || rec.Vendor.Name == constants.UnknownVendor {
		addError("lieferant.name", "Lieferant konnte nicht erkannt werden")
	}

	v.checkVATID(ctx, rec, addWarning)
	v.checkArithmetic(rec, addWarning)

	// Suggestions are informational only and never block.
	if rec.Classification.CostCenter == nil {
		res.Suggestions = append(res.Suggestions, "Kostenstelle zuordnen für genauere Auswertungen")
	}
	if rec.PaymentTerms == nil {
		res.Suggestions = append(res.Suggestions, "Zahlungsziel erfassen für das Fälligkeitsmanagement")
	}
	// The positive verdict stands alone: it only appears when nothing
	// else was worth saying.
	if len(res.Issues) == 0 && len(res.Suggestions) == 0 {
		res.Suggestions = append(res.Suggestions, "Beleg ist vollständig GoBD-konform")
	}

	res.IsCompliant = res.ErrorCount() == 0
	return res
}

func (v *Validator) checkVATID(ctx context.Context, rec *entity.ComplianceRecord, addWarning func(field, msg string)) {
	if rec.Vendor.VATID == nil {
		return
	}
	id := *rec.Vendor.VATID
	if !reVATIDFormat.MatchString(id) {
		addWarning("lieferant.ustid", "USt-IdNr. hat ein unbekanntes Format: "+id)
		return
	}
	if v.vat == nil {
		return
	}
	switch r := v.vat.Validate(ctx, id); {
	case !r.Conclusive:
		addWarning("lieferant.ustid", "USt-IdNr. konnte nicht gegen das Register geprüft werden")
	case !r.Valid:
		addWarning("lieferant.ustid", "USt-IdNr. ist laut Register nicht gültig: "+id)
	}
}

func (v *Validator) checkArithmetic(rec *entity.ComplianceRecord, addWarning func(field, msg string)) {
	t := rec.Tax
	if t.Net == nil || t.VATAmount == nil || t.Gross == nil {
		return
	}
	diff := t.Net.Add(*t.VATAmount).Sub(*t.Gross).Abs()
	if diff.GreaterThan(v.cfg.Tolerance) {
		v.logger.Warn("compliance.arithmetic.mismatch", "diff", diff)
		addWarning("steuer.brutto", "Netto + USt weicht um "+diff.StringFixed(2)+" vom Bruttobetrag ab")
	}
}
