package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fiskaldesk/belegwerk/gen/ent"
	"github.com/fiskaldesk/belegwerk/gen/ent/belegrecord"
	"github.com/fiskaldesk/belegwerk/internal/common"
	"github.com/fiskaldesk/belegwerk/internal/entity"
)

type RecordRepository interface {
	// Save persists an extracted record. Saving the same record again (same
	// content-derived ID) refreshes the stored row instead of failing.
	Save(ctx context.Context, rec *entity.ComplianceRecord) (*ent.BelegRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ComplianceRecord, error)
	ListRecords(ctx context.Context, companyID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.ComplianceRecord, error)
	// FindDuplicate returns the ID of an existing record carrying the same
	// document number for the company, or uuid.Nil.
	FindDuplicate(ctx context.Context, companyID uuid.UUID, documentNumber string) (uuid.UUID, error)
}

type recordRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewRecordRepository(client *ent.Client, logger *slog.Logger) RecordRepository {
	return &recordRepository{
		client: client,
		logger: logger,
	}
}

func (r *recordRepository) Save(ctx context.Context, rec *entity.ComplianceRecord) (*ent.BelegRecord, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, common.NewAppError("RECORD_ENCODE", "failed to encode record", err)
	}

	exists, err := r.client.BelegRecord.Query().
		Where(belegrecord.ID(rec.ID)).
		Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check record existence", "record_id", rec.ID, "error", err)
		return nil, err
	}
	if exists {
		return r.client.BelegRecord.UpdateOneID(rec.ID).
			SetDocumentNumber(rec.DocumentNumber).
			SetDocumentDate(rec.DocumentDate).
			SetDocumentType(string(rec.DocumentType)).
			SetVendorName(rec.Vendor.Name).
			SetNillableNetAmount(dec(rec.Tax.Net)).
			SetNillableVatAmount(dec(rec.Tax.VATAmount)).
			SetNillableGrossAmount(dec(rec.Tax.Gross)).
			SetNillableVatRate(dec(rec.Tax.VATRate)).
			SetCurrencyCode(rec.CurrencyCode).
			SetNillableAccount(optional(rec.Classification.Account)).
			SetNillableOffsetAccount(optional(rec.Classification.OffsetAccount)).
			SetNillableCostCenter(rec.Classification.CostCenter).
			SetNillableBookingText(optional(rec.Classification.BookingText)).
			SetValidationStatus(string(rec.Processing.ValidationStatus)).
			SetApprovalStatus(string(rec.Processing.ApprovalStatus)).
			SetConfidence(float32(rec.Processing.OCRConfidence)).
			SetHumanCorrected(rec.Processing.HumanCorrected).
			SetNillableMatchedPatternID(rec.MatchedPatternID).
			SetRecordJSON(raw).
			Save(ctx)
	}

	created, err := r.client.BelegRecord.Create().
		SetID(rec.ID).
		SetCompanyID(rec.CompanyID).
		SetDocumentNumber(rec.DocumentNumber).
		SetDocumentDate(rec.DocumentDate).
		SetReceiptDate(rec.ReceiptDate).
		SetDocumentType(string(rec.DocumentType)).
		SetVendorName(rec.Vendor.Name).
		SetNillableNetAmount(dec(rec.Tax.Net)).
		SetNillableVatAmount(dec(rec.Tax.VATAmount)).
		SetNillableGrossAmount(dec(rec.Tax.Gross)).
		SetNillableVatRate(dec(rec.Tax.VATRate)).
		SetCurrencyCode(rec.CurrencyCode).
		SetNillableAccount(optional(rec.Classification.Account)).
		SetNillableOffsetAccount(optional(rec.Classification.OffsetAccount)).
		SetNillableCostCenter(rec.Classification.CostCenter).
		SetNillableBookingText(optional(rec.Classification.BookingText)).
		SetValidationStatus(string(rec.Processing.ValidationStatus)).
		SetApprovalStatus(string(rec.Processing.ApprovalStatus)).
		SetConfidence(float32(rec.Processing.OCRConfidence)).
		SetHumanCorrected(rec.Processing.HumanCorrected).
		SetNillableMatchedPatternID(rec.MatchedPatternID).
		SetRecordJSON(raw).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to save record",
			"company_id", rec.CompanyID, "document_number", rec.DocumentNumber, "error", err)
		return nil, err
	}
	return created, nil
}

func (r *recordRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ComplianceRecord, error) {
	row, err := r.client.BelegRecord.Query().Where(belegrecord.ID(id)).Only(ctx)
	if err != nil {
		return nil, err
	}
	return decodeRecord(row)
}

func (r *recordRepository) ListRecords(ctx context.Context, companyID uuid.UUID, fromDate, toDate *time.Time) ([]*entity.ComplianceRecord, error) {
	q := r.client.BelegRecord.Query().Where(belegrecord.CompanyID(companyID))
	if fromDate != nil {
		q = q.Where(belegrecord.DocumentDateGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(belegrecord.DocumentDateLTE(*toDate))
	}
	rows, err := q.Order(belegrecord.ByDocumentDate()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list records", "company_id", companyID, "error", err)
		return nil, err
	}

	result := make([]*entity.ComplianceRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := decodeRecord(row)
		if err != nil {
			r.logger.Error("failed to decode stored record", "record_id", row.ID, "error", err)
			return nil, err
		}
		result = append(result, rec)
	}
	return result, nil
}

func (r *recordRepository) FindDuplicate(ctx context.Context, companyID uuid.UUID, documentNumber string) (uuid.UUID, error) {
	row, err := r.client.BelegRecord.Query().
		Where(
			belegrecord.CompanyID(companyID),
			belegrecord.DocumentNumber(documentNumber),
		).
		First(ctx)
	if ent.IsNotFound(err) {
		return uuid.Nil, nil
	}
	if err != nil {
		return uuid.Nil, err
	}
	return row.ID, nil
}

// decodeRecord restores the full structured record from the stored JSON.
func decodeRecord(row *ent.BelegRecord) (*entity.ComplianceRecord, error) {
	var rec entity.ComplianceRecord
	if err := json.Unmarshal(row.RecordJSON, &rec); err != nil {
		return nil, common.NewAppError("RECORD_DECODE", "failed to decode record", err)
	}
	return &rec, nil
}

// dec converts a fixed-point amount to the float column representation; the
// exact value stays in record_json.
func dec(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
