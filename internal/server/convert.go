package server

import (
	"time"

	"github.com/shopspring/decimal"

	belegwerkpb "github.com/fiskaldesk/belegwerk/gen/proto/belegwerk/v1"
	"github.com/fiskaldesk/belegwerk/internal/entity"
)

func toPBRecord(rec *entity.ComplianceRecord) *belegwerkpb.Record {
	pb := &belegwerkpb.Record{
		Id:               rec.ID.String(),
		CompanyId:        rec.CompanyID.String(),
		DocumentNumber:   rec.DocumentNumber,
		DocumentDate:     rec.DocumentDate.Format("2006-01-02"),
		ReceiptDate:      rec.ReceiptDate.Format("2006-01-02"),
		DocumentType:     string(rec.DocumentType),
		VendorName:       rec.Vendor.Name,
		Net:              money(rec.Tax.Net),
		VatRate:          money(rec.Tax.VATRate),
		Vat:              money(rec.Tax.VATAmount),
		Gross:            money(rec.Tax.Gross),
		CurrencyCode:     rec.CurrencyCode,
		Account:          rec.Classification.Account,
		OffsetAccount:    rec.Classification.OffsetAccount,
		BookingText:      rec.Classification.BookingText,
		ValidationStatus: string(rec.Processing.ValidationStatus),
		ApprovalStatus:   string(rec.Processing.ApprovalStatus),
		Confidence:       rec.Processing.OCRConfidence,
	}
	if rec.Vendor.VATID != nil {
		pb.VatId = *rec.Vendor.VATID
	}
	if rec.Classification.CostCenter != nil {
		pb.CostCenter = *rec.Classification.CostCenter
	}
	if rec.MatchedPatternID != nil {
		pb.MatchedPatternId = rec.MatchedPatternID.String()
	}
	return pb
}

func toPBValidation(v entity.ValidationResult) *belegwerkpb.ValidationResult {
	out := &belegwerkpb.ValidationResult{
		IsCompliant: v.IsCompliant,
		Suggestions: v.Suggestions,
	}
	for _, issue := range v.Issues {
		out.Issues = append(out.Issues, &belegwerkpb.ValidationIssue{
			Field:    issue.Field,
			Severity: string(issue.Severity),
			Message:  issue.Message,
		})
	}
	return out
}

func money(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}

func parseYMD(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
