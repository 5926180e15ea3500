package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/fiskaldesk/belegwerk/internal/repository"
)

// Service produces XLSX booking batches (Buchungsstapel) from stored records.
type Service struct {
	records repository.RecordRepository
	logger  *slog.Logger
}

func NewService(records repository.RecordRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{records: records, logger: logger}
}

// ExportLedgerXLSX returns an XLSX workbook for the given company and date
// window. If only from is provided -> from..today (inclusive).
// If only to is provided -> beginning..to (inclusive).
// If neither is provided -> all records for the company.
func (s *Service) ExportLedgerXLSX(ctx context.Context, companyID uuid.UUID, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	recs, err := s.records.ListRecords(ctx, companyID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Buchungsstapel"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		_, err := f.NewSheet(sheet)
		if err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Belegdatum",
		"Belegnummer",
		"Buchungstext",
		"Konto",
		"Gegenkonto",
		"Kostenstelle",
		"Netto",
		"USt-Satz",
		"USt",
		"Brutto",
		"Währung",
		"Lieferant",
		"USt-IdNr.",
		"Status",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, r := range recs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, r.DocumentDate.Format("2006-01-02"))
		write(2, r.DocumentNumber)
		write(3, r.Classification.BookingText)
		write(4, r.Classification.Account)
		write(5, r.Classification.OffsetAccount)
		if r.Classification.CostCenter != nil {
			write(6, *r.Classification.CostCenter)
		} else {
			write(6, "")
		}
		write(7, money(r.Tax.Net))
		write(8, money(r.Tax.VATRate))
		write(9, money(r.Tax.VATAmount))
		write(10, money(r.Tax.Gross))
		write(11, r.CurrencyCode)
		write(12, r.Vendor.Name)
		if r.Vendor.VATID != nil {
			write(13, *r.Vendor.VATID)
		} else {
			write(13, "")
		}
		write(14, string(r.Processing.ValidationStatus))

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // date
	_ = f.SetColWidth(sheet, "B", "B", 18) // number
	_ = f.SetColWidth(sheet, "C", "C", 36) // booking text
	_ = f.SetColWidth(sheet, "D", "F", 12) // accounts
	_ = f.SetColWidth(sheet, "G", "J", 12) // amounts
	_ = f.SetColWidth(sheet, "L", "L", 30) // vendor
	_ = f.SetColWidth(sheet, "M", "M", 16) // vat id

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"company_id", companyID.String(),
		"rows", len(recs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func money(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.StringFixed(2)
}
