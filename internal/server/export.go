package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	belegwerkpb "github.com/fiskaldesk/belegwerk/gen/proto/belegwerk/v1"
	"github.com/fiskaldesk/belegwerk/internal/common"
	"github.com/fiskaldesk/belegwerk/internal/export"
)

type ExportService struct {
	belegwerkpb.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportService(svc *export.Service, logger *slog.Logger) *ExportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportService{svc: svc, logger: logger}
}

func (s *ExportService) ExportLedger(ctx context.Context, req *belegwerkpb.ExportLedgerRequest) (*belegwerkpb.ExportLedgerResponse, error) {
	companyID, err := uuid.Parse(strings.TrimSpace(req.GetCompanyId()))
	if err != nil {
		return nil, common.InvalidArgumentError("company_id must be a UUID")
	}

	var fromPtr, toPtr *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		t, err := parseYMD(fd)
		if err != nil {
			return nil, common.InvalidArgumentError("from_date must be YYYY-MM-DD")
		}
		fromPtr = &t
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		t, err := parseYMD(td)
		if err != nil {
			return nil, common.InvalidArgumentError("to_date must be YYYY-MM-DD")
		}
		toPtr = &t
	}

	xlsx, err := s.svc.ExportLedgerXLSX(ctx, companyID, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "company_id", companyID, "err", err)
		return nil, common.InternalErrorf("export: %v", err)
	}
	return &belegwerkpb.ExportLedgerResponse{Xlsx: xlsx}, nil
}
