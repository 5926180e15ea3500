package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	belegwerkpb "github.com/fiskaldesk/belegwerk/gen/proto/belegwerk/v1"
	"github.com/fiskaldesk/belegwerk/internal/common"
	"github.com/fiskaldesk/belegwerk/internal/pipeline"
	"github.com/fiskaldesk/belegwerk/internal/repository"
)

type ExtractionService struct {
	belegwerkpb.UnimplementedExtractionServiceServer
	orchestrator *pipeline.Orchestrator
	companyRepo  repository.CompanyRepository
	recordRepo   repository.RecordRepository
	logger       *slog.Logger
}

func NewExtractionService(
	orchestrator *pipeline.Orchestrator,
	companyRepo repository.CompanyRepository,
	recordRepo repository.RecordRepository,
	logger *slog.Logger,
) *ExtractionService {
	return &ExtractionService{
		orchestrator: orchestrator,
		companyRepo:  companyRepo,
		recordRepo:   recordRepo,
		logger:       logger,
	}
}

func (s *ExtractionService) ExtractDocument(ctx context.Context, req *belegwerkpb.ExtractDocumentRequest) (*belegwerkpb.ExtractDocumentResponse, error) {
	companyID, err := uuid.Parse(strings.TrimSpace(req.GetCompanyId()))
	if err != nil {
		s.logger.Error("invalid company_id format for extract", "company_id", req.GetCompanyId(), "error", err)
		return nil, common.InvalidArgumentError("company_id must be a UUID")
	}
	if len(req.GetContent()) == 0 {
		return nil, common.InvalidArgumentError("content is required")
	}

	if exists, _ := s.companyRepo.Exists(ctx, companyID); !exists {
		s.logger.Error("company not found for extract", "company_id", companyID)
		return nil, common.NotFoundError("company not found")
	}
	settings, err := s.companyRepo.Settings(ctx, companyID)
	if err != nil {
		s.logger.Error("failed to load company settings", "company_id", companyID, "error", err)
		return nil, common.InternalErrorf("load settings: %v", err)
	}

	requestID := uuid.NewString()
	ctx = common.WithRequestID(common.WithCompanyID(ctx, companyID.String()), requestID)

	s.logger.Info("starting extraction",
		"request_id", requestID, "company_id", companyID, "file_name", req.GetFileName(), "bytes", len(req.GetContent()))
	res := s.orchestrator.Extract(ctx, pipeline.Request{
		FileBytes: req.GetContent(),
		FileName:  req.GetFileName(),
		MimeType:  req.GetMimeType(),
		CompanyID: companyID,
		Settings:  settings,
	})

	resp := &belegwerkpb.ExtractDocumentResponse{
		Success:       res.Success,
		Validation:    toPBValidation(res.Validation),
		ProviderName:  res.OCRMeta.ProviderName,
		OcrConfidence: res.OCRMeta.Confidence,
		VendorMatched: res.Learning.VendorMatched,
	}
	if !res.Success || res.Record == nil {
		return resp, nil
	}
	resp.Record = toPBRecord(res.Record)

	if settings.Intelligence.DuplicateDetection {
		dupID, err := s.recordRepo.FindDuplicate(ctx, companyID, res.Record.DocumentNumber)
		if err != nil {
			s.logger.Error("duplicate check failed", "company_id", companyID, "error", err)
			return nil, common.InternalErrorf("duplicate check: %v", err)
		}
		// The same content yields the same record ID; only a different
		// record carrying the same document number is a duplicate.
		if dupID != uuid.Nil && dupID != res.Record.ID {
			s.logger.Warn("duplicate document detected",
				"company_id", companyID, "document_number", res.Record.DocumentNumber, "existing", dupID)
			resp.DuplicateOf = dupID.String()
			return resp, nil
		}
	}

	if _, err := s.recordRepo.Save(ctx, res.Record); err != nil {
		s.logger.Error("failed to persist record",
			"company_id", companyID, "record_id", res.Record.ID, "error", err)
		return nil, common.InternalErrorf("save record: %v", err)
	}
	return resp, nil
}

func (s *ExtractionService) ListRecords(ctx context.Context, req *belegwerkpb.ListRecordsRequest) (*belegwerkpb.ListRecordsResponse, error) {
	companyID, err := uuid.Parse(strings.TrimSpace(req.GetCompanyId()))
	if err != nil {
		return nil, common.InvalidArgumentError("company_id must be a UUID")
	}

	var fromDate, toDate *time.Time
	if fd := strings.TrimSpace(req.GetFromDate()); fd != "" {
		from, err := parseYMD(fd)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("from_date invalid (YYYY-MM-DD): %v", err)
		}
		fromDate = &from
	}
	if td := strings.TrimSpace(req.GetToDate()); td != "" {
		to, err := parseYMD(td)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("to_date invalid (YYYY-MM-DD): %v", err)
		}
		toDate = &to
	}

	recs, err := s.recordRepo.ListRecords(ctx, companyID, fromDate, toDate)
	if err != nil {
		s.logger.Error("failed to list records", "company_id", companyID, "error", err)
		return nil, common.InternalErrorf("list records: %v", err)
	}

	out := make([]*belegwerkpb.Record, 0, len(recs))
	for _, r := range recs {
		out = append(out, toPBRecord(r))
	}
	return &belegwerkpb.ListRecordsResponse{Records: out}, nil
}
