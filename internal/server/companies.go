package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fiskaldesk/belegwerk/gen/ent"
	belegwerkpb "github.com/fiskaldesk/belegwerk/gen/proto/belegwerk/v1"
	"github.com/fiskaldesk/belegwerk/internal/common"
	"github.com/fiskaldesk/belegwerk/internal/repository"
)

type CompanyService struct {
	belegwerkpb.UnimplementedCompanyServiceServer
	companyRepo repository.CompanyRepository
	logger      *slog.Logger
}

func NewCompanyService(companyRepo repository.CompanyRepository, logger *slog.Logger) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

func (s *CompanyService) CreateCompany(ctx context.Context, req *belegwerkpb.CreateCompanyRequest) (*belegwerkpb.CreateCompanyResponse, error) {
	name := strings.TrimSpace(req.GetName())
	if name == "" {
		return nil, common.InvalidArgumentError("name is required")
	}
	currency := strings.ToUpper(strings.TrimSpace(req.GetDefaultCurrency()))
	if currency == "" {
		currency = "EUR"
	}
	if len(currency) != 3 {
		return nil, common.InvalidArgumentError("default_currency must be a 3-letter code")
	}

	c, err := s.companyRepo.CreateCompany(ctx, &repository.Company{
		Name:            name,
		DefaultCurrency: currency,
		Settings:        req.GetSettingsJson(),
	})
	if err != nil {
		s.logger.Error("failed to create company", "name", name, "error", err)
		return nil, common.InvalidArgumentErrorf("create company: %v", err)
	}
	return &belegwerkpb.CreateCompanyResponse{Company: toPBCompany(c)}, nil
}

func (s *CompanyService) ListCompanies(ctx context.Context, _ *belegwerkpb.ListCompaniesRequest) (*belegwerkpb.ListCompaniesResponse, error) {
	clist, err := s.companyRepo.ListCompanies(ctx)
	if err != nil {
		s.logger.Error("failed to list companies", "error", err)
		return nil, common.InternalErrorf("list companies: %v", err)
	}
	out := make([]*belegwerkpb.Company, 0, len(clist))
	for _, c := range clist {
		out = append(out, toPBCompany(c))
	}
	return &belegwerkpb.ListCompaniesResponse{Companies: out}, nil
}

func toPBCompany(c *ent.Company) *belegwerkpb.Company {
	return &belegwerkpb.Company{
		Id:              c.ID.String(),
		Name:            c.Name,
		DefaultCurrency: c.DefaultCurrency,
		CreatedAt:       c.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:       c.UpdatedAt.Format(time.RFC3339Nano),
	}
}
