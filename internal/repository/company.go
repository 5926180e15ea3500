package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fiskaldesk/belegwerk/gen/ent"
	"github.com/fiskaldesk/belegwerk/gen/ent/company"
	"github.com/fiskaldesk/belegwerk/internal/config"
)

type Company struct {
	Name            string
	DefaultCurrency string
	Settings        []byte
}

type CompanyRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ent.Company, error)
	CreateCompany(ctx context.Context, c *Company) (*ent.Company, error)
	ListCompanies(ctx context.Context) ([]*ent.Company, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// Settings returns the parsed, validated settings document; a company
	// without one gets the defaults.
	Settings(ctx context.Context, id uuid.UUID) (config.CompanySettings, error)
}

type companyRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewCompanyRepository(client *ent.Client, logger *slog.Logger) CompanyRepository {
	return &companyRepository{
		client: client,
		logger: logger,
	}
}

func (r *companyRepository) GetByID(ctx context.Context, id uuid.UUID) (*ent.Company, error) {
	return r.client.Company.
		Query().
		Where(company.ID(id)).
		Only(ctx)
}

func (r *companyRepository) CreateCompany(ctx context.Context, c *Company) (*ent.Company, error) {
	if len(c.Settings) > 0 {
		// Reject malformed settings at write time, not on first use.
		if _, err := config.ParseSettings(c.Settings); err != nil {
			return nil, err
		}
	}
	builder := r.client.Company.Create().
		SetName(c.Name).
		SetDefaultCurrency(c.DefaultCurrency)
	if len(c.Settings) > 0 {
		builder = builder.SetSettings(c.Settings)
	}
	created, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create company", "name", c.Name, "error", err)
		return nil, err
	}
	return created, nil
}

func (r *companyRepository) ListCompanies(ctx context.Context) ([]*ent.Company, error) {
	clist, err := r.client.Company.Query().Order(company.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list companies", "error", err)
		return nil, err
	}
	return clist, nil
}

func (r *companyRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	exists, err := r.client.Company.Query().Where(company.ID(id)).Exist(ctx)
	if err != nil {
		r.logger.Error("failed to check company existence", "company_id", id, "error", err)
		return false, err
	}
	return exists, nil
}

func (r *companyRepository) Settings(ctx context.Context, id uuid.UUID) (config.CompanySettings, error) {
	c, err := r.GetByID(ctx, id)
	if err != nil {
		return config.DefaultSettings(), err
	}
	return config.ParseSettings(c.Settings)
}
