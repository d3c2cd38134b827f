package service

import (
	"context"

	"github.com/prasetyadi/pkl-placement/internal/domain"
	"github.com/prasetyadi/pkl-placement/internal/repository"
)

type CompanyService interface {
	CreateCompany(ctx context.Context, name, address, sector string, quota int) (*domain.Company, error)
	GetCompany(ctx context.Context, id string) (*domain.Company, error)
	ListCompanies(ctx context.Context) ([]*domain.Company, error)
}

type companyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) CreateCompany(ctx context.Context, name, address, sector string, quota int) (*domain.Company, error) {
	if quota < 0 {
		return nil, domain.NewValidationError("quota must not be negative")
	}

	company := &domain.Company{
		Name:           name,
		Address:        address,
		Sector:         sector,
		Quota:          quota,
		RemainingSlots: quota,
	}

	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

func (s *companyService) GetCompany(ctx context.Context, id string) (*domain.Company, error) {
	return s.companyRepo.GetByID(ctx, id)
}

func (s *companyService) ListCompanies(ctx context.Context) ([]*domain.Company, error) {
	return s.companyRepo.List(ctx)
}
