package service

import (
	"context"

	"github.com/prasetyadi/pkl-placement/internal/repository"
)

// CapacityLedger is the only component allowed to mutate a company's
// remaining slots. Reserve and release are each a single atomic
// read-modify-write in the repository, so two submissions racing for the
// last slot resolve to one winner.
type CapacityLedger interface {
	Reserve(ctx context.Context, companyID string) error
	Release(ctx context.Context, companyID string) error
}

type capacityLedger struct {
	companyRepo repository.CompanyRepository
}

func NewCapacityLedger(companyRepo repository.CompanyRepository) CapacityLedger {
	return &capacityLedger{companyRepo: companyRepo}
}

func (l *capacityLedger) Reserve(ctx context.Context, companyID string) error {
	return l.companyRepo.Reserve(ctx, companyID)
}

func (l *capacityLedger) Release(ctx context.Context, companyID string) error {
	return l.companyRepo.Release(ctx, companyID)
}
