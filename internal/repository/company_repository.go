package repository

import (
	"context"

	"github.com/prasetyadi/pkl-placement/internal/domain"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	// Reserve atomically decrements remaining_slots if any are left.
	// Returns domain.ErrCapacityExhausted when the company is full.
	Reserve(ctx context.Context, id string) error
	// Release atomically increments remaining_slots, capped at quota.
	Release(ctx context.Context, id string) error
}
