package repository

import (
	"context"

	"github.com/prasetyadi/pkl-placement/internal/domain"
)

type StudentRepository interface {
	Create(ctx context.Context, student *domain.Student) error
	GetByID(ctx context.Context, id string) (*domain.Student, error)
}
