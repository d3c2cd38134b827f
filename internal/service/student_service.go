package service

import (
	"context"

	"github.com/prasetyadi/pkl-placement/internal/domain"
	"github.com/prasetyadi/pkl-placement/internal/repository"
)

type StudentService interface {
	CreateStudent(ctx context.Context, name, nisn, class string) (*domain.Student, error)
	GetStudent(ctx context.Context, id string) (*domain.Student, error)
}

type studentService struct {
	studentRepo repository.StudentRepository
}

func NewStudentService(studentRepo repository.StudentRepository) StudentService {
	return &studentService{studentRepo: studentRepo}
}

func (s *studentService) CreateStudent(ctx context.Context, name, nisn, class string) (*domain.Student, error) {
	student := &domain.Student{
		Name:  name,
		NISN:  nisn,
		Class: class,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

func (s *studentService) GetStudent(ctx context.Context, id string) (*domain.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}
