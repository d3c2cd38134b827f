package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/prasetyadi/pkl-placement/internal/domain"
)

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Company), args.Error(1)
}

func (m *MockCompanyRepository) Reserve(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompanyRepository) Release(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) Create(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) GetByID(ctx context.Context, id string) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Student), args.Error(1)
}

type MockGroupRepository struct {
	mock.Mock
}

func (m *MockGroupRepository) Create(ctx context.Context, group *domain.GroupRegistration) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepository) GetByID(ctx context.Context, id string) (*domain.GroupRegistration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupRegistration), args.Error(1)
}

func (m *MockGroupRepository) GetByMemberID(ctx context.Context, memberID string) (*domain.GroupRegistration, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupRegistration), args.Error(1)
}

func (m *MockGroupRepository) UpdateDraft(ctx context.Context, id string, version int, companyID, note string, start, end time.Time) error {
	args := m.Called(ctx, id, version, companyID, note, start, end)
	return args.Error(0)
}

func (m *MockGroupRepository) UpdateStatus(ctx context.Context, id string, version int, status domain.GroupStatus, reason string) error {
	args := m.Called(ctx, id, version, status, reason)
	return args.Error(0)
}

func (m *MockGroupRepository) AddMember(ctx context.Context, groupID string, version int, member *domain.Member) error {
	args := m.Called(ctx, groupID, version, member)
	return args.Error(0)
}

func (m *MockGroupRepository) RemoveMember(ctx context.Context, memberID string, groupID string, version int) error {
	args := m.Called(ctx, memberID, groupID, version)
	return args.Error(0)
}

func (m *MockGroupRepository) RespondMember(ctx context.Context, memberID string, groupID string, version int, status domain.InvitationStatus, respondedAt time.Time) error {
	args := m.Called(ctx, memberID, groupID, version, status, respondedAt)
	return args.Error(0)
}

func (m *MockGroupRepository) ListByLeader(ctx context.Context, leaderID string) ([]*domain.GroupSummary, error) {
	args := m.Called(ctx, leaderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GroupSummary), args.Error(1)
}

func (m *MockGroupRepository) ListInvitationsByStudent(ctx context.Context, studentID string) ([]*domain.Invitation, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Invitation), args.Error(1)
}

type MockCapacityLedger struct {
	mock.Mock
}

func (m *MockCapacityLedger) Reserve(ctx context.Context, companyID string) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}

func (m *MockCapacityLedger) Release(ctx context.Context, companyID string) error {
	args := m.Called(ctx, companyID)
	return args.Error(0)
}
