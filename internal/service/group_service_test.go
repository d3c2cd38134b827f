package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prasetyadi/pkl-placement/internal/domain"
)

func newGroupServiceUnderTest() (GroupService, *MockGroupRepository, *MockCompanyRepository, *MockStudentRepository, *MockCapacityLedger) {
	groupRepo := new(MockGroupRepository)
	companyRepo := new(MockCompanyRepository)
	studentRepo := new(MockStudentRepository)
	ledger := new(MockCapacityLedger)
	svc := NewGroupService(groupRepo, companyRepo, studentRepo, ledger, zap.NewNop())
	return svc, groupRepo, companyRepo, studentRepo, ledger
}

func draftGroup() *domain.GroupRegistration {
	return &domain.GroupRegistration{
		ID:        "grp-1",
		CompanyID: "comp-1",
		LeaderID:  "s1",
		Status:    domain.GroupStatusDraft,
		Version:   3,
		Members: []domain.Member{
			{ID: "inv-1", StudentID: "s1", IsLeader: true, Status: domain.InvitationStatusAccepted},
			{ID: "inv-2", StudentID: "s2", Status: domain.InvitationStatusAccepted},
		},
	}
}

func TestGroupService_CreateGroup(t *testing.T) {
	start := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 3, 0)

	t.Run("creates a draft with the leader as accepted member", func(t *testing.T) {
		svc, groupRepo, companyRepo, studentRepo, _ := newGroupServiceUnderTest()

		leader := &domain.Student{ID: "s1", Name: "Andi"}
		studentRepo.On("GetByID", mock.Anything, "s1").Return(leader, nil).Once()
		companyRepo.On("GetByID", mock.Anything, "comp-1").Return(&domain.Company{ID: "comp-1", Quota: 5, RemainingSlots: 5}, nil).Once()
		groupRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.GroupRegistration")).
			Run(func(args mock.Arguments) {
				g := args.Get(1).(*domain.GroupRegistration)
				g.ID = "grp-1"
			}).
			Return(nil).Once()
		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(draftGroup(), nil).Once()

		actor := domain.Actor{ID: "s1", Role: domain.RoleStudent}
		result, err := svc.CreateGroup(context.Background(), actor, "comp-1", "first placement", start, end)

		require.NoError(t, err)
		assert.Equal(t, "grp-1", result.ID)
		created := groupRepo.Calls[0].Arguments.Get(1).(*domain.GroupRegistration)
		require.Len(t, created.Members, 1)
		assert.True(t, created.Members[0].IsLeader)
		assert.Equal(t, domain.InvitationStatusAccepted, created.Members[0].Status)
		groupRepo.AssertExpectations(t)
		companyRepo.AssertExpectations(t)
		studentRepo.AssertExpectations(t)
	})

	t.Run("staff cannot open a draft", func(t *testing.T) {
		svc, _, _, _, _ := newGroupServiceUnderTest()

		actor := domain.Actor{ID: "k1", Role: domain.RoleStaff}
		result, err := svc.CreateGroup(context.Background(), actor, "comp-1", "", start, end)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("end date before start date is rejected", func(t *testing.T) {
		svc, _, _, _, _ := newGroupServiceUnderTest()

		actor := domain.Actor{ID: "s1", Role: domain.RoleStudent}
		_, err := svc.CreateGroup(context.Background(), actor, "comp-1", "", end, start)

		require.Error(t, err)
		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	})
}

func TestGroupService_Submit(t *testing.T) {
	t.Run("submits when all invitees accepted and capacity holds", func(t *testing.T) {
		svc, groupRepo, _, _, ledger := newGroupServiceUnderTest()

		group := draftGroup()
		now := time.Now()
		submitted := draftGroup()
		submitted.Status = domain.GroupStatusSubmitted
		submitted.Version = 4
		submitted.SubmittedAt = &now

		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(group, nil).Once()
		groupRepo.On("UpdateStatus", mock.Anything, "grp-1", 3, domain.GroupStatusSubmitted, "").Return(nil).Once()
		ledger.On("Reserve", mock.Anything, "comp-1").Return(nil).Once()
		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(submitted, nil).Once()

		actor := domain.Actor{ID: "s1", Role: domain.RoleStudent}
		result, err := svc.Submit(context.Background(), actor, "grp-1")

		require.NoError(t, err)
		assert.Equal(t, domain.GroupStatusSubmitted, result.Status)
		assert.NotNil(t, result.SubmittedAt)
		groupRepo.AssertExpectations(t)
		ledger.AssertExpectations(t)
	})

	t.Run("pending invitation blocks submission", func(t *testing.T) {
		svc, groupRepo, _, _, ledger := newGroupServiceUnderTest()

		group := draftGroup()
		group.Members[1].Status = domain.InvitationStatusPending
		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(group, nil).Once()

		actor := domain.Actor{ID: "s1", Role: domain.RoleStudent}
		result, err := svc.Submit(context.Background(), actor, "grp-1")

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrPendingInvitations))
		ledger.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
	})

	t.Run("declined invitation counts as unresolved", func(t *testing.T) {
		svc, groupRepo, _, _, ledger := newGroupServiceUnderTest()

		group := draftGroup()
		group.Members[1].Status = domain.InvitationStatusDeclined
		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(group, nil).Once()

		actor := domain.Actor{ID: "s1", Role: domain.RoleStudent}
		_, err := svc.Submit(context.Background(), actor, "grp-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrPendingInvitations))
		ledger.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
	})

	t.Run("exhausted capacity reopens the draft", func(t *testing.T) {
		svc, groupRepo, _, _, ledger := newGroupServiceUnderTest()

		group := draftGroup()
		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(group, nil).Once()
		groupRepo.On("UpdateStatus", mock.Anything, "grp-1", 3, domain.GroupStatusSubmitted, "").Return(nil).Once()
		ledger.On("Reserve", mock.Anything, "comp-1").Return(domain.ErrCapacityExhausted).Once()
		groupRepo.On("UpdateStatus", mock.Anything, "grp-1", 4, domain.GroupStatusDraft, "").Return(nil).Once()

		actor := domain.Actor{ID: "s1", Role: domain.RoleStudent}
		result, err := svc.Submit(context.Background(), actor, "grp-1")

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domain.ErrCapacityExhausted))
		ledger.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
		groupRepo.AssertExpectations(t)
	})

	t.Run("stale version means no reservation attempt", func(t *testing.T) {
		svc, groupRepo, _, _, ledger := newGroupServiceUnderTest()

		group := draftGroup()
		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(group, nil).Once()
		groupRepo.On("UpdateStatus", mock.Anything, "grp-1", 3, domain.GroupStatusSubmitted, "").Return(domain.ErrConflict).Once()

		actor := domain.Actor{ID: "s1", Role: domain.RoleStudent}
		_, err := svc.Submit(context.Background(), actor, "grp-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConflict))
		ledger.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
	})

	t.Run("only the leader may submit", func(t *testing.T) {
		svc, groupRepo, _, _, _ := newGroupServiceUnderTest()

		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(draftGroup(), nil).Once()

		actor := domain.Actor{ID: "s2", Role: domain.RoleStudent}
		_, err := svc.Submit(context.Background(), actor, "grp-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("submitting a submitted group fails with invalid state", func(t *testing.T) {
		svc, groupRepo, _, _, _ := newGroupServiceUnderTest()

		group := draftGroup()
		group.Status = domain.GroupStatusSubmitted
		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(group, nil).Once()

		actor := domain.Actor{ID: "s1", Role: domain.RoleStudent}
		_, err := svc.Submit(context.Background(), actor, "grp-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidState))
	})

	t.Run("submitting a withdrawn group fails with group closed", func(t *testing.T) {
		svc, groupRepo, _, _, _ := newGroupServiceUnderTest()

		group := draftGroup()
		group.Status = domain.GroupStatusWithdrawn
		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(group, nil).Once()

		actor := domain.Actor{ID: "s1", Role: domain.RoleStudent}
		_, err := svc.Submit(context.Background(), actor, "grp-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrGroupClosed))
	})
}

func TestGroupService_Withdraw(t *testing.T) {
	t.Run("withdrawing a draft does not touch the ledger", func(t *testing.T) {
		svc, groupRepo, _, _, ledger := newGroupServiceUnderTest()

		group := draftGroup()
		withdrawn := draftGroup()
		withdrawn.Status = domain.GroupStatusWithdrawn
		withdrawn.Version = 4

		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(group, nil).Once()
		groupRepo.On("UpdateStatus", mock.Anything, "grp-1", 3, domain.GroupStatusWithdrawn, "").Return(nil).Once()
		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(withdrawn, nil).Once()

		actor := domain.Actor{ID: "s1", Role: domain.RoleStudent}
		result, err := svc.Withdraw(context.Background(), actor, "grp-1")

		require.NoError(t, err)
		assert.Equal(t, domain.GroupStatusWithdrawn, result.Status)
		ledger.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})

	t.Run("withdrawing a submitted group releases the slot", func(t *testing.T) {
		svc, groupRepo, _, _, ledger := newGroupServiceUnderTest()

		group := draftGroup()
		group.Status = domain.GroupStatusSubmitted
		withdrawn := draftGroup()
		withdrawn.Status = domain.GroupStatusWithdrawn
		withdrawn.Version = 4

		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(group, nil).Once()
		groupRepo.On("UpdateStatus", mock.Anything, "grp-1", 3, domain.GroupStatusWithdrawn, "").Return(nil).Once()
		ledger.On("Release", mock.Anything, "comp-1").Return(nil).Once()
		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(withdrawn, nil).Once()

		actor := domain.Actor{ID: "s1", Role: domain.RoleStudent}
		result, err := svc.Withdraw(context.Background(), actor, "grp-1")

		require.NoError(t, err)
		assert.Equal(t, domain.GroupStatusWithdrawn, result.Status)
		ledger.AssertExpectations(t)
	})

	t.Run("withdrawing a terminal group fails instead of no-opping", func(t *testing.T) {
		svc, groupRepo, _, _, ledger := newGroupServiceUnderTest()

		group := draftGroup()
		group.Status = domain.GroupStatusRejected
		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(group, nil).Once()

		actor := domain.Actor{ID: "s1", Role: domain.RoleStudent}
		_, err := svc.Withdraw(context.Background(), actor, "grp-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrGroupClosed))
		ledger.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})
}
