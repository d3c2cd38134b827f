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

func newApprovalServiceUnderTest() (ApprovalService, *MockGroupRepository, *MockCapacityLedger) {
	groupRepo := new(MockGroupRepository)
	ledger := new(MockCapacityLedger)
	return NewApprovalService(groupRepo, ledger, zap.NewNop()), groupRepo, ledger
}

func submittedGroup() *domain.GroupRegistration {
	g := draftGroup()
	g.Status = domain.GroupStatusSubmitted
	now := time.Now()
	g.SubmittedAt = &now
	return g
}

func TestApprovalService_Approve(t *testing.T) {
	staff := domain.Actor{ID: "k1", Role: domain.RoleStaff}

	t.Run("approves a submitted group without touching the ledger", func(t *testing.T) {
		svc, groupRepo, ledger := newApprovalServiceUnderTest()

		group := submittedGroup()
		approved := submittedGroup()
		approved.Status = domain.GroupStatusApproved
		now := time.Now()
		approved.ApprovedAt = &now

		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(group, nil).Once()
		groupRepo.On("UpdateStatus", mock.Anything, "grp-1", 3, domain.GroupStatusApproved, "").Return(nil).Once()
		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(approved, nil).Once()

		result, err := svc.Approve(context.Background(), staff, "grp-1")

		require.NoError(t, err)
		assert.Equal(t, domain.GroupStatusApproved, result.Status)
		assert.NotNil(t, result.ApprovedAt)
		ledger.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
		ledger.AssertNotCalled(t, "Reserve", mock.Anything, mock.Anything)
		groupRepo.AssertExpectations(t)
	})

	t.Run("students cannot approve", func(t *testing.T) {
		svc, groupRepo, _ := newApprovalServiceUnderTest()

		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(submittedGroup(), nil).Once()

		student := domain.Actor{ID: "s1", Role: domain.RoleStudent}
		_, err := svc.Approve(context.Background(), student, "grp-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrForbidden))
	})

	t.Run("approving a draft fails with invalid state", func(t *testing.T) {
		svc, groupRepo, _ := newApprovalServiceUnderTest()

		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(draftGroup(), nil).Once()

		_, err := svc.Approve(context.Background(), staff, "grp-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidState))
	})

	t.Run("a second review on a terminal group fails cleanly", func(t *testing.T) {
		svc, groupRepo, ledger := newApprovalServiceUnderTest()

		group := submittedGroup()
		group.Status = domain.GroupStatusRejected
		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(group, nil).Once()

		_, err := svc.Approve(context.Background(), staff, "grp-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidState))
		ledger.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})
}

func TestApprovalService_Reject(t *testing.T) {
	staff := domain.Actor{ID: "k1", Role: domain.RoleStaff}

	t.Run("rejecting releases the reserved slot and records the reason", func(t *testing.T) {
		svc, groupRepo, ledger := newApprovalServiceUnderTest()

		group := submittedGroup()
		rejected := submittedGroup()
		rejected.Status = domain.GroupStatusRejected
		rejected.RejectReason = "incomplete documents"

		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(group, nil).Once()
		groupRepo.On("UpdateStatus", mock.Anything, "grp-1", 3, domain.GroupStatusRejected, "incomplete documents").Return(nil).Once()
		ledger.On("Release", mock.Anything, "comp-1").Return(nil).Once()
		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(rejected, nil).Once()

		result, err := svc.Reject(context.Background(), staff, "grp-1", "incomplete documents")

		require.NoError(t, err)
		assert.Equal(t, domain.GroupStatusRejected, result.Status)
		assert.Equal(t, "incomplete documents", result.RejectReason)
		groupRepo.AssertExpectations(t)
		ledger.AssertExpectations(t)
	})

	t.Run("an empty reason is rejected", func(t *testing.T) {
		svc, groupRepo, ledger := newApprovalServiceUnderTest()

		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(submittedGroup(), nil).Once()

		_, err := svc.Reject(context.Background(), staff, "grp-1", "")

		require.Error(t, err)
		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
		ledger.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})

	t.Run("rejecting an already rejected group does not double release", func(t *testing.T) {
		svc, groupRepo, ledger := newApprovalServiceUnderTest()

		group := submittedGroup()
		group.Status = domain.GroupStatusRejected
		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(group, nil).Once()

		_, err := svc.Reject(context.Background(), staff, "grp-1", "late")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidState))
		ledger.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})

	t.Run("a lost status race does not release capacity", func(t *testing.T) {
		svc, groupRepo, ledger := newApprovalServiceUnderTest()

		groupRepo.On("GetByID", mock.Anything, "grp-1").Return(submittedGroup(), nil).Once()
		groupRepo.On("UpdateStatus", mock.Anything, "grp-1", 3, domain.GroupStatusRejected, "late").Return(domain.ErrConflict).Once()

		_, err := svc.Reject(context.Background(), staff, "grp-1", "late")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConflict))
		ledger.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
	})
}
