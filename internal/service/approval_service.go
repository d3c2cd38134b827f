package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/prasetyadi/pkl-placement/internal/domain"
	"github.com/prasetyadi/pkl-placement/internal/repository"
)

// ApprovalService is the staff-facing review of submitted registrations.
type ApprovalService interface {
	Approve(ctx context.Context, actor domain.Actor, groupID string) (*domain.GroupRegistration, error)
	Reject(ctx context.Context, actor domain.Actor, groupID, reason string) (*domain.GroupRegistration, error)
}

type approvalService struct {
	groupRepo repository.GroupRepository
	ledger    CapacityLedger
	logger    *zap.Logger
}

func NewApprovalService(groupRepo repository.GroupRepository, ledger CapacityLedger, logger *zap.Logger) ApprovalService {
	return &approvalService{
		groupRepo: groupRepo,
		ledger:    ledger,
		logger:    logger,
	}
}

// Approve finalizes a submitted registration. The reservation taken at
// submit time is consumed permanently, so the ledger is not touched.
func (s *approvalService) Approve(ctx context.Context, actor domain.Actor, groupID string) (*domain.GroupRegistration, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if !actor.IsStaff() {
		return nil, domain.ErrForbidden
	}

	if group.Status != domain.GroupStatusSubmitted {
		return nil, domain.NewInvalidStateError(group.ID, group.Status)
	}

	if err := s.groupRepo.UpdateStatus(ctx, group.ID, group.Version, domain.GroupStatusApproved, ""); err != nil {
		return nil, err
	}

	return s.groupRepo.GetByID(ctx, group.ID)
}

// Reject turns a submitted registration down and hands its slot back. The
// version-guarded status write wins at most once, so the release cannot be
// applied twice even under concurrent reviews.
func (s *approvalService) Reject(ctx context.Context, actor domain.Actor, groupID, reason string) (*domain.GroupRegistration, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if !actor.IsStaff() {
		return nil, domain.ErrForbidden
	}

	if reason == "" {
		return nil, domain.NewValidationError("reject reason must not be empty")
	}

	if group.Status != domain.GroupStatusSubmitted {
		return nil, domain.NewInvalidStateError(group.ID, group.Status)
	}

	if err := s.groupRepo.UpdateStatus(ctx, group.ID, group.Version, domain.GroupStatusRejected, reason); err != nil {
		return nil, err
	}

	if err := s.ledger.Release(ctx, group.CompanyID); err != nil {
		s.logger.Error("failed to release reservation on reject",
			zap.String("group_id", group.ID),
			zap.String("company_id", group.CompanyID),
			zap.Error(err),
		)
		return nil, err
	}

	return s.groupRepo.GetByID(ctx, group.ID)
}
