package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/prasetyadi/pkl-placement/internal/domain"
	"github.com/prasetyadi/pkl-placement/internal/repository"
)

type GroupService interface {
	CreateGroup(ctx context.Context, actor domain.Actor, companyID, note string, start, end time.Time) (*domain.GroupRegistration, error)
	UpdateDraft(ctx context.Context, actor domain.Actor, groupID, companyID, note string, start, end time.Time) (*domain.GroupRegistration, error)
	GetGroup(ctx context.Context, groupID string) (*domain.GroupRegistration, error)
	ListGroupsByLeader(ctx context.Context, leaderID string) ([]*domain.GroupSummary, error)
	Submit(ctx context.Context, actor domain.Actor, groupID string) (*domain.GroupRegistration, error)
	Withdraw(ctx context.Context, actor domain.Actor, groupID string) (*domain.GroupRegistration, error)
}

type groupService struct {
	groupRepo   repository.GroupRepository
	companyRepo repository.CompanyRepository
	studentRepo repository.StudentRepository
	ledger      CapacityLedger
	logger      *zap.Logger
}

func NewGroupService(
	groupRepo repository.GroupRepository,
	companyRepo repository.CompanyRepository,
	studentRepo repository.StudentRepository,
	ledger CapacityLedger,
	logger *zap.Logger,
) GroupService {
	return &groupService{
		groupRepo:   groupRepo,
		companyRepo: companyRepo,
		studentRepo: studentRepo,
		ledger:      ledger,
		logger:      logger,
	}
}

// CreateGroup opens a draft registration owned by the acting student. No
// capacity is held for drafts; availability is only a read-side hint until
// submission.
func (s *groupService) CreateGroup(ctx context.Context, actor domain.Actor, companyID, note string, start, end time.Time) (*domain.GroupRegistration, error) {
	if !actor.IsStudent() {
		return nil, domain.ErrForbidden
	}

	if end.Before(start) {
		return nil, domain.NewValidationError("end date must not precede start date")
	}

	leader, err := s.studentRepo.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	now := time.Now()
	group := &domain.GroupRegistration{
		CompanyID: companyID,
		LeaderID:  leader.ID,
		Note:      note,
		Status:    domain.GroupStatusDraft,
		StartDate: start,
		EndDate:   end,
		Members: []domain.Member{
			{
				StudentID:   leader.ID,
				StudentName: leader.Name,
				IsLeader:    true,
				Status:      domain.InvitationStatusAccepted,
				JoinedAt:    now,
			},
		},
	}

	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	return s.groupRepo.GetByID(ctx, group.ID)
}

func (s *groupService) UpdateDraft(ctx context.Context, actor domain.Actor, groupID, companyID, note string, start, end time.Time) (*domain.GroupRegistration, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if !actor.IsStudent() || actor.ID != group.LeaderID {
		return nil, domain.ErrForbidden
	}

	if group.Status != domain.GroupStatusDraft {
		return nil, domain.NewGroupClosedError(group.ID, group.Status)
	}

	if end.Before(start) {
		return nil, domain.NewValidationError("end date must not precede start date")
	}

	if _, err := s.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	if err := s.groupRepo.UpdateDraft(ctx, group.ID, group.Version, companyID, note, start, end); err != nil {
		return nil, err
	}

	return s.groupRepo.GetByID(ctx, group.ID)
}

func (s *groupService) GetGroup(ctx context.Context, groupID string) (*domain.GroupRegistration, error) {
	return s.groupRepo.GetByID(ctx, groupID)
}

func (s *groupService) ListGroupsByLeader(ctx context.Context, leaderID string) ([]*domain.GroupSummary, error) {
	return s.groupRepo.ListByLeader(ctx, leaderID)
}

// Submit closes the invitation window and reserves a company slot. The
// status write goes first: its version guard loses against any invitation
// response that landed after the leader loaded the group, and once it wins,
// late responses fail against the non-draft status. If the reservation then
// fails there is nothing to release, so the draft is simply reopened.
func (s *groupService) Submit(ctx context.Context, actor domain.Actor, groupID string) (*domain.GroupRegistration, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if !actor.IsStudent() || actor.ID != group.LeaderID {
		return nil, domain.ErrForbidden
	}

	if group.Status != domain.GroupStatusDraft {
		if group.IsTerminal() {
			return nil, domain.NewGroupClosedError(group.ID, group.Status)
		}
		return nil, domain.NewInvalidStateError(group.ID, group.Status)
	}

	if !group.AllAccepted() {
		return nil, domain.ErrPendingInvitations
	}

	if err := s.groupRepo.UpdateStatus(ctx, group.ID, group.Version, domain.GroupStatusSubmitted, ""); err != nil {
		return nil, err
	}

	if err := s.ledger.Reserve(ctx, group.CompanyID); err != nil {
		if rbErr := s.groupRepo.UpdateStatus(ctx, group.ID, group.Version+1, domain.GroupStatusDraft, ""); rbErr != nil {
			s.logger.Error("failed to reopen draft after reservation failure",
				zap.String("group_id", group.ID),
				zap.String("company_id", group.CompanyID),
				zap.Error(rbErr),
			)
		}
		return nil, err
	}

	return s.groupRepo.GetByID(ctx, group.ID)
}

// Withdraw cancels a draft or submitted registration. Only the submitted
// path holds a reservation, and the version-guarded status write makes sure
// it is released exactly once.
func (s *groupService) Withdraw(ctx context.Context, actor domain.Actor, groupID string) (*domain.GroupRegistration, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}

	if !actor.IsStudent() || actor.ID != group.LeaderID {
		return nil, domain.ErrForbidden
	}

	switch group.Status {
	case domain.GroupStatusDraft:
		if err := s.groupRepo.UpdateStatus(ctx, group.ID, group.Version, domain.GroupStatusWithdrawn, ""); err != nil {
			return nil, err
		}
	case domain.GroupStatusSubmitted:
		if err := s.groupRepo.UpdateStatus(ctx, group.ID, group.Version, domain.GroupStatusWithdrawn, ""); err != nil {
			return nil, err
		}
		if err := s.ledger.Release(ctx, group.CompanyID); err != nil {
			s.logger.Error("failed to release reservation on withdraw",
				zap.String("group_id", group.ID),
				zap.String("company_id", group.CompanyID),
				zap.Error(err),
			)
			return nil, err
		}
	default:
		return nil, domain.NewGroupClosedError(group.ID, group.Status)
	}

	return s.groupRepo.GetByID(ctx, group.ID)
}
