package service

import (
	"context"
	"time"

	"github.com/prasetyadi/pkl-placement/internal/domain"
	"github.com/prasetyadi/pkl-placement/internal/repository"
)

type InvitationService interface {
	Invite(ctx context.Context, actor domain.Actor, groupID, studentID string) (*domain.GroupRegistration, error)
	Respond(ctx context.Context, actor domain.Actor, invitationID string, accept bool) (*domain.GroupRegistration, error)
	Revoke(ctx context.Context, actor domain.Actor, invitationID string) (*domain.GroupRegistration, error)
	ListByStudent(ctx context.Context, studentID string) ([]*domain.Invitation, error)
}

type invitationService struct {
	groupRepo   repository.GroupRepository
	studentRepo repository.StudentRepository
}

func NewInvitationService(groupRepo repository.GroupRepository, studentRepo repository.StudentRepository) InvitationService {
	return &invitationService{
		groupRepo:   groupRepo,
		studentRepo: studentRepo,
	}
}

func (s *invitationService) Invite(ctx context.Context, actor domain.Actor, groupID, studentID string) (*domain.GroupRegistration, error) {
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

	if studentID == group.LeaderID {
		return nil, domain.ErrSelfInvitation
	}

	// A student may appear at most once in the member set. A declined record
	// also blocks re-inviting until the leader revokes it.
	if existing := group.MemberByStudent(studentID); existing != nil {
		if existing.Status == domain.InvitationStatusDeclined {
			return nil, &domain.DomainError{
				Code:    "DUPLICATE_INVITATION",
				Message: "student has a declined invitation in this group, revoke it before re-inviting",
			}
		}
		return nil, domain.ErrDuplicateInvitation
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	member := &domain.Member{
		StudentID:   student.ID,
		StudentName: student.Name,
		Status:      domain.InvitationStatusPending,
		JoinedAt:    time.Now(),
	}

	if err := s.groupRepo.AddMember(ctx, group.ID, group.Version, member); err != nil {
		return nil, err
	}

	return s.groupRepo.GetByID(ctx, group.ID)
}

// Respond resolves a pending invitation. Responses are only accepted while
// the group is still a draft: submission closes the invitation window, so a
// decline racing a submit fails rather than landing on a reserved group.
func (s *invitationService) Respond(ctx context.Context, actor domain.Actor, invitationID string, accept bool) (*domain.GroupRegistration, error) {
	group, err := s.groupRepo.GetByMemberID(ctx, invitationID)
	if err != nil {
		return nil, err
	}

	member := group.MemberByID(invitationID)
	if member == nil || member.IsLeader {
		return nil, domain.NewNotFoundError("invitation " + invitationID)
	}

	if !actor.IsStudent() || actor.ID != member.StudentID {
		return nil, domain.ErrForbidden
	}

	if member.Status != domain.InvitationStatusPending {
		return nil, domain.ErrAlreadyResponded
	}

	if group.Status != domain.GroupStatusDraft {
		return nil, domain.NewGroupClosedError(group.ID, group.Status)
	}

	status := domain.InvitationStatusAccepted
	if !accept {
		status = domain.InvitationStatusDeclined
	}

	if err := s.groupRepo.RespondMember(ctx, invitationID, group.ID, group.Version, status, time.Now()); err != nil {
		return nil, err
	}

	return s.groupRepo.GetByID(ctx, group.ID)
}

// Revoke removes a pending or declined invitation. Accepted members stay:
// the leader's only way out of an accepted membership is withdrawing the
// whole registration.
func (s *invitationService) Revoke(ctx context.Context, actor domain.Actor, invitationID string) (*domain.GroupRegistration, error) {
	group, err := s.groupRepo.GetByMemberID(ctx, invitationID)
	if err != nil {
		return nil, err
	}

	member := group.MemberByID(invitationID)
	if member == nil || member.IsLeader {
		return nil, domain.NewNotFoundError("invitation " + invitationID)
	}

	if !actor.IsStudent() || actor.ID != group.LeaderID {
		return nil, domain.ErrForbidden
	}

	if group.Status != domain.GroupStatusDraft {
		return nil, domain.NewGroupClosedError(group.ID, group.Status)
	}

	if member.Status == domain.InvitationStatusAccepted {
		return nil, domain.ErrAlreadyResponded
	}

	if err := s.groupRepo.RemoveMember(ctx, invitationID, group.ID, group.Version); err != nil {
		return nil, err
	}

	return s.groupRepo.GetByID(ctx, group.ID)
}

func (s *invitationService) ListByStudent(ctx context.Context, studentID string) ([]*domain.Invitation, error) {
	return s.groupRepo.ListInvitationsByStudent(ctx, studentID)
}
