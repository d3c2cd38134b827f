package repository

import (
	"context"
	"time"

	"github.com/prasetyadi/pkl-placement/internal/domain"
)

// GroupRepository persists group registrations and their member set. Every
// write takes the version the caller loaded; a stale version fails with
// domain.ErrConflict and bumps nothing.
type GroupRepository interface {
	Create(ctx context.Context, group *domain.GroupRegistration) error
	GetByID(ctx context.Context, id string) (*domain.GroupRegistration, error)
	// GetByMemberID loads the group owning the given member/invitation.
	GetByMemberID(ctx context.Context, memberID string) (*domain.GroupRegistration, error)
	// UpdateDraft edits note/dates/company while the group is still a draft.
	UpdateDraft(ctx context.Context, id string, version int, companyID, note string, start, end time.Time) error
	// UpdateStatus moves the registration to the given status, maintaining
	// the submitted/approved timestamps and the reject reason.
	UpdateStatus(ctx context.Context, id string, version int, status domain.GroupStatus, reason string) error
	// AddMember appends an invitation record and bumps the group version.
	AddMember(ctx context.Context, groupID string, version int, member *domain.Member) error
	// RemoveMember deletes a non-leader member and bumps the group version.
	RemoveMember(ctx context.Context, memberID string, groupID string, version int) error
	// RespondMember resolves a pending invitation while the group is a draft.
	RespondMember(ctx context.Context, memberID string, groupID string, version int, status domain.InvitationStatus, respondedAt time.Time) error
	ListByLeader(ctx context.Context, leaderID string) ([]*domain.GroupSummary, error)
	ListInvitationsByStudent(ctx context.Context, studentID string) ([]*domain.Invitation, error)
}
