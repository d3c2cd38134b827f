package domain

import "time"

type GroupStatus string

const (
	GroupStatusDraft     GroupStatus = "DRAFT"
	GroupStatusSubmitted GroupStatus = "SUBMITTED"
	GroupStatusApproved  GroupStatus = "APPROVED"
	GroupStatusRejected  GroupStatus = "REJECTED"
	GroupStatusWithdrawn GroupStatus = "WITHDRAWN"
)

type InvitationStatus string

const (
	InvitationStatusPending  InvitationStatus = "PENDING"
	InvitationStatusAccepted InvitationStatus = "ACCEPTED"
	InvitationStatusDeclined InvitationStatus = "DECLINED"
)

// Member is a student inside a group registration. The non-leader members
// double as the invitation records: the member id is the invitation id.
type Member struct {
	ID          string
	StudentID   string
	StudentName string
	IsLeader    bool
	Status      InvitationStatus
	JoinedAt    time.Time
	RespondedAt *time.Time
}

// GroupRegistration is the aggregate root of the placement workflow. Version
// guards every mutation: member writes bump it too, so a submit racing a
// response loses with CONFLICT instead of reading stale members.
type GroupRegistration struct {
	ID           string
	CompanyID    string
	CompanyName  string
	LeaderID     string
	Note         string
	Status       GroupStatus
	StartDate    time.Time
	EndDate      time.Time
	RejectReason string
	Members      []Member
	Version      int
	CreatedAt    time.Time
	SubmittedAt  *time.Time
	ApprovedAt   *time.Time
}

func (g *GroupRegistration) MemberCount() int {
	return len(g.Members)
}

// IsTerminal reports whether the registration reached a final status.
func (g *GroupRegistration) IsTerminal() bool {
	switch g.Status {
	case GroupStatusApproved, GroupStatusRejected, GroupStatusWithdrawn:
		return true
	}
	return false
}

// AllAccepted reports whether every non-leader member has accepted. Declined
// members count as unresolved: the leader has to revoke them before submit.
func (g *GroupRegistration) AllAccepted() bool {
	for _, m := range g.Members {
		if m.IsLeader {
			continue
		}
		if m.Status != InvitationStatusAccepted {
			return false
		}
	}
	return true
}

// MemberByID returns the member with the given id, or nil.
func (g *GroupRegistration) MemberByID(memberID string) *Member {
	for i := range g.Members {
		if g.Members[i].ID == memberID {
			return &g.Members[i]
		}
	}
	return nil
}

// MemberByStudent returns the member referencing the given student, or nil.
func (g *GroupRegistration) MemberByStudent(studentID string) *Member {
	for i := range g.Members {
		if g.Members[i].StudentID == studentID {
			return &g.Members[i]
		}
	}
	return nil
}

// GroupSummary is the leader-facing list row.
type GroupSummary struct {
	ID          string
	CompanyID   string
	CompanyName string
	Status      GroupStatus
	MemberCount int
	CreatedAt   time.Time
}

// Invitation is the invitee-facing read model of a pending or resolved
// member record, joined with its group context.
type Invitation struct {
	ID          string
	GroupID     string
	GroupStatus GroupStatus
	CompanyName string
	LeaderName  string
	StudentID   string
	Status      InvitationStatus
	InvitedAt   time.Time
	RespondedAt *time.Time
}
