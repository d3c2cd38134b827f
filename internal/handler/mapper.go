package handler

import (
	"time"

	"github.com/prasetyadi/pkl-placement/internal/domain"
)

const dateLayout = "2006-01-02"

func parseDate(value string) time.Time {
	// value has already passed datetime validation
	t, _ := time.Parse(dateLayout, value)
	return t
}

func formatInstant(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func domainCompanyToHTTP(company *domain.Company) CompanyResponse {
	return CompanyResponse{
		CompanyID:      company.ID,
		Name:           company.Name,
		Address:        company.Address,
		Sector:         company.Sector,
		Quota:          company.Quota,
		RemainingSlots: company.RemainingSlots,
	}
}

func domainStudentToHTTP(student *domain.Student) StudentResponse {
	return StudentResponse{
		StudentID: student.ID,
		Name:      student.Name,
		NISN:      student.NISN,
		Class:     student.Class,
	}
}

func domainGroupToHTTP(group *domain.GroupRegistration) GroupResponse {
	members := make([]MemberResponse, 0, len(group.Members))
	for _, member := range group.Members {
		members = append(members, MemberResponse{
			InvitationID: member.ID,
			StudentID:    member.StudentID,
			StudentName:  member.StudentName,
			IsLeader:     member.IsLeader,
			Status:       string(member.Status),
			JoinedAt:     member.JoinedAt.Format(time.RFC3339),
			RespondedAt:  formatInstant(member.RespondedAt),
		})
	}

	return GroupResponse{
		GroupID:      group.ID,
		CompanyID:    group.CompanyID,
		CompanyName:  group.CompanyName,
		LeaderID:     group.LeaderID,
		Note:         group.Note,
		Status:       string(group.Status),
		StartDate:    group.StartDate.Format(dateLayout),
		EndDate:      group.EndDate.Format(dateLayout),
		RejectReason: group.RejectReason,
		MemberCount:  group.MemberCount(),
		Members:      members,
		CreatedAt:    group.CreatedAt.Format(time.RFC3339),
		SubmittedAt:  formatInstant(group.SubmittedAt),
		ApprovedAt:   formatInstant(group.ApprovedAt),
	}
}

func domainSummaryToHTTP(summary *domain.GroupSummary) GroupSummaryResponse {
	return GroupSummaryResponse{
		GroupID:     summary.ID,
		CompanyID:   summary.CompanyID,
		CompanyName: summary.CompanyName,
		Status:      string(summary.Status),
		MemberCount: summary.MemberCount,
		CreatedAt:   summary.CreatedAt.Format(time.RFC3339),
	}
}

func domainInvitationToHTTP(invitation *domain.Invitation) InvitationResponse {
	return InvitationResponse{
		InvitationID: invitation.ID,
		GroupID:      invitation.GroupID,
		GroupStatus:  string(invitation.GroupStatus),
		CompanyName:  invitation.CompanyName,
		LeaderName:   invitation.LeaderName,
		Status:       string(invitation.Status),
		InvitedAt:    invitation.InvitedAt.Format(time.RFC3339),
		RespondedAt:  formatInstant(invitation.RespondedAt),
	}
}
