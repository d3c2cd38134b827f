package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateCompanyRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Sector  string `json:"sector"`
	Quota   int    `json:"quota" validate:"gte=0"`
}

type CompanyResponse struct {
	CompanyID      string `json:"company_id"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	Sector         string `json:"sector"`
	Quota          int    `json:"quota"`
	RemainingSlots int    `json:"remaining_slots"`
}

type CreateCompanyResponse struct {
	Company CompanyResponse `json:"company"`
}

type ListCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
}

type CreateStudentRequest struct {
	Name  string `json:"name" validate:"required"`
	NISN  string `json:"nisn" validate:"required"`
	Class string `json:"class" validate:"required"`
}

type StudentResponse struct {
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	NISN      string `json:"nisn"`
	Class     string `json:"class"`
}

type CreateStudentResponse struct {
	Student StudentResponse `json:"student"`
}

type CreateGroupRequest struct {
	CompanyID string `json:"company_id" validate:"required"`
	Note      string `json:"note"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type UpdateGroupRequest struct {
	CompanyID string `json:"company_id" validate:"required"`
	Note      string `json:"note"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

type InviteRequest struct {
	StudentID string `json:"student_id" validate:"required"`
}

type RespondRequest struct {
	Decision string `json:"decision" validate:"required,oneof=accept decline"`
}

type RejectRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type MemberResponse struct {
	InvitationID string  `json:"invitation_id"`
	StudentID    string  `json:"student_id"`
	StudentName  string  `json:"student_name"`
	IsLeader     bool    `json:"is_leader"`
	Status       string  `json:"status"`
	JoinedAt     string  `json:"joined_at"`
	RespondedAt  *string `json:"responded_at,omitempty"`
}

type GroupResponse struct {
	GroupID      string           `json:"group_id"`
	CompanyID    string           `json:"company_id"`
	CompanyName  string           `json:"company_name"`
	LeaderID     string           `json:"leader_id"`
	Note         string           `json:"note"`
	Status       string           `json:"status"`
	StartDate    string           `json:"start_date"`
	EndDate      string           `json:"end_date"`
	RejectReason string           `json:"reject_reason,omitempty"`
	MemberCount  int              `json:"member_count"`
	Members      []MemberResponse `json:"members"`
	CreatedAt    string           `json:"created_at"`
	SubmittedAt  *string          `json:"submitted_at,omitempty"`
	ApprovedAt   *string          `json:"approved_at,omitempty"`
}

type GroupRegistrationResponse struct {
	Group GroupResponse `json:"group"`
}

type GroupSummaryResponse struct {
	GroupID     string `json:"group_id"`
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	Status      string `json:"status"`
	MemberCount int    `json:"member_count"`
	CreatedAt   string `json:"created_at"`
}

type ListGroupsResponse struct {
	StudentID string                 `json:"student_id"`
	Groups    []GroupSummaryResponse `json:"groups"`
}

type InvitationResponse struct {
	InvitationID string  `json:"invitation_id"`
	GroupID      string  `json:"group_id"`
	GroupStatus  string  `json:"group_status"`
	CompanyName  string  `json:"company_name"`
	LeaderName   string  `json:"leader_name"`
	Status       string  `json:"status"`
	InvitedAt    string  `json:"invited_at"`
	RespondedAt  *string `json:"responded_at,omitempty"`
}

type ListInvitationsResponse struct {
	StudentID   string               `json:"student_id"`
	Invitations []InvitationResponse `json:"invitations"`
}
