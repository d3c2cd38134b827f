package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/prasetyadi/pkl-placement/internal/domain"
	"github.com/prasetyadi/pkl-placement/internal/service"
)

type Handler struct {
	companyService    service.CompanyService
	studentService    service.StudentService
	groupService      service.GroupService
	invitationService service.InvitationService
	approvalService   service.ApprovalService
	validate          *validator.Validate
}

func NewHandler(
	companyService service.CompanyService,
	studentService service.StudentService,
	groupService service.GroupService,
	invitationService service.InvitationService,
	approvalService service.ApprovalService,
) *Handler {
	return &Handler{
		companyService:    companyService,
		studentService:    studentService,
		groupService:      groupService,
		invitationService: invitationService,
		approvalService:   approvalService,
		validate:          validator.New(),
	}
}

// decode unmarshals and validates a request body.
func (h *Handler) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "invalid request body",
		}
	}
	if err := h.validate.Struct(dst); err != nil {
		return domain.NewValidationError(err.Error())
	}
	return nil
}

// actorFromRequest builds the acting-user descriptor from the identity
// headers set by the authenticating reverse proxy.
func actorFromRequest(r *http.Request) (domain.Actor, error) {
	id := r.Header.Get("X-Actor-Id")
	role := domain.Role(r.Header.Get("X-Actor-Role"))
	if id == "" || (role != domain.RoleStudent && role != domain.RoleStaff) {
		return domain.Actor{}, &domain.DomainError{
			Code:    "FORBIDDEN",
			Message: "missing or invalid actor identity headers",
		}
	}
	return domain.Actor{ID: id, Role: role}, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}
