package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req CreateStudentRequest
	if err := h.decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	student, err := h.studentService.CreateStudent(r.Context(), req.Name, req.NISN, req.Class)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, CreateStudentResponse{
		Student: domainStudentToHTTP(student),
	})
}

func (h *Handler) GetStudent(w http.ResponseWriter, r *http.Request) {
	student, err := h.studentService.GetStudent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, domainStudentToHTTP(student))
}

// ListStudentInvitations is the invitee's inbox: every invitation addressed
// to the student, resolved or not, with its group context.
func (h *Handler) ListStudentInvitations(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")

	invitations, err := h.invitationService.ListByStudent(r.Context(), studentID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	responses := make([]InvitationResponse, 0, len(invitations))
	for _, invitation := range invitations {
		responses = append(responses, domainInvitationToHTTP(invitation))
	}

	h.writeJSON(w, http.StatusOK, ListInvitationsResponse{
		StudentID:   studentID,
		Invitations: responses,
	})
}

// ListStudentGroups lists the registrations the student leads.
func (h *Handler) ListStudentGroups(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "id")

	groups, err := h.groupService.ListGroupsByLeader(r.Context(), studentID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	responses := make([]GroupSummaryResponse, 0, len(groups))
	for _, group := range groups {
		responses = append(responses, domainSummaryToHTTP(group))
	}

	h.writeJSON(w, http.StatusOK, ListGroupsResponse{
		StudentID: studentID,
		Groups:    responses,
	})
}
