package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) InviteMember(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req InviteRequest
	if err := h.decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	group, err := h.invitationService.Invite(r.Context(), actor, chi.URLParam(r, "id"), req.StudentID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, GroupRegistrationResponse{
		Group: domainGroupToHTTP(group),
	})
}

func (h *Handler) RespondInvitation(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req RespondRequest
	if err := h.decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	group, err := h.invitationService.Respond(r.Context(), actor, chi.URLParam(r, "id"), req.Decision == "accept")
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, GroupRegistrationResponse{
		Group: domainGroupToHTTP(group),
	})
}

func (h *Handler) RevokeInvitation(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	group, err := h.invitationService.Revoke(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, GroupRegistrationResponse{
		Group: domainGroupToHTTP(group),
	})
}
