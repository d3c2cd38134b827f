package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req CreateGroupRequest
	if err := h.decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	group, err := h.groupService.CreateGroup(r.Context(), actor, req.CompanyID, req.Note, parseDate(req.StartDate), parseDate(req.EndDate))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, GroupRegistrationResponse{
		Group: domainGroupToHTTP(group),
	})
}

func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	group, err := h.groupService.GetGroup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, GroupRegistrationResponse{
		Group: domainGroupToHTTP(group),
	})
}

func (h *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req UpdateGroupRequest
	if err := h.decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	group, err := h.groupService.UpdateDraft(r.Context(), actor, chi.URLParam(r, "id"), req.CompanyID, req.Note, parseDate(req.StartDate), parseDate(req.EndDate))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, GroupRegistrationResponse{
		Group: domainGroupToHTTP(group),
	})
}

func (h *Handler) SubmitGroup(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	group, err := h.groupService.Submit(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, GroupRegistrationResponse{
		Group: domainGroupToHTTP(group),
	})
}

func (h *Handler) WithdrawGroup(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	group, err := h.groupService.Withdraw(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, GroupRegistrationResponse{
		Group: domainGroupToHTTP(group),
	})
}

func (h *Handler) ApproveGroup(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	group, err := h.approvalService.Approve(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, GroupRegistrationResponse{
		Group: domainGroupToHTTP(group),
	})
}

func (h *Handler) RejectGroup(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req RejectRequest
	if err := h.decode(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	group, err := h.approvalService.Reject(r.Context(), actor, chi.URLParam(r, "id"), req.Reason)
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, GroupRegistrationResponse{
		Group: domainGroupToHTTP(group),
	})
}
