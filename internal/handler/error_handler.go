package handler

import (
	"errors"
	"net/http"

	"github.com/prasetyadi/pkl-placement/internal/domain"
)

func (h *Handler) handleError(w http.ResponseWriter, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		h.writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Error: ErrorDetail{
				Code:    domainErr.Code,
				Message: domainErr.Message,
			},
		})
		return
	}

	h.writeJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error: ErrorDetail{
			Code:    "INTERNAL_ERROR",
			Message: "internal server error",
		},
	})
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case "BAD_REQUEST", "VALIDATION_FAILED", "SELF_INVITATION":
		return http.StatusBadRequest
	case "FORBIDDEN":
		return http.StatusForbidden
	case "NOT_FOUND":
		return http.StatusNotFound
	case "CAPACITY_EXHAUSTED", "DUPLICATE_INVITATION", "ALREADY_RESPONDED",
		"PENDING_INVITATIONS", "GROUP_CLOSED", "INVALID_STATE", "CONFLICT":
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
