package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is matches on Code so errors.Is works against the sentinels below.
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrCapacityExhausted - the company has no open internship slots left
	ErrCapacityExhausted = &DomainError{
		Code:    "CAPACITY_EXHAUSTED",
		Message: "company has no remaining internship slots",
	}

	// ErrDuplicateInvitation - the student already has a member record in the group
	ErrDuplicateInvitation = &DomainError{
		Code:    "DUPLICATE_INVITATION",
		Message: "student already has an invitation in this group",
	}

	// ErrSelfInvitation - the leader tried to invite themselves
	ErrSelfInvitation = &DomainError{
		Code:    "SELF_INVITATION",
		Message: "leader cannot invite themselves",
	}

	// ErrAlreadyResponded - the invitation is no longer pending
	ErrAlreadyResponded = &DomainError{
		Code:    "ALREADY_RESPONDED",
		Message: "invitation has already been responded to",
	}

	// ErrPendingInvitations - not every invitee has accepted yet
	ErrPendingInvitations = &DomainError{
		Code:    "PENDING_INVITATIONS",
		Message: "group has unresolved invitations",
	}

	// ErrGroupClosed - the group no longer accepts this mutation
	ErrGroupClosed = &DomainError{
		Code:    "GROUP_CLOSED",
		Message: "group registration is closed",
	}

	// ErrInvalidState - the registration is not in the state the operation requires
	ErrInvalidState = &DomainError{
		Code:    "INVALID_STATE",
		Message: "group registration is not in a valid state for this operation",
	}

	// ErrConflict - optimistic version mismatch, caller should reload and retry
	ErrConflict = &DomainError{
		Code:    "CONFLICT",
		Message: "concurrent modification detected, retry with fresh state",
	}

	// ErrNotFound - resource does not exist
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrForbidden - the acting user is not allowed to perform the operation
	ErrForbidden = &DomainError{
		Code:    "FORBIDDEN",
		Message: "actor is not allowed to perform this operation",
	}
)

// NewNotFoundError creates a NOT_FOUND error naming the missing resource.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewGroupClosedError carries the group id and its current status so the
// caller can tell a terminal registration from a race it could retry.
func NewGroupClosedError(groupID string, status GroupStatus) *DomainError {
	return &DomainError{
		Code:    "GROUP_CLOSED",
		Message: fmt.Sprintf("group %s is closed (status %s)", groupID, status),
	}
}

// NewInvalidStateError creates an INVALID_STATE error with the group context.
func NewInvalidStateError(groupID string, status GroupStatus) *DomainError {
	return &DomainError{
		Code:    "INVALID_STATE",
		Message: fmt.Sprintf("group %s is %s, operation requires a submitted registration", groupID, status),
	}
}

// NewValidationError creates a VALIDATION_FAILED error for rejected input.
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION_FAILED",
		Message: message,
	}
}
