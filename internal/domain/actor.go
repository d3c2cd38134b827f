package domain

type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
)

// Actor identifies the authenticated caller of a workflow operation.
// Authentication itself happens outside this service; handlers build the
// Actor from request headers and every service call checks it explicitly.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleStaff
}

func (a Actor) IsStudent() bool {
	return a.Role == RoleStudent
}
