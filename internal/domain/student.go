package domain

import "time"

// Student is reference data for the placement workflow; the portal's CRUD
// subsystem owns it, this service only reads it.
type Student struct {
	ID        string
	Name      string
	NISN      string
	Class     string
	CreatedAt time.Time
}
