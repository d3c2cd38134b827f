package domain

import "time"

// Company offers internship placements. Quota and RemainingSlots are owned
// by the capacity ledger; nothing else writes them.
type Company struct {
	ID             string
	Name           string
	Address        string
	Sector         string
	Quota          int
	RemainingSlots int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// HasOpenSlots reports whether the company can take another group. This is a
// read-side hint only; the authoritative check is the ledger reserve.
func (c *Company) HasOpenSlots() bool {
	return c.RemainingSlots > 0
}
