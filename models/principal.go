package models

import "time"

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// Principal is the authenticated identity for one role. Each role keeps an
// independent session: a buyer login never touches the vendor or admin state.
type Principal struct {
	ID      string    `json:"id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone,omitempty"`
	Role    Role      `json:"role"`
	Vendor  *Vendor   `json:"vendor,omitempty"` // populated for vendor logins with a catalog entry
	LoginAt time.Time `json:"loginAt"`
}
