package domain

import "time"

// Role is the teller role a trainee picks after login.
type Role string

const (
	RoleKassir       Role = "kassir"       // cash desk
	RoleValyuta      Role = "valyuta"      // currency exchange
	RolePlastik      Role = "plastik"      // card issuance
	RoleOmonat       Role = "omonat"       // deposits
	RoleRahbar       Role = "rahbar"       // supervisor / control department
	RoleKredit       Role = "kredit"       // loan officer
	RoleBuxgalteriya Role = "buxgalteriya" // accounting view
)

// KnownRoles lists every selectable role.
var KnownRoles = []Role{RoleKassir, RoleValyuta, RolePlastik, RoleOmonat, RoleRahbar, RoleKredit, RoleBuxgalteriya}

// IsKnownRole reports whether r is one of the selectable roles.
func IsKnownRole(r string) bool {
	for _, known := range KnownRoles {
		if Role(r) == known {
			return true
		}
	}
	return false
}

// User is the trainee session identity. There is no password; the simulator
// identifies students by display name only.
type User struct {
	UserID    string    `json:"id"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
