package model

import "github.com/uar-project/uar/pkg/errclass"

// Role identifies a user's role. The underlying string is the
// display label used in report output.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
	RoleGuest Role = "Guest"
)

// Label returns the role's display label.
func (r Role) Label() string {
	return string(r)
}

// Valid reports whether r is one of the three defined roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleGuest:
		return true
	}
	return false
}

// ParseRole maps a display label to its Role.
func ParseRole(label string) (Role, error) {
	r := Role(label)
	if !r.Valid() {
		return "", errclass.ErrRoleUnknown.WithMessagef("unknown role %q", label)
	}
	return r, nil
}
