// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the access level a caller can have in the system.
type Role string

const (
	// RoleAdmin may mutate everything, including deletes.
	RoleAdmin Role = "admin"
	// RoleStaff may create and edit partners, territories and quotes.
	RoleStaff Role = "staff"
	// RoleClient may read data and create quotes.
	RoleClient Role = "client"
	// RoleGuest is an unauthenticated caller.
	RoleGuest Role = "guest"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleClient, RoleGuest:
		return true
	default:
		return false
	}
}

// AtLeast reports whether the role grants at least the given role's access.
// Ordering: admin > staff > client > guest.
func (r Role) AtLeast(required Role) bool {
	return r.rank() >= required.rank()
}

func (r Role) rank() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleStaff:
		return 2
	case RoleClient:
		return 1
	default:
		return 0
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Strongest returns the highest-ranked role in the slice, RoleGuest when empty.
func (rs Roles) Strongest() Role {
	strongest := RoleGuest
	for _, r := range rs {
		if r.rank() > strongest.rank() {
			strongest = r
		}
	}

	return strongest
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
