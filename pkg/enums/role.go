package enums

import "fmt"

// Role labels which dashboard presentation a session sees. It gates
// rendering only and enforces no permission boundary.
type Role string

const (
	RoleBuyer      Role = "BUYER"
	RoleWholesaler Role = "WHOLESALER"
	RoleAdmin      Role = "ADMIN"
)

var validRoles = []Role{
	RoleBuyer,
	RoleWholesaler,
	RoleAdmin,
}

// String implements fmt.Stringer.
func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Role.
func (r Role) IsValid() bool {
	for _, candidate := range validRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRole converts raw input into a Role.
func ParseRole(value string) (Role, error) {
	for _, candidate := range validRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid role %q", value)
}
