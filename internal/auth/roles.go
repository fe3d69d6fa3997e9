package auth

// Role represents a user role.
type Role string

const (
	RoleStaff     Role = "staff"
	RoleBursar    Role = "bursar"
	RolePrincipal Role = "principal"
)

// NormalizeRole validates and normalizes a role string. Legacy tokens
// carry "admin" for what is now the principal role.
func NormalizeRole(value string) (Role, bool) {
	switch Role(value) {
	case RoleStaff, RoleBursar, RolePrincipal:
		return Role(value), true
	}
	if value == "admin" {
		return RolePrincipal, true
	}
	return "", false
}

// RoleAtLeast returns true when role satisfies required role.
func RoleAtLeast(role Role, required Role) bool {
	return roleRank(role) >= roleRank(required)
}

func roleRank(role Role) int {
	switch role {
	case RoleStaff:
		return 1
	case RoleBursar:
		return 2
	case RolePrincipal:
		return 3
	default:
		return 0
	}
}
