// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleSuperAdmin provisions and monitors stores. It has no store binding.
	RoleSuperAdmin Role = "super_admin"
	// RoleTenantAdmin operates exactly one store.
	RoleTenantAdmin Role = "tenant_admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleTenantAdmin:
		return true
	default:
		return false
	}
}

// RequiresTenant reports whether users with this role must be bound to a tenant.
func (r Role) RequiresTenant() bool {
	return r == RoleTenantAdmin
}
