// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser indicates a regular user role.
	RoleUser Role = "user"
	// RoleModerator indicates a moderator role.
	RoleModerator Role = "moderator"
	// RoleAdmin indicates an administrator role.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	default:
		return false
	}
}

// Capability is the effective permission set derived from a role and the
// superuser flag. It is computed once per request and passed around as a
// plain value instead of re-deriving booleans at every call site.
type Capability struct {
	ReadAll  bool // may see places of any non-archived status
	Moderate bool // may publish or reject places under moderation
	Admin    bool // may access the archived listing and admin surfaces
}

// CapabilityOf derives the capability set for a role. The superuser flag
// grants admin-equivalent access regardless of the stored role.
func CapabilityOf(role Role, superuser bool) Capability {
	admin := role == RoleAdmin || superuser
	moderate := role == RoleModerator || admin

	return Capability{
		ReadAll:  moderate,
		Moderate: moderate,
		Admin:    admin,
	}
}
