// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a unique account in the system. The email address doubles
// as the login identifier; there is no separate username.
type User struct {
	ID           uuid.UUID  // The unique identifier for the user.
	Email        string     // The user's email, used as the login identifier. Unique.
	FirstName    string     // The user's given name.
	LastName     string     // The user's family name.
	PasswordHash string     // The bcrypt hash of the user's password.
	Role         Role       // The user's role in the system.
	IsSuperuser  bool       // Grants admin-equivalent capability independently of Role.
	IsActive     bool       // Inactive accounts cannot authenticate.
	LastLoginAt  *time.Time // Timestamp of the most recent successful login.
	CreatedAt    time.Time  // Timestamp of when this account was created.
	UpdatedAt    time.Time  // Timestamp of the last modification to this account.
}

// FullName returns the display name composed from first and last name.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Capability derives the user's effective permission set.
func (u *User) Capability() Capability {
	return CapabilityOf(u.Role, u.IsSuperuser)
}
