// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import (
	"placehub/internal/domain/entity"

	"github.com/google/uuid"
)

// Requester identifies who is performing an operation. The capability set is
// derived once from the authenticated user's role and superuser flag; an
// anonymous requester has the zero capability.
type Requester struct {
	ID            uuid.UUID
	Authenticated bool
	Capability    entity.Capability
}

// Anonymous returns the requester value for unauthenticated requests.
func Anonymous() Requester {
	return Requester{}
}

// RequesterFor builds a requester from an authenticated user's identity.
func RequesterFor(userID uuid.UUID, role entity.Role, superuser bool) Requester {
	return Requester{
		ID:            userID,
		Authenticated: true,
		Capability:    entity.CapabilityOf(role, superuser),
	}
}

// Page is a limit/offset pagination request. Zero values fall back to the
// default page size.
type Page struct {
	Limit  int
	Offset int
}

const (
	// DefaultPageSize is applied when a list request does not set a limit.
	DefaultPageSize = 20
	// MaxPageSize caps the page size a client may request.
	MaxPageSize = 100
)

// Normalize clamps the page to the allowed size range.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	return p
}
