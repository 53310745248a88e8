// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"placehub/internal/domain/entity"
	"placehub/internal/domain/geo"
	"placehub/internal/errors"

	"github.com/google/uuid"
)

// ErrPlaceNotFound is returned when a place is not found.
var ErrPlaceNotFound = errors.New("place not found")

// PlaceFilter describes which places a query may return. The visibility
// clause (Statuses OR owner) is always applied before any geospatial
// predicate, so an out-of-box place a requester cannot see never leaks.
type PlaceFilter struct {
	// Statuses lists the statuses visible to the requester. Empty means no
	// status-based visibility at all (nothing matches unless OwnerID is set).
	Statuses []entity.PlaceStatus

	// OwnerID widens the visible set with the requester's own places of any
	// non-archived status.
	OwnerID *uuid.UUID

	// BBox restricts results to places inside the box, edges inclusive.
	BBox *geo.BBox

	// OldestFirst orders by creation time ascending (moderation queue).
	// The default ordering is newest first.
	OldestFirst bool

	// Limit and Offset paginate the result. Limit 0 means no limit.
	Limit  int
	Offset int
}

// PlaceRepository defines the standard operations for place persistence.
type PlaceRepository interface {
	// Create persists a new place.
	Create(ctx context.Context, place *entity.Place) error

	// FindByID retrieves a place by its unique ID regardless of visibility.
	// Visibility checks belong to the caller.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error)

	// List retrieves places matching the filter.
	List(ctx context.Context, filter PlaceFilter) ([]*entity.Place, error)

	// CountByOwner returns the number of places created by a user.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// Update persists all fields of an existing place as one atomic write.
	Update(ctx context.Context, place *entity.Place) error
}
