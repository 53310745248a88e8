// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Place is the core entity of the system: a user-submitted point of interest
// that passes through moderation before becoming publicly visible.
type Place struct {
	ID          uuid.UUID  // The unique identifier for the place.
	Name        string     // The name of the place or establishment.
	Description string     // A detailed description of the location.
	Location    orb.Point  // Geographic coordinates in WGS84, (longitude, latitude) order.
	Photo       *PhotoAsset // Optional stored photo. Nil when the place has no photo.
	Address     string     // The specific street address of the place.
	City        string     // The city where the place is located.
	Country     string     // The country where the place is located.
	Status      PlaceStatus // The current moderation status.
	CreatedAt   time.Time  // Timestamp of when the place was created.
	UpdatedAt   time.Time  // Timestamp of the last modification.
	CreatedBy   *uuid.UUID // The submitting user. Nil once the creator account is deleted.

	// DistanceM is the distance in meters from a search reference point.
	// It is annotated per query and never persisted.
	DistanceM *float64
}

// OwnedBy reports whether the place was created by the given user.
// Places whose creator was deleted are owned by nobody.
func (p *Place) OwnedBy(userID uuid.UUID) bool {
	return p.CreatedBy != nil && *p.CreatedBy == userID
}

// Longitude returns the longitude component of the location.
func (p *Place) Longitude() float64 {
	return p.Location.Lon()
}

// Latitude returns the latitude component of the location.
func (p *Place) Latitude() float64 {
	return p.Location.Lat()
}
