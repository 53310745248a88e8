package handler

import (
	"time"

	"placehub/internal/domain/entity"
	"placehub/internal/domain/geo"

	"github.com/google/uuid"
)

// GeoJSONPoint renders a location as a GeoJSON Point. Coordinates are in
// (longitude, latitude) order per the GeoJSON spec.
type GeoJSONPoint struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

// PhotoPayload describes the stored photo of a place.
type PhotoPayload struct {
	Key        string    `json:"key"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// PlacePayload is the JSON rendition of a place.
type PlacePayload struct {
	ID          uuid.UUID     `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Location    GeoJSONPoint  `json:"location"`
	Photo       *PhotoPayload `json:"photo,omitempty"`
	Address     string        `json:"address"`
	City        string        `json:"city"`
	Country     string        `json:"country"`
	Status      string        `json:"status"`
	CreatedBy   *uuid.UUID    `json:"created_by"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	// Distance is the distance in meters from a search reference point,
	// rounded to 2 decimals. Present only on search results.
	Distance *float64 `json:"distance,omitempty"`
}

// toPlacePayload maps a domain place to its JSON rendition.
func toPlacePayload(place *entity.Place) *PlacePayload {
	payload := &PlacePayload{
		ID:          place.ID,
		Name:        place.Name,
		Description: place.Description,
		Location: GeoJSONPoint{
			Type:        "Point",
			Coordinates: [2]float64{place.Longitude(), place.Latitude()},
		},
		Address:   place.Address,
		City:      place.City,
		Country:   place.Country,
		Status:    place.Status.String(),
		CreatedBy: place.CreatedBy,
		CreatedAt: place.CreatedAt,
		UpdatedAt: place.UpdatedAt,
	}

	if place.Photo != nil {
		payload.Photo = &PhotoPayload{
			Key:        place.Photo.Key,
			Width:      place.Photo.Width,
			Height:     place.Photo.Height,
			UploadedAt: place.Photo.UploadedAt,
		}
	}

	if place.DistanceM != nil {
		rounded := geo.RoundM(*place.DistanceM)
		payload.Distance = &rounded
	}

	return payload
}

// toPlacePayloads maps a slice of domain places.
func toPlacePayloads(places []*entity.Place) []*PlacePayload {
	payloads := make([]*PlacePayload, 0, len(places))
	for _, place := range places {
		payloads = append(payloads, toPlacePayload(place))
	}

	return payloads
}
