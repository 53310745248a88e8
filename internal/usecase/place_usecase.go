package usecase

import (
	"context"

	"placehub/internal/domain/entity"
	"placehub/internal/domain/service"

	"github.com/google/uuid"
)

// CreatePlaceInput represents the input for submitting a new place.
type CreatePlaceInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Longitude   float64 `json:"longitude"`
	Latitude    float64 `json:"latitude"`
	Address     string  `json:"address"`
	City        string  `json:"city"`
	Country     string  `json:"country"`

	// Photo is the optional uploaded image; it is validated and optimized
	// before the place is persisted.
	Photo *service.PhotoUpload `json:"-"`
}

// UpdatePlaceInput represents a partial update of an existing place.
type UpdatePlaceInput struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Address     *string  `json:"address,omitempty"`
	City        *string  `json:"city,omitempty"`
	Country     *string  `json:"country,omitempty"`
}

// ModerateDecision is a moderator's verdict on a place under moderation.
type ModerateDecision string

const (
	// DecisionPublish approves the place for public visibility.
	DecisionPublish ModerateDecision = "published"
	// DecisionReject declines the place.
	DecisionReject ModerateDecision = "rejected"
)

// PlaceUsecase defines the place management use cases.
type PlaceUsecase interface {
	// CreatePlace submits a new place. The place always enters moderating
	// status with the requester recorded as creator.
	CreatePlace(ctx context.Context, requester Requester, input *CreatePlaceInput) (*entity.Place, error)

	// GetPlace retrieves a single place the requester is allowed to see.
	GetPlace(ctx context.Context, requester Requester, id uuid.UUID) (*entity.Place, error)

	// ListPlaces lists places visible to the requester, newest first.
	ListPlaces(ctx context.Context, requester Requester, page Page) ([]*entity.Place, error)

	// UpdatePlace applies a partial update. Owners may update their own
	// places; moderators and admins may update any place.
	UpdatePlace(ctx context.Context, requester Requester, id uuid.UUID, input *UpdatePlaceInput) (*entity.Place, error)

	// DeletePlace soft-deletes by transitioning the place to archived.
	DeletePlace(ctx context.Context, requester Requester, id uuid.UUID) error

	// UploadPhoto validates, optimizes and attaches a photo, replacing and
	// deleting any previously stored asset.
	UploadPhoto(ctx context.Context, requester Requester, id uuid.UUID, photo *service.PhotoUpload) (*entity.Place, error)

	// ModeratePlace publishes or rejects a place under moderation.
	ModeratePlace(ctx context.Context, requester Requester, id uuid.UUID, decision ModerateDecision) (*entity.Place, error)

	// ListModerationQueue lists moderating places oldest first for FIFO
	// processing. Moderator or admin only.
	ListModerationQueue(ctx context.Context, requester Requester, page Page) ([]*entity.Place, error)

	// ListArchived lists archived places. Admin only.
	ListArchived(ctx context.Context, requester Requester, page Page) ([]*entity.Place, error)
}
