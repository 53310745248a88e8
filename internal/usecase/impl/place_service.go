package impl

import (
	"context"
	"log/slog"
	"time"

	"placehub/internal/domain/entity"
	domainerrors "placehub/internal/domain/errors"
	"placehub/internal/domain/geo"
	"placehub/internal/domain/repository"
	"placehub/internal/domain/service"
	"placehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxPlaceNameLength = 255

// placeService implements the PlaceUsecase interface.
type placeService struct {
	placeRepo repository.PlaceRepository
	processor service.ImageProcessor
	storage   service.PhotoStorage
	logger    *slog.Logger
}

// PlaceServiceParams holds dependencies for placeService, injected by Fx.
type PlaceServiceParams struct {
	fx.In

	PlaceRepo repository.PlaceRepository
	Processor service.ImageProcessor
	Storage   service.PhotoStorage
	Logger    *slog.Logger
}

// NewPlaceService is the constructor for placeService.
func NewPlaceService(params PlaceServiceParams) usecase.PlaceUsecase {
	return &placeService{
		placeRepo: params.PlaceRepo,
		processor: params.Processor,
		storage:   params.Storage,
		logger:    params.Logger,
	}
}

// CreatePlace submits a new place. Validation happens before any write; the
// place always enters moderating status.
func (srv *placeService) CreatePlace(ctx context.Context, requester usecase.Requester, input *usecase.CreatePlaceInput) (*entity.Place, error) {
	if !requester.Authenticated {
		return nil, domainerrors.ErrUnauthorized
	}
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("place input is required")
	}
	if err := validatePlaceName(input.Name); err != nil {
		return nil, err
	}
	if err := geo.ValidateCoordinates(input.Latitude, input.Longitude); err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
	}

	var photo *entity.PhotoAsset
	if input.Photo != nil {
		stored, err := srv.storePhoto(ctx, input.Photo)
		if err != nil {
			return nil, err
		}
		photo = stored
	}

	now := time.Now()
	ownerID := requester.ID
	place := &entity.Place{
		ID:          uuid.New(),
		Name:        input.Name,
		Description: input.Description,
		Location:    orb.Point{input.Longitude, input.Latitude},
		Photo:       photo,
		Address:     input.Address,
		City:        input.City,
		Country:     input.Country,
		Status:      entity.StatusModerating,
		CreatedAt:   now,
		UpdatedAt:   now,
		CreatedBy:   &ownerID,
	}

	if err := srv.placeRepo.Create(ctx, place); err != nil {
		if photo != nil {
			srv.discardAsset(ctx, photo.Key)
		}

		return nil, errors.Wrap(err, "failed to create place")
	}

	srv.logger.Info("Place created",
		slog.String("placeID", place.ID.String()),
		slog.String("status", place.Status.String()),
	)

	return place, nil
}

// GetPlace retrieves a single place, reporting not-found for anything the
// requester cannot see.
func (srv *placeService) GetPlace(ctx context.Context, requester usecase.Requester, id uuid.UUID) (*entity.Place, error) {
	return srv.findVisible(ctx, requester, id)
}

// ListPlaces lists places visible to the requester, newest first.
func (srv *placeService) ListPlaces(ctx context.Context, requester usecase.Requester, page usecase.Page) ([]*entity.Place, error) {
	filter := visibilityFilter(requester)
	page = page.Normalize()
	filter.Limit = page.Limit
	filter.Offset = page.Offset

	places, err := srv.placeRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list places")
	}

	return places, nil
}

// UpdatePlace applies a partial update after ownership/moderator checks.
func (srv *placeService) UpdatePlace(ctx context.Context, requester usecase.Requester, id uuid.UUID, input *usecase.UpdatePlaceInput) (*entity.Place, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("place update input is required")
	}

	place, err := srv.findVisible(ctx, requester, id)
	if err != nil {
		return nil, err
	}
	if !canMutate(requester, place) {
		return nil, domainerrors.ErrForbidden
	}

	if input.Name != nil {
		if err := validatePlaceName(*input.Name); err != nil {
			return nil, err
		}
	}
	lat, lon := place.Latitude(), place.Longitude()
	if input.Latitude != nil {
		lat = *input.Latitude
	}
	if input.Longitude != nil {
		lon = *input.Longitude
	}
	if input.Latitude != nil || input.Longitude != nil {
		if err := geo.ValidateCoordinates(lat, lon); err != nil {
			return nil, domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
		}
	}

	applyPlaceUpdates(place, input, lat, lon)

	if err := srv.placeRepo.Update(ctx, place); err != nil {
		return nil, errors.Wrap(err, "failed to update place")
	}

	return place, nil
}

// applyPlaceUpdates copies the provided fields onto the place and bumps the
// update timestamp.
func applyPlaceUpdates(place *entity.Place, input *usecase.UpdatePlaceInput, lat, lon float64) {
	if input.Name != nil {
		place.Name = *input.Name
	}
	if input.Description != nil {
		place.Description = *input.Description
	}
	if input.Latitude != nil || input.Longitude != nil {
		place.Location = orb.Point{lon, lat}
	}
	if input.Address != nil {
		place.Address = *input.Address
	}
	if input.City != nil {
		place.City = *input.City
	}
	if input.Country != nil {
		place.Country = *input.Country
	}
	place.UpdatedAt = time.Now()
}

// DeletePlace soft-deletes by archiving. Archived is terminal, so deleting
// an archived place is a rejected transition.
func (srv *placeService) DeletePlace(ctx context.Context, requester usecase.Requester, id uuid.UUID) error {
	place, err := srv.findVisible(ctx, requester, id)
	if err != nil {
		return err
	}
	if !canMutate(requester, place) {
		return domainerrors.ErrForbidden
	}
	if !place.Status.CanTransitionTo(entity.StatusArchived) {
		return domainerrors.ErrInvalidTransition.WithDetails(
			"cannot archive a place in status " + place.Status.String())
	}

	place.Status = entity.StatusArchived
	place.UpdatedAt = time.Now()

	if err := srv.placeRepo.Update(ctx, place); err != nil {
		return errors.Wrap(err, "failed to archive place")
	}

	srv.logger.Info("Place archived", slog.String("placeID", place.ID.String()))

	return nil
}

// UploadPhoto validates, optimizes and attaches a photo, replacing any
// previously stored asset.
func (srv *placeService) UploadPhoto(ctx context.Context, requester usecase.Requester, id uuid.UUID, photo *service.PhotoUpload) (*entity.Place, error) {
	if photo == nil || len(photo.Data) == 0 {
		return nil, domainerrors.ErrInvalidPhoto.WithDetails("photo file is required")
	}

	place, err := srv.findVisible(ctx, requester, id)
	if err != nil {
		return nil, err
	}
	if !canMutate(requester, place) {
		return nil, domainerrors.ErrForbidden
	}

	stored, err := srv.storePhoto(ctx, photo)
	if err != nil {
		return nil, err
	}

	previous := place.Photo
	place.Photo = stored
	place.UpdatedAt = time.Now()

	if err := srv.placeRepo.Update(ctx, place); err != nil {
		srv.discardAsset(ctx, stored.Key)

		return nil, errors.Wrap(err, "failed to update place photo")
	}

	if previous != nil {
		srv.discardAsset(ctx, previous.Key)
	}

	return place, nil
}

// ModeratePlace publishes or rejects a place under moderation.
func (srv *placeService) ModeratePlace(ctx context.Context, requester usecase.Requester, id uuid.UUID, decision usecase.ModerateDecision) (*entity.Place, error) {
	var target entity.PlaceStatus
	switch decision {
	case usecase.DecisionPublish:
		target = entity.StatusPublished
	case usecase.DecisionReject:
		target = entity.StatusRejected
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			"decision must be published or rejected")
	}

	place, err := srv.findVisible(ctx, requester, id)
	if err != nil {
		return nil, err
	}
	if !requester.Capability.Moderate {
		return nil, domainerrors.ErrForbidden
	}
	if !place.Status.CanTransitionTo(target) {
		return nil, domainerrors.ErrInvalidTransition.WithDetails(
			"cannot move a place from " + place.Status.String() + " to " + target.String())
	}

	place.Status = target
	place.UpdatedAt = time.Now()

	if err := srv.placeRepo.Update(ctx, place); err != nil {
		return nil, errors.Wrap(err, "failed to moderate place")
	}

	srv.logger.Info("Place moderated",
		slog.String("placeID", place.ID.String()),
		slog.String("decision", string(decision)),
	)

	return place, nil
}

// ListModerationQueue lists moderating places oldest first.
func (srv *placeService) ListModerationQueue(ctx context.Context, requester usecase.Requester, page usecase.Page) ([]*entity.Place, error) {
	if !requester.Capability.Moderate {
		return nil, domainerrors.ErrForbidden
	}

	page = page.Normalize()
	filter := repository.PlaceFilter{
		Statuses:    []entity.PlaceStatus{entity.StatusModerating},
		OldestFirst: true,
		Limit:       page.Limit,
		Offset:      page.Offset,
	}

	places, err := srv.placeRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list moderation queue")
	}

	return places, nil
}

// ListArchived lists archived places. Admin only.
func (srv *placeService) ListArchived(ctx context.Context, requester usecase.Requester, page usecase.Page) ([]*entity.Place, error) {
	if !requester.Capability.Admin {
		return nil, domainerrors.ErrForbidden
	}

	page = page.Normalize()
	filter := repository.PlaceFilter{
		Statuses: []entity.PlaceStatus{entity.StatusArchived},
		Limit:    page.Limit,
		Offset:   page.Offset,
	}

	places, err := srv.placeRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list archived places")
	}

	return places, nil
}

// findVisible loads a place and translates both a repository miss and a
// visibility miss into the same not-found error.
func (srv *placeService) findVisible(ctx context.Context, requester usecase.Requester, id uuid.UUID) (*entity.Place, error) {
	place, err := srv.placeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlaceNotFound) {
			return nil, domainerrors.ErrPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find place by ID")
	}
	if !visibleTo(requester, place) {
		return nil, domainerrors.ErrPlaceNotFound
	}

	return place, nil
}

// storePhoto runs the photo pipeline: validate, optimize, persist.
func (srv *placeService) storePhoto(ctx context.Context, photo *service.PhotoUpload) (*entity.PhotoAsset, error) {
	if err := srv.processor.Validate(photo); err != nil {
		return nil, domainerrors.ErrInvalidPhoto.WithDetails(err.Error())
	}

	optimized, err := srv.processor.Optimize(photo)
	if err != nil {
		return nil, domainerrors.ErrInvalidPhoto.WithDetails(err.Error())
	}

	key, err := srv.storage.Save(ctx, optimized.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store photo asset")
	}

	return &entity.PhotoAsset{
		Key:         key,
		ContentType: optimized.ContentType,
		Size:        int64(len(optimized.Data)),
		Width:       optimized.Width,
		Height:      optimized.Height,
		UploadedAt:  time.Now(),
	}, nil
}

// discardAsset deletes a stored asset, logging instead of failing the
// request when cleanup goes wrong.
func (srv *placeService) discardAsset(ctx context.Context, key string) {
	if err := srv.storage.Delete(ctx, key); err != nil {
		srv.logger.Warn("Failed to delete photo asset",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}

// validatePlaceName enforces the non-empty, max-length name rule.
func validatePlaceName(name string) error {
	if name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}
	if len(name) > maxPlaceNameLength {
		return domainerrors.ErrValidationFailed.WithDetails("name must not exceed 255 characters")
	}

	return nil
}
