// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"placehub/internal/domain/entity"
	domainerrors "placehub/internal/domain/errors"
	"placehub/internal/domain/repository"
	"placehub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// placeRepository implements the domain.PlaceRepository interface using GORM.
type placeRepository struct {
	db *gorm.DB
}

// NewPlaceRepository is the constructor for placeRepository.
func NewPlaceRepository(db *gorm.DB) repository.PlaceRepository {
	return &placeRepository{db: db}
}

// Create persists a new place.
func (repo *placeRepository) Create(ctx context.Context, place *entity.Place) error {
	placeM := fromPlaceDomain(place)

	if err := repo.db.WithContext(ctx).Create(placeM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown submitting user")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required place information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create place")
	}

	// Update the place entity with the generated ID and timestamps
	place.ID = placeM.ID
	place.CreatedAt = placeM.CreatedAt
	place.UpdatedAt = placeM.UpdatedAt

	return nil
}

// FindByID retrieves a place by its unique ID regardless of visibility.
func (repo *placeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Place, error) {
	var placeM model.PlaceModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&placeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlaceNotFound
		}

		return nil, errors.Wrap(err, "failed to find place by id")
	}

	return toPlaceDomain(&placeM), nil
}

// List retrieves places matching the filter.
func (repo *placeRepository) List(ctx context.Context, filter repository.PlaceFilter) ([]*entity.Place, error) {
	tx := repo.applyFilter(repo.db.WithContext(ctx).Model(&model.PlaceModel{}), filter)

	if filter.OldestFirst {
		tx = tx.Order("created_at ASC")
	} else {
		tx = tx.Order("created_at DESC")
	}

	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		tx = tx.Offset(filter.Offset)
	}

	var models []*model.PlaceModel
	if err := tx.Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list places")
	}

	places := make([]*entity.Place, 0, len(models))
	for _, placeM := range models {
		places = append(places, toPlaceDomain(placeM))
	}

	return places, nil
}

// CountByOwner returns the number of places created by a user.
func (repo *placeRepository) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.PlaceModel{}).
		Where("created_by = ?", ownerID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count places by owner")
	}

	return count, nil
}

// Update persists all fields of an existing place as one atomic write.
func (repo *placeRepository) Update(ctx context.Context, place *entity.Place) error {
	placeM := fromPlaceDomain(place)

	if err := repo.db.WithContext(ctx).Save(placeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update place")
	}

	place.UpdatedAt = placeM.UpdatedAt

	return nil
}

// applyFilter translates a PlaceFilter into WHERE clauses. The visibility
// clause (status set OR the owner's non-archived places) is applied before
// the geospatial predicate so invisible places never match.
func (repo *placeRepository) applyFilter(tx *gorm.DB, filter repository.PlaceFilter) *gorm.DB {
	switch {
	case len(filter.Statuses) > 0 && filter.OwnerID != nil:
		tx = tx.Where(
			"status IN ? OR (created_by = ? AND status <> ?)",
			statusStrings(filter.Statuses), *filter.OwnerID, entity.StatusArchived.String(),
		)
	case len(filter.Statuses) > 0:
		tx = tx.Where("status IN ?", statusStrings(filter.Statuses))
	case filter.OwnerID != nil:
		tx = tx.Where("created_by = ? AND status <> ?", *filter.OwnerID, entity.StatusArchived.String())
	default:
		// No visibility at all. Match nothing rather than everything.
		tx = tx.Where("1 = 0")
	}

	if filter.BBox != nil {
		tx = tx.Where(
			"latitude BETWEEN ? AND ? AND longitude BETWEEN ? AND ?",
			filter.BBox.MinLat(), filter.BBox.MaxLat(),
			filter.BBox.MinLon(), filter.BBox.MaxLon(),
		)
	}

	return tx
}

func statusStrings(statuses []entity.PlaceStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, status.String())
	}

	return out
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toPlaceDomain converts a GORM PlaceModel to a domain Place entity.
func toPlaceDomain(data *model.PlaceModel) *entity.Place {
	if data == nil {
		return nil
	}

	place := &entity.Place{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Location:    orb.Point{data.Longitude, data.Latitude},
		Address:     data.Address,
		City:        data.City,
		Country:     data.Country,
		Status:      entity.PlaceStatus(data.Status),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		CreatedBy:   data.CreatedBy,
	}

	if data.PhotoKey != nil {
		photo := &entity.PhotoAsset{Key: *data.PhotoKey}
		if data.PhotoContentType != nil {
			photo.ContentType = *data.PhotoContentType
		}
		if data.PhotoSize != nil {
			photo.Size = *data.PhotoSize
		}
		if data.PhotoWidth != nil {
			photo.Width = *data.PhotoWidth
		}
		if data.PhotoHeight != nil {
			photo.Height = *data.PhotoHeight
		}
		if data.PhotoUploadedAt != nil {
			photo.UploadedAt = *data.PhotoUploadedAt
		}
		place.Photo = photo
	}

	return place
}

// fromPlaceDomain converts a domain Place entity to a GORM PlaceModel for persistence.
func fromPlaceDomain(data *entity.Place) *model.PlaceModel {
	if data == nil {
		return nil
	}

	placeM := &model.PlaceModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Latitude:    data.Latitude(),
		Longitude:   data.Longitude(),
		Address:     data.Address,
		City:        data.City,
		Country:     data.Country,
		Status:      data.Status.String(),
		CreatedBy:   data.CreatedBy,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}

	if data.Photo != nil {
		placeM.PhotoKey = &data.Photo.Key
		placeM.PhotoContentType = &data.Photo.ContentType
		placeM.PhotoSize = &data.Photo.Size
		placeM.PhotoWidth = &data.Photo.Width
		placeM.PhotoHeight = &data.Photo.Height
		placeM.PhotoUploadedAt = &data.Photo.UploadedAt
	}

	return placeM
}
