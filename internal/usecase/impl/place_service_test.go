package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"placehub/internal/domain/entity"
	domainerrors "placehub/internal/domain/errors"
	"placehub/internal/domain/repository"
	"placehub/internal/domain/service"
	mockRepo "placehub/internal/mocks/repository"
	mockSvc "placehub/internal/mocks/service"
	"placehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// placeServiceFixtures holds all test dependencies for place service tests.
type placeServiceFixtures struct {
	service   usecase.PlaceUsecase
	placeRepo *mockRepo.MockPlaceRepository
	processor *mockSvc.MockImageProcessor
	storage   *mockSvc.MockPhotoStorage
}

func createTestPlaceService(t *testing.T) placeServiceFixtures {
	placeRepo := mockRepo.NewMockPlaceRepository(t)
	processor := mockSvc.NewMockImageProcessor(t)
	storage := mockSvc.NewMockPhotoStorage(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewPlaceService(PlaceServiceParams{
		PlaceRepo: placeRepo,
		Processor: processor,
		Storage:   storage,
		Logger:    logger,
	})

	return placeServiceFixtures{
		service:   service,
		placeRepo: placeRepo,
		processor: processor,
		storage:   storage,
	}
}

func userRequester(id uuid.UUID) usecase.Requester {
	return usecase.RequesterFor(id, entity.RoleUser, false)
}

func moderatorRequester() usecase.Requester {
	return usecase.RequesterFor(uuid.New(), entity.RoleModerator, false)
}

func adminRequester() usecase.Requester {
	return usecase.RequesterFor(uuid.New(), entity.RoleAdmin, false)
}

func placeOwnedBy(ownerID uuid.UUID, status entity.PlaceStatus) *entity.Place {
	return &entity.Place{
		ID:        uuid.New(),
		Name:      "Pierogarnia Stary Rynek",
		Location:  orb.Point{19.9450, 50.0647},
		Status:    status,
		CreatedBy: &ownerID,
		CreatedAt: time.Now().Add(-time.Hour),
		UpdatedAt: time.Now().Add(-time.Hour),
	}
}

func TestPlaceService_CreatePlace_ForcesModeratingStatus(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()

	fx.placeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Place")).
		Run(func(ctx context.Context, place *entity.Place) {
			assert.Equal(t, entity.StatusModerating, place.Status)
			require.NotNil(t, place.CreatedBy)
			assert.Equal(t, ownerID, *place.CreatedBy)
		}).
		Return(nil)

	place, err := fx.service.CreatePlace(ctx, userRequester(ownerID), &usecase.CreatePlaceInput{
		Name:      "Kawiarnia pod Wawelem",
		Latitude:  50.0540,
		Longitude: 19.9354,
		City:      "Kraków",
		Country:   "Poland",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.StatusModerating, place.Status)
	assert.Equal(t, 19.9354, place.Longitude())
	assert.Equal(t, 50.0540, place.Latitude())
}

func TestPlaceService_CreatePlace_RequiresAuthentication(t *testing.T) {
	fx := createTestPlaceService(t)

	place, err := fx.service.CreatePlace(context.Background(), usecase.Anonymous(), &usecase.CreatePlaceInput{
		Name:      "Kawiarnia pod Wawelem",
		Latitude:  50.0540,
		Longitude: 19.9354,
	})

	assert.Nil(t, place)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestPlaceService_CreatePlace_RejectsInvalidCoordinates(t *testing.T) {
	fx := createTestPlaceService(t)

	place, err := fx.service.CreatePlace(context.Background(), userRequester(uuid.New()), &usecase.CreatePlaceInput{
		Name:      "Nowhere",
		Latitude:  91.0,
		Longitude: 19.9354,
	})

	assert.Nil(t, place)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))
}

func TestPlaceService_CreatePlace_RejectsEmptyName(t *testing.T) {
	fx := createTestPlaceService(t)

	place, err := fx.service.CreatePlace(context.Background(), userRequester(uuid.New()), &usecase.CreatePlaceInput{
		Latitude:  50.0540,
		Longitude: 19.9354,
	})

	assert.Nil(t, place)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPlaceService_CreatePlace_WithPhotoPipeline(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	upload := &service.PhotoUpload{Filename: "cafe.png", Data: []byte("raw-bytes")}
	optimized := &service.OptimizedPhoto{
		Data:        []byte("jpeg-bytes"),
		ContentType: "image/jpeg",
		Width:       800,
		Height:      600,
	}

	fx.processor.EXPECT().Validate(upload).Return(nil)
	fx.processor.EXPECT().Optimize(upload).Return(optimized, nil)
	fx.storage.EXPECT().Save(ctx, optimized.Data).Return("places/photos/abc.jpg", nil)

	fx.placeRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Place")).
		Run(func(ctx context.Context, place *entity.Place) {
			require.NotNil(t, place.Photo)
			assert.Equal(t, "places/photos/abc.jpg", place.Photo.Key)
			assert.Equal(t, "image/jpeg", place.Photo.ContentType)
			assert.Equal(t, int64(len(optimized.Data)), place.Photo.Size)
			assert.Equal(t, 800, place.Photo.Width)
		}).
		Return(nil)

	place, err := fx.service.CreatePlace(ctx, userRequester(uuid.New()), &usecase.CreatePlaceInput{
		Name:      "Kawiarnia pod Wawelem",
		Latitude:  50.0540,
		Longitude: 19.9354,
		Photo:     upload,
	})

	require.NoError(t, err)
	assert.NotNil(t, place.Photo)
}

func TestPlaceService_CreatePlace_InvalidPhotoRejectedBeforeWrite(t *testing.T) {
	fx := createTestPlaceService(t)

	upload := &service.PhotoUpload{Filename: "notes.txt", Data: []byte("plain text")}

	fx.processor.EXPECT().Validate(upload).Return(errors.New("supported formats: JPEG, PNG, WEBP"))

	place, err := fx.service.CreatePlace(context.Background(), userRequester(uuid.New()), &usecase.CreatePlaceInput{
		Name:      "Kawiarnia pod Wawelem",
		Latitude:  50.0540,
		Longitude: 19.9354,
		Photo:     upload,
	})

	assert.Nil(t, place)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPhoto))
}

func TestPlaceService_CreatePlace_CleansUpAssetOnInsertFailure(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	upload := &service.PhotoUpload{Filename: "cafe.png", Data: []byte("raw-bytes")}

	fx.processor.EXPECT().Validate(upload).Return(nil)
	fx.processor.EXPECT().Optimize(upload).Return(&service.OptimizedPhoto{
		Data:        []byte("jpeg-bytes"),
		ContentType: "image/jpeg",
	}, nil)
	fx.storage.EXPECT().Save(ctx, mock.Anything).Return("places/photos/abc.jpg", nil)
	fx.placeRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))
	fx.storage.EXPECT().Delete(ctx, "places/photos/abc.jpg").Return(nil)

	place, err := fx.service.CreatePlace(ctx, userRequester(uuid.New()), &usecase.CreatePlaceInput{
		Name:      "Kawiarnia pod Wawelem",
		Latitude:  50.0540,
		Longitude: 19.9354,
		Photo:     upload,
	})

	assert.Nil(t, place)
	assert.Error(t, err)
}

func TestPlaceService_GetPlace_InvisibleReportsNotFound(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	strangerID := uuid.New()
	place := placeOwnedBy(ownerID, entity.StatusModerating)

	fx.placeRepo.EXPECT().FindByID(ctx, place.ID).Return(place, nil)

	got, err := fx.service.GetPlace(ctx, userRequester(strangerID), place.ID)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrPlaceNotFound))
}

func TestPlaceService_GetPlace_OwnerSeesOwnModerating(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	place := placeOwnedBy(ownerID, entity.StatusModerating)

	fx.placeRepo.EXPECT().FindByID(ctx, place.ID).Return(place, nil)

	got, err := fx.service.GetPlace(ctx, userRequester(ownerID), place.ID)

	require.NoError(t, err)
	assert.Equal(t, place.ID, got.ID)
}

func TestPlaceService_GetPlace_Missing(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.placeRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrPlaceNotFound)

	got, err := fx.service.GetPlace(ctx, usecase.Anonymous(), id)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrPlaceNotFound))
}

func TestPlaceService_ListPlaces_AnonymousGetsPublishedOnly(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()

	fx.placeRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.PlaceFilter")).
		Run(func(ctx context.Context, filter repository.PlaceFilter) {
			assert.Equal(t, []entity.PlaceStatus{entity.StatusPublished}, filter.Statuses)
			assert.Nil(t, filter.OwnerID)
			assert.Equal(t, usecase.DefaultPageSize, filter.Limit)
		}).
		Return([]*entity.Place{}, nil)

	_, err := fx.service.ListPlaces(ctx, usecase.Anonymous(), usecase.Page{})

	require.NoError(t, err)
}

func TestPlaceService_UpdatePlace_NonOwnerOnVisiblePlaceIsForbidden(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	place := placeOwnedBy(uuid.New(), entity.StatusPublished)
	newName := "Hijacked"

	fx.placeRepo.EXPECT().FindByID(ctx, place.ID).Return(place, nil)

	got, err := fx.service.UpdatePlace(ctx, userRequester(uuid.New()), place.ID, &usecase.UpdatePlaceInput{
		Name: &newName,
	})

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPlaceService_UpdatePlace_OwnerPartialUpdate(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	place := placeOwnedBy(ownerID, entity.StatusPublished)
	newLat := 50.0614

	fx.placeRepo.EXPECT().FindByID(ctx, place.ID).Return(place, nil)
	fx.placeRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Place")).
		Run(func(ctx context.Context, updated *entity.Place) {
			assert.Equal(t, 50.0614, updated.Latitude())
			assert.Equal(t, 19.9450, updated.Longitude())
		}).
		Return(nil)

	got, err := fx.service.UpdatePlace(ctx, userRequester(ownerID), place.ID, &usecase.UpdatePlaceInput{
		Latitude: &newLat,
	})

	require.NoError(t, err)
	assert.Equal(t, 50.0614, got.Latitude())
}

func TestPlaceService_UpdatePlace_NilInputRejected(t *testing.T) {
	fx := createTestPlaceService(t)

	got, err := fx.service.UpdatePlace(context.Background(), userRequester(uuid.New()), uuid.New(), nil)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPlaceService_UpdatePlace_ModeratorMayEditAnyVisiblePlace(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	place := placeOwnedBy(uuid.New(), entity.StatusModerating)
	newName := "Corrected name"

	fx.placeRepo.EXPECT().FindByID(ctx, place.ID).Return(place, nil)
	fx.placeRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	got, err := fx.service.UpdatePlace(ctx, moderatorRequester(), place.ID, &usecase.UpdatePlaceInput{
		Name: &newName,
	})

	require.NoError(t, err)
	assert.Equal(t, "Corrected name", got.Name)
}

func TestPlaceService_DeletePlace_Archives(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	place := placeOwnedBy(ownerID, entity.StatusPublished)

	fx.placeRepo.EXPECT().FindByID(ctx, place.ID).Return(place, nil)
	fx.placeRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Place")).
		Run(func(ctx context.Context, updated *entity.Place) {
			assert.Equal(t, entity.StatusArchived, updated.Status)
		}).
		Return(nil)

	err := fx.service.DeletePlace(ctx, userRequester(ownerID), place.ID)

	require.NoError(t, err)
}

func TestPlaceService_DeletePlace_ArchivedIsTerminal(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	admin := adminRequester()
	place := placeOwnedBy(uuid.New(), entity.StatusArchived)

	fx.placeRepo.EXPECT().FindByID(ctx, place.ID).Return(place, nil)

	err := fx.service.DeletePlace(ctx, admin, place.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestPlaceService_DeletePlace_ArchivedHiddenFromOwner(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	place := placeOwnedBy(ownerID, entity.StatusArchived)

	fx.placeRepo.EXPECT().FindByID(ctx, place.ID).Return(place, nil)

	err := fx.service.DeletePlace(ctx, userRequester(ownerID), place.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrPlaceNotFound))
}

func TestPlaceService_UploadPhoto_ReplacesPreviousAsset(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	place := placeOwnedBy(ownerID, entity.StatusPublished)
	place.Photo = &entity.PhotoAsset{Key: "places/photos/old.jpg"}

	upload := &service.PhotoUpload{Filename: "new.jpg", Data: []byte("raw")}

	fx.placeRepo.EXPECT().FindByID(ctx, place.ID).Return(place, nil)
	fx.processor.EXPECT().Validate(upload).Return(nil)
	fx.processor.EXPECT().Optimize(upload).Return(&service.OptimizedPhoto{
		Data:        []byte("jpeg"),
		ContentType: "image/jpeg",
		Width:       640,
		Height:      480,
	}, nil)
	fx.storage.EXPECT().Save(ctx, mock.Anything).Return("places/photos/new.jpg", nil)
	fx.placeRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "places/photos/old.jpg").Return(nil)

	got, err := fx.service.UploadPhoto(ctx, userRequester(ownerID), place.ID, upload)

	require.NoError(t, err)
	require.NotNil(t, got.Photo)
	assert.Equal(t, "places/photos/new.jpg", got.Photo.Key)
}

func TestPlaceService_UploadPhoto_EmptyUploadRejected(t *testing.T) {
	fx := createTestPlaceService(t)

	got, err := fx.service.UploadPhoto(context.Background(), userRequester(uuid.New()), uuid.New(), nil)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPhoto))
}

func TestPlaceService_ModeratePlace_Publish(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	place := placeOwnedBy(uuid.New(), entity.StatusModerating)

	fx.placeRepo.EXPECT().FindByID(ctx, place.ID).Return(place, nil)
	fx.placeRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.Place")).
		Run(func(ctx context.Context, updated *entity.Place) {
			assert.Equal(t, entity.StatusPublished, updated.Status)
		}).
		Return(nil)

	got, err := fx.service.ModeratePlace(ctx, moderatorRequester(), place.ID, usecase.DecisionPublish)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusPublished, got.Status)
}

func TestPlaceService_ModeratePlace_Reject(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	place := placeOwnedBy(uuid.New(), entity.StatusModerating)

	fx.placeRepo.EXPECT().FindByID(ctx, place.ID).Return(place, nil)
	fx.placeRepo.EXPECT().Update(ctx, mock.Anything).Return(nil)

	got, err := fx.service.ModeratePlace(ctx, moderatorRequester(), place.ID, usecase.DecisionReject)

	require.NoError(t, err)
	assert.Equal(t, entity.StatusRejected, got.Status)
}

func TestPlaceService_ModeratePlace_OwnerWithoutModeratorRole(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	place := placeOwnedBy(ownerID, entity.StatusModerating)

	fx.placeRepo.EXPECT().FindByID(ctx, place.ID).Return(place, nil)

	got, err := fx.service.ModeratePlace(ctx, userRequester(ownerID), place.ID, usecase.DecisionPublish)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPlaceService_ModeratePlace_InvalidDecision(t *testing.T) {
	fx := createTestPlaceService(t)

	got, err := fx.service.ModeratePlace(context.Background(), moderatorRequester(), uuid.New(), "maybe")

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPlaceService_ModeratePlace_PublishedCannotBeRepublished(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()
	place := placeOwnedBy(uuid.New(), entity.StatusPublished)

	fx.placeRepo.EXPECT().FindByID(ctx, place.ID).Return(place, nil)

	got, err := fx.service.ModeratePlace(ctx, moderatorRequester(), place.ID, usecase.DecisionPublish)

	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidTransition))
}

func TestPlaceService_ListModerationQueue_OldestFirst(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()

	fx.placeRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.PlaceFilter")).
		Run(func(ctx context.Context, filter repository.PlaceFilter) {
			assert.Equal(t, []entity.PlaceStatus{entity.StatusModerating}, filter.Statuses)
			assert.True(t, filter.OldestFirst)
		}).
		Return([]*entity.Place{}, nil)

	_, err := fx.service.ListModerationQueue(ctx, moderatorRequester(), usecase.Page{})

	require.NoError(t, err)
}

func TestPlaceService_ListModerationQueue_RegularUserForbidden(t *testing.T) {
	fx := createTestPlaceService(t)

	_, err := fx.service.ListModerationQueue(context.Background(), userRequester(uuid.New()), usecase.Page{})

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestPlaceService_ListArchived_AdminOnly(t *testing.T) {
	fx := createTestPlaceService(t)

	ctx := context.Background()

	fx.placeRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.PlaceFilter")).
		Run(func(ctx context.Context, filter repository.PlaceFilter) {
			assert.Equal(t, []entity.PlaceStatus{entity.StatusArchived}, filter.Statuses)
		}).
		Return([]*entity.Place{}, nil)

	_, err := fx.service.ListArchived(ctx, adminRequester(), usecase.Page{})

	require.NoError(t, err)

	_, err = fx.service.ListArchived(ctx, moderatorRequester(), usecase.Page{})

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}
