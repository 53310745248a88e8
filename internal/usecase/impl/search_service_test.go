package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"placehub/config"
	"placehub/internal/domain/entity"
	domainerrors "placehub/internal/domain/errors"
	"placehub/internal/domain/repository"
	mockRepo "placehub/internal/mocks/repository"
	"placehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// searchServiceFixtures holds all test dependencies for search service tests.
type searchServiceFixtures struct {
	service   usecase.SearchUsecase
	placeRepo *mockRepo.MockPlaceRepository
}

func createTestSearchService(t *testing.T) searchServiceFixtures {
	placeRepo := mockRepo.NewMockPlaceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSearchService(SearchServiceParams{
		PlaceRepo: placeRepo,
		Logger:    logger,
	})

	return searchServiceFixtures{
		service:   service,
		placeRepo: placeRepo,
	}
}

func createConfiguredSearchService(t *testing.T, search *config.SearchConfig) searchServiceFixtures {
	placeRepo := mockRepo.NewMockPlaceRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewSearchService(SearchServiceParams{
		PlaceRepo: placeRepo,
		Config:    &config.Config{Search: search},
		Logger:    logger,
	})

	return searchServiceFixtures{
		service:   service,
		placeRepo: placeRepo,
	}
}

func publishedPlaceAt(name string, lon, lat float64) *entity.Place {
	return &entity.Place{
		ID:       uuid.New(),
		Name:     name,
		Location: orb.Point{lon, lat},
		Status:   entity.StatusPublished,
	}
}

// Reference point for the search tests: the Main Square in Kraków.
const (
	krakowLat = "50.0617"
	krakowLon = "19.9373"
)

func TestSearchService_RadiusSearch_OrdersByDistance(t *testing.T) {
	fx := createTestSearchService(t)

	ctx := context.Background()

	// Wawel Castle is roughly 900m from the Main Square, the Kazimierz
	// district roughly 1.7km, Nowa Huta roughly 10km.
	wawel := publishedPlaceAt("Wawel", 19.9354, 50.0540)
	kazimierz := publishedPlaceAt("Kazimierz", 19.9449, 50.0489)
	nowaHuta := publishedPlaceAt("Nowa Huta", 20.0375, 50.0716)

	fx.placeRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.PlaceFilter")).
		Run(func(ctx context.Context, filter repository.PlaceFilter) {
			assert.Equal(t, []entity.PlaceStatus{entity.StatusPublished}, filter.Statuses)
			assert.Nil(t, filter.BBox)
		}).
		Return([]*entity.Place{nowaHuta, kazimierz, wawel}, nil)

	results, err := fx.service.RadiusSearch(ctx, &usecase.RadiusSearchInput{
		Lat: krakowLat,
		Lon: krakowLon,
	})

	require.NoError(t, err)
	require.Len(t, results, 2, "Nowa Huta is outside the default 5km radius")
	assert.Equal(t, "Wawel", results[0].Name)
	assert.Equal(t, "Kazimierz", results[1].Name)

	require.NotNil(t, results[0].DistanceM)
	require.NotNil(t, results[1].DistanceM)
	assert.Less(t, *results[0].DistanceM, *results[1].DistanceM)
	assert.InDelta(t, 870, *results[0].DistanceM, 100)
}

func TestSearchService_RadiusSearch_CustomRadiusIsInclusive(t *testing.T) {
	fx := createTestSearchService(t)

	ctx := context.Background()
	nowaHuta := publishedPlaceAt("Nowa Huta", 20.0375, 50.0716)

	fx.placeRepo.EXPECT().
		List(ctx, mock.Anything).
		Return([]*entity.Place{nowaHuta}, nil)

	results, err := fx.service.RadiusSearch(ctx, &usecase.RadiusSearchInput{
		Lat:    krakowLat,
		Lon:    krakowLon,
		Radius: "15",
	})

	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSearchService_RadiusSearch_ConfiguredDefaultRadius(t *testing.T) {
	fx := createConfiguredSearchService(t, &config.SearchConfig{DefaultRadiusKm: 1.0})

	ctx := context.Background()
	wawel := publishedPlaceAt("Wawel", 19.9354, 50.0540)
	kazimierz := publishedPlaceAt("Kazimierz", 19.9449, 50.0489)

	fx.placeRepo.EXPECT().
		List(ctx, mock.Anything).
		Return([]*entity.Place{kazimierz, wawel}, nil)

	results, err := fx.service.RadiusSearch(ctx, &usecase.RadiusSearchInput{
		Lat: krakowLat,
		Lon: krakowLon,
	})

	require.NoError(t, err)
	require.Len(t, results, 1, "the configured 1km default excludes Kazimierz")
	assert.Equal(t, "Wawel", results[0].Name)
}

func TestSearchService_RadiusSearch_ConfiguredCeiling(t *testing.T) {
	fx := createConfiguredSearchService(t, &config.SearchConfig{MaxRadiusKm: 10})

	ctx := context.Background()

	_, err := fx.service.RadiusSearch(ctx, &usecase.RadiusSearchInput{
		Lat:    krakowLat,
		Lon:    krakowLon,
		Radius: "50",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRadius))
}

func TestSearchService_RadiusSearch_MissingCoordinates(t *testing.T) {
	fx := createTestSearchService(t)

	tests := []struct {
		name  string
		input *usecase.RadiusSearchInput
	}{
		{name: "missing both", input: &usecase.RadiusSearchInput{}},
		{name: "missing lon", input: &usecase.RadiusSearchInput{Lat: krakowLat}},
		{name: "missing lat", input: &usecase.RadiusSearchInput{Lon: krakowLon}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := fx.service.RadiusSearch(context.Background(), tt.input)

			assert.Nil(t, results)
			assert.True(t, errors.Is(err, domainerrors.ErrMissingCoordinates))
		})
	}
}

func TestSearchService_RadiusSearch_InvalidInputs(t *testing.T) {
	fx := createTestSearchService(t)

	ctx := context.Background()

	_, err := fx.service.RadiusSearch(ctx, &usecase.RadiusSearchInput{Lat: "abc", Lon: krakowLon})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))

	_, err = fx.service.RadiusSearch(ctx, &usecase.RadiusSearchInput{Lat: "95", Lon: krakowLon})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))

	_, err = fx.service.RadiusSearch(ctx, &usecase.RadiusSearchInput{Lat: krakowLat, Lon: krakowLon, Radius: "0"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRadius))

	_, err = fx.service.RadiusSearch(ctx, &usecase.RadiusSearchInput{Lat: krakowLat, Lon: krakowLon, Radius: "1001"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRadius))

	_, err = fx.service.RadiusSearch(ctx, &usecase.RadiusSearchInput{Lat: krakowLat, Lon: krakowLon, Radius: "far"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRadius))
}

func TestSearchService_RadiusSearch_PaginationAfterSorting(t *testing.T) {
	fx := createTestSearchService(t)

	ctx := context.Background()
	wawel := publishedPlaceAt("Wawel", 19.9354, 50.0540)
	kazimierz := publishedPlaceAt("Kazimierz", 19.9449, 50.0489)

	fx.placeRepo.EXPECT().
		List(ctx, mock.Anything).
		Return([]*entity.Place{kazimierz, wawel}, nil)

	results, err := fx.service.RadiusSearch(ctx, &usecase.RadiusSearchInput{
		Lat:  krakowLat,
		Lon:  krakowLon,
		Page: usecase.Page{Limit: 1, Offset: 1},
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Kazimierz", results[0].Name, "offset skips the nearest match, not the repository order")
}

func TestSearchService_BBoxSearch_PushesBoxToRepository(t *testing.T) {
	fx := createTestSearchService(t)

	ctx := context.Background()
	wawel := publishedPlaceAt("Wawel", 19.9354, 50.0540)

	fx.placeRepo.EXPECT().
		List(ctx, mock.AnythingOfType("repository.PlaceFilter")).
		Run(func(ctx context.Context, filter repository.PlaceFilter) {
			require.NotNil(t, filter.BBox)
			assert.Equal(t, 19.90, filter.BBox.MinLon())
			assert.Equal(t, 50.03, filter.BBox.MinLat())
			assert.Equal(t, 19.98, filter.BBox.MaxLon())
			assert.Equal(t, 50.08, filter.BBox.MaxLat())
		}).
		Return([]*entity.Place{wawel}, nil)

	results, err := fx.service.BBoxSearch(ctx, &usecase.BBoxSearchInput{
		BBox: "19.90,50.03,19.98,50.08",
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].DistanceM, "no reference point means no distance annotation")
}

func TestSearchService_BBoxSearch_WithReferenceSortsByDistance(t *testing.T) {
	fx := createTestSearchService(t)

	ctx := context.Background()
	wawel := publishedPlaceAt("Wawel", 19.9354, 50.0540)
	kazimierz := publishedPlaceAt("Kazimierz", 19.9449, 50.0489)

	fx.placeRepo.EXPECT().
		List(ctx, mock.Anything).
		Return([]*entity.Place{kazimierz, wawel}, nil)

	results, err := fx.service.BBoxSearch(ctx, &usecase.BBoxSearchInput{
		BBox: "19.90,50.03,19.98,50.08",
		Lat:  krakowLat,
		Lon:  krakowLon,
	})

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Wawel", results[0].Name)
	require.NotNil(t, results[0].DistanceM)
}

func TestSearchService_BBoxSearch_InvalidReferenceIsIgnored(t *testing.T) {
	fx := createTestSearchService(t)

	ctx := context.Background()
	wawel := publishedPlaceAt("Wawel", 19.9354, 50.0540)

	fx.placeRepo.EXPECT().
		List(ctx, mock.Anything).
		Return([]*entity.Place{wawel}, nil)

	results, err := fx.service.BBoxSearch(ctx, &usecase.BBoxSearchInput{
		BBox: "19.90,50.03,19.98,50.08",
		Lat:  "not-a-number",
		Lon:  krakowLon,
	})

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Nil(t, results[0].DistanceM)
}

func TestSearchService_BBoxSearch_InvalidBox(t *testing.T) {
	fx := createTestSearchService(t)

	ctx := context.Background()

	tests := []struct {
		name string
		bbox string
	}{
		{name: "missing", bbox: ""},
		{name: "wrong arity", bbox: "19.90,50.03,19.98"},
		{name: "not numeric", bbox: "a,b,c,d"},
		{name: "out of range", bbox: "-200,50.03,19.98,50.08"},
		{name: "degenerate", bbox: "19.98,50.03,19.98,50.08"},
		{name: "inverted", bbox: "19.98,50.08,19.90,50.03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := fx.service.BBoxSearch(ctx, &usecase.BBoxSearchInput{BBox: tt.bbox})

			assert.Nil(t, results)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidBBox))
		})
	}
}
