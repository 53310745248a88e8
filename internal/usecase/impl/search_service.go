package impl

import (
	"context"
	"log/slog"
	"strconv"

	"placehub/config"
	"placehub/internal/domain/entity"
	domainerrors "placehub/internal/domain/errors"
	"placehub/internal/domain/geo"
	"placehub/internal/domain/repository"
	"placehub/internal/usecase"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// searchService implements the SearchUsecase interface. Both search modes
// compose the published-only visibility filter with a geospatial predicate,
// in that order.
type searchService struct {
	placeRepo       repository.PlaceRepository
	defaultRadiusKm float64
	maxRadiusKm     float64
	logger          *slog.Logger
}

// SearchServiceParams holds dependencies for searchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	PlaceRepo repository.PlaceRepository
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	defaultRadius := float64(config.DefaultSearchRadiusKm)
	maxRadius := float64(geo.MaxRadiusKm)
	if params.Config != nil && params.Config.Search != nil {
		if params.Config.Search.DefaultRadiusKm > 0 {
			defaultRadius = params.Config.Search.DefaultRadiusKm
		}
		if params.Config.Search.MaxRadiusKm > 0 {
			maxRadius = params.Config.Search.MaxRadiusKm
		}
	}

	return &searchService{
		placeRepo:       params.PlaceRepo,
		defaultRadiusKm: defaultRadius,
		maxRadiusKm:     maxRadius,
		logger:          params.Logger,
	}
}

// RadiusSearch returns published places within the radius of the reference
// point, ordered by distance. The lat and lon parameters are required; the
// radius falls back to the configured default.
func (srv *searchService) RadiusSearch(ctx context.Context, input *usecase.RadiusSearchInput) ([]*entity.Place, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search input is required")
	}
	if input.Lat == "" || input.Lon == "" {
		return nil, domainerrors.ErrMissingCoordinates.WithDetails(
			"both lat and lon query parameters are mandatory")
	}

	lat, err := strconv.ParseFloat(input.Lat, 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails("lat must be a number")
	}
	lon, err := strconv.ParseFloat(input.Lon, 64)
	if err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails("lon must be a number")
	}
	if err := geo.ValidateCoordinates(lat, lon); err != nil {
		return nil, domainerrors.ErrInvalidCoordinates.WithDetails(err.Error())
	}

	radiusKm := srv.defaultRadiusKm
	if input.Radius != "" {
		radiusKm, err = strconv.ParseFloat(input.Radius, 64)
		if err != nil {
			return nil, domainerrors.ErrInvalidRadius.WithDetails("radius must be a number")
		}
	}
	if err := geo.ValidateRadius(radiusKm, srv.maxRadiusKm); err != nil {
		return nil, domainerrors.ErrInvalidRadius.WithDetails(err.Error())
	}

	places, err := srv.listPublished(ctx, nil)
	if err != nil {
		return nil, err
	}

	ref := orb.Point{lon, lat}
	matched := geo.WithinRadius(places, ref, radiusKm)
	geo.SortByDistance(matched)

	return paginate(matched, input.Page), nil
}

// BBoxSearch returns published places inside the bounding box, edges
// inclusive. A valid optional reference point adds distance annotation and
// ordering; an invalid one is silently ignored.
func (srv *searchService) BBoxSearch(ctx context.Context, input *usecase.BBoxSearchInput) ([]*entity.Place, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("search input is required")
	}
	if input.BBox == "" {
		return nil, domainerrors.ErrInvalidBBox.WithDetails("the in_bbox query parameter is mandatory")
	}

	bbox, err := geo.ParseBBox(input.BBox)
	if err != nil {
		return nil, domainerrors.ErrInvalidBBox.WithDetails(err.Error())
	}

	places, err := srv.listPublished(ctx, &bbox)
	if err != nil {
		return nil, err
	}

	if ref, ok := srv.optionalReference(input.Lat, input.Lon); ok {
		geo.Annotate(places, ref)
		geo.SortByDistance(places)
	}

	return paginate(places, input.Page), nil
}

// listPublished fetches the published set, optionally restricted to a
// bounding box pushed down to the store.
func (srv *searchService) listPublished(ctx context.Context, bbox *geo.BBox) ([]*entity.Place, error) {
	filter := repository.PlaceFilter{
		Statuses: []entity.PlaceStatus{entity.StatusPublished},
		BBox:     bbox,
	}

	places, err := srv.placeRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published places")
	}

	return places, nil
}

// optionalReference parses the optional lat/lon pair of a bbox search.
// Missing or invalid values disable distance sorting without failing the
// request, unlike the required coordinates of a radius search.
func (srv *searchService) optionalReference(rawLat, rawLon string) (orb.Point, bool) {
	if rawLat == "" || rawLon == "" {
		return orb.Point{}, false
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return orb.Point{}, false
	}
	lon, err := strconv.ParseFloat(rawLon, 64)
	if err != nil {
		return orb.Point{}, false
	}
	if err := geo.ValidateCoordinates(lat, lon); err != nil {
		return orb.Point{}, false
	}

	return orb.Point{lon, lat}, true
}

// paginate slices an in-memory result set. Distance ordering has to happen
// over the full match set, so search pagination is applied after sorting.
func paginate(places []*entity.Place, page usecase.Page) []*entity.Place {
	page = page.Normalize()
	if page.Offset >= len(places) {
		return []*entity.Place{}
	}

	end := page.Offset + page.Limit
	if end > len(places) {
		end = len(places)
	}

	return places[page.Offset:end]
}
