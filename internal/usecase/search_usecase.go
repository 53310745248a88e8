package usecase

import (
	"context"

	"placehub/internal/domain/entity"
)

// RadiusSearchInput carries the raw query values for a radius search.
// Values arrive unparsed so the search core owns numeric validation and can
// name the offending parameter.
type RadiusSearchInput struct {
	Lat    string
	Lon    string
	Radius string // optional; empty means the configured default
	Page   Page
}

// BBoxSearchInput carries the raw query values for a bounding-box search.
type BBoxSearchInput struct {
	BBox string // "min_lon,min_lat,max_lon,max_lat"
	Lat  string // optional reference for distance sorting
	Lon  string // optional reference for distance sorting
	Page Page
}

// SearchUsecase defines the geospatial discovery use cases. Searches run
// over the published set only.
type SearchUsecase interface {
	// RadiusSearch returns published places within the radius of the
	// reference point, annotated with and ordered by distance.
	RadiusSearch(ctx context.Context, input *RadiusSearchInput) ([]*entity.Place, error)

	// BBoxSearch returns published places inside the bounding box. When a
	// valid reference point is supplied the result is annotated with and
	// ordered by distance; an invalid optional reference is ignored.
	BBoxSearch(ctx context.Context, input *BBoxSearchInput) ([]*entity.Place, error)
}
