// Package geo implements the geospatial core: coordinate, radius and
// bounding-box validation plus distance annotation over WGS84 (SRID 4326)
// points. All point values are (longitude, latitude) order.
package geo

import (
	"strconv"
	"strings"

	"placehub/internal/errors"

	"github.com/paulmach/orb"
)

const (
	// MinLatitude and MaxLatitude bound valid WGS84 latitudes in degrees.
	MinLatitude = -90.0
	MaxLatitude = 90.0
	// MinLongitude and MaxLongitude bound valid WGS84 longitudes in degrees.
	MinLongitude = -180.0
	MaxLongitude = 180.0

	// MaxRadiusKm is the largest accepted search radius when no configured
	// ceiling applies.
	MaxRadiusKm = 1000.0
)

// ValidateCoordinates checks that a latitude/longitude pair lies within the
// WGS84 domain. The returned error names the violated bound.
func ValidateCoordinates(lat, lon float64) error {
	if lat < MinLatitude || lat > MaxLatitude {
		return errors.Errorf("latitude must be between %g and %g", MinLatitude, MaxLatitude)
	}
	if lon < MinLongitude || lon > MaxLongitude {
		return errors.Errorf("longitude must be between %g and %g", MinLongitude, MaxLongitude)
	}

	return nil
}

// ValidateRadius checks a search radius in kilometers against a ceiling.
// The valid range is open at zero and closed at maxKm.
func ValidateRadius(radiusKm, maxKm float64) error {
	if radiusKm <= 0 || radiusKm > maxKm {
		return errors.Errorf("radius must be between 0 and %g km", maxKm)
	}

	return nil
}

// BBox is an axis-aligned bounding box in longitude/latitude space.
type BBox struct {
	bound orb.Bound
}

// NewBBox builds a bounding box from its corner coordinates without
// validation. Used by tests and by ParseBBox.
func NewBBox(minLon, minLat, maxLon, maxLat float64) BBox {
	return BBox{bound: orb.Bound{
		Min: orb.Point{minLon, minLat},
		Max: orb.Point{maxLon, maxLat},
	}}
}

// ParseBBox parses a comma-separated "min_lon,min_lat,max_lon,max_lat"
// 4-tuple. Parsing errors and range/degeneracy violations are reported
// separately so callers can surface the right message.
func ParseBBox(raw string) (BBox, error) {
	tokens := strings.Split(raw, ",")
	if len(tokens) != 4 {
		return BBox{}, errors.Errorf("bbox must contain exactly 4 comma-separated values, got %d", len(tokens))
	}

	values := make([]float64, 4)
	for i, token := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
		if err != nil {
			return BBox{}, errors.Errorf("bbox value %q is not a number", strings.TrimSpace(token))
		}
		values[i] = v
	}

	minLon, minLat, maxLon, maxLat := values[0], values[1], values[2], values[3]

	if err := ValidateCoordinates(minLat, minLon); err != nil {
		return BBox{}, errors.Wrap(err, "invalid bbox minimum corner")
	}
	if err := ValidateCoordinates(maxLat, maxLon); err != nil {
		return BBox{}, errors.Wrap(err, "invalid bbox maximum corner")
	}
	if minLon >= maxLon {
		return BBox{}, errors.New("bbox min_lon must be less than max_lon")
	}
	if minLat >= maxLat {
		return BBox{}, errors.New("bbox min_lat must be less than max_lat")
	}

	return NewBBox(minLon, minLat, maxLon, maxLat), nil
}

// Contains reports whether the point lies within the box. Points exactly on
// an edge count as contained.
func (b BBox) Contains(p orb.Point) bool {
	return b.bound.Min.Lon() <= p.Lon() && p.Lon() <= b.bound.Max.Lon() &&
		b.bound.Min.Lat() <= p.Lat() && p.Lat() <= b.bound.Max.Lat()
}

// Bound exposes the underlying orb bound for query construction.
func (b BBox) Bound() orb.Bound {
	return b.bound
}

// MinLon returns the western edge of the box.
func (b BBox) MinLon() float64 { return b.bound.Min.Lon() }

// MinLat returns the southern edge of the box.
func (b BBox) MinLat() float64 { return b.bound.Min.Lat() }

// MaxLon returns the eastern edge of the box.
func (b BBox) MaxLon() float64 { return b.bound.Max.Lon() }

// MaxLat returns the northern edge of the box.
func (b BBox) MaxLat() float64 { return b.bound.Max.Lat() }
