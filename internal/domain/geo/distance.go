package geo

import (
	"math"
	"sort"

	"placehub/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// DistanceM computes the great-circle distance between two WGS84 points in
// meters, full precision.
func DistanceM(a, b orb.Point) float64 {
	return orbgeo.DistanceHaversine(a, b)
}

// RoundM rounds a distance in meters to 2 decimal places for presentation.
// Internal computations keep full precision.
func RoundM(m float64) float64 {
	return math.Round(m*100) / 100
}

// Annotate sets each place's ephemeral DistanceM to its distance from the
// reference point. The slice is annotated in place; nothing is persisted.
func Annotate(places []*entity.Place, ref orb.Point) {
	for _, p := range places {
		d := DistanceM(p.Location, ref)
		p.DistanceM = &d
	}
}

// SortByDistance orders places ascending by annotated distance. The sort is
// stable: ties keep their original (repository) order. Places without an
// annotation sort last.
func SortByDistance(places []*entity.Place) {
	sort.SliceStable(places, func(i, j int) bool {
		di, dj := places[i].DistanceM, places[j].DistanceM
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}

		return *di < *dj
	})
}

// WithinRadius filters places to those at most radiusKm kilometers from the
// reference point. The comparison is inclusive. Matching places come back
// annotated with their distance.
func WithinRadius(places []*entity.Place, ref orb.Point, radiusKm float64) []*entity.Place {
	maxM := radiusKm * 1000
	result := make([]*entity.Place, 0, len(places))
	for _, p := range places {
		d := DistanceM(p.Location, ref)
		if d <= maxM {
			p.DistanceM = &d
			result = append(result, p)
		}
	}

	return result
}
