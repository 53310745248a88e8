package geo

import (
	"testing"

	"placehub/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeAt(name string, lon, lat float64) *entity.Place {
	return &entity.Place{Name: name, Location: orb.Point{lon, lat}}
}

func TestDistanceM(t *testing.T) {
	// One degree of latitude is about 111.2km everywhere on the sphere.
	a := orb.Point{19.9373, 50.0}
	b := orb.Point{19.9373, 51.0}

	d := DistanceM(a, b)

	assert.InDelta(t, 111200, d, 500)
	assert.Zero(t, DistanceM(a, a))
}

func TestRoundM(t *testing.T) {
	assert.Equal(t, 867.13, RoundM(867.13491))
	assert.Equal(t, 867.14, RoundM(867.136))
	assert.Equal(t, 0.0, RoundM(0))
}

func TestAnnotate(t *testing.T) {
	ref := orb.Point{19.9373, 50.0617}
	places := []*entity.Place{
		placeAt("near", 19.9373, 50.0620),
		placeAt("far", 19.9373, 50.1617),
	}

	Annotate(places, ref)

	require.NotNil(t, places[0].DistanceM)
	require.NotNil(t, places[1].DistanceM)
	assert.Less(t, *places[0].DistanceM, *places[1].DistanceM)
}

func TestSortByDistance_StableWithNilLast(t *testing.T) {
	d1, d2, d2bis := 100.0, 250.0, 250.0

	first := placeAt("first", 0, 0)
	first.DistanceM = &d2
	second := placeAt("second", 0, 0)
	second.DistanceM = &d2bis
	unannotated := placeAt("unannotated", 0, 0)
	nearest := placeAt("nearest", 0, 0)
	nearest.DistanceM = &d1

	places := []*entity.Place{first, unannotated, second, nearest}
	SortByDistance(places)

	assert.Equal(t, "nearest", places[0].Name)
	assert.Equal(t, "first", places[1].Name, "ties keep their original order")
	assert.Equal(t, "second", places[2].Name)
	assert.Equal(t, "unannotated", places[3].Name, "places without a distance sort last")
}

func TestWithinRadius(t *testing.T) {
	ref := orb.Point{19.9373, 50.0617}
	near := placeAt("near", 19.9373, 50.0650) // a few hundred meters
	far := placeAt("far", 19.9373, 50.5617)   // over 50km

	result := WithinRadius([]*entity.Place{near, far}, ref, 5)

	require.Len(t, result, 1)
	assert.Equal(t, "near", result[0].Name)
	require.NotNil(t, result[0].DistanceM)
	assert.Greater(t, *result[0].DistanceM, 0.0)
}

func TestWithinRadius_BoundaryIsInclusive(t *testing.T) {
	ref := orb.Point{0, 0}
	p := placeAt("on the edge", 0, 0)

	exact := DistanceM(p.Location, ref)
	require.Zero(t, exact)

	result := WithinRadius([]*entity.Place{p}, ref, 0.001)

	assert.Len(t, result, 1, "a distance exactly at the limit matches")
}
