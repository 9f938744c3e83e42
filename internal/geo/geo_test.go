package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	almaty = []float64{76.9458, 43.2220}
	astana = []float64{71.4491, 51.1801}
)

func TestHaversineSymmetric(t *testing.T) {
	d1 := Haversine(almaty, astana)
	d2 := Haversine(astana, almaty)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestHaversineZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, Haversine(almaty, almaty))
}

func TestHaversineKnownDistance(t *testing.T) {
	// Almaty to Astana is roughly 970 km by great circle.
	d := Haversine(almaty, astana)
	assert.InDelta(t, 970, d, 30)
}

func TestCityPolygonClosedOctagon(t *testing.T) {
	ring := CityPolygon(almaty, 15)

	require.Len(t, ring, 9)
	assert.Equal(t, ring[0], ring[len(ring)-1])
}

func TestCityPolygonVerticesWithinRadius(t *testing.T) {
	radiusKm := 15.0
	ring := CityPolygon(almaty, radiusKm)

	for _, v := range ring {
		d := Haversine(almaty, v)
		assert.LessOrEqual(t, d, 2*radiusKm)
	}
}

func TestIrregularPolygonInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, vertices := range []int{12, 16} {
		ring := IrregularPolygon(rng, almaty, 2500, vertices, 0.75)

		require.Len(t, ring, vertices+1)
		assert.Equal(t, ring[0], ring[len(ring)-1])

		maxRadiusKm := 2 * math.Sqrt(2500/math.Pi)
		for _, v := range ring {
			assert.LessOrEqual(t, Haversine(almaty, v), maxRadiusKm)
		}
	}
}

func TestIrregularPolygonSeededReproducible(t *testing.T) {
	a := IrregularPolygon(rand.New(rand.NewSource(7)), almaty, 800, 12, 0.8)
	b := IrregularPolygon(rand.New(rand.NewSource(7)), almaty, 800, 12, 0.8)
	assert.Equal(t, a, b)
}

func TestBezierRouteEndpointsAndSamples(t *testing.T) {
	coords := BezierRoute(astana, almaty)

	require.Len(t, coords, 21)
	assert.InDelta(t, astana[0], coords[0][0], 1e-9)
	assert.InDelta(t, astana[1], coords[0][1], 1e-9)
	assert.InDelta(t, almaty[0], coords[20][0], 1e-9)
	assert.InDelta(t, almaty[1], coords[20][1], 1e-9)
}

func TestPlumePointsBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	points := PlumePoints(rng, []float64{53.45, 46.23}, 850, 2500)

	require.NotEmpty(t, points)
	assert.LessOrEqual(t, len(points), 100)
	for _, p := range points {
		assert.GreaterOrEqual(t, p.HeightM, 0)
		assert.LessOrEqual(t, p.HeightM, 500)
		assert.Greater(t, p.Concentration, 0.0)
	}
}
