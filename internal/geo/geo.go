// Package geo holds the geometric generators behind the map layers: distance,
// polygon approximation, route curves, and plume scatter. All randomness comes
// from a caller-supplied *rand.Rand so output can be pinned in tests.
package geo

import (
	"math"
	"math/rand"
)

const (
	// EarthRadiusKm is the mean Earth radius used by Haversine.
	EarthRadiusKm = 6371.0

	// KmPerDegree converts kilometres to degrees of latitude.
	KmPerDegree = 111.0
)

// Haversine returns the great-circle distance in kilometres between two
// [lng, lat] coordinates.
func Haversine(a, b []float64) float64 {
	lat1 := a[1] * math.Pi / 180
	lat2 := b[1] * math.Pi / 180
	dLat := (b[1] - a[1]) * math.Pi / 180
	dLng := (b[0] - a[0]) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

// CityPolygon approximates a city boundary as a regular octagon around center
// with the given radius in kilometres. The ring is closed (first == last).
func CityPolygon(center []float64, radiusKm float64) [][]float64 {
	dLat := radiusKm / KmPerDegree
	dLng := radiusKm / (KmPerDegree * math.Cos(center[1]*math.Pi/180))

	ring := make([][]float64, 0, 9)
	for i := 0; i < 8; i++ {
		angle := float64(i) * 45 * math.Pi / 180
		ring = append(ring, []float64{
			center[0] + dLng*math.Cos(angle),
			center[1] + dLat*math.Sin(angle),
		})
	}
	ring = append(ring, append([]float64(nil), ring[0]...))
	return ring
}

// IrregularPolygon approximates a natural feature (glacier, lake, emission
// zone) as an n-gon with per-vertex radius jitter. The base radius is derived
// from the feature's area; the shape is flattened vertically to fake
// foreshortening. The ring is closed.
func IrregularPolygon(rng *rand.Rand, center []float64, areaKm2 float64, vertices int, flatten float64) [][]float64 {
	radius := math.Sqrt(areaKm2/math.Pi) / KmPerDegree

	ring := make([][]float64, 0, vertices+1)
	step := 360.0 / float64(vertices)
	for i := 0; i < vertices; i++ {
		angle := float64(i) * step * math.Pi / 180
		r := radius * (0.7 + rng.Float64()*0.5)
		ring = append(ring, []float64{
			center[0] + r*math.Cos(angle),
			center[1] + r*math.Sin(angle)*flatten,
		})
	}
	ring = append(ring, append([]float64(nil), ring[0]...))
	return ring
}

// BezierRoute returns a quadratic bezier curve between two points, lifting the
// midpoint so the route arcs instead of cutting straight. Sampled at 21 steps.
func BezierRoute(from, to []float64) [][]float64 {
	mid := []float64{
		(from[0] + to[0]) / 2,
		(from[1]+to[1])/2 + 1.5,
	}

	coords := make([][]float64, 0, 21)
	for i := 0; i <= 20; i++ {
		t := float64(i) / 20
		u := 1 - t
		coords = append(coords, []float64{
			u*u*from[0] + 2*u*t*mid[0] + t*t*to[0],
			u*u*from[1] + 2*u*t*mid[1] + t*t*to[1],
		})
	}
	return coords
}

// PlumePoint is one sample of a Gaussian emission plume.
type PlumePoint struct {
	Lng           float64 `json:"lng"`
	Lat           float64 `json:"lat"`
	Concentration float64 `json:"concentration"`
	HeightM       int     `json:"height_m"`
}

// PlumePoints scatters emission samples around center with a Gaussian spread
// scaled to the source area and a fixed westerly drift, mirroring how
// Sentinel-5P plume overlays are rendered.
func PlumePoints(rng *rand.Rand, center []float64, emissionRate, areaKm2 float64) []PlumePoint {
	n := int(emissionRate / 5)
	if n > 100 {
		n = 100
	}
	radius := math.Sqrt(areaKm2/math.Pi) / KmPerDegree

	points := make([]PlumePoint, 0, n)
	for i := 0; i < n; i++ {
		dx := rng.NormFloat64()*radius*0.4 + radius*0.2
		dy := rng.NormFloat64() * radius * 0.3
		conc := emissionRate / 100 * (0.5 + rng.Float64())

		points = append(points, PlumePoint{
			Lng:           center[0] + dx,
			Lat:           center[1] + dy,
			Concentration: math.Round(conc*100) / 100,
			HeightM:       rng.Intn(501),
		})
	}
	return points
}
