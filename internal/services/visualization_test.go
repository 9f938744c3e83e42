package services

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindFlowField(t *testing.T) {
	v := &Visualization{Clock: clockwork.NewFakeClockAt(testTime), Rand: NewRand(31)}

	data := v.WindFlow()
	require.NotEmpty(t, data.Vectors)
	assert.Len(t, data.GeoJSON.Features, len(data.Vectors))
	assert.Equal(t, "W", data.DominantDirection)
	assert.Greater(t, data.AvgSpeedMS, 0.0)

	for _, vec := range data.Vectors {
		assert.GreaterOrEqual(t, vec.SpeedMS, 0.5)
		assert.GreaterOrEqual(t, vec.DirectionDeg, 0.0)
		assert.Less(t, vec.DirectionDeg, 360.0)
	}
}

func TestTerrain3DGrid(t *testing.T) {
	v := &Visualization{Clock: clockwork.NewFakeClockAt(testTime), Rand: NewRand(32)}

	data := v.Terrain3D([]float64{76.9458, 43.2220}, 1.0)
	assert.Len(t, data.Cells, 100)
	assert.Len(t, data.GeoJSON.Features, 100)
	// Almaty sits against the Tian Shan; the grid must contain real relief.
	assert.Greater(t, data.MaxElevationM, 1000)

	// The first cell is anchored exactly at the southwest corner.
	first := data.Cells[0].Ring[0]
	assert.InDelta(t, 76.4458, first[0], 1e-9)
	assert.InDelta(t, 42.7220, first[1], 1e-9)

	for _, f := range data.GeoJSON.Features {
		assert.Equal(t, "Polygon", f.Geometry.Type)
		assert.Contains(t, f.Properties, "height")
	}
}

func TestNDVIGridBounds(t *testing.T) {
	v := &Visualization{Clock: clockwork.NewFakeClockAt(testTime), Rand: NewRand(33)}

	data := v.NDVIGrid()
	require.NotEmpty(t, data.Cells)
	for _, c := range data.Cells {
		assert.GreaterOrEqual(t, c.NDVI, 0.0)
		assert.LessOrEqual(t, c.NDVI, 0.9)
		assert.NotEmpty(t, c.LandCover)
	}
	assert.Greater(t, data.AvgNDVI, 0.0)
}

func TestSnowCoverSeasons(t *testing.T) {
	july := &Visualization{Clock: clockwork.NewFakeClockAt(testTime), Rand: NewRand(34)}
	summer := july.SnowCover()
	assert.Equal(t, "summer", summer.Season)
	for _, p := range summer.Points {
		assert.Equal(t, "Tian Shan Glaciers", p.Region)
	}

	janClock := clockwork.NewFakeClockAt(time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC))
	january := &Visualization{Clock: janClock, Rand: NewRand(34)}
	winter := january.SnowCover()
	assert.Equal(t, "winter", winter.Season)
	assert.Greater(t, len(winter.Points), len(summer.Points))

	for _, p := range winter.Points {
		assert.GreaterOrEqual(t, p.DepthCm, 10)
		assert.LessOrEqual(t, p.Albedo, 0.95)
	}
}

func TestPollutionFlowCoversAllSources(t *testing.T) {
	v := &Visualization{Clock: clockwork.NewFakeClockAt(testTime), Rand: NewRand(35)}

	data := v.PollutionFlow()
	assert.Equal(t, 6, data.SourceCount)
	require.NotEmpty(t, data.GeoJSON.Features)

	seen := map[string]bool{}
	for _, f := range data.GeoJSON.Features {
		seen[f.Properties["source"].(string)] = true
	}
	assert.Len(t, seen, 6)
}
