package services

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/observability"
)

var testTime = time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func failingServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestAirQualityFallbackOnUpstreamFailure(t *testing.T) {
	p := &AirQualityProvider{
		Client:  http.DefaultClient,
		BaseURL: failingServer(t).URL,
		Clock:   clockwork.NewFakeClockAt(testTime),
		Rand:    NewRand(1),
		Logger:  testLogger(),
		Metrics: observability.NewMetricsForTesting(),
	}

	result := p.Fetch(context.Background())

	assert.False(t, result.Live)
	assert.Equal(t, airQualitySimSource, result.Data.Metadata.Source)
	require.Len(t, result.Data.Stations, 8)
	require.Len(t, result.Data.GeoJSON.Features, 8)
	assert.Greater(t, result.Data.AvgAQI, 0)

	for _, s := range result.Data.Stations {
		assert.GreaterOrEqual(t, s.AQI, 5, s.ID)
		assert.NotEmpty(t, s.Category, s.ID)
		assert.NotEmpty(t, s.Color, s.ID)
		assert.Greater(t, s.Pollutants["pm25"], 0.0, s.ID)
		assert.Len(t, s.Coordinates, 2, s.ID)
	}
}

func TestAirQualityLiveFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{
			"location":"Almaty US Embassy","city":"Almaty",
			"coordinates":{"latitude":43.22,"longitude":76.94},
			"measurements":[{"parameter":"pm25","value":35.4}]
		}]}`))
	}))
	t.Cleanup(srv.Close)

	p := &AirQualityProvider{
		Client:  http.DefaultClient,
		BaseURL: srv.URL,
		APIKey:  "test-key",
		Clock:   clockwork.NewFakeClockAt(testTime),
		Rand:    NewRand(1),
		Logger:  testLogger(),
		Metrics: observability.NewMetricsForTesting(),
	}

	result := p.Fetch(context.Background())

	assert.True(t, result.Live)
	require.Len(t, result.Data.Stations, 1)
	s := result.Data.Stations[0]
	assert.Equal(t, 100, s.AQI)
	assert.Equal(t, "Moderate", s.Category)
	assert.Equal(t, "pm25", s.DominantPollutant)
	assert.Equal(t, airQualityLiveSource, result.Data.Metadata.Source)
}

func TestAirQualityHistoryShape(t *testing.T) {
	p := &AirQualityProvider{
		Clock:   clockwork.NewFakeClockAt(testTime),
		Rand:    NewRand(1),
		Logger:  testLogger(),
		Metrics: observability.NewMetricsForTesting(),
	}

	labels, values := p.History(24)
	require.Len(t, labels, 24)
	require.Len(t, values, 24)
	for _, v := range values {
		assert.GreaterOrEqual(t, v, 5)
	}
	// Series ends at the current hour.
	assert.Equal(t, "12:00", labels[23])
}

func TestMethaneSimulatedDataset(t *testing.T) {
	p := &MethaneProvider{
		Client:  http.DefaultClient,
		Clock:   clockwork.NewFakeClockAt(testTime),
		Rand:    NewRand(7),
		Logger:  testLogger(),
		Metrics: observability.NewMetricsForTesting(),
	}

	result := p.Fetch(context.Background())

	assert.False(t, result.Live)
	assert.Equal(t, methaneSimSource, result.Data.Metadata.Source)
	require.Len(t, result.Data.Hotspots, 5)
	assert.InDelta(t, 2.36, result.Data.TotalEmissionMt, 0.01)

	for _, h := range result.Data.Hotspots {
		// Concentration stays near the simulated enhancement band.
		assert.Greater(t, h.ConcentrationPPB, float64(methaneBackgroundPPB)-60, h.ID)
		assert.Less(t, h.ConcentrationPPB, float64(methaneBackgroundPPB)+850*0.3+60, h.ID)
	}
	// Hotspot polygons plus plume points.
	assert.Greater(t, len(result.Data.GeoJSON.Features), len(result.Data.Hotspots))
}

func TestMethaneFallsBackWhenUpstreamFails(t *testing.T) {
	p := &MethaneProvider{
		Client:  http.DefaultClient,
		BaseURL: failingServer(t).URL,
		Clock:   clockwork.NewFakeClockAt(testTime),
		Rand:    NewRand(7),
		Logger:  testLogger(),
		Metrics: observability.NewMetricsForTesting(),
	}

	result := p.Fetch(context.Background())

	assert.False(t, result.Live)
	require.Len(t, result.Data.Hotspots, 5)
	assert.Equal(t, "tengiz_field", result.Data.Hotspots[0].ID)
}

func TestCO2Inventory(t *testing.T) {
	p := &CO2Provider{
		Clock:   clockwork.NewFakeClockAt(testTime),
		Rand:    NewRand(3),
		Logger:  testLogger(),
		Metrics: observability.NewMetricsForTesting(),
	}

	result := p.Fetch(context.Background())

	require.Len(t, result.Data.Sources, 6)
	assert.InDelta(t, 88.8, result.Data.TotalEmissionMt, 0.01)
	assert.InDelta(t, 58.0, result.Data.BySector["power_plant"], 0.01)
	assert.InDelta(t, 10.0, result.Data.BySector["refinery"], 0.01)
	assert.Equal(t, co2SimSource, result.Data.Metadata.Source)

	for _, s := range result.Data.Sources {
		assert.NotEmpty(t, s.Color, s.ID)
	}
}

func TestFireFallbackWithoutAPIKey(t *testing.T) {
	p := &FireProvider{
		Client:  http.DefaultClient,
		Clock:   clockwork.NewFakeClockAt(testTime),
		Rand:    NewRand(5),
		Logger:  testLogger(),
		Metrics: observability.NewMetricsForTesting(),
	}

	result := p.Fetch(context.Background())

	assert.False(t, result.Live)
	assert.Equal(t, fireSimSource, result.Data.Metadata.Source)
	require.GreaterOrEqual(t, len(result.Data.Fires), 3)
	assert.Equal(t, 66.85, result.Data.Fires[0].Longitude)
	assert.Equal(t, "2025-07-15", result.Data.Fires[0].AcqDate)
}

func TestFireLiveCSV(t *testing.T) {
	csvBody := strings.Join([]string{
		"latitude,longitude,bright_ti4,scan,track,acq_date,acq_time,satellite,instrument,confidence,version,bright_ti5,frp,daynight",
		"50.42,66.85,312.5,0.5,0.5,2025-07-15,0930,N,VIIRS,h,2.0NRT,290.1,25.3,D",
		"47.85,68.42,298.2,0.5,0.5,2025-07-15,0930,N,VIIRS,n,2.0NRT,285.4,18.7,D",
	}, "\n")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(csvBody))
	}))
	t.Cleanup(srv.Close)

	p := &FireProvider{
		Client:  http.DefaultClient,
		BaseURL: srv.URL,
		APIKey:  "firms-key",
		Clock:   clockwork.NewFakeClockAt(testTime),
		Rand:    NewRand(5),
		Logger:  testLogger(),
		Metrics: observability.NewMetricsForTesting(),
	}

	result := p.Fetch(context.Background())

	assert.True(t, result.Live)
	require.Len(t, result.Data.Fires, 2)
	assert.Equal(t, 85, result.Data.Fires[0].Confidence)
	assert.Equal(t, 55, result.Data.Fires[1].Confidence)
	assert.Equal(t, 1, result.Data.HighConfidence)
	assert.Equal(t, fireLiveSource, result.Data.Metadata.Source)
}

func TestParseConfidence(t *testing.T) {
	assert.Equal(t, 30, parseConfidence("l"))
	assert.Equal(t, 55, parseConfidence("n"))
	assert.Equal(t, 85, parseConfidence("h"))
	assert.Equal(t, 78, parseConfidence("78"))
	assert.Equal(t, 0, parseConfidence("garbage"))
}

func TestTemperatureGridSummer(t *testing.T) {
	p := &TemperatureProvider{
		Clock:   clockwork.NewFakeClockAt(testTime),
		Rand:    NewRand(9),
		Logger:  testLogger(),
		Metrics: observability.NewMetricsForTesting(),
	}

	result := p.Fetch(context.Background())

	assert.Equal(t, "summer", result.Data.Season)
	assert.NotEmpty(t, result.Data.Points)
	assert.Greater(t, result.Data.AvgTemp, 10.0)
	assert.LessOrEqual(t, result.Data.MinTemp, result.Data.AvgTemp)
	assert.GreaterOrEqual(t, result.Data.MaxTemp, result.Data.AvgTemp)

	for _, pt := range result.Data.Points {
		assert.NotEmpty(t, pt.Color)
		assert.GreaterOrEqual(t, pt.Weight, 0.0)
		assert.LessOrEqual(t, pt.Weight, 1.0)
	}
}

func TestTemperatureGridWinter(t *testing.T) {
	january := time.Date(2025, time.January, 10, 12, 0, 0, 0, time.UTC)
	p := &TemperatureProvider{
		Clock:   clockwork.NewFakeClockAt(january),
		Rand:    NewRand(9),
		Logger:  testLogger(),
		Metrics: observability.NewMetricsForTesting(),
	}

	result := p.Fetch(context.Background())

	assert.Equal(t, "winter", result.Data.Season)
	assert.Less(t, result.Data.AvgTemp, 0.0)
}

func TestZoneForAssignsNearestZone(t *testing.T) {
	name, _, winter, _ := zoneFor(69.0, 53.0)
	assert.Equal(t, "northern_steppes", name)
	assert.Equal(t, -18.0, winter)

	// Far from every zone center: the continental default.
	name, climateType, _, _ := zoneFor(60.0, 50.0)
	assert.Equal(t, defaultZoneName, name)
	assert.Equal(t, defaultClimateType, climateType)
}
