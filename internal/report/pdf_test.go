package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
)

func testInput() Input {
	return Input{
		AirQuality: models.AirQualityData{
			Stations: []models.AirQualityStation{
				{Name: "Almaty Center", City: "Almaty", AQI: 87, Category: "Moderate"},
			},
			AvgAQI:   87,
			Metadata: models.DataMetadata{Source: "test network"},
		},
		Methane: models.MethaneData{
			Hotspots: []models.MethaneHotspot{
				{Name: "Tengiz Oil Field", EmissionKtYear: 850, Trend: "stable", EmissionSource: "Oil extraction and flaring"},
			},
			TotalEmissionMt: 0.85,
			Metadata:        models.DataMetadata{Source: "test satellite"},
		},
		CO2: models.CO2Data{
			Sources: []models.CO2Source{
				{Name: "Ekibastuz GRES-1", FacilityType: "power_plant", FuelType: "coal", EmissionMtYear: 45.2},
			},
			TotalEmissionMt: 45.2,
			Metadata:        models.DataMetadata{Source: "test inventory"},
		},
		Fire: models.FireData{
			Fires: []models.FireDetection{
				{Latitude: 48.5, Longitude: 66.85, Brightness: 330.1, Confidence: 85, FRP: 12.3, Satellite: "VIIRS"},
			},
			HighConfidence: 1,
			Metadata:       models.DataMetadata{Source: "test firms"},
		},
	}
}

func TestGenerateFullReport(t *testing.T) {
	g := NewGenerator(clockwork.NewFakeClockAt(time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)))

	pdf, err := g.Generate(Options{
		IncludeAirQuality: true,
		IncludeMethane:    true,
		IncludeCO2:        true,
		IncludeFire:       true,
	}, testInput())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")), "output should start with the PDF magic")
	assert.Greater(t, len(pdf), 1000)
}

func TestGenerateWithSectionsExcluded(t *testing.T) {
	g := NewGenerator(clockwork.NewFakeClockAt(time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)))

	full, err := g.Generate(Options{IncludeAirQuality: true, IncludeMethane: true, IncludeCO2: true, IncludeFire: true}, testInput())
	require.NoError(t, err)

	minimal, err := g.Generate(Options{IncludeAirQuality: true}, testInput())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(minimal, []byte("%PDF")))
	assert.Less(t, len(minimal), len(full), "fewer sections should yield a smaller document")
}
