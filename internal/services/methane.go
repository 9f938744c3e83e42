package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"

	"github.com/jonboulle/clockwork"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/geo"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/observability"
)

const (
	methaneSimSource = "Sentinel-5P TROPOMI Methane Data"

	// Atmospheric background concentration in ppb.
	methaneBackgroundPPB = 1850
)

var methaneHotspotTable = []struct {
	id, name, sourceType, emissionSource string
	emissionKtYear, areaKm2              float64
	detectedPlumes                       int
	trend                                string
	coordinates                          []float64
}{
	{"tengiz_field", "Tengiz Oil Field", "oil_gas", "Oil extraction and flaring", 850, 2500, 127, "stable", []float64{53.45, 46.23}},
	{"karachaganak_field", "Karachaganak Field", "oil_gas", "Natural gas processing", 620, 1800, 89, "decreasing", []float64{50.10, 50.20}},
	{"kashagan_field", "Kashagan Field", "oil_gas", "Offshore oil extraction", 480, 3200, 64, "increasing", []float64{52.50, 46.40}},
	{"ekibastuz_coal", "Ekibastuz Coal Basin", "coal", "Coal mining fugitive emissions", 320, 800, 45, "stable", []float64{75.40, 51.70}},
	{"mangystau_landfills", "Mangystau Landfills", "waste", "Municipal waste decomposition", 85, 50, 12, "increasing", []float64{51.50, 43.80}},
}

// MethaneProvider serves Sentinel-5P-styled methane hotspots. A live upstream
// is only attempted when BaseURL is set; the simulated dataset is the normal
// path.
type MethaneProvider struct {
	Client  *http.Client
	BaseURL string
	Clock   clockwork.Clock
	Rand    *rand.Rand
	Logger  *slog.Logger
	Metrics *observability.Metrics
}

func (p *MethaneProvider) Fetch(ctx context.Context) Result[models.MethaneData] {
	if p.BaseURL != "" {
		if err := p.probeLive(ctx); err != nil {
			p.Logger.Warn("methane upstream unavailable, using simulated hotspots", "error", err)
		}
		// Even a healthy upstream only confirms reachability today; hotspot
		// retrieval is not implemented against a real TROPOMI endpoint.
	}
	p.Metrics.ObserveFetch("methane", false)
	return fallbackResult(p.simulate())
}

func (p *MethaneProvider) probeLive(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultProviderTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL, nil)
	if err != nil {
		return fmt.Errorf("build methane request: %w", err)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("call methane upstream: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("methane upstream status %d", resp.StatusCode)
	}
	return nil
}

func (p *MethaneProvider) simulate() models.MethaneData {
	fc := models.NewFeatureCollection()
	hotspots := make([]models.MethaneHotspot, 0, len(methaneHotspotTable))
	totalKt := 0.0

	for _, h := range methaneHotspotTable {
		concentration := round1(methaneBackgroundPPB + h.emissionKtYear*0.3 + randBetween(p.Rand, -50, 50))
		color, opacity := MethaneStyle(concentration)
		totalKt += h.emissionKtYear

		hotspots = append(hotspots, models.MethaneHotspot{
			ID:               h.id,
			Name:             h.name,
			SourceType:       h.sourceType,
			EmissionKtYear:   h.emissionKtYear,
			EmissionSource:   h.emissionSource,
			AreaKm2:          h.areaKm2,
			DetectedPlumes:   h.detectedPlumes,
			Trend:            h.trend,
			ConcentrationPPB: concentration,
			Coordinates:      h.coordinates,
		})

		ring := geo.IrregularPolygon(p.Rand, h.coordinates, h.areaKm2, 16, 0.8)
		fc.Features = append(fc.Features, models.PolygonFeature(ring, map[string]any{
			"id":                h.id,
			"name":              h.name,
			"concentration_ppb": concentration,
			"emission_kt_year":  h.emissionKtYear,
			"trend":             h.trend,
			"color":             color,
			"opacity":           opacity,
		}))
		for _, pt := range geo.PlumePoints(p.Rand, h.coordinates, h.emissionKtYear, h.areaKm2) {
			fc.Features = append(fc.Features, models.PointFeature(pt.Lng, pt.Lat, map[string]any{
				"hotspot":       h.id,
				"concentration": pt.Concentration,
				"height_m":      pt.HeightM,
				"color":         color,
			}))
		}
	}

	return models.MethaneData{
		Hotspots:        hotspots,
		TotalEmissionMt: round2(totalKt / 1000),
		GeoJSON:         fc,
		Metadata: models.DataMetadata{
			Source:    methaneSimSource,
			Timestamp: timestamp(p.Clock.Now()),
			Extra:     map[string]any{"background_ppb": methaneBackgroundPPB},
		},
	}
}
