package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
)

// Environmental recipes. These are the only rules that reach out to the
// DataProviders; everything above them in the table answers from the
// gazetteer alone.

func (b *Builder) buildMethane(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	_ = r
	result := b.Methane.Fetch(ctx)
	data := result.Data

	labels := make([]string, 0, len(data.Hotspots))
	values := make([]float64, 0, len(data.Hotspots))
	msg := "## Methane emissions\n\n"
	msg += fmt.Sprintf("Total tracked emissions: **%.2f Mt/year** across %d hotspots.\n\n",
		data.TotalEmissionMt, len(data.Hotspots))
	for _, h := range data.Hotspots {
		msg += fmt.Sprintf("- **%s** — %.0f kt/year (%s, trend %s), %.0f ppb\n",
			h.Name, h.EmissionKtYear, h.EmissionSource, h.Trend, h.ConcentrationPPB)
		labels = append(labels, h.Name)
		values = append(values, h.EmissionKtYear)
	}
	msg += fmt.Sprintf("\n_Source: %s_", data.Metadata.Source)

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{MethaneLayer(data.GeoJSON)},
		MapAction: fitBounds(kazakhstanBounds),
		Chart: &models.ChartSpec{
			Type:   "bar",
			Title:  "Methane emissions by hotspot (kt/year)",
			Labels: labels,
			Datasets: []models.ChartDataset{{
				Label:           "kt CH4/year",
				Data:            values,
				BackgroundColor: "#f97316",
			}},
		},
		Data: map[string]any{
			"total_emissions_mt": data.TotalEmissionMt,
			"metadata":           data.Metadata,
			"live":               result.Live,
		},
	}, nil
}

func (b *Builder) buildCO2(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	_ = r
	result := b.CO2.Fetch(ctx)
	data := result.Data

	labels := make([]string, 0, len(data.Sources))
	values := make([]float64, 0, len(data.Sources))
	msg := "## CO2 point sources\n\n"
	msg += fmt.Sprintf("Total: **%.1f Mt/year** from %d facilities.\n\n", data.TotalEmissionMt, len(data.Sources))
	for _, s := range data.Sources {
		msg += fmt.Sprintf("- **%s** (%s) — %.1f Mt/year\n", s.Name, s.FuelType, s.EmissionMtYear)
		labels = append(labels, s.Name)
		values = append(values, s.EmissionMtYear)
	}
	msg += fmt.Sprintf("\n_Source: %s_", data.Metadata.Source)

	sectors := make([]string, 0, len(data.BySector))
	for sector := range data.BySector {
		sectors = append(sectors, sector)
	}
	sort.Strings(sectors)
	sectorValues := make([]float64, 0, len(sectors))
	for _, sector := range sectors {
		sectorValues = append(sectorValues, round1(data.BySector[sector]))
	}

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{CO2Layer(data.GeoJSON)},
		MapAction: fitBounds(kazakhstanBounds),
		Chart: &models.ChartSpec{
			Type:   "pie",
			Title:  "CO2 by sector (Mt/year)",
			Labels: sectors,
			Datasets: []models.ChartDataset{{
				Label:           "Mt CO2/year",
				Data:            sectorValues,
				BackgroundColor: []string{"#991b1b", "#dc2626", "#f97316", "#fbbf24"},
			}},
		},
		Data: map[string]any{"total_emissions_mt": data.TotalEmissionMt, "live": result.Live},
	}, nil
}

func (b *Builder) buildFire(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	_ = r
	result := b.Fire.Fetch(ctx)
	data := result.Data

	msg := "## Active fires\n\n"
	msg += fmt.Sprintf("**%d detections** in the last 24h, %d high-confidence. Average fire radiative power **%.1f MW**.\n",
		len(data.Fires), data.HighConfidence, data.AvgFRP)
	msg += fmt.Sprintf("\n_Source: %s_", data.Metadata.Source)

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{FireLayer(data.GeoJSON)},
		MapAction: fitBounds(kazakhstanBounds),
		Data: map[string]any{
			"detection_count": len(data.Fires),
			"high_confidence": data.HighConfidence,
			"live":            result.Live,
		},
	}, nil
}

func (b *Builder) buildWind(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	_ = ctx
	_ = r
	data := b.Viz.WindFlow()

	return &models.AgentResponse{
		Message: fmt.Sprintf("## Wind patterns\n\nPrevailing **westerlies**; current average speed **%.1f m/s**. "+
			"Arrows point downwind, length scales with speed.\n\n_Source: %s_",
			data.AvgSpeedMS, data.Metadata.Source),
		MapLayers: []models.MapLayer{WindLayer(data.GeoJSON)},
		MapAction: fitBounds(kazakhstanBounds),
		Data:      map[string]any{"avg_speed_ms": data.AvgSpeedMS, "dominant_direction": data.DominantDirection},
	}, nil
}

func (b *Builder) buildCountryAirQuality(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	// No place resolved; reuse the place recipe against the whole network by
	// reporting from the raw provider snapshot.
	_ = r
	result := b.AirQuality.Fetch(ctx)
	data := result.Data
	cat := CategoryForAQI(data.AvgAQI)

	labels := make([]string, 0, len(data.Stations))
	values := make([]float64, 0, len(data.Stations))
	colors := make([]string, 0, len(data.Stations))
	for _, s := range data.Stations {
		labels = append(labels, s.Name)
		values = append(values, float64(s.AQI))
		colors = append(colors, s.Color)
	}

	msg := fmt.Sprintf("## Air quality across Kazakhstan\n\nNetwork average AQI **%d** — **%s**.\n\n%s\n\n_Source: %s_",
		data.AvgAQI, cat.Name, cat.Health, data.Metadata.Source)

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{AirQualityLayer(data.GeoJSON)},
		MapAction: fitBounds(kazakhstanBounds),
		Chart: &models.ChartSpec{
			Type:   "bar",
			Title:  "AQI by station",
			Labels: labels,
			Datasets: []models.ChartDataset{{
				Label:           "AQI",
				Data:            values,
				BackgroundColor: colors,
			}},
		},
		Data: map[string]any{"avg_aqi": data.AvgAQI, "live": result.Live},
	}, nil
}

func (b *Builder) buildCountryTemperature(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	_ = r
	result := b.Temperature.Fetch(ctx)
	data := result.Data

	msg := fmt.Sprintf("## Temperature map (%s)\n\nCountry range **%.1f°C to %.1f°C**, average **%.1f°C**.\n\n_Source: %s_",
		data.Season, data.MinTemp, data.MaxTemp, data.AvgTemp, data.Metadata.Source)

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{TemperatureLayer(data.GeoJSON)},
		MapAction: fitBounds(kazakhstanBounds),
		Data: map[string]any{
			"min_temp": data.MinTemp, "max_temp": data.MaxTemp, "avg_temp": data.AvgTemp, "season": data.Season,
		},
	}, nil
}

func (b *Builder) buildCountryNDVI(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	_ = ctx
	_ = r
	data := b.Viz.NDVIGrid()

	return &models.AgentResponse{
		Message: fmt.Sprintf("## Vegetation index\n\nCountry average NDVI **%.2f**. The northern grain belt "+
			"and the southeastern foothills show the densest cover; the central desert stays bare.\n\n_Source: %s_",
			data.AvgNDVI, data.Metadata.Source),
		MapLayers: []models.MapLayer{NDVILayer(data.GeoJSON)},
		MapAction: fitBounds(kazakhstanBounds),
		Data:      map[string]any{"avg_ndvi": data.AvgNDVI},
	}, nil
}

func (b *Builder) buildCountryTerrain(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	_ = ctx
	_ = r
	// Frame the Tian Shan: the only relief worth extruding at country scale.
	terrain := b.Viz.Terrain3D([]float64{77.5, 43.5}, 6.0)

	return &models.AgentResponse{
		Message: fmt.Sprintf("## 3D relief\n\nHighest cell: **%s m** in the Tian Shan. Tilt the map for depth.\n\n_Source: %s_",
			formatInt(terrain.MaxElevationM), terrain.Metadata.Source),
		MapLayers: []models.MapLayer{TerrainLayer(terrain.GeoJSON)},
		MapAction: flyTo([]float64{77.5, 43.5}, 7, 55, -15),
		Data:      map[string]any{"max_elevation_m": terrain.MaxElevationM},
	}, nil
}

func (b *Builder) buildDashboard(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	_ = r
	air := b.AirQuality.Fetch(ctx)
	methane := b.Methane.Fetch(ctx)
	co2 := b.CO2.Fetch(ctx)
	fire := b.Fire.Fetch(ctx)

	msg := "## Environmental dashboard\n\n"
	msg += fmt.Sprintf("- Air quality: average AQI **%d** (%s)\n", air.Data.AvgAQI, CategoryForAQI(air.Data.AvgAQI).Name)
	msg += fmt.Sprintf("- Methane: **%.2f Mt/year** from %d hotspots\n", methane.Data.TotalEmissionMt, len(methane.Data.Hotspots))
	msg += fmt.Sprintf("- CO2: **%.1f Mt/year** from %d facilities\n", co2.Data.TotalEmissionMt, len(co2.Data.Sources))
	msg += fmt.Sprintf("- Active fires: **%d** detections (%d high-confidence)\n", len(fire.Data.Fires), fire.Data.HighConfidence)

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{
			AirQualityLayer(air.Data.GeoJSON),
			MethaneLayer(methane.Data.GeoJSON),
			CO2Layer(co2.Data.GeoJSON),
			FireLayer(fire.Data.GeoJSON),
		},
		MapAction: fitBounds(kazakhstanBounds),
		Chart: &models.ChartSpec{
			Type:   "bar",
			Title:  "Environmental indicators",
			Labels: []string{"Avg AQI", "CH4 Mt/yr", "CO2 Mt/yr", "Fires"},
			Datasets: []models.ChartDataset{{
				Label:           "Value",
				Data:            []float64{float64(air.Data.AvgAQI), methane.Data.TotalEmissionMt, co2.Data.TotalEmissionMt, float64(len(fire.Data.Fires))},
				BackgroundColor: []string{"#3b82f6", "#f97316", "#991b1b", "#ef4444"},
			}},
		},
		Data: map[string]any{
			"air_quality_live": air.Live,
			"fire_live":        fire.Live,
		},
	}, nil
}
