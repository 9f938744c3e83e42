package services

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/geo"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/store"
)

// Single-place recipes. The sub-rule order below is a contract: heatmap must
// stay ahead of temperature so "temperature heatmap of Almaty" renders a
// heatmap instead of falling through to the temperature card.
func (b *Builder) placeSubRules() []struct {
	intent Intent
	build  func(context.Context, *store.Place) (*models.AgentResponse, error)
} {
	return []struct {
		intent Intent
		build  func(context.Context, *store.Place) (*models.AgentResponse, error)
	}{
		{IntentPopulation, b.placePopulation},
		{IntentHeatmap, b.placeHeatmap},
		{IntentTemperature, b.placeTemperature},
		{IntentAirQuality, b.placeAirQuality},
		{IntentNDVI, b.placeNDVI},
		{IntentTerrain, b.placeTerrain},
		{IntentEconomic, b.placeEconomic},
		{IntentLandmarks, b.placeLandmarks},
		{IntentGlacier, b.glaciersNear},
		{IntentRiver, b.riversNear},
		{IntentLake, b.lakesNear},
		{IntentHydrology, b.hydrologyNear},
	}
}

func (b *Builder) buildForPlace(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	for _, sub := range b.placeSubRules() {
		if r.intents.Has(sub.intent) {
			return sub.build(ctx, r.place)
		}
	}
	return b.placeCard(r.place)
}

func (b *Builder) placePopulation(ctx context.Context, p *store.Place) (*models.AgentResponse, error) {
	_ = ctx
	if p.City == nil {
		return b.placeCard(p)
	}

	cities := b.Gazetteer.All(store.CategoryCity)
	labels := make([]string, 0, len(cities))
	data := make([]float64, 0, len(cities))
	colors := make([]string, 0, len(cities))
	for _, c := range cities {
		labels = append(labels, c.Name)
		data = append(data, float64(c.City.Population))
		if c.Key == p.Key {
			colors = append(colors, "#ef4444")
		} else {
			colors = append(colors, "#93c5fd")
		}
	}

	msg := fmt.Sprintf("## Population of %s\n\n**%s people** live in %s (%s), making it ",
		p.Name, formatInt(p.City.Population), p.Name, p.NativeName)
	msg += fmt.Sprintf("the **#%d** city in the country by population.", populationRank(cities, p))

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{
			b.cityBoundaryLayer(p),
		},
		MapAction: flyTo(p.Coordinates, 10, 0, 0),
		Chart: &models.ChartSpec{
			Type:   "bar",
			Title:  "Population by city",
			Labels: labels,
			Datasets: []models.ChartDataset{{
				Label:           "Population",
				Data:            data,
				BackgroundColor: colors,
			}},
		},
		Data: map[string]any{"population": p.City.Population},
	}, nil
}

func populationRank(cities []*store.Place, p *store.Place) int {
	rank := 1
	for _, c := range cities {
		if c.City.Population > p.City.Population {
			rank++
		}
	}
	return rank
}

// placeHeatmap scatters a population-density cloud around the place center.
func (b *Builder) placeHeatmap(ctx context.Context, p *store.Place) (*models.AgentResponse, error) {
	_ = ctx
	radiusDeg := 0.18
	if p.City != nil {
		radiusDeg = math.Sqrt(p.City.AreaKm2/math.Pi) / geo.KmPerDegree * 1.6
	}

	fc := models.NewFeatureCollection()
	for i := 0; i < 150; i++ {
		dx := b.Rand.NormFloat64() * radiusDeg * 0.5
		dy := b.Rand.NormFloat64() * radiusDeg * 0.4
		dist := math.Hypot(dx, dy)
		weight := math.Max(0.05, 1-dist/(radiusDeg*1.5))
		fc.Features = append(fc.Features, models.PointFeature(
			p.Coordinates[0]+dx, p.Coordinates[1]+dy,
			map[string]any{"weight": round2(weight)},
		))
	}

	return &models.AgentResponse{
		Message: fmt.Sprintf("## Density heatmap: %s\n\nSimulated population density around %s. "+
			"Warm colors mark the urban core, cooling toward the periphery.", p.Name, p.Name),
		MapLayers: []models.MapLayer{
			geojsonLayer("density-heatmap", "heatmap", fc, heatmapPaint()),
		},
		MapAction: flyTo(p.Coordinates, 10, 0, 0),
	}, nil
}

func (b *Builder) placeTemperature(ctx context.Context, p *store.Place) (*models.AgentResponse, error) {
	_ = ctx
	_, climateType, winter, summer := zoneFor(p.Coordinates[0], p.Coordinates[1])

	now := b.Viz.Clock.Now()
	months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	series := make([]float64, 12)
	for m := 1; m <= 12; m++ {
		f := (1 - math.Cos(2*math.Pi*float64(m-1)/12)) / 2
		series[m-1] = round1(winter + (summer-winter)*f)
	}
	current := series[int(now.Month())-1]

	msg := fmt.Sprintf("## Climate in %s\n\nClimate type: **%s**. Current average: **%.1f°C** (%s).\n\n",
		p.Name, strings.ReplaceAll(climateType, "_", " "), current, seasonName(int(now.Month())))
	msg += fmt.Sprintf("January average **%.0f°C**, July average **%.0f°C**.", winter, summer)

	return &models.AgentResponse{
		Message:   msg,
		MapAction: flyTo(p.Coordinates, 9, 0, 0),
		Chart: &models.ChartSpec{
			Type:   "line",
			Title:  fmt.Sprintf("Monthly average temperature, %s", p.Name),
			Labels: months,
			Datasets: []models.ChartDataset{{
				Label:       "°C",
				Data:        series,
				BorderColor: "#f97316",
			}},
		},
		Data: map[string]any{"current_temp_c": current, "climate_type": climateType},
	}, nil
}

func (b *Builder) placeAirQuality(ctx context.Context, p *store.Place) (*models.AgentResponse, error) {
	result := b.AirQuality.Fetch(ctx)
	data := result.Data

	local := make([]models.AirQualityStation, 0, len(data.Stations))
	for _, s := range data.Stations {
		if s.City == p.Name || geo.Haversine(s.Coordinates, p.Coordinates) <= 150 {
			local = append(local, s)
		}
	}
	if len(local) == 0 {
		local = data.Stations
	}

	fc := models.NewFeatureCollection()
	labels := make([]string, 0, len(local))
	values := make([]float64, 0, len(local))
	colors := make([]string, 0, len(local))
	sum := 0
	for _, s := range local {
		sum += s.AQI
		labels = append(labels, s.Name)
		values = append(values, float64(s.AQI))
		colors = append(colors, s.Color)
		fc.Features = append(fc.Features, models.PointFeature(s.Coordinates[0], s.Coordinates[1], map[string]any{
			"name": s.Name, "aqi": s.AQI, "color": s.Color, "category": s.Category,
		}))
	}
	avg := sum / len(local)
	cat := CategoryForAQI(avg)

	msg := fmt.Sprintf("## Air quality: %s\n\nAverage AQI **%d** — **%s**.\n\n%s\n\n_Source: %s_",
		p.Name, avg, cat.Name, cat.Health, data.Metadata.Source)

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{AirQualityLayer(fc)},
		MapAction: flyTo(p.Coordinates, 9, 0, 0),
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
		Data: map[string]any{"avg_aqi": avg, "live": result.Live},
	}, nil
}

func (b *Builder) placeNDVI(ctx context.Context, p *store.Place) (*models.AgentResponse, error) {
	_ = ctx
	fc := models.NewFeatureCollection()
	sum, n := 0.0, 0
	for lat := p.Coordinates[1] - 1.5; lat <= p.Coordinates[1]+1.5; lat += 0.25 {
		for lng := p.Coordinates[0] - 1.5; lng <= p.Coordinates[0]+1.5; lng += 0.25 {
			ndvi := estimateNDVI(lng, lat) + randBetween(b.Rand, -0.05, 0.05)
			ndvi = round2(math.Max(0, math.Min(0.9, ndvi)))
			sum += ndvi
			n++
			fc.Features = append(fc.Features, models.PointFeature(lng, lat, map[string]any{
				"ndvi": ndvi, "color": NDVIColor(ndvi), "land_cover": landCoverFor(ndvi),
			}))
		}
	}
	avg := round2(sum / float64(n))

	return &models.AgentResponse{
		Message: fmt.Sprintf("## Vegetation around %s\n\nAverage NDVI **%.2f** (%s). "+
			"Green cells mark dense vegetation, red cells bare ground.\n\n_Source: %s_",
			p.Name, avg, strings.ReplaceAll(landCoverFor(avg), "_", " "), ndviSimSource),
		MapLayers: []models.MapLayer{NDVILayer(fc)},
		MapAction: flyTo(p.Coordinates, 8, 0, 0),
		Data:      map[string]any{"avg_ndvi": avg},
	}, nil
}

// fixedCirclePaintByProp colors cells by their own color property at constant
// radius, the grid-cell style shared by NDVI and temperature layers.
func fixedCirclePaintByProp() map[string]any {
	return map[string]any{
		"circle-radius":  9,
		"circle-color":   []any{"get", "color"},
		"circle-opacity": 0.6,
	}
}

func (b *Builder) placeTerrain(ctx context.Context, p *store.Place) (*models.AgentResponse, error) {
	_ = ctx
	terrain := b.Viz.Terrain3D(p.Coordinates, 2.0)

	return &models.AgentResponse{
		Message: fmt.Sprintf("## 3D terrain: %s\n\nHighest cell in view: **%s m**. "+
			"Tilt the map to read the relief.\n\n_Source: %s_",
			p.Name, formatInt(terrain.MaxElevationM), terrain.Metadata.Source),
		MapLayers: []models.MapLayer{TerrainLayer(terrain.GeoJSON)},
		MapAction: flyTo(p.Coordinates, 9, 60, -20),
		Data:      map[string]any{"max_elevation_m": terrain.MaxElevationM},
	}, nil
}

func (b *Builder) placeEconomic(ctx context.Context, p *store.Place) (*models.AgentResponse, error) {
	_ = ctx
	if p.City == nil || len(p.City.Industries) == 0 {
		return b.placeCard(p)
	}

	// Leading sectors get descending fabricated shares summing to 100.
	industries := p.City.Industries
	shares := make([]float64, len(industries))
	total := 0.0
	for i := range industries {
		shares[i] = float64(len(industries) - i)
		total += shares[i]
	}
	for i := range shares {
		shares[i] = round1(shares[i] / total * 100)
	}

	msg := fmt.Sprintf("## Economy of %s\n\nKey sectors: **%s**.", p.Name, strings.Join(industries, "**, **"))

	return &models.AgentResponse{
		Message:   msg,
		MapAction: flyTo(p.Coordinates, 10, 0, 0),
		Chart: &models.ChartSpec{
			Type:   "pie",
			Title:  fmt.Sprintf("Sector mix, %s", p.Name),
			Labels: industries,
			Datasets: []models.ChartDataset{{
				Label:           "Share %",
				Data:            shares,
				BackgroundColor: []string{"#3b82f6", "#22c55e", "#f97316", "#a855f7", "#eab308"},
			}},
		},
	}, nil
}

func (b *Builder) placeLandmarks(ctx context.Context, p *store.Place) (*models.AgentResponse, error) {
	_ = ctx
	if p.City == nil || len(p.City.Landmarks) == 0 {
		return b.placeCard(p)
	}

	fc := models.NewFeatureCollection()
	var names []string
	for _, lm := range p.City.Landmarks {
		names = append(names, lm.Name)
		fc.Features = append(fc.Features, models.PointFeature(lm.Coordinates[0], lm.Coordinates[1], map[string]any{
			"name": lm.Name, "kind": lm.Kind,
		}))
	}

	msg := fmt.Sprintf("## Landmarks in %s\n\n", p.Name)
	for _, lm := range p.City.Landmarks {
		msg += fmt.Sprintf("- **%s** (%s)\n", lm.Name, lm.Kind)
	}

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{
			geojsonLayer("landmarks", "circle", fc, fixedCirclePaint("#a855f7", 8)),
		},
		MapAction: flyTo(p.Coordinates, 12, 30, 0),
		Data:      map[string]any{"landmarks": names},
	}, nil
}

func (b *Builder) glaciersNear(ctx context.Context, p *store.Place) (*models.AgentResponse, error) {
	_ = ctx
	if p.Glacier != nil {
		return b.placeCard(p)
	}

	glaciers := b.Gazetteer.All(store.CategoryGlacier)
	fc := models.NewFeatureCollection()
	labels := make([]string, 0, len(glaciers))
	areas := make([]float64, 0, len(glaciers))

	msg := fmt.Sprintf("## Glaciers near %s\n\n", p.Name)
	for _, g := range glaciers {
		dist := geo.Haversine(p.Coordinates, g.Coordinates)
		msg += fmt.Sprintf("- **%s** (%s) — %.1f km², %s, %.0f km away\n",
			g.Name, g.NativeName, g.Glacier.AreaKm2, string(g.Glacier.Status), dist)

		labels = append(labels, g.Name)
		areas = append(areas, g.Glacier.AreaKm2)
		ring := geo.IrregularPolygon(b.Rand, g.Coordinates, g.Glacier.AreaKm2, 12, 0.7)
		fc.Features = append(fc.Features, models.PolygonFeature(ring, map[string]any{
			"name":   g.Name,
			"status": string(g.Glacier.Status),
			"color":  glacierStatusColor(g.Glacier.Status),
		}))
	}

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{
			geojsonLayer("glaciers", "fill", fc, fillPaint("#1e3a8a")),
		},
		MapAction: fitBounds(boundsOfPlaces(glaciers)),
		Chart: &models.ChartSpec{
			Type:   "bar",
			Title:  "Glacier area (km²)",
			Labels: labels,
			Datasets: []models.ChartDataset{{
				Label:           "Area km²",
				Data:            areas,
				BackgroundColor: "#60a5fa",
			}},
		},
	}, nil
}

func glacierStatusColor(s store.GlacierStatus) string {
	switch s {
	case store.GlacierStable:
		return "#60a5fa"
	case store.GlacierRetreating:
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}

func (b *Builder) riversNear(ctx context.Context, p *store.Place) (*models.AgentResponse, error) {
	_ = ctx
	if p.River != nil {
		return b.placeCard(p)
	}

	rivers := b.Gazetteer.All(store.CategoryRiver)
	fc := models.NewFeatureCollection()
	labels := make([]string, 0, len(rivers))
	lengths := make([]float64, 0, len(rivers))

	msg := fmt.Sprintf("## Rivers of Kazakhstan (from %s)\n\n", p.Name)
	for _, rv := range rivers {
		dist := geo.Haversine(p.Coordinates, rv.Coordinates)
		msg += fmt.Sprintf("- **%s** (%s) — %.0f km long, mouth at %s, %.0f km away\n",
			rv.Name, rv.NativeName, rv.River.LengthKm, rv.River.Mouth, dist)
		labels = append(labels, rv.Name)
		lengths = append(lengths, rv.River.LengthKm)
		fc.Features = append(fc.Features, models.LineFeature(rv.River.Path, map[string]any{
			"name": rv.Name, "length_km": rv.River.LengthKm,
		}))
	}

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{
			geojsonLayer("rivers", "line", fc, linePaint("#0ea5e9", 2.5)),
		},
		MapAction: fitBounds(kazakhstanBounds),
		Chart: &models.ChartSpec{
			Type:   "bar",
			Title:  "River length (km)",
			Labels: labels,
			Datasets: []models.ChartDataset{{
				Label:           "Length km",
				Data:            lengths,
				BackgroundColor: "#0ea5e9",
			}},
		},
	}, nil
}

func (b *Builder) lakesNear(ctx context.Context, p *store.Place) (*models.AgentResponse, error) {
	_ = ctx
	if p.Lake != nil {
		return b.placeCard(p)
	}

	lakes := b.Gazetteer.All(store.CategoryLake)
	fc := models.NewFeatureCollection()
	labels := make([]string, 0, len(lakes))
	areas := make([]float64, 0, len(lakes))

	msg := fmt.Sprintf("## Lakes of Kazakhstan (from %s)\n\n", p.Name)
	for _, lk := range lakes {
		dist := geo.Haversine(p.Coordinates, lk.Coordinates)
		msg += fmt.Sprintf("- **%s** (%s) — %.0f km², max depth %.0f m, %.0f km away\n",
			lk.Name, lk.NativeName, lk.Lake.AreaKm2, lk.Lake.MaxDepthM, dist)
		labels = append(labels, lk.Name)
		areas = append(areas, lk.Lake.AreaKm2)
		ring := geo.IrregularPolygon(b.Rand, lk.Coordinates, lk.Lake.AreaKm2, 16, 0.8)
		fc.Features = append(fc.Features, models.PolygonFeature(ring, map[string]any{
			"name": lk.Name, "color": "#38bdf8",
		}))
	}

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{
			geojsonLayer("lakes", "fill", fc, fillPaint("#0c4a6e")),
		},
		MapAction: fitBounds(kazakhstanBounds),
		Chart: &models.ChartSpec{
			Type:   "bar",
			Title:  "Lake area (km²)",
			Labels: labels,
			Datasets: []models.ChartDataset{{
				Label:           "Area km²",
				Data:            areas,
				BackgroundColor: "#38bdf8",
			}},
		},
	}, nil
}

func (b *Builder) hydrologyNear(ctx context.Context, p *store.Place) (*models.AgentResponse, error) {
	glaciersResp, err := b.glaciersNear(ctx, p)
	if err != nil {
		return nil, err
	}
	riversResp, err := b.riversNear(ctx, p)
	if err != nil {
		return nil, err
	}
	lakesResp, err := b.lakesNear(ctx, p)
	if err != nil {
		return nil, err
	}

	counts := []float64{
		float64(len(b.Gazetteer.All(store.CategoryGlacier))),
		float64(len(b.Gazetteer.All(store.CategoryRiver))),
		float64(len(b.Gazetteer.All(store.CategoryLake))),
	}

	var layers []models.MapLayer
	layers = append(layers, glaciersResp.MapLayers...)
	layers = append(layers, riversResp.MapLayers...)
	layers = append(layers, lakesResp.MapLayers...)

	return &models.AgentResponse{
		Message: fmt.Sprintf("## Water systems around %s\n\nTracking **%.0f glaciers**, **%.0f rivers**, "+
			"and **%.0f lakes** across the country. Glacier melt feeds the southeastern rivers; "+
			"the steppe lakes depend on snowmelt and are sensitive to drawdown.",
			p.Name, counts[0], counts[1], counts[2]),
		MapLayers: layers,
		MapAction: fitBounds(kazakhstanBounds),
		Chart: &models.ChartSpec{
			Type:   "bar",
			Title:  "Hydrological inventory",
			Labels: []string{"Glaciers", "Rivers", "Lakes"},
			Datasets: []models.ChartDataset{{
				Label:           "Count",
				Data:            counts,
				BackgroundColor: []string{"#60a5fa", "#0ea5e9", "#38bdf8"},
			}},
		},
	}, nil
}

// placeCard is the default recipe when a place is named without a more
// specific ask.
func (b *Builder) placeCard(p *store.Place) (*models.AgentResponse, error) {
	switch {
	case p.City != nil:
		return b.cityCard(p)
	case p.Glacier != nil:
		return b.glacierCard(p)
	case p.River != nil:
		return b.riverCard(p)
	case p.Lake != nil:
		return b.lakeCard(p)
	}
	return nil, fmt.Errorf("place %s has no category attributes", p.Key)
}

func (b *Builder) cityCard(p *store.Place) (*models.AgentResponse, error) {
	c := p.City
	msg := fmt.Sprintf("## %s (%s)\n\n%s\n\n", p.Name, p.NativeName, p.Description)
	msg += fmt.Sprintf("- Population: **%s**\n- Elevation: **%d m**\n- Area: **%.0f km²**\n- Founded: **%d**\n- Region: **%s**\n",
		formatInt(c.Population), c.Elevation, c.AreaKm2, c.Founded, c.Region)
	if c.IsCapital {
		msg += "- **Capital of Kazakhstan**\n"
	}

	return &models.AgentResponse{
		Message:   msg,
		MapLayers: []models.MapLayer{b.cityBoundaryLayer(p)},
		MapAction: flyTo(p.Coordinates, 11, 45, 0),
		Data: map[string]any{
			"key": p.Key, "population": c.Population, "elevation_m": c.Elevation, "area_km2": c.AreaKm2,
		},
	}, nil
}

func (b *Builder) cityBoundaryLayer(p *store.Place) models.MapLayer {
	radiusKm := 12.0
	if p.City != nil {
		radiusKm = math.Sqrt(p.City.AreaKm2 / math.Pi)
	}
	fc := models.NewFeatureCollection(models.PolygonFeature(
		geo.CityPolygon(p.Coordinates, radiusKm),
		map[string]any{"name": p.Name},
	))
	return geojsonLayer("city-boundary", "fill", fc, fixedFillPaint("#3b82f6", 0.25))
}

func (b *Builder) glacierCard(p *store.Place) (*models.AgentResponse, error) {
	g := p.Glacier
	msg := fmt.Sprintf("## %s Glacier (%s)\n\n%s\n\n", p.Name, p.NativeName, p.Description)
	msg += fmt.Sprintf("- Range: **%s**\n- Area: **%.1f km²**\n- Length: **%.1f km**\n- Elevation: **%d m**\n",
		g.MountainRange, g.AreaKm2, g.LengthKm, g.ElevationM)
	msg += fmt.Sprintf("- Status: **%s** (retreating %.1f m/year)\n", string(g.Status), g.RetreatMYear)

	ring := geo.IrregularPolygon(b.Rand, p.Coordinates, g.AreaKm2, 12, 0.7)
	fc := models.NewFeatureCollection(models.PolygonFeature(ring, map[string]any{
		"name": p.Name, "color": glacierStatusColor(g.Status),
	}))

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{
			geojsonLayer("glacier-extent", "fill", fc, fillPaint("#1e3a8a")),
		},
		MapAction: flyTo(p.Coordinates, 12, 60, -30),
		Data:      map[string]any{"status": string(g.Status), "area_km2": g.AreaKm2},
	}, nil
}

func (b *Builder) riverCard(p *store.Place) (*models.AgentResponse, error) {
	rv := p.River
	msg := fmt.Sprintf("## %s River (%s)\n\n%s\n\n", p.Name, p.NativeName, p.Description)
	msg += fmt.Sprintf("- Length: **%.0f km**\n- Mean discharge: **%.0f m³/s**\n- Basin: **%s km²**\n- Mouth: **%s**\n",
		rv.LengthKm, rv.DischargeM3s, formatInt(int(rv.BasinKm2)), rv.Mouth)

	fc := models.NewFeatureCollection(models.LineFeature(rv.Path, map[string]any{
		"name": p.Name, "length_km": rv.LengthKm,
	}))

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{
			geojsonLayer("river-course", "line", fc, linePaint("#0ea5e9", 3.5)),
		},
		MapAction: fitBounds(boundsOfCoords(rv.Path)),
		Data:      map[string]any{"length_km": rv.LengthKm, "discharge_m3s": rv.DischargeM3s},
	}, nil
}

func (b *Builder) lakeCard(p *store.Place) (*models.AgentResponse, error) {
	lk := p.Lake
	water := "freshwater"
	if lk.Saline {
		water = "saline"
	}
	msg := fmt.Sprintf("## Lake %s (%s)\n\n%s\n\n", p.Name, p.NativeName, p.Description)
	msg += fmt.Sprintf("- Surface: **%s km²** (%s)\n- Max depth: **%.0f m**\n- Volume: **%.1f km³**\n",
		formatInt(int(lk.AreaKm2)), water, lk.MaxDepthM, lk.VolumeKm3)

	ring := geo.IrregularPolygon(b.Rand, p.Coordinates, lk.AreaKm2, 16, 0.8)
	fc := models.NewFeatureCollection(models.PolygonFeature(ring, map[string]any{
		"name": p.Name, "color": "#38bdf8",
	}))

	zoom := 10.0
	if lk.AreaKm2 > 1000 {
		zoom = 7
	}
	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{
			geojsonLayer("lake-extent", "fill", fc, fillPaint("#0c4a6e")),
		},
		MapAction: flyTo(p.Coordinates, zoom, 0, 0),
		Data:      map[string]any{"area_km2": lk.AreaKm2, "max_depth_m": lk.MaxDepthM},
	}, nil
}

func formatInt(v int) string {
	s := fmt.Sprintf("%d", v)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

func boundsOfPlaces(places []*store.Place) [][]float64 {
	coords := make([][]float64, 0, len(places))
	for _, p := range places {
		coords = append(coords, p.Coordinates)
	}
	return boundsOfCoords(coords)
}

func boundsOfCoords(coords [][]float64) [][]float64 {
	west, south := math.MaxFloat64, math.MaxFloat64
	east, north := -math.MaxFloat64, -math.MaxFloat64
	for _, c := range coords {
		west = math.Min(west, c[0])
		east = math.Max(east, c[0])
		south = math.Min(south, c[1])
		north = math.Max(north, c[1])
	}
	return [][]float64{{west - 0.5, south - 0.5}, {east + 0.5, north + 0.5}}
}
