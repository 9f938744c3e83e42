package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/store"
)

// Builder turns (intents, place, query) into an AgentResponse by walking an
// explicitly ordered rule table and applying the first matching recipe. The
// ordering IS the business logic: moving a rule changes which answer wins when
// a query carries several intents.
type Builder struct {
	Gazetteer   *store.Gazetteer
	AirQuality  AirQualitySource
	Methane     MethaneSource
	CO2         CO2Source
	Fire        FireSource
	Temperature TemperatureSource
	Viz         *Visualization
	Rand        *rand.Rand
	Logger      *slog.Logger

	rules []rule
}

type rule struct {
	name  string
	match func(*buildRequest) bool
	build func(context.Context, *buildRequest) (*models.AgentResponse, error)
}

type buildRequest struct {
	query   string
	lower   string
	intents IntentSet
	place   *store.Place
	pair    []*store.Place
}

func NewBuilder(
	gazetteer *store.Gazetteer,
	airQuality AirQualitySource,
	methane MethaneSource,
	co2 CO2Source,
	fire FireSource,
	temperature TemperatureSource,
	viz *Visualization,
	rng *rand.Rand,
	logger *slog.Logger,
) *Builder {
	b := &Builder{
		Gazetteer:   gazetteer,
		AirQuality:  airQuality,
		Methane:     methane,
		CO2:         co2,
		Fire:        fire,
		Temperature: temperature,
		Viz:         viz,
		Rand:        rng,
		Logger:      logger,
	}

	b.rules = []rule{
		{"compare", b.matchCompare, b.buildCompare},
		{"distance", b.matchDistance, b.buildDistance},
		{"place", func(r *buildRequest) bool { return r.place != nil }, b.buildForPlace},
		{"hydrology_country", b.matchCountryHydrology, b.buildCountryHydrology},
		{"all_cities", intentRule(IntentAllCities), b.buildAllCities},
		{"ranking", intentRule(IntentRanking), b.buildRanking},
		{"kazakhstan", func(r *buildRequest) bool { return strings.Contains(r.lower, "kazakhstan") }, b.buildKazakhstanOverview},
		{"methane", intentRule(IntentMethane), b.buildMethane},
		{"co2", intentRule(IntentCO2), b.buildCO2},
		{"fire", intentRule(IntentFire), b.buildFire},
		{"wind", intentRule(IntentWind), b.buildWind},
		{"air_quality_country", intentRule(IntentAirQuality), b.buildCountryAirQuality},
		{"temperature_country", intentRule(IntentTemperature), b.buildCountryTemperature},
		{"ndvi_country", intentRule(IntentNDVI), b.buildCountryNDVI},
		{"terrain_country", intentRule(IntentTerrain), b.buildCountryTerrain},
		{"dashboard", intentRule(IntentDashboard), b.buildDashboard},
	}
	return b
}

func intentRule(i Intent) func(*buildRequest) bool {
	return func(r *buildRequest) bool { return r.intents.Has(i) }
}

// Build returns the response and the name of the recipe that produced it.
func (b *Builder) Build(ctx context.Context, intents IntentSet, place *store.Place, query string) (*models.AgentResponse, string, error) {
	req := &buildRequest{
		query:   query,
		lower:   strings.ToLower(query),
		intents: intents,
		place:   place,
		pair:    b.Gazetteer.FindTwoInQuery(query),
	}

	for _, rl := range b.rules {
		if !rl.match(req) {
			continue
		}
		resp, err := rl.build(ctx, req)
		if err != nil {
			return nil, rl.name, fmt.Errorf("recipe %s: %w", rl.name, err)
		}
		if resp != nil {
			resp.Status = models.StatusSuccess
			return resp, rl.name, nil
		}
		// A nil response means the recipe declined after a closer look
		// (e.g. compare with only one resolvable place); keep scanning.
	}

	resp := b.buildHelp()
	resp.Status = models.StatusSuccess
	return resp, "help", nil
}

func (b *Builder) matchCompare(r *buildRequest) bool {
	if !r.intents.Has(IntentCompare) &&
		!strings.Contains(r.lower, " vs ") && !strings.Contains(r.lower, " versus ") {
		return false
	}
	return len(r.pair) >= 2
}

func (b *Builder) matchDistance(r *buildRequest) bool {
	if !r.intents.Has(IntentDistance) && !strings.Contains(r.lower, "how far") {
		return false
	}
	return len(r.pair) >= 2
}

func (b *Builder) matchCountryHydrology(r *buildRequest) bool {
	return r.intents.Has(IntentGlacier) || r.intents.Has(IntentRiver) ||
		r.intents.Has(IntentLake) || r.intents.Has(IntentHydrology)
}

// Camera and layer helpers shared by recipes.

func flyTo(center []float64, zoom, pitch, bearing float64) *models.MapAction {
	return &models.MapAction{Type: "fly_to", Center: center, Zoom: zoom, Pitch: pitch, Bearing: bearing}
}

func fitBounds(bounds [][]float64) *models.MapAction {
	return &models.MapAction{Type: "fit_bounds", Bounds: bounds}
}

// kazakhstanBounds is the country-wide camera frame: [[west,south],[east,north]].
var kazakhstanBounds = [][]float64{{46.5, 40.5}, {87.3, 55.4}}

func geojsonLayer(id, renderType string, fc *models.FeatureCollection, paint map[string]any) models.MapLayer {
	return models.MapLayer{
		ID:     id,
		Type:   renderType,
		Source: models.LayerSource{Type: "geojson", Data: fc},
		Paint:  paint,
	}
}
