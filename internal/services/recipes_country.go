package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/store"
)

// Country-scope recipes: hydrology without a named place, city listings, and
// the national overview.

// countryAnchor centers country-scope hydrology answers when no place was
// named. Almaty sits closest to the glacier belt, matching how the map opens.
func (b *Builder) countryAnchor() *store.Place {
	p, err := b.Gazetteer.Lookup("almaty")
	if err != nil {
		// Tables are validated at startup, so this cannot happen in a
		// running service.
		panic(err)
	}
	return p
}

func (b *Builder) buildCountryHydrology(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	anchor := b.countryAnchor()
	switch {
	case r.intents.Has(IntentGlacier):
		return b.glaciersNear(ctx, anchor)
	case r.intents.Has(IntentRiver):
		return b.riversNear(ctx, anchor)
	case r.intents.Has(IntentLake):
		return b.lakesNear(ctx, anchor)
	}
	return b.hydrologyNear(ctx, anchor)
}

func (b *Builder) buildAllCities(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	_ = ctx
	_ = r
	cities := b.Gazetteer.All(store.CategoryCity)

	fc := models.NewFeatureCollection()
	msg := "## Major cities of Kazakhstan\n\n"
	for _, c := range cities {
		msg += fmt.Sprintf("- **%s** (%s) — %s people\n", c.Name, c.NativeName, formatInt(c.City.Population))
		fc.Features = append(fc.Features, models.PointFeature(c.Coordinates[0], c.Coordinates[1], map[string]any{
			"name":       c.Name,
			"population": c.City.Population,
			"capital":    c.City.IsCapital,
		}))
	}

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{
			geojsonLayer("cities", "circle", fc, fixedCirclePaint("#3b82f6", 10)),
		},
		MapAction: fitBounds(kazakhstanBounds),
	}, nil
}

func (b *Builder) buildRanking(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	_ = ctx
	_ = r
	cities := append([]*store.Place(nil), b.Gazetteer.All(store.CategoryCity)...)
	sort.SliceStable(cities, func(i, j int) bool {
		return cities[i].City.Population > cities[j].City.Population
	})

	labels := make([]string, 0, len(cities))
	data := make([]float64, 0, len(cities))
	msg := "## Cities ranked by population\n\n"
	for i, c := range cities {
		msg += fmt.Sprintf("%d. **%s** — %s\n", i+1, c.Name, formatInt(c.City.Population))
		labels = append(labels, c.Name)
		data = append(data, float64(c.City.Population))
	}

	return &models.AgentResponse{
		Message:   msg,
		MapAction: fitBounds(kazakhstanBounds),
		Chart: &models.ChartSpec{
			Type:   "bar",
			Title:  "Population ranking",
			Labels: labels,
			Datasets: []models.ChartDataset{{
				Label:           "Population",
				Data:            data,
				BackgroundColor: "#3b82f6",
			}},
		},
	}, nil
}

func (b *Builder) buildKazakhstanOverview(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	_ = ctx
	_ = r
	cities := b.Gazetteer.All(store.CategoryCity)

	fc := models.NewFeatureCollection()
	for _, c := range cities {
		fc.Features = append(fc.Features, models.PointFeature(c.Coordinates[0], c.Coordinates[1], map[string]any{
			"name": c.Name, "population": c.City.Population,
		}))
	}

	msg := "## Kazakhstan (Қазақстан)\n\n" +
		"The world's largest landlocked country: **2,724,900 km²** spanning steppe, desert, " +
		"and the Tian Shan high mountains.\n\n" +
		fmt.Sprintf("- Tracked cities: **%d**\n", len(cities)) +
		fmt.Sprintf("- Glaciers: **%d**, rivers: **%d**, lakes: **%d**\n",
			len(b.Gazetteer.All(store.CategoryGlacier)),
			len(b.Gazetteer.All(store.CategoryRiver)),
			len(b.Gazetteer.All(store.CategoryLake))) +
		"\nAsk about a city, a river, air quality, methane, or say \"dashboard\" for the environmental overview."

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{
			geojsonLayer("cities", "circle", fc, fixedCirclePaint("#3b82f6", 8)),
		},
		MapAction: fitBounds(kazakhstanBounds),
	}, nil
}

// buildHelp is the terminal fallback: a static menu of supported phrasings.
func (b *Builder) buildHelp() *models.AgentResponse {
	msg := "## What I can show you\n\n" +
		"**Places**\n" +
		"- \"Show me Almaty\" — city card and boundary\n" +
		"- \"Compare Astana vs Almaty\" — side-by-side with route\n" +
		"- \"How far is Shymkent from Astana?\" — distance\n" +
		"- \"Landmarks in Almaty\", \"Economy of Karaganda\"\n\n" +
		"**Nature**\n" +
		"- \"Glaciers near Almaty\", \"Rivers of Kazakhstan\", \"Lake Balkhash\"\n\n" +
		"**Environment**\n" +
		"- \"Air quality in Almaty\", \"Methane emissions\", \"CO2 sources\"\n" +
		"- \"Active fires\", \"Wind patterns\", \"Temperature map\", \"NDVI\"\n" +
		"- \"Environmental dashboard\" — everything at once\n"

	return &models.AgentResponse{
		Message:   msg,
		MapAction: fitBounds(kazakhstanBounds),
	}
}
