package services

import (
	"context"
	"fmt"
	"math"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/geo"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/store"
)

// Two-place recipes: comparison and distance.

func (b *Builder) buildCompare(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	_ = ctx
	a, c := r.pair[0], r.pair[1]
	dist := geo.Haversine(a.Coordinates, c.Coordinates)

	msg := fmt.Sprintf("## %s vs %s\n\n", a.Name, c.Name)
	msg += fmt.Sprintf("| | **%s** | **%s** |\n|---|---|---|\n", a.Name, c.Name)
	msg += fmt.Sprintf("| Native name | %s | %s |\n", a.NativeName, c.NativeName)

	metricLabel, va, vc := comparisonMetric(a, c)
	msg += fmt.Sprintf("| %s | %s | %s |\n", metricLabel, formatMetric(va), formatMetric(vc))
	msg += fmt.Sprintf("\nGreat-circle distance: **%.0f km**.", dist)

	fc := models.NewFeatureCollection(
		models.LineFeature(geo.BezierRoute(a.Coordinates, c.Coordinates), map[string]any{
			"from": a.Key, "to": c.Key, "distance_km": math.Round(dist),
		}),
		models.PointFeature(a.Coordinates[0], a.Coordinates[1], map[string]any{"name": a.Name, "color": "#3b82f6"}),
		models.PointFeature(c.Coordinates[0], c.Coordinates[1], map[string]any{"name": c.Name, "color": "#ef4444"}),
	)

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{
			geojsonLayer("compare-route", "line", fc, linePaint("#3b82f6", 3)),
		},
		MapAction: fitBounds(pairBounds(a, c)),
		Chart: &models.ChartSpec{
			Type:   "bar",
			Title:  fmt.Sprintf("%s: %s vs %s", metricLabel, a.Name, c.Name),
			Labels: []string{a.Name, c.Name},
			Datasets: []models.ChartDataset{{
				Label:           metricLabel,
				Data:            []float64{va, vc},
				BackgroundColor: []string{"#3b82f6", "#ef4444"},
			}},
		},
		Data: map[string]any{"distance_km": math.Round(dist*10) / 10},
	}, nil
}

func (b *Builder) buildDistance(ctx context.Context, r *buildRequest) (*models.AgentResponse, error) {
	_ = ctx
	a, c := r.pair[0], r.pair[1]
	dist := geo.Haversine(a.Coordinates, c.Coordinates)

	msg := fmt.Sprintf("**%s → %s**\n\nGreat-circle distance: **%.0f km**.\n\n", a.Name, c.Name, dist)
	msg += fmt.Sprintf("Roughly %.1f hours by car or %.0f minutes by plane.", dist/80, dist/750*60)

	fc := models.NewFeatureCollection(
		models.LineFeature(geo.BezierRoute(a.Coordinates, c.Coordinates), map[string]any{
			"distance_km": math.Round(dist),
		}),
		models.PointFeature(a.Coordinates[0], a.Coordinates[1], map[string]any{"name": a.Name, "color": "#22c55e"}),
		models.PointFeature(c.Coordinates[0], c.Coordinates[1], map[string]any{"name": c.Name, "color": "#22c55e"}),
	)

	return &models.AgentResponse{
		Message: msg,
		MapLayers: []models.MapLayer{
			geojsonLayer("distance-route", "line", fc, dashedLinePaint("#22c55e", 2.5)),
		},
		MapAction: fitBounds(pairBounds(a, c)),
		Data:      map[string]any{"distance_km": math.Round(dist*10) / 10},
	}, nil
}

// comparisonMetric picks the chart metric both places share: population for
// two cities, area otherwise.
func comparisonMetric(a, c *store.Place) (label string, va, vc float64) {
	if a.City != nil && c.City != nil {
		return "Population", float64(a.City.Population), float64(c.City.Population)
	}
	return "Area (km²)", placeArea(a), placeArea(c)
}

func placeArea(p *store.Place) float64 {
	switch {
	case p.City != nil:
		return p.City.AreaKm2
	case p.Glacier != nil:
		return p.Glacier.AreaKm2
	case p.Lake != nil:
		return p.Lake.AreaKm2
	case p.River != nil:
		return p.River.BasinKm2
	}
	return 0
}

func formatMetric(v float64) string {
	if v >= 10000 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}

func pairBounds(a, c *store.Place) [][]float64 {
	west := math.Min(a.Coordinates[0], c.Coordinates[0]) - 1
	east := math.Max(a.Coordinates[0], c.Coordinates[0]) + 1
	south := math.Min(a.Coordinates[1], c.Coordinates[1]) - 1
	north := math.Max(a.Coordinates[1], c.Coordinates[1]) + 1
	return [][]float64{{west, south}, {east, north}}
}
