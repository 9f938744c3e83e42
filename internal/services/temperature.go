package services

import (
	"context"
	"log/slog"
	"math"
	"math/rand"

	"github.com/jonboulle/clockwork"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/observability"
)

const temperatureSimSource = "Kazakhstan Meteorological Service + ERA5 Reanalysis"

var climateZones = []struct {
	name, climateType    string
	lng, lat             float64
	winterAvg, summerAvg float64
}{
	{"northern_steppes", "continental_steppe", 69.0, 53.0, -18, 22},
	{"central_desert", "arid_desert", 68.5, 45.5, -10, 30},
	{"caspian_coast", "semi_arid_coastal", 51.5, 45.0, -5, 28},
	{"tian_shan_mountains", "alpine", 78.5, 42.8, -12, 18},
	{"almaty_foothills", "foothill_continental", 77.0, 43.4, -6, 25},
}

const (
	defaultZoneName      = "kazakh_uplands"
	defaultClimateType   = "continental"
	defaultZoneWinterAvg = -12.0
	defaultZoneSummerAvg = 26.0
)

// TemperatureProvider produces an ERA5-styled temperature grid over
// Kazakhstan. Entirely simulated: seasonal baselines per climate zone plus
// noise, keyed off the injected clock.
type TemperatureProvider struct {
	Clock   clockwork.Clock
	Rand    *rand.Rand
	Logger  *slog.Logger
	Metrics *observability.Metrics
}

func (p *TemperatureProvider) Fetch(ctx context.Context) Result[models.TemperatureData] {
	_ = ctx
	p.Metrics.ObserveFetch("temperature", false)

	now := p.Clock.Now()
	month := int(now.Month())
	// 0 at the January trough, 1 at the July peak.
	seasonFactor := (1 - math.Cos(2*math.Pi*float64(month-1)/12)) / 2

	var points []models.TemperaturePoint
	minT, maxT, sum := math.MaxFloat64, -math.MaxFloat64, 0.0

	for lat := 41.0; lat <= 55.5; lat += 1.5 {
		for lng := 47.0; lng <= 86.0; lng += 2.5 {
			zone, climateType, winter, summer := zoneFor(lng, lat)
			t := round1(winter + (summer-winter)*seasonFactor + randBetween(p.Rand, -3, 3))

			points = append(points, models.TemperaturePoint{
				Temperature: t,
				ClimateZone: zone,
				ClimateType: climateType,
				Color:       TemperatureColor(t),
				Coordinates: []float64{lng, lat},
			})
			minT = math.Min(minT, t)
			maxT = math.Max(maxT, t)
			sum += t
		}
	}

	// Heatmap weight normalized over the observed range.
	span := maxT - minT
	fc := models.NewFeatureCollection()
	for i := range points {
		w := 0.5
		if span > 0 {
			w = round2((points[i].Temperature - minT) / span)
		}
		points[i].Weight = w
		fc.Features = append(fc.Features, models.PointFeature(points[i].Coordinates[0], points[i].Coordinates[1], map[string]any{
			"temperature":  points[i].Temperature,
			"climate_zone": points[i].ClimateZone,
			"color":        points[i].Color,
			"weight":       w,
		}))
	}

	return fallbackResult(models.TemperatureData{
		Points:  points,
		MinTemp: minT,
		MaxTemp: maxT,
		AvgTemp: round1(sum / float64(len(points))),
		Season:  seasonName(month),
		GeoJSON: fc,
		Metadata: models.DataMetadata{
			Source:    temperatureSimSource,
			Timestamp: timestamp(now),
			Extra:     map[string]any{"grid_points": len(points)},
		},
	})
}

// zoneFor assigns a grid cell to the nearest climate zone center, or the
// continental default when nothing is within reach.
func zoneFor(lng, lat float64) (name, climateType string, winterAvg, summerAvg float64) {
	bestDist := math.MaxFloat64
	name, climateType = defaultZoneName, defaultClimateType
	winterAvg, summerAvg = defaultZoneWinterAvg, defaultZoneSummerAvg

	for _, z := range climateZones {
		d := math.Hypot(lng-z.lng, lat-z.lat)
		if d < bestDist && d <= 8 {
			bestDist = d
			name, climateType = z.name, z.climateType
			winterAvg, summerAvg = z.winterAvg, z.summerAvg
		}
	}
	return name, climateType, winterAvg, summerAvg
}

func seasonName(month int) string {
	switch {
	case month == 12 || month <= 2:
		return "winter"
	case month <= 5:
		return "spring"
	case month <= 8:
		return "summer"
	default:
		return "autumn"
	}
}
