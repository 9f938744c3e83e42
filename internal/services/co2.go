package services

import (
	"context"
	"log/slog"
	"math/rand"

	"github.com/jonboulle/clockwork"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/observability"
)

const co2SimSource = "Kazakhstan Industrial Emission Inventory"

var co2SourceTable = []struct {
	id, name, facilityType, fuelType string
	emissionMtYear, capacityMW       float64
	coordinates                      []float64
}{
	{"ekibastuz_power", "Ekibastuz GRES-1 and GRES-2", "power_plant", "coal", 45.2, 8000, []float64{75.35, 51.67}},
	{"astana_chp", "Astana CHP Complex", "power_plant", "coal", 12.8, 1200, []float64{71.42, 51.18}},
	{"karaganda_steel", "ArcelorMittal Temirtau", "steel_mill", "coal", 18.5, 0, []float64{72.96, 50.05}},
	{"pavlodar_refinery", "Pavlodar Refinery", "refinery", "oil", 5.2, 0, []float64{77.00, 52.30}},
	{"atyrau_refinery", "Atyrau Refinery", "refinery", "oil", 4.8, 0, []float64{51.88, 46.85}},
	{"zhambyl_cement", "Zhambyl Cement Plant", "cement", "coal", 2.3, 0, []float64{71.40, 42.90}},
}

// CO2Provider serves the industrial emission inventory. The inventory is
// static; only the hourly load factor moves with the clock.
type CO2Provider struct {
	Clock   clockwork.Clock
	Rand    *rand.Rand
	Logger  *slog.Logger
	Metrics *observability.Metrics
}

func (p *CO2Provider) Fetch(ctx context.Context) Result[models.CO2Data] {
	_ = ctx
	p.Metrics.ObserveFetch("co2", false)

	// Power demand peaks in the evening; scale plant output accordingly.
	hour := p.Clock.Now().Hour()
	loadFactor := 0.75
	if hour >= 18 && hour <= 22 {
		loadFactor = 1.0
	} else if hour >= 1 && hour <= 5 {
		loadFactor = 0.55
	}

	fc := models.NewFeatureCollection()
	sources := make([]models.CO2Source, 0, len(co2SourceTable))
	bySector := map[string]float64{}
	total := 0.0

	for _, s := range co2SourceTable {
		color := CO2Color(s.emissionMtYear)
		sources = append(sources, models.CO2Source{
			ID:             s.id,
			Name:           s.name,
			FacilityType:   s.facilityType,
			EmissionMtYear: s.emissionMtYear,
			FuelType:       s.fuelType,
			CapacityMW:     s.capacityMW,
			Color:          color,
			Coordinates:    s.coordinates,
		})
		bySector[s.facilityType] += s.emissionMtYear
		total += s.emissionMtYear

		props := map[string]any{
			"id":               s.id,
			"name":             s.name,
			"facility_type":    s.facilityType,
			"emission_mt_year": s.emissionMtYear,
			"fuel_type":        s.fuelType,
			"color":            color,
		}
		if s.capacityMW > 0 {
			props["capacity_mw"] = s.capacityMW
			props["current_output_mw"] = round1(s.capacityMW * loadFactor * randBetween(p.Rand, 0.95, 1.05))
		}
		fc.Features = append(fc.Features, models.PointFeature(s.coordinates[0], s.coordinates[1], props))
	}

	return fallbackResult(models.CO2Data{
		Sources:         sources,
		BySector:        bySector,
		TotalEmissionMt: round2(total),
		GeoJSON:         fc,
		Metadata: models.DataMetadata{
			Source:    co2SimSource,
			Timestamp: timestamp(p.Clock.Now()),
			Extra:     map[string]any{"load_factor": loadFactor},
		},
	})
}
