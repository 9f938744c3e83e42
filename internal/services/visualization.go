package services

import (
	"math"
	"math/rand"

	"github.com/jonboulle/clockwork"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/geo"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
)

const (
	windSimSource      = "ECMWF ERA5 Wind Data Simulation"
	pollutionSimSource = "Gaussian Plume Model Simulation"
	terrainSimSource   = "SRTM DEM Simulation"
	ndviSimSource      = "Sentinel-2 NDVI Simulation"
	lstSimSource       = "MODIS Land Surface Temperature Simulation"
	snowSimSource      = "MODIS Snow Cover Simulation"

	// Prevailing westerlies over the Kazakh steppe.
	baseWindDirectionDeg = 270
)

// Visualization derives wind, dispersion, terrain, and satellite-grid layers
// from the same simulated physics the providers use.
type Visualization struct {
	Clock clockwork.Clock
	Rand  *rand.Rand
}

// WindFlow samples a vector field over the country grid: westerly base flow
// with Gaussian direction spread.
func (v *Visualization) WindFlow() models.WindData {
	fc := models.NewFeatureCollection()
	var vectors []models.WindVector
	speedSum := 0.0

	for lat := 41.0; lat <= 55.0; lat += 2.0 {
		for lng := 48.0; lng <= 86.0; lng += 3.0 {
			dir := math.Mod(baseWindDirectionDeg+v.Rand.NormFloat64()*30+360, 360)
			speed := math.Abs(5 + v.Rand.NormFloat64()*3)
			if speed < 0.5 {
				speed = 0.5
			}
			speed = round1(speed)
			speedSum += speed

			vectors = append(vectors, models.WindVector{
				Coordinates:  []float64{lng, lat},
				DirectionDeg: round1(dir),
				SpeedMS:      speed,
			})

			// Arrow rendered as a short line in the flow direction, length
			// scaled by speed.
			rad := dir * math.Pi / 180
			length := 0.15 + speed*0.04
			fc.Features = append(fc.Features, models.LineFeature([][]float64{
				{lng, lat},
				{lng + length*math.Sin(rad), lat + length*math.Cos(rad)},
			}, map[string]any{
				"speed_ms":      speed,
				"direction_deg": round1(dir),
			}))
		}
	}

	return models.WindData{
		Vectors:           vectors,
		AvgSpeedMS:        round1(speedSum / float64(len(vectors))),
		DominantDirection: "W",
		GeoJSON:           fc,
		Metadata: models.DataMetadata{
			Source:    windSimSource,
			Timestamp: timestamp(v.Clock.Now()),
		},
	}
}

// PollutionFlow scatters plume clouds downwind of each registered CO2 source.
func (v *Visualization) PollutionFlow() models.PollutionFlowData {
	fc := models.NewFeatureCollection()

	for _, s := range co2SourceTable {
		areaKm2 := 40 + s.emissionMtYear*15
		for _, pt := range geo.PlumePoints(v.Rand, s.coordinates, s.emissionMtYear*20, areaKm2) {
			fc.Features = append(fc.Features, models.PointFeature(pt.Lng, pt.Lat, map[string]any{
				"source":        s.id,
				"concentration": pt.Concentration,
				"height_m":      pt.HeightM,
				"color":         CO2Color(s.emissionMtYear),
			}))
		}
	}

	return models.PollutionFlowData{
		SourceCount: len(co2SourceTable),
		GeoJSON:     fc,
		Metadata: models.DataMetadata{
			Source:    pollutionSimSource,
			Timestamp: timestamp(v.Clock.Now()),
		},
	}
}

// Terrain3D builds a fill-extrusion grid around center. Elevation is
// estimated from proximity to the Tian Shan ranges in the southeast.
func (v *Visualization) Terrain3D(center []float64, spanDeg float64) models.TerrainData {
	fc := models.NewFeatureCollection()
	var cells []models.TerrainCell
	maxElev := 0

	// Integer indices: accumulating the float step drifts and can admit an
	// extra row or column.
	const gridSize = 10
	step := spanDeg / gridSize
	west := center[0] - spanDeg/2
	south := center[1] - spanDeg/2
	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			lat := south + float64(i)*step
			lng := west + float64(j)*step
			elev := estimateElevation(lng, lat) + v.Rand.Intn(120)
			if elev > maxElev {
				maxElev = elev
			}
			ring := [][]float64{
				{lng, lat},
				{lng + step, lat},
				{lng + step, lat + step},
				{lng, lat + step},
				{lng, lat},
			}
			color := elevationColor(elev)
			cells = append(cells, models.TerrainCell{Ring: ring, ElevationM: elev, Color: color})
			fc.Features = append(fc.Features, models.PolygonFeature(ring, map[string]any{
				"height": elev * 15, // exaggeration so relief reads at country zoom
				"color":  color,
			}))
		}
	}

	return models.TerrainData{
		Cells:         cells,
		MaxElevationM: maxElev,
		GeoJSON:       fc,
		Metadata: models.DataMetadata{
			Source:    terrainSimSource,
			Timestamp: timestamp(v.Clock.Now()),
		},
	}
}

// estimateElevation is a crude DEM stand-in: high in the southeast mountains,
// near sea level on the Caspian shore.
func estimateElevation(lng, lat float64) int {
	mountainDist := math.Hypot(lng-78.5, lat-42.8)
	elev := 3800 - mountainDist*420
	if elev < 0 {
		elev = 0
	}

	caspianDist := math.Hypot(lng-51.0, lat-45.0)
	if caspianDist < 4 {
		elev -= (4 - caspianDist) * 60
	}
	base := 150 + (lat-41)*12
	if elev < base {
		elev = base
	}
	return int(elev)
}

func elevationColor(elev int) string {
	switch {
	case elev < 200:
		return "#276419"
	case elev < 600:
		return "#7fbc41"
	case elev < 1200:
		return "#e6f5d0"
	case elev < 2200:
		return "#c6a15b"
	case elev < 3200:
		return "#8c6239"
	default:
		return "#f7f7f7"
	}
}

// NDVIGrid estimates vegetation over the country: greener in the north grain
// belt and the mountain foothills, bare across the central desert.
func (v *Visualization) NDVIGrid() models.NDVIData {
	fc := models.NewFeatureCollection()
	var cells []models.NDVICell
	sum := 0.0

	for lat := 41.0; lat <= 55.0; lat += 1.0 {
		for lng := 47.0; lng <= 86.0; lng += 1.5 {
			ndvi := estimateNDVI(lng, lat) + randBetween(v.Rand, -0.05, 0.05)
			ndvi = math.Max(0, math.Min(0.9, ndvi))
			ndvi = round2(ndvi)
			sum += ndvi

			cell := models.NDVICell{
				Coordinates: []float64{lng, lat},
				NDVI:        ndvi,
				Color:       NDVIColor(ndvi),
				LandCover:   landCoverFor(ndvi),
			}
			cells = append(cells, cell)
			fc.Features = append(fc.Features, models.PointFeature(lng, lat, map[string]any{
				"ndvi":       ndvi,
				"color":      cell.Color,
				"land_cover": cell.LandCover,
			}))
		}
	}

	return models.NDVIData{
		Cells:   cells,
		AvgNDVI: round2(sum / float64(len(cells))),
		GeoJSON: fc,
		Metadata: models.DataMetadata{
			Source:    ndviSimSource,
			Timestamp: timestamp(v.Clock.Now()),
		},
	}
}

func estimateNDVI(lng, lat float64) float64 {
	// Northern grain belt.
	ndvi := 0.15 + (lat-41)/14*0.35
	// Desert core around the Aral basin.
	if d := math.Hypot(lng-60.0, lat-45.0); d < 7 {
		ndvi -= (7 - d) * 0.04
	}
	// Irrigated and forested southeast foothills.
	if d := math.Hypot(lng-78.0, lat-43.3); d < 4 {
		ndvi += (4 - d) * 0.08
	}
	return ndvi
}

func landCoverFor(ndvi float64) string {
	switch {
	case ndvi < 0.1:
		return "bare_soil"
	case ndvi < 0.25:
		return "sparse_steppe"
	case ndvi < 0.4:
		return "grassland"
	case ndvi < 0.55:
		return "cropland"
	default:
		return "dense_vegetation"
	}
}

// snowRegion bounds are [[swLng, swLat], [neLng, neLat]]; coverage is the
// probability a grid cell inside them carries snow.
type snowRegion struct {
	name     string
	bounds   [][]float64
	coverage float64
}

// SnowCover samples a MODIS-style snow product. Coverage collapses to the
// Tian Shan glaciers in summer and blankets the north all winter.
func (v *Visualization) SnowCover() models.SnowData {
	month := int(v.Clock.Now().Month())
	winter := month >= 11 || month <= 3
	transition := month == 4 || month == 10

	var regions []snowRegion
	season := "summer"
	switch {
	case winter:
		season = "winter"
		regions = []snowRegion{
			{"Northern Kazakhstan", [][]float64{{50, 48}, {90, 56}}, 0.9},
			{"Tian Shan", [][]float64{{76, 42}, {81, 45}}, 1.0},
			{"Central Kazakhstan", [][]float64{{50, 42}, {75, 48}}, 0.6},
		}
	case transition:
		season = "transition"
		regions = []snowRegion{
			{"Northern Kazakhstan", [][]float64{{50, 52}, {90, 56}}, 0.5},
			{"Tian Shan", [][]float64{{76, 42}, {81, 45}}, 0.8},
		}
	default:
		regions = []snowRegion{
			{"Tian Shan Glaciers", [][]float64{{76, 42}, {81, 44}}, 0.4},
		}
	}

	fc := models.NewFeatureCollection()
	var points []models.SnowPoint

	for _, region := range regions {
		for lat := region.bounds[0][1]; lat < region.bounds[1][1]; lat++ {
			for lng := region.bounds[0][0]; lng < region.bounds[1][0]; lng += 2 {
				if v.Rand.Float64() >= region.coverage {
					continue
				}
				depth := v.Rand.Intn(31)
				if winter {
					depth = 10 + v.Rand.Intn(71)
				}
				// Deeper pack on the mountain flanks.
				if math.Hypot(lng-77, lat-43) < 3 {
					depth += 50
				}
				albedo := math.Min(0.95, 0.6+float64(depth)/200)

				pt := models.SnowPoint{
					Coordinates: []float64{lng + 0.5, lat + 0.5},
					DepthCm:     depth,
					Albedo:      round2(albedo),
					Region:      region.name,
				}
				points = append(points, pt)
				fc.Features = append(fc.Features, models.PointFeature(pt.Coordinates[0], pt.Coordinates[1], map[string]any{
					"snow_cover": true,
					"depth_cm":   depth,
					"albedo":     pt.Albedo,
					"region":     region.name,
					"weight":     math.Min(1, float64(depth)/80),
				}))
			}
		}
	}

	return models.SnowData{
		Points:  points,
		Season:  season,
		GeoJSON: fc,
		Metadata: models.DataMetadata{
			Source:    snowSimSource,
			Timestamp: timestamp(v.Clock.Now()),
			Extra:     map[string]any{"product": "MOD10A2"},
		},
	}
}

// LSTGrid derives land surface temperature from the air-temperature zones
// plus a surface heating offset.
func (v *Visualization) LSTGrid() models.LSTData {
	fc := models.NewFeatureCollection()
	var cells []models.LSTCell
	sum := 0.0

	month := int(v.Clock.Now().Month())
	seasonFactor := (1 - math.Cos(2*math.Pi*float64(month-1)/12)) / 2

	for lat := 41.0; lat <= 55.0; lat += 1.5 {
		for lng := 47.0; lng <= 86.0; lng += 2.5 {
			_, _, winter, summer := zoneFor(lng, lat)
			air := winter + (summer-winter)*seasonFactor
			// Bare surfaces run hotter than the air in summer.
			surface := round1(air + 4*seasonFactor + randBetween(v.Rand, -2, 2))
			sum += surface

			cells = append(cells, models.LSTCell{
				Coordinates: []float64{lng, lat},
				TempC:       surface,
				Color:       TemperatureColor(surface),
			})
			fc.Features = append(fc.Features, models.PointFeature(lng, lat, map[string]any{
				"temp_c": surface,
				"color":  TemperatureColor(surface),
			}))
		}
	}

	return models.LSTData{
		Cells:    cells,
		AvgTempC: round1(sum / float64(len(cells))),
		GeoJSON:  fc,
		Metadata: models.DataMetadata{
			Source:    lstSimSource,
			Timestamp: timestamp(v.Clock.Now()),
		},
	}
}
