package services

import "github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"

// Canonical map layers for each dataset. Recipes and the REST snapshot
// handlers share these so layer ids and paint stay identical on every path
// the frontend can receive them through.

func AirQualityLayer(fc *models.FeatureCollection) models.MapLayer {
	return geojsonLayer("air-quality-stations", "circle", fc, circlePaint("aqi", 6, 22))
}

func MethaneLayer(fc *models.FeatureCollection) models.MapLayer {
	return geojsonLayer("methane-hotspots", "fill", fc, fillPaint("#7c2d12"))
}

func CO2Layer(fc *models.FeatureCollection) models.MapLayer {
	return geojsonLayer("co2-sources", "circle", fc, circlePaint("emission_mt_year", 8, 30))
}

func FireLayer(fc *models.FeatureCollection) models.MapLayer {
	return geojsonLayer("active-fires", "circle", fc, fixedCirclePaint("#ef4444", 9))
}

func TemperatureLayer(fc *models.FeatureCollection) models.MapLayer {
	return geojsonLayer("temperature-grid", "circle", fc, fixedCirclePaintByProp())
}

func NDVILayer(fc *models.FeatureCollection) models.MapLayer {
	return geojsonLayer("ndvi-grid", "circle", fc, fixedCirclePaintByProp())
}

func WindLayer(fc *models.FeatureCollection) models.MapLayer {
	return geojsonLayer("wind-flow", "line", fc, linePaint("#94a3b8", 1.5))
}

func PollutionFlowLayer(fc *models.FeatureCollection) models.MapLayer {
	return geojsonLayer("pollution-flow", "circle", fc, fixedCirclePaintByProp())
}

func SnowLayer(fc *models.FeatureCollection) models.MapLayer {
	return geojsonLayer("snow-cover", "heatmap", fc, snowHeatmapPaint())
}

func TerrainLayer(fc *models.FeatureCollection) models.MapLayer {
	return geojsonLayer("terrain-3d", "fill-extrusion", fc, extrusionPaint())
}
