package models

// Derived visualization datasets: wind field, dispersion, satellite grids,
// and 3D terrain. Same shape discipline as the provider datasets: rows plus a
// GeoJSON rendering plus Metadata.

type WindVector struct {
	Coordinates  []float64 `json:"coordinates"`
	DirectionDeg float64   `json:"direction_deg"`
	SpeedMS      float64   `json:"speed_ms"`
}

type WindData struct {
	Vectors           []WindVector       `json:"vectors"`
	AvgSpeedMS        float64            `json:"avg_speed_ms"`
	DominantDirection string             `json:"dominant_direction"`
	GeoJSON           *FeatureCollection `json:"geojson"`
	Metadata          DataMetadata       `json:"metadata"`
}

type PollutionFlowData struct {
	SourceCount int                `json:"source_count"`
	GeoJSON     *FeatureCollection `json:"geojson"`
	Metadata    DataMetadata       `json:"metadata"`
}

type NDVICell struct {
	Coordinates []float64 `json:"coordinates"`
	NDVI        float64   `json:"ndvi"`
	Color       string    `json:"color"`
	LandCover   string    `json:"land_cover"`
}

type NDVIData struct {
	Cells    []NDVICell         `json:"cells"`
	AvgNDVI  float64            `json:"avg_ndvi"`
	GeoJSON  *FeatureCollection `json:"geojson"`
	Metadata DataMetadata       `json:"metadata"`
}

type LSTCell struct {
	Coordinates []float64 `json:"coordinates"`
	TempC       float64   `json:"temp_c"`
	Color       string    `json:"color"`
}

type LSTData struct {
	Cells    []LSTCell          `json:"cells"`
	AvgTempC float64            `json:"avg_temp_c"`
	GeoJSON  *FeatureCollection `json:"geojson"`
	Metadata DataMetadata       `json:"metadata"`
}

type SnowPoint struct {
	Coordinates []float64 `json:"coordinates"`
	DepthCm     int       `json:"depth_cm"`
	Albedo      float64   `json:"albedo"`
	Region      string    `json:"region"`
}

type SnowData struct {
	Points   []SnowPoint        `json:"points"`
	Season   string             `json:"season"`
	GeoJSON  *FeatureCollection `json:"geojson"`
	Metadata DataMetadata       `json:"metadata"`
}

type TerrainCell struct {
	Ring       [][]float64 `json:"ring"`
	ElevationM int         `json:"elevation_m"`
	Color      string      `json:"color"`
}

type TerrainData struct {
	Cells         []TerrainCell      `json:"cells"`
	MaxElevationM int                `json:"max_elevation_m"`
	GeoJSON       *FeatureCollection `json:"geojson"`
	Metadata      DataMetadata       `json:"metadata"`
}
