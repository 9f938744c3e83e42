package models

// Provider dataset types. Each dataset carries its rows, a GeoJSON rendering,
// and Metadata whose Source string identifies live vs sample data in
// human-readable form (the wire contract the frontend already understands).

type DataMetadata struct {
	Source    string         `json:"source"`
	Timestamp string         `json:"timestamp"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// AirQualityStation is one monitoring station reading.
type AirQualityStation struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	City               string             `json:"city"`
	StationType        string             `json:"station_type"`
	Elevation          int                `json:"elevation"`
	AQI                int                `json:"aqi"`
	Category           string             `json:"category"`
	Color              string             `json:"color"`
	HealthImplications string             `json:"health_implications"`
	Pollutants         map[string]float64 `json:"pollutants"`
	DominantPollutant  string             `json:"dominant_pollutant"`
	Coordinates        []float64          `json:"coordinates"`
}

type AirQualityData struct {
	Stations []AirQualityStation `json:"stations"`
	AvgAQI   int                 `json:"avg_aqi"`
	GeoJSON  *FeatureCollection  `json:"geojson"`
	Metadata DataMetadata        `json:"metadata"`
}

// MethaneHotspot is one emission source detected by Sentinel-5P style data.
type MethaneHotspot struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	SourceType       string    `json:"source_type"` // oil_gas | coal | waste
	EmissionKtYear   float64   `json:"emission_rate_kt_year"`
	EmissionSource   string    `json:"emission_source"`
	AreaKm2          float64   `json:"area_km2"`
	DetectedPlumes   int       `json:"detected_plumes"`
	Trend            string    `json:"trend"` // increasing | stable | decreasing
	ConcentrationPPB float64   `json:"concentration_ppb"`
	Coordinates      []float64 `json:"coordinates"`
}

type MethaneData struct {
	Hotspots        []MethaneHotspot   `json:"hotspots"`
	TotalEmissionMt float64            `json:"total_emissions_mt"`
	GeoJSON         *FeatureCollection `json:"geojson"`
	Metadata        DataMetadata       `json:"metadata"`
}

// CO2Source is one industrial emission source.
type CO2Source struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	FacilityType   string    `json:"facility_type"`
	EmissionMtYear float64   `json:"emission_mt_year"`
	FuelType       string    `json:"fuel_type"`
	CapacityMW     float64   `json:"capacity_mw,omitempty"`
	Color          string    `json:"color"`
	Coordinates    []float64 `json:"coordinates"`
}

type CO2Data struct {
	Sources         []CO2Source        `json:"sources"`
	BySector        map[string]float64 `json:"by_sector"`
	TotalEmissionMt float64            `json:"total_emissions_mt"`
	GeoJSON         *FeatureCollection `json:"geojson"`
	Metadata        DataMetadata       `json:"metadata"`
}

// FireDetection is one active fire observation.
type FireDetection struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Coordinates []float64 `json:"coordinates"`
	Brightness  float64   `json:"brightness"`
	Confidence  int       `json:"confidence"`
	FRP         float64   `json:"frp"`
	Satellite   string    `json:"satellite"`
	AcqDate     string    `json:"acq_date"`
	AcqTime     string    `json:"acq_time"`
}

type FireData struct {
	Fires          []FireDetection    `json:"fires"`
	HighConfidence int                `json:"high_confidence"`
	AvgFRP         float64            `json:"avg_frp"`
	GeoJSON        *FeatureCollection `json:"geojson"`
	Metadata       DataMetadata       `json:"metadata"`
}

// TemperaturePoint is one cell of the simulated ERA5-style temperature grid.
type TemperaturePoint struct {
	Temperature float64   `json:"temperature"`
	ClimateZone string    `json:"climate_zone"`
	ClimateType string    `json:"climate_type"`
	Color       string    `json:"color"`
	Weight      float64   `json:"weight"`
	Coordinates []float64 `json:"coordinates"`
}

type TemperatureData struct {
	Points   []TemperaturePoint `json:"points"`
	MinTemp  float64            `json:"min_temp"`
	MaxTemp  float64            `json:"max_temp"`
	AvgTemp  float64            `json:"avg_temp"`
	Season   string             `json:"season"`
	GeoJSON  *FeatureCollection `json:"geojson"`
	Metadata DataMetadata       `json:"metadata"`
}
