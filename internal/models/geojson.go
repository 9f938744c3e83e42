package models

// Minimal GeoJSON types for inline layer sources. Only the geometry kinds the
// builder emits are supported: Point, LineString, Polygon.

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

// Geometry holds exactly one of the coordinate shapes depending on Type.
type Geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

func NewFeatureCollection(features ...Feature) *FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return &FeatureCollection{Type: "FeatureCollection", Features: features}
}

func PointFeature(lng, lat float64, props map[string]any) Feature {
	return Feature{
		Type:       "Feature",
		Properties: props,
		Geometry:   Geometry{Type: "Point", Coordinates: []float64{lng, lat}},
	}
}

func LineFeature(coords [][]float64, props map[string]any) Feature {
	return Feature{
		Type:       "Feature",
		Properties: props,
		Geometry:   Geometry{Type: "LineString", Coordinates: coords},
	}
}

func PolygonFeature(ring [][]float64, props map[string]any) Feature {
	return Feature{
		Type:       "Feature",
		Properties: props,
		Geometry:   Geometry{Type: "Polygon", Coordinates: [][][]float64{ring}},
	}
}
