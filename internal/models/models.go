package models

// ChatRequest is the body of POST /api/chat and of WebSocket query frames.
type ChatRequest struct {
	Query     string             `json:"query"`
	Context   map[string]any     `json:"context,omitempty"`
	MapBounds map[string]float64 `json:"map_bounds,omitempty"`
}

// AgentResponse is the unit returned for every query. Message and Status are
// always set; the remaining fields are independently optional.
type AgentResponse struct {
	Message   string         `json:"message"`
	MapLayers []MapLayer     `json:"map_layers,omitempty"`
	MapAction *MapAction     `json:"map_action,omitempty"`
	Chart     *ChartSpec     `json:"chart,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Status    string         `json:"status"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// MapLayer describes one renderable overlay. Paint is a style expression tree
// passed through to the map renderer verbatim; the backend never inspects it.
type MapLayer struct {
	ID     string         `json:"id"`
	Type   string         `json:"type"` // circle | fill | fill-extrusion | line | heatmap
	Source LayerSource    `json:"source"`
	Paint  map[string]any `json:"paint,omitempty"`
}

// LayerSource wraps an inline GeoJSON source.
type LayerSource struct {
	Type string             `json:"type"`
	Data *FeatureCollection `json:"data"`
}

// MapAction is a camera directive for the frontend map.
type MapAction struct {
	Type    string      `json:"type"` // fly_to | fit_bounds
	Center  []float64   `json:"center,omitempty"`
	Zoom    float64     `json:"zoom,omitempty"`
	Pitch   float64     `json:"pitch,omitempty"`
	Bearing float64     `json:"bearing,omitempty"`
	Bounds  [][]float64 `json:"bounds,omitempty"`
}

// ChartSpec maps entity attributes to chart-library dataset arrays.
type ChartSpec struct {
	Type     string         `json:"type"` // bar | line | pie | radar
	Title    string         `json:"title,omitempty"`
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type ChartDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor any       `json:"backgroundColor,omitempty"` // string or []string
	BorderColor     string    `json:"borderColor,omitempty"`
	Fill            bool      `json:"fill"`
}

// WSFrame is a server-to-client WebSocket frame. Type "status" carries only
// Message/Status; type "response" embeds the full AgentResponse fields.
type WSFrame struct {
	Type      string         `json:"type"`
	Message   string         `json:"message"`
	MapLayers []MapLayer     `json:"map_layers,omitempty"`
	MapAction *MapAction     `json:"map_action,omitempty"`
	Chart     *ChartSpec     `json:"chart,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Status    string         `json:"status"`
}

// ResponseFrame wraps an AgentResponse as a WebSocket "response" frame.
func ResponseFrame(resp AgentResponse) WSFrame {
	return WSFrame{
		Type:      "response",
		Message:   resp.Message,
		MapLayers: resp.MapLayers,
		MapAction: resp.MapAction,
		Chart:     resp.Chart,
		Data:      resp.Data,
		Status:    resp.Status,
	}
}
