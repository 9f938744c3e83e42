package handlers

import "net/http"

// InfoHandler serves the unauthenticated service metadata endpoints.
type InfoHandler struct {
	Version string
}

// HandleRoot serves GET /: a short service card for humans poking the API.
func (h *InfoHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "GeoGPT Research Platform API",
		"version": h.Version,
		"endpoints": []string{
			"POST /api/chat",
			"GET /api/cities",
			"GET /api/cities/{name}",
			"GET /api/environmental/air-quality",
			"GET /api/environmental/air-quality/history",
			"GET /api/environmental/methane",
			"GET /api/environmental/co2",
			"GET /api/environmental/temperature",
			"GET /api/environmental/satellite/{ndvi|lst|snow|fire}",
			"GET /api/environmental/flow/{wind|pollution}",
			"GET /api/environmental/dashboard",
			"GET /api/environmental/report/pdf",
			"GET /api/layers/basemaps",
			"GET /api/data/kazakhstan",
			"WS /ws/chat",
		},
	})
}

// HandleHealth serves GET /health.
func (h *InfoHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// basemaps are raster tile sources the frontend can switch between. URLs are
// public tile servers; the backend only catalogs them.
var basemaps = []map[string]any{
	{
		"id":          "streets",
		"name":        "OpenStreetMap",
		"url":         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		"attribution": "© OpenStreetMap contributors",
	},
	{
		"id":          "satellite",
		"name":        "Esri World Imagery",
		"url":         "https://server.arcgisonline.com/ArcGIS/rest/services/World_Imagery/MapServer/tile/{z}/{y}/{x}",
		"attribution": "© Esri",
	},
	{
		"id":          "terrain",
		"name":        "OpenTopoMap",
		"url":         "https://tile.opentopomap.org/{z}/{x}/{y}.png",
		"attribution": "© OpenTopoMap (CC-BY-SA)",
	},
	{
		"id":          "dark",
		"name":        "CARTO Dark Matter",
		"url":         "https://basemaps.cartocdn.com/dark_all/{z}/{x}/{y}.png",
		"attribution": "© CARTO",
	},
}

// HandleBasemaps serves GET /api/layers/basemaps.
func (h *InfoHandler) HandleBasemaps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"basemaps": basemaps})
}
