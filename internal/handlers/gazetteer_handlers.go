package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/store"
)

type GazetteerHandler struct {
	Gazetteer *store.Gazetteer
}

// HandleListCities serves GET /api/cities.
func (h *GazetteerHandler) HandleListCities(w http.ResponseWriter, r *http.Request) {
	cities := h.Gazetteer.All(store.CategoryCity)
	writeJSON(w, http.StatusOK, map[string]any{
		"cities": cities,
		"count":  len(cities),
	})
}

// HandleGetCity serves GET /api/cities/{name}. 404 on a gazetteer miss.
func (h *GazetteerHandler) HandleGetCity(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	place, err := h.Gazetteer.Lookup(name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "city not found: "+name)
			return
		}
		writeError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	if place.Category != store.CategoryCity {
		writeError(w, http.StatusNotFound, "city not found: "+name)
		return
	}
	writeJSON(w, http.StatusOK, place)
}

// HandleKazakhstanData serves GET /api/data/kazakhstan: the full gazetteer in
// one payload for the frontend's initial map load.
func (h *GazetteerHandler) HandleKazakhstanData(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"cities":   h.Gazetteer.All(store.CategoryCity),
		"glaciers": h.Gazetteer.All(store.CategoryGlacier),
		"rivers":   h.Gazetteer.All(store.CategoryRiver),
		"lakes":    h.Gazetteer.All(store.CategoryLake),
	})
}
