package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/services"
)

type ChatHandler struct {
	Service *services.ChatService
}

// HandleChat serves POST /api/chat.
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	resp := h.Service.ProcessQuery(r.Context(), req.Query, req.Context)
	status := http.StatusOK
	if resp.Status == models.StatusError {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, resp)
}
