package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/observability"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/services"
)

// ConnectionManager tracks open chat sockets. Connections are registered on
// upgrade and dropped on any read/write failure; the mutex is required because
// the HTTP server runs each connection on its own goroutine.
type ConnectionManager struct {
	mu    sync.Mutex
	conns map[string]*websocket.Conn
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{conns: make(map[string]*websocket.Conn)}
}

func (m *ConnectionManager) Add(conn *websocket.Conn) string {
	id := uuid.NewString()
	m.mu.Lock()
	m.conns[id] = conn
	m.mu.Unlock()
	return id
}

func (m *ConnectionManager) Remove(id string) {
	m.mu.Lock()
	delete(m.conns, id)
	m.mu.Unlock()
}

func (m *ConnectionManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.conns)
}

type WSHandler struct {
	Service        *services.ChatService
	Manager        *ConnectionManager
	Logger         *slog.Logger
	Metrics        *observability.Metrics
	AllowedOrigins []string

	upgrader websocket.Upgrader
}

func NewWSHandler(service *services.ChatService, manager *ConnectionManager, logger *slog.Logger, metrics *observability.Metrics, allowedOrigins []string) *WSHandler {
	h := &WSHandler{
		Service:        service,
		Manager:        manager,
		Logger:         logger,
		Metrics:        metrics,
		AllowedOrigins: allowedOrigins,
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin:     h.originAllowed,
	}
	return h
}

func (h *WSHandler) originAllowed(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, allowed := range h.AllowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

// HandleChat serves WS /ws/chat: one query frame in, a status frame and a
// response frame out, repeated until the client goes away.
func (h *WSHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	id := h.Manager.Add(conn)
	h.Metrics.WSConnections.Inc()
	h.Logger.Info("websocket connected", "conn_id", id)

	defer func() {
		h.Manager.Remove(id)
		h.Metrics.WSConnections.Dec()
		_ = conn.Close()
		h.Logger.Info("websocket disconnected", "conn_id", id)
	}()

	for {
		var req models.ChatRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.Logger.Warn("websocket read failed", "conn_id", id, "error", err)
			}
			return
		}
		if strings.TrimSpace(req.Query) == "" {
			if err := conn.WriteJSON(models.WSFrame{Type: "response", Message: "query is required", Status: models.StatusError}); err != nil {
				return
			}
			continue
		}

		if err := conn.WriteJSON(models.WSFrame{Type: "status", Message: "Processing query...", Status: "processing"}); err != nil {
			return
		}

		resp := h.Service.ProcessQuery(r.Context(), req.Query, req.Context)
		if err := conn.WriteJSON(models.ResponseFrame(*resp)); err != nil {
			h.Logger.Warn("websocket write failed", "conn_id", id, "error", err)
			return
		}
	}
}
