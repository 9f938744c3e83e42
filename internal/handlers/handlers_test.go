package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/config"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/handlers"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/observability"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/report"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/routes"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/services"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/store"
)

var testTime = time.Date(2025, time.July, 15, 12, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestServer stands up the full router with every live upstream pointed at
// a failing server, so providers fall back and the tests stay offline.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(down.Close)

	g, err := store.NewGazetteer()
	require.NoError(t, err)

	clock := clockwork.NewFakeClockAt(testTime)
	logger := testLogger()
	metrics := observability.NewMetricsForTesting()

	air := &services.AirQualityProvider{Client: http.DefaultClient, BaseURL: down.URL, Clock: clock, Rand: services.NewRand(21), Logger: logger, Metrics: metrics}
	methane := &services.MethaneProvider{Client: http.DefaultClient, BaseURL: down.URL, Clock: clock, Rand: services.NewRand(22), Logger: logger, Metrics: metrics}
	co2 := &services.CO2Provider{Clock: clock, Rand: services.NewRand(23), Logger: logger, Metrics: metrics}
	fire := &services.FireProvider{Client: http.DefaultClient, BaseURL: down.URL, Clock: clock, Rand: services.NewRand(24), Logger: logger, Metrics: metrics}
	temperature := &services.TemperatureProvider{Clock: clock, Rand: services.NewRand(25), Logger: logger, Metrics: metrics}
	viz := &services.Visualization{Clock: clock, Rand: services.NewRand(26)}

	builder := services.NewBuilder(g, air, methane, co2, fire, temperature, viz, services.NewRand(27), logger)
	chatSvc := services.NewChatService(services.NewIntentClassifier(g), builder, logger, metrics)

	h := routes.Handlers{
		Info:      &handlers.InfoHandler{Version: "test"},
		Chat:      &handlers.ChatHandler{Service: chatSvc},
		Gazetteer: &handlers.GazetteerHandler{Gazetteer: g},
		Env: &handlers.EnvHandler{
			AirQuality:  air,
			Methane:     methane,
			CO2:         co2,
			Fire:        fire,
			Temperature: temperature,
			Viz:         viz,
			Report:      report.NewGenerator(clock),
		},
		WS: handlers.NewWSHandler(chatSvc, handlers.NewConnectionManager(), logger, metrics, []string{"*"}),
	}

	cfg := config.Config{CORSAllowedOrigins: []string{"*"}}
	srv := httptest.NewServer(routes.NewRouter(cfg, logger, metrics, h))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, srv *httptest.Server, path string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]string
	resp := getJSON(t, srv, "/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestChatEndpoint(t *testing.T) {
	srv := newTestServer(t)

	payload := `{"query": "show me Almaty"}`
	resp, err := http.Post(srv.URL+"/api/chat", "application/json", strings.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var agent models.AgentResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&agent))
	assert.Equal(t, models.StatusSuccess, agent.Status)
	require.NotNil(t, agent.MapAction)
	assert.Equal(t, "fly_to", agent.MapAction.Type)
	assert.Contains(t, agent.Message, "Almaty")
}

func TestChatEndpointRejectsBadInput(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/chat", "application/json", strings.NewReader("{not json"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(srv.URL+"/api/chat", "application/json", strings.NewReader(`{"query": "  "}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListCities(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Cities []store.Place `json:"cities"`
		Count  int           `json:"count"`
	}
	resp := getJSON(t, srv, "/api/cities", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 10, body.Count)
	require.NotEmpty(t, body.Cities)
	assert.Equal(t, "almaty", body.Cities[0].Key)
}

func TestGetCity(t *testing.T) {
	srv := newTestServer(t)

	var place store.Place
	resp := getJSON(t, srv, "/api/cities/Almaty", &place)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Almaty", place.Name)
	require.NotNil(t, place.City)
	assert.Equal(t, 2161000, place.City.Population)
}

func TestGetCityNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/cities/atlantis")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// A real gazetteer entry that is not a city is still a 404 here.
	resp, err = http.Get(srv.URL + "/api/cities/tuyuksu")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestKazakhstanData(t *testing.T) {
	srv := newTestServer(t)

	var body map[string][]store.Place
	resp := getJSON(t, srv, "/api/data/kazakhstan", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["cities"], 10)
	assert.Len(t, body["glaciers"], 5)
	assert.Len(t, body["rivers"], 5)
	assert.Len(t, body["lakes"], 5)
}

func TestAirQualitySnapshot(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Data     models.AirQualityData `json:"data"`
		Live     bool                  `json:"live"`
		MapLayer models.MapLayer       `json:"map_layer"`
	}
	resp := getJSON(t, srv, "/api/environmental/air-quality", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, body.Live)
	assert.Len(t, body.Data.Stations, 8)
	assert.Equal(t, "air-quality-stations", body.MapLayer.ID)
}

func TestDashboardSnapshot(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]json.RawMessage
	resp := getJSON(t, srv, "/api/environmental/dashboard", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	for _, key := range []string{"air_quality", "methane", "co2", "fire", "summary"} {
		assert.Contains(t, body, key)
	}
}

func TestReportPDF(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/environmental/report/pdf?include_fire=false")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")), "body should be a PDF document")
}

func TestBasemapsCatalog(t *testing.T) {
	srv := newTestServer(t)

	var body struct {
		Basemaps []map[string]any `json:"basemaps"`
	}
	resp := getJSON(t, srv, "/api/layers/basemaps", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body.Basemaps, 4)
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/chat", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "https://geogpt.example.com")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "https://geogpt.example.com", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestWebSocketChat(t *testing.T) {
	srv := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(models.ChatRequest{Query: "show me Astana"}))

	var status models.WSFrame
	require.NoError(t, conn.ReadJSON(&status))
	assert.Equal(t, "status", status.Type)
	assert.Equal(t, "processing", status.Status)

	var frame models.WSFrame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "response", frame.Type)
	assert.Equal(t, models.StatusSuccess, frame.Status)
	assert.Contains(t, frame.Message, "Astana")
}

func TestWebSocketRejectsEmptyQuery(t *testing.T) {
	srv := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(models.ChatRequest{Query: ""}))

	var frame models.WSFrame
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, models.StatusError, frame.Status)

	// Connection survives; a valid query still works.
	require.NoError(t, conn.WriteJSON(models.ChatRequest{Query: "help"}))
	var status models.WSFrame
	require.NoError(t, conn.ReadJSON(&status))
	assert.Equal(t, "status", status.Type)
}
