package routes

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/config"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/handlers"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/observability"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Info      *handlers.InfoHandler
	Chat      *handlers.ChatHandler
	Gazetteer *handlers.GazetteerHandler
	Env       *handlers.EnvHandler
	WS        *handlers.WSHandler
}

func NewRouter(cfg config.Config, logger *slog.Logger, metrics *observability.Metrics, h Handlers) http.Handler {
	r := chi.NewRouter()

	r.Use(handlers.RequestLogger(logger, metrics))
	r.Use(handlers.CORS(cfg.CORSAllowedOrigins))

	r.Get("/", h.Info.HandleRoot)
	r.Get("/health", h.Info.HandleHealth)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/chat", h.Chat.HandleChat)

		r.Get("/cities", h.Gazetteer.HandleListCities)
		r.Get("/cities/{name}", h.Gazetteer.HandleGetCity)
		r.Get("/data/kazakhstan", h.Gazetteer.HandleKazakhstanData)

		r.Get("/layers/basemaps", h.Info.HandleBasemaps)

		r.Route("/environmental", func(r chi.Router) {
			r.Get("/air-quality", h.Env.HandleAirQuality)
			r.Get("/air-quality/history", h.Env.HandleAirQualityHistory)
			r.Get("/methane", h.Env.HandleMethane)
			r.Get("/co2", h.Env.HandleCO2)
			r.Get("/temperature", h.Env.HandleTemperature)

			r.Get("/satellite/fire", h.Env.HandleSatelliteFire)
			r.Get("/satellite/ndvi", h.Env.HandleSatelliteNDVI)
			r.Get("/satellite/lst", h.Env.HandleSatelliteLST)
			r.Get("/satellite/snow", h.Env.HandleSatelliteSnow)

			r.Get("/flow/wind", h.Env.HandleFlowWind)
			r.Get("/flow/pollution", h.Env.HandleFlowPollution)

			r.Get("/dashboard", h.Env.HandleDashboard)
			r.Get("/report/pdf", h.Env.HandleReportPDF)
		})
	})

	r.Get("/ws/chat", h.WS.HandleChat)

	return r
}
