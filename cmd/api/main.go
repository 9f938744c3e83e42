package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/config"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/handlers"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/observability"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/report"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/routes"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/services"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/store"
)

const version = "1.0.0"

func newLogger(cfg config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	var handler slog.Handler
	if cfg.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	return slog.New(handler)
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)
	metrics := observability.NewMetrics()
	clock := clockwork.NewRealClock()

	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := services.NewRand(seed)

	gazetteer, err := store.NewGazetteer()
	if err != nil {
		panic(err)
	}

	hc := &http.Client{Timeout: cfg.ProviderTimeout}

	air := &services.AirQualityProvider{
		Client:  hc,
		BaseURL: cfg.OpenAQBaseURL,
		APIKey:  cfg.OpenAQAPIKey,
		Clock:   clock,
		Rand:    rng,
		Logger:  logger,
		Metrics: metrics,
	}
	methane := &services.MethaneProvider{
		Client:  hc,
		BaseURL: cfg.MethaneBaseURL,
		Clock:   clock,
		Rand:    rng,
		Logger:  logger,
		Metrics: metrics,
	}
	co2 := &services.CO2Provider{Clock: clock, Rand: rng, Logger: logger, Metrics: metrics}
	fire := &services.FireProvider{
		Client:  hc,
		BaseURL: cfg.NASAFIRMSURL,
		APIKey:  cfg.NASAFIRMSKey,
		Clock:   clock,
		Rand:    rng,
		Logger:  logger,
		Metrics: metrics,
	}
	temperature := &services.TemperatureProvider{Clock: clock, Rand: rng, Logger: logger, Metrics: metrics}
	viz := &services.Visualization{Clock: clock, Rand: rng}

	builder := services.NewBuilder(gazetteer, air, methane, co2, fire, temperature, viz, rng, logger)
	classifier := services.NewIntentClassifier(gazetteer)
	chatSvc := services.NewChatService(classifier, builder, logger, metrics)

	h := routes.Handlers{
		Info: &handlers.InfoHandler{Version: version},
		Chat: &handlers.ChatHandler{Service: chatSvc},
		Gazetteer: &handlers.GazetteerHandler{
			Gazetteer: gazetteer,
		},
		Env: &handlers.EnvHandler{
			AirQuality:  air,
			Methane:     methane,
			CO2:         co2,
			Fire:        fire,
			Temperature: temperature,
			Viz:         viz,
			Report:      report.NewGenerator(clock),
		},
		WS: handlers.NewWSHandler(chatSvc, handlers.NewConnectionManager(), logger, metrics, cfg.CORSAllowedOrigins),
	}

	router := routes.NewRouter(cfg, logger, metrics, h)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "addr", cfg.Addr(), "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
