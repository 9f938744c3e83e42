package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/models"
	"github.com/Bibars-Amangeldy/geogpt-research-platform/internal/observability"
)

// ChatService is the pipeline front door: classify, resolve a place, build.
// It never fails outward — panics and recipe errors become a generic error
// response so the transport always has something well-formed to send.
type ChatService struct {
	Classifier *IntentClassifier
	Builder    *Builder
	Logger     *slog.Logger
	Metrics    *observability.Metrics
}

func NewChatService(classifier *IntentClassifier, builder *Builder, logger *slog.Logger, metrics *observability.Metrics) *ChatService {
	return &ChatService{Classifier: classifier, Builder: builder, Logger: logger, Metrics: metrics}
}

func (s *ChatService) ProcessQuery(ctx context.Context, query string, queryContext map[string]any) (resp *models.AgentResponse) {
	_ = queryContext // reserved for frontend map state; no recipe consumes it yet

	timer := s.Clock()
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("query processing panicked", "query", query, "panic", fmt.Sprint(r))
			s.Metrics.QueriesTotal.WithLabelValues("panic", models.StatusError).Inc()
			resp = errorResponse()
		}
	}()

	intents := s.Classifier.Classify(query)
	place := s.Classifier.DetectPlace(query)

	built, recipe, err := s.Builder.Build(ctx, intents, place, query)
	s.Metrics.QueryDuration.WithLabelValues(recipe).Observe(timer())
	if err != nil {
		s.Logger.Error("response build failed", "query", query, "recipe", recipe, "error", err)
		s.Metrics.QueriesTotal.WithLabelValues(recipe, models.StatusError).Inc()
		return errorResponse()
	}

	s.Metrics.QueriesTotal.WithLabelValues(recipe, built.Status).Inc()
	placeKey := ""
	if place != nil {
		placeKey = place.Key
	}
	s.Logger.Info("query processed", "recipe", recipe, "place", placeKey, "intents", len(intents))
	return built
}

// Clock returns an elapsed-seconds closure for the duration histogram.
func (s *ChatService) Clock() func() float64 {
	start := s.Builder.Viz.Clock.Now()
	return func() float64 {
		return s.Builder.Viz.Clock.Now().Sub(start).Seconds()
	}
}

func errorResponse() *models.AgentResponse {
	return &models.AgentResponse{
		Message: "Something went wrong while processing your query. Please try rephrasing it.",
		Status:  models.StatusError,
	}
}
