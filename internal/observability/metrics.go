// Package observability wires Prometheus metrics for the query pipeline and
// transport. Each Metrics value owns its registry so tests never collide on
// duplicate registration.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	QueriesTotal    *prometheus.CounterVec
	QueryDuration   *prometheus.HistogramVec
	ProviderFetches *prometheus.CounterVec
	WSConnections   prometheus.Gauge
	HTTPRequests    *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	return newMetrics(true)
}

// NewMetricsForTesting skips the runtime collectors to keep test registries
// minimal.
func NewMetricsForTesting() *Metrics {
	return newMetrics(false)
}

func newMetrics(withRuntime bool) *Metrics {
	reg := prometheus.NewRegistry()
	if withRuntime {
		reg.MustRegister(collectors.NewGoCollector())
		reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		QueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geogpt_queries_total",
			Help: "Chat queries processed, labelled by the recipe that answered them.",
		}, []string{"recipe", "status"}),
		QueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "geogpt_query_duration_seconds",
			Help:    "End-to-end chat query processing time.",
			Buckets: prometheus.DefBuckets,
		}, []string{"recipe"}),
		ProviderFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geogpt_provider_fetches_total",
			Help: "Data provider fetches, labelled by provider and live/fallback outcome.",
		}, []string{"provider", "outcome"}),
		WSConnections: factory.NewGauge(prometheus.GaugeOpts{
			Name: "geogpt_ws_connections",
			Help: "Open WebSocket chat connections.",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "geogpt_http_requests_total",
			Help: "HTTP requests by route pattern and status code.",
		}, []string{"route", "code"}),
	}
}

// ObserveFetch records one provider fetch outcome.
func (m *Metrics) ObserveFetch(provider string, live bool) {
	outcome := "fallback"
	if live {
		outcome = "live"
	}
	m.ProviderFetches.WithLabelValues(provider, outcome).Inc()
}

// Handler serves this Metrics value's registry in Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
