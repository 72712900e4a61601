// Package metrics exposes Prometheus collectors for the catalog server.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered for one server instance.
type Metrics struct {
	gatherer prometheus.Gatherer

	catalogRequests *prometheus.CounterVec
	catalogDuration *prometheus.HistogramVec
	catalogEvents   *prometheus.GaugeVec
}

// New registers the collectors on reg. Passing prometheus.NewRegistry()
// keeps tests isolated from the default registry.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		gatherer: reg,
		catalogRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "booker_catalog_requests_total",
				Help: "Catalog requests by source and HTTP status",
			},
			[]string{"source", "status"},
		),
		catalogDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "booker_catalog_request_duration_seconds",
				Help:    "Time spent reading the catalog from its source",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"source"},
		),
		catalogEvents: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "booker_catalog_events",
				Help: "Number of events in the last catalog served",
			},
			[]string{"source"},
		),
	}
}

// ObserveCatalog records one catalog request.
func (m *Metrics) ObserveCatalog(source string, status int, events int, took time.Duration) {
	m.catalogRequests.WithLabelValues(source, strconv.Itoa(status)).Inc()
	m.catalogDuration.WithLabelValues(source).Observe(took.Seconds())
	if status == http.StatusOK {
		m.catalogEvents.WithLabelValues(source).Set(float64(events))
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
