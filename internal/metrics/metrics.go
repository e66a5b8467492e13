// Package metrics exposes Prometheus instrumentation for the search engine.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	searchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zodigo_searches_total",
			Help: "Total number of searches by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	refineIterations = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "zodigo_refine_iterations",
			Help:    "Refinement iterations per completed search.",
			Buckets: prometheus.LinearBuckets(0, 5, 11),
		},
		[]string{"kind"},
	)

	searchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "zodigo_search_duration_seconds",
			Help:    "Wall-clock search duration in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(searchesTotal)
	prometheus.MustRegister(refineIterations)
	prometheus.MustRegister(searchDuration)
}

// RecordSearch records one finished search. kind is "crossing" or
// "station"; outcome is "found", "not_found", or "error".
func RecordSearch(kind, outcome string, iterations int, d time.Duration) {
	searchesTotal.WithLabelValues(kind, outcome).Inc()
	if outcome == "found" {
		refineIterations.WithLabelValues(kind).Observe(float64(iterations))
	}
	searchDuration.WithLabelValues(kind).Observe(d.Seconds())
}
