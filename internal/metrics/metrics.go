// Package metrics provides Prometheus metrics for the talent-match service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "talentmatch"

// Manager holds the service's Prometheus collectors.
type Manager struct {
	searchRequests   *prometheus.CounterVec
	searchDuration   prometheus.Histogram
	candidatesRanked prometheus.Counter
	collabFailures   *prometheus.CounterVec
}

// New registers the service collectors on a fresh registry and returns the
// manager together with the /metrics handler.
func New() (*Manager, http.Handler) {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Manager{
		searchRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "Candidate search requests by outcome.",
		}, []string{"status"}),
		searchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_duration_seconds",
			Help:      "End-to-end candidate search latency.",
			Buckets:   prometheus.DefBuckets,
		}),
		candidatesRanked: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_ranked_total",
			Help:      "Candidates scored across all searches.",
		}),
		collabFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collaborator_failures_total",
			Help:      "External collaborator failures by collaborator name.",
		}, []string{"collaborator"}),
	}

	return m, promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

// ObserveSearch records one finished search request.
func (m *Manager) ObserveSearch(status string, started time.Time, ranked int) {
	m.searchRequests.WithLabelValues(status).Inc()
	m.searchDuration.Observe(time.Since(started).Seconds())
	m.candidatesRanked.Add(float64(ranked))
}

// CollaboratorFailure records a recoverable external-collaborator failure.
func (m *Manager) CollaboratorFailure(name string) {
	m.collabFailures.WithLabelValues(name).Inc()
}
