// Package metrics exposes Prometheus counters for tournament activity.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tournament"

// Metrics groups the collectors recorded by the tournament service.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	BracketsGenerated   prometheus.Counter
	ScoresEntered       prometheus.Counter
	ResultsConfirmed    *prometheus.CounterVec
	ConfirmRejections   *prometheus.CounterVec
	Imports             *prometheus.CounterVec
	PersistenceFailures *prometheus.CounterVec
	Resets              prometheus.Counter
}

// New creates the collectors and registers them, together with the Go and process collectors,
// on a dedicated registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		BracketsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "brackets_generated_total",
			Help:      "Number of brackets generated.",
		}),
		ScoresEntered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scores_entered_total",
			Help:      "Number of score edits accepted.",
		}),
		ResultsConfirmed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "results_confirmed_total",
			Help:      "Number of match results confirmed, by round.",
		}, []string{"round"}),
		ConfirmRejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "confirm_rejections_total",
			Help:      "Number of rejected confirmations, by reason.",
		}, []string{"reason"}),
		Imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "imports_total",
			Help:      "Number of import attempts, by result.",
		}, []string{"result"}),
		PersistenceFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "persistence_failures_total",
			Help:      "Number of failed state store operations, by operation.",
		}, []string{"operation"}),
		Resets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Number of tournament resets.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.BracketsGenerated,
		m.ScoresEntered,
		m.ResultsConfirmed,
		m.ConfirmRejections,
		m.Imports,
		m.PersistenceFailures,
		m.Resets,
	)
	return m
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) BracketGenerated() {
	if m == nil {
		return
	}
	m.BracketsGenerated.Inc()
}

func (m *Metrics) ScoreEntered() {
	if m == nil {
		return
	}
	m.ScoresEntered.Inc()
}

func (m *Metrics) ResultConfirmed(round string) {
	if m == nil {
		return
	}
	m.ResultsConfirmed.WithLabelValues(round).Inc()
}

func (m *Metrics) ConfirmRejected(reason string) {
	if m == nil {
		return
	}
	m.ConfirmRejections.WithLabelValues(reason).Inc()
}

func (m *Metrics) Imported(ok bool) {
	if m == nil {
		return
	}
	result := "accepted"
	if !ok {
		result = "rejected"
	}
	m.Imports.WithLabelValues(result).Inc()
}

func (m *Metrics) PersistenceFailed(operation string) {
	if m == nil {
		return
	}
	m.PersistenceFailures.WithLabelValues(operation).Inc()
}

func (m *Metrics) Reset() {
	if m == nil {
		return
	}
	m.Resets.Inc()
}
