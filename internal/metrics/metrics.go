// Package metrics exposes solver statistics to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeConverged     = "converged"
	OutcomeNoConvergence = "no_convergence"
	OutcomeInvalidInput  = "invalid_input"
)

// Metrics records one observation per solve on its own registry, so several
// instances can live in one process.
type Metrics struct {
	registry *prometheus.Registry
	solves   *prometheus.CounterVec
	rounds   prometheus.Histogram
	duration prometheus.Histogram
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "batchrating_solves_total",
				Help: "Number of rating computations by outcome.",
			},
			[]string{"outcome"},
		),
		rounds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "batchrating_solve_rounds",
			Help:    "Rounds needed to converge.",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "batchrating_solve_duration_seconds",
			Help:    "Wall time of rating computations.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(
		m.solves,
		m.rounds,
		m.duration,
		collectors.NewGoCollector(),
	)
	return m
}

func (m *Metrics) ObserveSolve(outcome string, rounds int, elapsed time.Duration) {
	m.solves.WithLabelValues(outcome).Inc()
	if outcome == OutcomeConverged {
		m.rounds.Observe(float64(rounds))
	}
	m.duration.Observe(elapsed.Seconds())
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
