// Package metrics defines the Prometheus collectors recorded per solve.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the solve collectors registered on one registry.
type Metrics struct {
	// SolvesTotal counts finished jobs by outcome (yes, no, invalid, indeterminate).
	SolvesTotal *prometheus.CounterVec
	// SolveDuration observes wall time per job.
	SolveDuration prometheus.Histogram
	// SearchNodesTotal accumulates IDA* frames across jobs.
	SearchNodesTotal prometheus.Counter
	// SearchIterations observes bounded passes per job.
	SearchIterations prometheus.Histogram
	// PathMoves observes the length of every YES answer.
	PathMoves prometheus.Histogram
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		SolvesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reconf_solves_total",
				Help: "Total number of solve jobs by outcome",
			},
			[]string{"outcome"},
		),
		SolveDuration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reconf_solve_duration_seconds",
				Help:    "Wall time of solve jobs",
				Buckets: prometheus.ExponentialBuckets(0.0005, 4, 10),
			},
		),
		SearchNodesTotal: f.NewCounter(
			prometheus.CounterOpts{
				Name: "reconf_search_nodes_total",
				Help: "Total number of IDA* search frames expanded",
			},
		),
		SearchIterations: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reconf_search_iterations",
				Help:    "Bounded depth-first passes per solve",
				Buckets: prometheus.LinearBuckets(1, 2, 10),
			},
		),
		PathMoves: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reconf_path_moves",
				Help:    "Number of jumps in solvable answers",
				Buckets: prometheus.ExponentialBuckets(1, 2, 10),
			},
		),
	}
}
