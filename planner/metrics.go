// SPDX-License-Identifier: MIT
package planner

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("activeplan.planner")

const (
	outcomeOptimal = "optimal"
	outcomeTimeout = "timeout"
	outcomeError   = "error"
)

var (
	// solveTotal counts solves by outcome
	solveTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "activeplan_solve_total",
		Help: "Total planner solves by outcome",
	}, []string{"outcome"})

	// solveDuration tracks solve latency by outcome
	solveDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "activeplan_solve_duration_seconds",
		Help:    "Planner solve duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
	}, []string{"outcome"})

	// solveExpanded tracks expanded states per solve
	solveExpanded = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "activeplan_solve_expanded_states",
		Help:    "Search states expanded per solve",
		Buckets: prometheus.ExponentialBuckets(1, 10, 8),
	})

	// solveFrontier tracks the peak frontier size per solve
	solveFrontier = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "activeplan_solve_frontier_peak",
		Help:    "Peak search frontier length per solve",
		Buckets: prometheus.ExponentialBuckets(1, 10, 8),
	})
)
