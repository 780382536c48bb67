// SPDX-License-Identifier: MIT
package planner

import (
	"fmt"
	"log/slog"
	"time"
)

// Option configures Solve.
type Option func(*Options)

// Options holds Solve parameters.
type Options struct {
	// Deadline interrupts the search; zero means none.
	Deadline time.Time
	// MaxExpansions interrupts the search after that many states; 0 means none.
	MaxExpansions int
	// Plan requests the activation schedule in Result.Plan.
	Plan bool
	// Logger receives run events; defaults to the "planner" component logger.
	Logger *slog.Logger
	// DistanceConcurrency is forwarded to distance.Compute by SolveGraph.
	DistanceConcurrency int

	err error
}

// DefaultOptions returns an unbounded, plan-less configuration.
func DefaultOptions() Options {
	return Options{
		Logger:              slog.Default().With(slog.String("component", "planner")),
		DistanceConcurrency: 1,
	}
}

// WithTimeLimit interrupts the search d after Solve starts. Zero interrupts
// before the first expansion; negative values are rejected.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: time limit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Deadline = time.Now().Add(d)
	}
}

// WithDeadline interrupts the search at t.
func WithDeadline(t time.Time) Option {
	return func(o *Options) { o.Deadline = t }
}

// WithMaxExpansions interrupts the search after n expansions (n ≥ 1).
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxExpansions must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithPlan reconstructs which agent activates which node and when.
func WithPlan() Option {
	return func(o *Options) { o.Plan = true }
}

// WithLogger replaces the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithDistanceConcurrency bounds parallel BFS runs in SolveGraph (n ≥ 1).
func WithDistanceConcurrency(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: distance concurrency must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.DistanceConcurrency = n
	}
}
