// SPDX-License-Identifier: MIT
package astar

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"
)

// Sentinel errors returned by Search.
var (
	// ErrNilProblem indicates a nil Problem.
	ErrNilProblem = errors.New("astar: problem is nil")

	// ErrNoSolution indicates the frontier emptied without reaching a goal.
	ErrNoSolution = errors.New("astar: no goal state reachable")

	// ErrTimeout is carried by every *TimeoutError.
	ErrTimeout = errors.New("astar: search stopped before proving optimality")

	// ErrExpansionLimit is the cause of a timeout triggered by WithMaxExpansions.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrNegativeCost indicates a successor reported a negative step cost.
	ErrNegativeCost = errors.New("astar: negative transition cost")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// NoIncumbent is the Incumbent value when no complete solution is known.
const NoIncumbent = int64(math.MaxInt64)

// Problem describes a search space with non-negative integer step costs.
//
// K is the canonical key of a state: two states with equal keys are treated
// as the same node, and only the cheaper arrival survives.
type Problem[S any, K comparable] interface {
	// Key returns the canonical identity of s.
	Key(s S) K
	// IsGoal reports whether s terminates the search.
	IsGoal(s S) bool
	// Successors calls yield once per legal transition out of s.
	Successors(s S, yield func(next S, cost int64))
	// Heuristic returns an admissible estimate of the remaining cost from s.
	Heuristic(s S) int64
}

// Completer is implemented by problems that can cheaply finish any state.
// Complete returns the remaining cost of some legal (not necessarily optimal)
// path from s to a goal. Search uses it to keep an incumbent upper bound.
type Completer[S any] interface {
	Complete(s S) int64
}

// Option configures Search.
type Option func(*Options)

// Options holds Search parameters.
type Options struct {
	// Ctx cancels the search; defaults to context.Background().
	Ctx context.Context

	// Deadline stops the search once reached; zero means none.
	Deadline time.Time

	// MaxExpansions stops the search after that many expansions; 0 means none.
	MaxExpansions int

	// OnExpand observes progress after each expansion.
	OnExpand func(Stats)

	// TrackPath records the state sequence leading to the goal.
	TrackPath bool

	err error
}

// DefaultOptions returns unbounded settings without path tracking.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDeadline stops the search at t.
func WithDeadline(t time.Time) Option {
	return func(o *Options) { o.Deadline = t }
}

// WithTimeLimit stops the search d after Search starts. A zero limit expires
// before the first expansion; negative limits are rejected.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: time limit cannot be negative (%s)", ErrOptionViolation, d)
			return
		}
		o.Deadline = time.Now().Add(d)
	}
}

// WithMaxExpansions caps the number of expanded states. n must be ≥ 1.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxExpansions must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand installs a progress hook. Nil is ignored.
func WithOnExpand(fn func(Stats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithPath records the path to the goal in Result.Path.
func WithPath() Option {
	return func(o *Options) { o.TrackPath = true }
}

// Stats counts search work.
type Stats struct {
	Expanded    int // states popped and expanded
	Generated   int // successors produced
	Reopened    int // keys whose best cost improved after first insertion
	MaxFrontier int // peak queue length
}

// Result is a proven-optimal search outcome.
type Result[S any] struct {
	Goal  S
	Cost  int64
	Path  []S // start..goal inclusive, only with WithPath
	Stats Stats
}

// TimeoutError reports an interrupted search together with the bounds it had
// established: LowerBound ≤ optimal cost ≤ Incumbent.
type TimeoutError struct {
	// Incumbent is the cheapest complete cost known, or NoIncumbent.
	Incumbent int64
	// LowerBound is the smallest f-value left on the frontier.
	LowerBound int64
	Stats      Stats
	// Cause is the context error, ErrExpansionLimit, or nil for a deadline.
	Cause error
}

func (e *TimeoutError) Error() string {
	msg := fmt.Sprintf("%s (lower=%d", ErrTimeout.Error(), e.LowerBound)
	if e.Incumbent != NoIncumbent {
		msg += fmt.Sprintf(" incumbent=%d", e.Incumbent)
	}
	msg += fmt.Sprintf(" expanded=%d)", e.Stats.Expanded)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap exposes ErrTimeout and the cause to errors.Is.
func (e *TimeoutError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrTimeout}
	}
	return []error{ErrTimeout, e.Cause}
}
