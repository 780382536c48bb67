// SPDX-License-Identifier: MIT
package planner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/activeplan/astar"
)

var (
	// ErrNilTable indicates Solve received no distance table.
	ErrNilTable = errors.New("planner: distance table is nil")

	// ErrBadBudget indicates a time budget that is not positive.
	ErrBadBudget = errors.New("planner: time budget must be > 0")

	// ErrBadAgents indicates fewer than one agent.
	ErrBadAgents = errors.New("planner: agent count must be ≥ 1")

	// ErrDuplicateActivation indicates two activations of the same node.
	ErrDuplicateActivation = errors.New("planner: node activated twice")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("planner: invalid option supplied")

	// ErrNoSolution is astar.ErrNoSolution; idling to the budget is always
	// legal, so seeing it means the transition model is broken.
	ErrNoSolution = astar.ErrNoSolution

	// ErrTimeout is astar.ErrTimeout, carried by every *TimeoutError.
	ErrTimeout = astar.ErrTimeout
)

// TimeoutError is an interrupted solve. Bounds are on the reward scale:
// LowerBound ≤ optimal value ≤ UpperBound, and LowerBound is the value of a
// concrete plan found before the interruption.
type TimeoutError struct {
	LowerBound int64
	UpperBound int64
	Stats      astar.Stats
	RunID      string
	cause      *astar.TimeoutError
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("planner: run %s interrupted with value in [%d, %d] after %d expansions: %v",
		e.RunID, e.LowerBound, e.UpperBound, e.Stats.Expanded, e.cause)
}

// Unwrap exposes the search error, hence ErrTimeout and its cause.
func (e *TimeoutError) Unwrap() error { return e.cause }
