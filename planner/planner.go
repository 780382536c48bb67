// SPDX-License-Identifier: MIT
package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/activeplan/astar"
	"github.com/katalvlaran/activeplan/core"
	"github.com/katalvlaran/activeplan/distance"
)

// Config is the scenario to plan for.
type Config struct {
	// TimeBudget is the number of minutes available (> 0).
	TimeBudget int64
	// Agents is the number of interchangeable workers (≥ 1).
	Agents int
}

// Validate checks the scenario bounds.
func (c Config) Validate() error {
	if c.TimeBudget <= 0 {
		return fmt.Errorf("%w: got %d", ErrBadBudget, c.TimeBudget)
	}
	if c.Agents < 1 {
		return fmt.Errorf("%w: got %d", ErrBadAgents, c.Agents)
	}
	return nil
}

// Step is one activation of a plan.
type Step struct {
	Agent int    // agent ID, 0-based
	Node  string // activated node
	At    int64  // minute from which the node's rate flows
	Gain  int64  // rate × (budget − At)
}

// Result is a proven-optimal plan.
type Result struct {
	// Value is the maximum total reward collected within the budget.
	Value int64
	// Cost is the reward forfeited: TotalRate × budget − Value.
	Cost int64
	// Optimal is true for every Result; interrupted runs return *TimeoutError.
	Optimal bool
	// Plan lists activations ordered by time, then agent (only with WithPlan).
	Plan  []Step
	Stats astar.Stats
	RunID string
}

// Solve returns the maximum reward cfg.Agents agents can collect from the
// nodes of tbl within cfg.TimeBudget minutes.
//
// Implementation:
//   - Stage 1: Validate inputs; resolve options.
//   - Stage 2: A* over State with the transition model and heuristic of this
//     package; the cost minimized is forfeited reward.
//   - Stage 3: Convert back: Value = TotalRate × budget − cost.
//
// Errors:
//   - ErrNilTable, ErrBadBudget, ErrBadAgents, ErrOptionViolation.
//   - *TimeoutError (errors.Is(err, ErrTimeout)) on deadline, ctx or
//     expansion limit, carrying value bounds.
//   - ErrNoSolution (wrapped) if the model is inconsistent.
func Solve(ctx context.Context, tbl *distance.Table, cfg Config, opts ...Option) (*Result, error) {
	if tbl == nil {
		return nil, ErrNilTable
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	runID := uuid.NewString()
	logger := o.Logger.With(slog.String("run_id", runID))
	ctx, span := tracer.Start(ctx, "planner.Solve",
		trace.WithAttributes(
			attribute.String("planner.run_id", runID),
			attribute.Int64("planner.time_budget", cfg.TimeBudget),
			attribute.Int("planner.agents", cfg.Agents),
			attribute.Int("planner.table_size", tbl.Size()),
		),
	)
	defer span.End()

	began := time.Now()
	m := newModel(tbl, cfg.TimeBudget)
	ceiling := m.total * cfg.TimeBudget
	logger.Debug("solve started",
		slog.Int64("time_budget", cfg.TimeBudget),
		slog.Int("agents", cfg.Agents),
		slog.Int("targets", len(m.targets)),
		slog.Int64("total_rate", m.total),
	)

	aopts := []astar.Option{astar.WithContext(ctx)}
	if !o.Deadline.IsZero() {
		aopts = append(aopts, astar.WithDeadline(o.Deadline))
	}
	if o.MaxExpansions > 0 {
		aopts = append(aopts, astar.WithMaxExpansions(o.MaxExpansions))
	}
	if o.Plan {
		aopts = append(aopts, astar.WithPath())
	}

	res, err := astar.Search[State, string](m, StartState(cfg.Agents), aopts...)
	elapsed := time.Since(began)
	if err != nil {
		var te *astar.TimeoutError
		if errors.As(err, &te) {
			terr := &TimeoutError{
				LowerBound: ceiling - te.Incumbent,
				UpperBound: ceiling - te.LowerBound,
				Stats:      te.Stats,
				RunID:      runID,
				cause:      te,
			}
			observe(outcomeTimeout, elapsed, te.Stats)
			span.SetStatus(codes.Error, outcomeTimeout)
			span.RecordError(terr)
			logger.Warn("solve interrupted",
				slog.Int64("lower_bound", terr.LowerBound),
				slog.Int64("upper_bound", terr.UpperBound),
				slog.Int("expanded", te.Stats.Expanded),
				slog.Duration("elapsed", elapsed),
			)
			return nil, terr
		}
		observe(outcomeError, elapsed, astar.Stats{})
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		logger.Error("solve failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("planner: run %s: %w", runID, err)
	}

	out := &Result{
		Value:   ceiling - res.Cost,
		Cost:    res.Cost,
		Optimal: true,
		Stats:   res.Stats,
		RunID:   runID,
	}
	if o.Plan {
		out.Plan = planFromPath(tbl, cfg.TimeBudget, res.Path)
	}

	observe(outcomeOptimal, elapsed, res.Stats)
	span.SetAttributes(
		attribute.Int64("planner.value", out.Value),
		attribute.Int("planner.expanded", res.Stats.Expanded),
	)
	span.SetStatus(codes.Ok, "")
	logger.Info("solve finished",
		slog.Int64("value", out.Value),
		slog.Int("expanded", res.Stats.Expanded),
		slog.Int("generated", res.Stats.Generated),
		slog.Int("frontier_peak", res.Stats.MaxFrontier),
		slog.Duration("elapsed", elapsed),
	)

	return out, nil
}

// SolveGraph computes the distance table of g and solves it. A deadline set
// through WithTimeLimit or WithDeadline is fixed once and bounds both phases.
// Interruption during the distance phase yields a *TimeoutError whose bounds
// are the trivial [0, TotalRate × budget].
func SolveGraph(ctx context.Context, g *core.Graph, cfg Config, opts ...Option) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	distCtx := ctx
	if !o.Deadline.IsZero() {
		var cancel context.CancelFunc
		distCtx, cancel = context.WithDeadline(ctx, o.Deadline)
		defer cancel()
		opts = append(opts, WithDeadline(o.Deadline))
	}

	tbl, err := distance.Compute(distCtx, g, distance.WithConcurrency(o.DistanceConcurrency))
	if err != nil {
		if ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded) {
			return nil, distanceTimeout(g, cfg, o, err)
		}
		return nil, fmt.Errorf("planner: %w", err)
	}
	return Solve(ctx, tbl, cfg, opts...)
}

// distanceTimeout reports a deadline that expired before the search began.
func distanceTimeout(g *core.Graph, cfg Config, o Options, cause error) *TimeoutError {
	ceiling := g.TotalRate() * cfg.TimeBudget
	terr := &TimeoutError{
		LowerBound: 0,
		UpperBound: ceiling,
		RunID:      uuid.NewString(),
		cause:      &astar.TimeoutError{Incumbent: ceiling, Cause: cause},
	}
	observe(outcomeTimeout, 0, astar.Stats{})
	o.Logger.Warn("solve interrupted while computing distances",
		slog.String("run_id", terr.RunID),
		slog.Int64("upper_bound", ceiling),
	)
	return terr
}

func observe(outcome string, elapsed time.Duration, st astar.Stats) {
	solveTotal.WithLabelValues(outcome).Inc()
	solveDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	if outcome != outcomeError {
		solveExpanded.Observe(float64(st.Expanded))
		solveFrontier.Observe(float64(st.MaxFrontier))
	}
}

// planFromPath turns consecutive states into activation steps. The agent
// standing on a newly claimed node with FreeAt equal to its activation time
// is the one that claimed it.
func planFromPath(tbl *distance.Table, budget int64, path []State) []Step {
	var steps []Step
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		for _, e := range cur.Active.entries {
			if prev.Active.Contains(e.Node) {
				continue
			}
			agent := -1
			for _, a := range cur.Agents {
				if a.Pos == e.Node && a.FreeAt == e.At {
					agent = a.ID
					break
				}
			}
			steps = append(steps, Step{
				Agent: agent,
				Node:  tbl.ID(e.Node),
				At:    e.At,
				Gain:  tbl.Rate(e.Node) * (budget - e.At),
			})
		}
	}
	sort.Slice(steps, func(i, j int) bool {
		if steps[i].At != steps[j].At {
			return steps[i].At < steps[j].At
		}
		return steps[i].Agent < steps[j].Agent
	})
	return steps
}

// Heuristic exposes the search heuristic for state s.
func Heuristic(tbl *distance.Table, cfg Config, s State) int64 {
	return newModel(tbl, cfg.TimeBudget).heuristic(s)
}

// Successors exposes the transition model: yield receives every successor
// of s with its forfeited-reward cost.
func Successors(tbl *distance.Table, cfg Config, s State, yield func(next State, cost int64)) {
	newModel(tbl, cfg.TimeBudget).Successors(s, yield)
}

// TransitionCost is the reward forfeited while moving from one state to a
// later one, given no activation completes strictly in between.
func TransitionCost(tbl *distance.Table, cfg Config, from, to State) int64 {
	return newModel(tbl, cfg.TimeBudget).cost(from, to.Elapsed)
}
