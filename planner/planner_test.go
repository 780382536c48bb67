// SPDX-License-Identifier: MIT
package planner_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/activeplan/builder"
	"github.com/katalvlaran/activeplan/distance"
	"github.com/katalvlaran/activeplan/planner"
)

const sampleCave = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

var quiet = planner.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

func mustTable(t testing.TB, in string) *distance.Table {
	t.Helper()
	g, err := builder.ParseString(in)
	require.NoError(t, err)
	tbl, err := distance.Compute(context.Background(), g)
	require.NoError(t, err)
	return tbl
}

// exampleTable is AA(0) - BB(13) - CC(2) on a corridor.
func exampleTable(t testing.TB) *distance.Table {
	t.Helper()
	tbl, err := distance.NewTable(
		[]string{"AA", "BB", "CC"},
		[]int64{0, 13, 2},
		[][]int64{{0, 1, 2}, {1, 0, 1}, {2, 1, 0}},
	)
	require.NoError(t, err)
	return tbl
}

// --- Worked examples ---

func TestSolve_WorkedExample(t *testing.T) {
	res, err := planner.Solve(context.Background(), exampleTable(t),
		planner.Config{TimeBudget: 10, Agents: 1}, planner.WithPlan(), quiet)
	require.NoError(t, err)

	assert.Equal(t, int64(116), res.Value)
	assert.Equal(t, int64(34), res.Cost)
	assert.True(t, res.Optimal)
	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, []planner.Step{
		{Agent: 0, Node: "BB", At: 2, Gain: 104},
		{Agent: 0, Node: "CC", At: 4, Gain: 12},
	}, res.Plan)
}

func TestSolve_Sample(t *testing.T) {
	tbl := mustTable(t, sampleCave)

	one, err := planner.Solve(context.Background(), tbl, planner.Config{TimeBudget: 30, Agents: 1}, planner.WithPlan(), quiet)
	require.NoError(t, err)
	assert.Equal(t, int64(1651), one.Value)

	two, err := planner.Solve(context.Background(), tbl, planner.Config{TimeBudget: 26, Agents: 2}, planner.WithPlan(), quiet)
	require.NoError(t, err)
	assert.Equal(t, int64(1707), two.Value)

	for _, res := range []*planner.Result{one, two} {
		var sum int64
		seen := map[string]bool{}
		for _, st := range res.Plan {
			sum += st.Gain
			assert.False(t, seen[st.Node], "node %s activated twice", st.Node)
			seen[st.Node] = true
		}
		assert.Equal(t, res.Value, sum)
	}

	agents := map[int]bool{}
	for _, st := range two.Plan {
		agents[st.Agent] = true
	}
	assert.Len(t, agents, 2, "both agents work in the two-agent plan")
}

func TestSolveGraph(t *testing.T) {
	g, err := builder.ParseString(sampleCave)
	require.NoError(t, err)

	res, err := planner.SolveGraph(context.Background(), g, planner.Config{TimeBudget: 30, Agents: 1},
		planner.WithDistanceConcurrency(4), quiet)
	require.NoError(t, err)
	assert.Equal(t, int64(1651), res.Value)

	_, err = planner.SolveGraph(context.Background(), nil, planner.Config{TimeBudget: 30, Agents: 1}, quiet)
	assert.ErrorIs(t, err, distance.ErrNilGraph)
}

func TestSolveGraph_DeadlineCoversDistancePhase(t *testing.T) {
	g, err := builder.ParseString(sampleCave)
	require.NoError(t, err)
	cfg := planner.Config{TimeBudget: 30, Agents: 1}

	for _, opt := range []planner.Option{
		planner.WithTimeLimit(0),
		planner.WithDeadline(time.Now().Add(-time.Second)),
	} {
		_, err = planner.SolveGraph(context.Background(), g, cfg, opt, quiet)
		require.ErrorIs(t, err, planner.ErrTimeout)
		assert.ErrorIs(t, err, context.DeadlineExceeded, "expired before any search state was expanded")

		var te *planner.TimeoutError
		require.True(t, errors.As(err, &te))
		assert.NotEmpty(t, te.RunID)
		assert.Zero(t, te.LowerBound)
		assert.Equal(t, g.TotalRate()*30, te.UpperBound)
		assert.Zero(t, te.Stats.Expanded)
	}

	// A generous limit is fixed once and still lets the search finish.
	res, err := planner.SolveGraph(context.Background(), g, cfg, planner.WithTimeLimit(time.Minute), quiet)
	require.NoError(t, err)
	assert.Equal(t, int64(1651), res.Value)
}

// --- Closed-form properties ---

func TestSolve_ZeroRewardIsZero(t *testing.T) {
	tbl := mustTable(t, "Valve AA has flow rate=0; tunnel leads to valve BB\nValve BB has flow rate=0; tunnel leads to valve AA\n")
	for _, budget := range []int64{1, 2, 7, 30} {
		for agents := 1; agents <= 3; agents++ {
			res, err := planner.Solve(context.Background(), tbl, planner.Config{TimeBudget: budget, Agents: agents}, quiet)
			require.NoError(t, err)
			assert.Zero(t, res.Value, "budget=%d agents=%d", budget, agents)
		}
	}
}

func TestSolve_SingleRewardNode(t *testing.T) {
	for _, d := range []int64{0, 1, 3, 8} {
		for _, budget := range []int64{1, 2, 5, 9, 12} {
			ids := []string{"S", "X"}
			rates := []int64{0, 7}
			dist := [][]int64{{0, d}, {d, 0}}
			if d == 0 {
				// The start itself carries the reward.
				ids, rates, dist = []string{"S"}, []int64{7}, [][]int64{{0}}
			}
			tbl, err := distance.NewTable(ids, rates, dist)
			require.NoError(t, err)

			want := 7 * (budget - d - 1)
			if want < 0 {
				want = 0
			}
			res, err := planner.Solve(context.Background(), tbl, planner.Config{TimeBudget: budget, Agents: 1}, quiet)
			require.NoError(t, err)
			assert.Equal(t, want, res.Value, "d=%d budget=%d", d, budget)
		}
	}
}

func TestSolve_UnreachableNodeForfeitsEverything(t *testing.T) {
	tbl, err := distance.NewTable([]string{"S", "X"}, []int64{0, 9},
		[][]int64{{0, distance.Unreachable}, {distance.Unreachable, 0}})
	require.NoError(t, err)
	res, err := planner.Solve(context.Background(), tbl, planner.Config{TimeBudget: 20, Agents: 2}, quiet)
	require.NoError(t, err)
	assert.Zero(t, res.Value)
}

func TestSolve_SecondAgentReachesFarSide(t *testing.T) {
	// Two rich nodes five minutes away on opposite ends of a corridor.
	tbl, err := distance.NewTable(
		[]string{"S", "L", "R"},
		[]int64{0, 10, 10},
		[][]int64{{0, 5, 5}, {5, 0, 10}, {5, 10, 0}},
	)
	require.NoError(t, err)
	cfg := planner.Config{TimeBudget: 8, Agents: 1}

	one, err := planner.Solve(context.Background(), tbl, cfg, quiet)
	require.NoError(t, err)
	cfg.Agents = 2
	two, err := planner.Solve(context.Background(), tbl, cfg, quiet)
	require.NoError(t, err)

	assert.Equal(t, int64(20), one.Value)
	assert.Equal(t, int64(40), two.Value)
}

// --- Input validation ---

func TestSolve_Validation(t *testing.T) {
	tbl := exampleTable(t)
	ctx := context.Background()

	_, err := planner.Solve(ctx, nil, planner.Config{TimeBudget: 1, Agents: 1})
	assert.ErrorIs(t, err, planner.ErrNilTable)

	_, err = planner.Solve(ctx, tbl, planner.Config{TimeBudget: 0, Agents: 1})
	assert.ErrorIs(t, err, planner.ErrBadBudget)

	_, err = planner.Solve(ctx, tbl, planner.Config{TimeBudget: 10, Agents: 0})
	assert.ErrorIs(t, err, planner.ErrBadAgents)

	for _, opt := range []planner.Option{
		planner.WithTimeLimit(-time.Second),
		planner.WithMaxExpansions(0),
		planner.WithDistanceConcurrency(0),
	} {
		_, err = planner.Solve(ctx, tbl, planner.Config{TimeBudget: 10, Agents: 1}, opt)
		assert.ErrorIs(t, err, planner.ErrOptionViolation)
	}
}

// --- Interrupted runs ---

func TestSolve_ZeroTimeLimit(t *testing.T) {
	tbl := mustTable(t, sampleCave)
	cfg := planner.Config{TimeBudget: 30, Agents: 1}

	_, err := planner.Solve(context.Background(), tbl, cfg, planner.WithTimeLimit(0), quiet)
	require.ErrorIs(t, err, planner.ErrTimeout)

	var te *planner.TimeoutError
	require.True(t, errors.As(err, &te))
	assert.NotEmpty(t, te.RunID)
	assert.LessOrEqual(t, te.LowerBound, int64(1651))
	assert.GreaterOrEqual(t, te.UpperBound, int64(1651))
	assert.GreaterOrEqual(t, te.LowerBound, int64(0))
}

func TestSolve_ExpansionLimitBounds(t *testing.T) {
	tbl := mustTable(t, sampleCave)
	cfg := planner.Config{TimeBudget: 26, Agents: 2}

	for _, limit := range []int{1, 10, 50} {
		_, err := planner.Solve(context.Background(), tbl, cfg, planner.WithMaxExpansions(limit), quiet)
		var te *planner.TimeoutError
		require.True(t, errors.As(err, &te), "limit=%d", limit)
		assert.LessOrEqual(t, te.LowerBound, int64(1707))
		assert.GreaterOrEqual(t, te.UpperBound, int64(1707))
		assert.Equal(t, limit, te.Stats.Expanded)
	}
}

func TestSolve_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := planner.Solve(ctx, exampleTable(t), planner.Config{TimeBudget: 10, Agents: 1}, quiet)
	assert.ErrorIs(t, err, planner.ErrTimeout)
	assert.ErrorIs(t, err, context.Canceled)
}

// --- Transition model ---

func TestSuccessors_Start(t *testing.T) {
	tbl := exampleTable(t)
	cfg := planner.Config{TimeBudget: 10, Agents: 1}
	start := planner.StartState(1)

	type succ struct {
		key  string
		cost int64
	}
	var got []succ
	planner.Successors(tbl, cfg, start, func(next planner.State, cost int64) {
		got = append(got, succ{next.Key(), cost})
		assert.Equal(t, cost, planner.TransitionCost(tbl, cfg, start, next))
	})

	// BB at minute 2, CC at minute 3, or retire to the end.
	assert.ElementsMatch(t, []succ{
		{"2|1:2|1", 30},
		{"3|2:3|2", 45},
		{"10|-1:10|", 150},
	}, got)
}

func TestSuccessors_NoDoubleClaim(t *testing.T) {
	tbl := exampleTable(t)
	cfg := planner.Config{TimeBudget: 10, Agents: 2}

	planner.Successors(tbl, cfg, planner.StartState(2), func(next planner.State, _ int64) {
		claimed := map[int]int{}
		for _, a := range next.Agents {
			if a.Pos != planner.Retired {
				claimed[a.Pos]++
			}
		}
		for pos, n := range claimed {
			assert.Equal(t, 1, n, "node %d claimed by %d agents", pos, n)
		}
		assert.Equal(t, next.Elapsed, next.Agents[0].FreeAt, "agents are in canonical order")
	})
}

func TestSuccessors_GoalHasNone(t *testing.T) {
	called := false
	goal := planner.State{Elapsed: 10, Agents: []planner.Agent{{Pos: planner.Retired, FreeAt: 10}}}
	planner.Successors(exampleTable(t), planner.Config{TimeBudget: 10, Agents: 1}, goal,
		func(planner.State, int64) { called = true })
	assert.False(t, called)
	assert.Zero(t, planner.Heuristic(exampleTable(t), planner.Config{TimeBudget: 10, Agents: 1}, goal))
}
