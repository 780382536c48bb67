// SPDX-License-Identifier: MIT
package planner_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/activeplan/builder"
	"github.com/katalvlaran/activeplan/core"
	"github.com/katalvlaran/activeplan/distance"
	"github.com/katalvlaran/activeplan/planner"
)

// randomTable builds a small cave with at most six reward nodes.
func randomTable(t *testing.T, seed int64, directed bool) *distance.Table {
	t.Helper()
	rates := func(idx int, rng *rand.Rand) int64 {
		if idx == 0 || idx > 6 || rng.Intn(5) == 0 {
			return 0
		}
		return 1 + rng.Int63n(25)
	}
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithDirected(directed)},
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithRateFn(rates)},
		builder.RandomConnected(9, 0.15),
	)
	require.NoError(t, err)
	tbl, err := distance.Compute(context.Background(), g)
	require.NoError(t, err)
	return tbl
}

// bestBySubset enumerates every activation order of one agent and records,
// per exact set of activated table indices, the best value reached.
func bestBySubset(tbl *distance.Table, budget int64) map[uint]int64 {
	best := map[uint]int64{0: 0}
	var walk func(pos int, t int64, mask uint, value int64)
	walk = func(pos int, t int64, mask uint, value int64) {
		if v, ok := best[mask]; !ok || value > v {
			best[mask] = value
		}
		for n := 0; n < tbl.Size(); n++ {
			if tbl.Rate(n) == 0 || mask&(1<<n) != 0 || !tbl.Reachable(pos, n) {
				continue
			}
			at := t + tbl.Dist(pos, n) + 1
			if at >= budget {
				continue
			}
			walk(n, at, mask|1<<n, value+tbl.Rate(n)*(budget-at))
		}
	}
	walk(0, 0, 0, 0)
	return best
}

// bruteForce is the optimum for one or two agents: agents only interact by
// never claiming the same node, so the best split of disjoint subsets wins.
func bruteForce(tbl *distance.Table, budget int64, agents int) int64 {
	best := bestBySubset(tbl, budget)
	var out int64
	for a, va := range best {
		if agents == 1 {
			if va > out {
				out = va
			}
			continue
		}
		for b, vb := range best {
			if a&b == 0 && va+vb > out {
				out = va + vb
			}
		}
	}
	return out
}

// exactCostToGo solves every reachable state exhaustively, memoized by key.
func exactCostToGo(tbl *distance.Table, cfg planner.Config) (map[string]int64, map[string]planner.State) {
	memo := map[string]int64{}
	states := map[string]planner.State{}
	var solve func(s planner.State) int64
	solve = func(s planner.State) int64 {
		k := s.Key()
		if v, ok := memo[k]; ok {
			return v
		}
		states[k] = s
		if s.Elapsed >= cfg.TimeBudget {
			memo[k] = 0
			return 0
		}
		best := int64(-1)
		planner.Successors(tbl, cfg, s, func(next planner.State, cost int64) {
			if v := cost + solve(next); best < 0 || v < best {
				best = v
			}
		})
		memo[k] = best
		return best
	}
	solve(planner.StartState(cfg.Agents))
	return memo, states
}

// --- Optimality against brute force ---

func TestSolve_MatchesBruteForce(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		for _, directed := range []bool{false, true} {
			tbl := randomTable(t, seed, directed)
			for agents := 1; agents <= 2; agents++ {
				cfg := planner.Config{TimeBudget: 14, Agents: agents}
				name := fmt.Sprintf("seed=%d directed=%v agents=%d", seed, directed, agents)

				res, err := planner.Solve(context.Background(), tbl, cfg, quiet)
				require.NoError(t, err, name)
				assert.Equal(t, bruteForce(tbl, cfg.TimeBudget, agents), res.Value, name)
			}
		}
	}
}

// --- Heuristic properties ---

func TestHeuristic_AdmissibleAndConsistent(t *testing.T) {
	for _, directed := range []bool{false, true} {
		for seed := int64(1); seed <= 6; seed++ {
			tbl := randomTable(t, seed, directed)
			for agents := 1; agents <= 3; agents++ {
				cfg := planner.Config{TimeBudget: 11, Agents: agents}
				memo, states := exactCostToGo(tbl, cfg)

				for k, s := range states {
					h := planner.Heuristic(tbl, cfg, s)
					require.LessOrEqual(t, h, memo[k], "directed=%t seed=%d agents=%d admissibility at %s", directed, seed, agents, k)

					planner.Successors(tbl, cfg, s, func(next planner.State, cost int64) {
						hn := planner.Heuristic(tbl, cfg, next)
						require.LessOrEqual(t, h, cost+hn, "directed=%t seed=%d agents=%d consistency %s -> %s", directed, seed, agents, k, next.Key())
					})
				}
			}
		}
	}
}

func TestHeuristic_StartMatchesSolveBounds(t *testing.T) {
	tbl := randomTable(t, 3, false)
	cfg := planner.Config{TimeBudget: 14, Agents: 2}
	memo, _ := exactCostToGo(tbl, cfg)

	res, err := planner.Solve(context.Background(), tbl, cfg, quiet)
	require.NoError(t, err)
	assert.Equal(t, memo[planner.StartState(2).Key()], res.Cost)
	assert.LessOrEqual(t, planner.Heuristic(tbl, cfg, planner.StartState(2)), res.Cost)
}

// --- Agent count ---

func TestSolve_MoreAgentsNeverWorse(t *testing.T) {
	for seed := int64(20); seed < 30; seed++ {
		tbl := randomTable(t, seed, seed%2 == 0)
		var prev int64 = -1
		for agents := 1; agents <= 3; agents++ {
			res, err := planner.Solve(context.Background(), tbl, planner.Config{TimeBudget: 12, Agents: agents}, quiet)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.Value, prev, "seed=%d agents=%d", seed, agents)
			prev = res.Value
		}
	}
}
