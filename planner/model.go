// SPDX-License-Identifier: MIT
package planner

import (
	"github.com/katalvlaran/activeplan/distance"
)

// model is the transition model over a distance table. It implements
// astar.Problem[State, string] and astar.Completer[State].
type model struct {
	tbl     *distance.Table
	budget  int64
	total   int64
	targets []int // reward-bearing indices, rate descending then index ascending
}

func newModel(tbl *distance.Table, budget int64) *model {
	m := &model{tbl: tbl, budget: budget, total: tbl.TotalRate()}
	for i := 0; i < tbl.Size(); i++ {
		if tbl.Rate(i) > 0 {
			m.targets = append(m.targets, i)
		}
	}
	sortByRateDesc(m.targets, tbl)

	return m
}

func (m *model) Key(s State) string      { return s.Key() }
func (m *model) IsGoal(s State) bool     { return s.Elapsed >= m.budget }
func (m *model) Heuristic(s State) int64 { return m.heuristic(s) }

// activeRate is the rate already flowing at minute t.
func (m *model) activeRate(s State, t int64) int64 {
	var sum int64
	for _, e := range s.Active.entries {
		if e.At <= t {
			sum += m.tbl.Rate(e.Node)
		}
	}
	return sum
}

// cost is the reward forfeited while time advances from s.Elapsed to next.
// No pending activation completes strictly inside that interval because
// next is the earliest FreeAt and every pending activation time is the
// FreeAt of the agent performing it.
func (m *model) cost(s State, next int64) int64 {
	return (m.total - m.activeRate(s, s.Elapsed)) * (next - s.Elapsed)
}

// Complete is the forfeit of retiring every agent now: pending claims still
// complete, unclaimed nodes forfeit their rate until the budget ends.
func (m *model) Complete(s State) int64 {
	var sum int64
	for _, e := range s.Active.entries {
		if e.At > s.Elapsed {
			sum += m.tbl.Rate(e.Node) * (e.At - s.Elapsed)
		}
	}
	for _, n := range m.targets {
		if !s.Active.Contains(n) {
			sum += m.tbl.Rate(n) * (m.budget - s.Elapsed)
		}
	}
	return sum
}

// Successors enumerates every joint move of the agents whose FreeAt equals
// s.Elapsed. Each such agent either retires or travels to an unclaimed
// reward node it can reach and activate strictly before the budget ends;
// no node is claimed twice within one joint move.
func (m *model) Successors(s State, yield func(State, int64)) {
	if s.Elapsed >= m.budget {
		return
	}

	var deciders []int
	for i, a := range s.Agents {
		if a.Pos != Retired && a.FreeAt == s.Elapsed {
			deciders = append(deciders, i)
		}
	}
	if len(deciders) == 0 {
		// Only reachable from hand-built states; advance to the next event.
		next := s.withAgents(append([]Agent(nil), s.Agents...), s.Active, m.budget)
		yield(next, m.cost(s, next.Elapsed))
		return
	}

	agents := append([]Agent(nil), s.Agents...)
	var choose func(k int, active ActivationSet)
	choose = func(k int, active ActivationSet) {
		if k == len(deciders) {
			next := s.withAgents(append([]Agent(nil), agents...), active, m.budget)
			yield(next, m.cost(s, next.Elapsed))
			return
		}
		i := deciders[k]
		from := s.Agents[i]
		for _, n := range m.targets {
			if active.Contains(n) {
				continue
			}
			d := m.tbl.Dist(from.Pos, n)
			if d == distance.Unreachable {
				continue
			}
			at := s.Elapsed + d + 1
			if at >= m.budget {
				continue
			}
			agents[i] = Agent{ID: from.ID, Pos: n, FreeAt: at}
			choose(k+1, active.With(n, at))
		}
		agents[i] = Agent{ID: from.ID, Pos: Retired, FreeAt: m.budget}
		choose(k+1, active)
		agents[i] = from
	}
	choose(0, s.Active)
}

// withAgents builds the successor: canonical agent order, elapsed = min FreeAt.
func (s State) withAgents(agents []Agent, active ActivationSet, budget int64) State {
	canonicalize(agents)
	next := budget
	if len(agents) > 0 && agents[0].FreeAt < next {
		next = agents[0].FreeAt
	}
	return State{Elapsed: next, Agents: agents, Active: active}
}
