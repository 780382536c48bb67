// SPDX-License-Identifier: MIT
package planner

import (
	"sort"
	"strconv"
)

// Retired is the Pos of an agent that stopped working for the rest of the budget.
const Retired = -1

// Agent is one mobile worker. Pos is a distance table index; FreeAt is the
// minute at which the agent finishes its current activation and may choose
// again. ID only labels plan steps; agents are otherwise interchangeable.
type Agent struct {
	ID     int
	Pos    int
	FreeAt int64
}

// State is one node of the search space for any number of agents.
// Values are never mutated after construction; successors get fresh slices.
type State struct {
	Elapsed int64
	Agents  []Agent
	Active  ActivationSet
}

// StartState places every agent on the start node at minute 0.
func StartState(agents int) State {
	s := State{Agents: make([]Agent, agents)}
	for i := range s.Agents {
		s.Agents[i] = Agent{ID: i, Pos: 0}
	}
	return s
}

// canonicalize sorts agents by (FreeAt, Pos, ID) in place.
func canonicalize(agents []Agent) {
	sort.Slice(agents, func(i, j int) bool {
		a, b := agents[i], agents[j]
		if a.FreeAt != b.FreeAt {
			return a.FreeAt < b.FreeAt
		}
		if a.Pos != b.Pos {
			return a.Pos < b.Pos
		}
		return a.ID < b.ID
	})
}

// Key is the canonical identity of s: elapsed time, agents without IDs in
// canonical order, and claimed nodes. Activation times at or before Elapsed
// are dropped since those nodes are simply "on" for the rest of the run.
func (s State) Key() string {
	buf := make([]byte, 0, 16+8*len(s.Agents)+6*s.Active.Len())
	buf = strconv.AppendInt(buf, s.Elapsed, 10)
	buf = append(buf, '|')
	for i, a := range s.Agents {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(a.Pos), 10)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, a.FreeAt, 10)
	}
	buf = append(buf, '|')
	buf = s.Active.appendKey(buf, s.Elapsed)

	return string(buf)
}

// String implements fmt.Stringer.
func (s State) String() string { return s.Key() }
