// SPDX-License-Identifier: MIT
package planner

import (
	"sort"

	"github.com/katalvlaran/activeplan/distance"
)

// slotGap is the fastest cadence of one agent: one minute to move to a
// distinct node, one to activate it.
const slotGap = 2

// heuristic is a lower bound on the reward still to be forfeited from s.
//
// Implementation:
//   - Stage 1: Pending claims (activation time after Elapsed) forfeit exactly
//     rate × (at − t).
//   - Stage 2: Every working agent offers activation slots: FreeAt+1 when it
//     stands on an unclaimed reward node, FreeAt+2 otherwise, then one every
//     two minutes. Distances are ignored.
//   - Stage 3: Unclaimed nodes, highest rate first, take the earliest slot
//     left across all agents; a slot at or past the budget forfeits the
//     whole remaining window.
//
// Pairing descending rates with ascending slots minimizes Σ rate × slot, so
// no real schedule, whose activation times dominate some slot assignment,
// can do better. The bound is also consistent: a real transition is one of
// the schedules the relaxation ranges over.
func (m *model) heuristic(s State) int64 {
	t := s.Elapsed
	if t >= m.budget {
		return 0
	}

	var h int64
	for _, e := range s.Active.entries {
		if e.At > t {
			h += m.tbl.Rate(e.Node) * (e.At - t)
		}
	}

	next := make([]int64, 0, len(s.Agents))
	for _, a := range s.Agents {
		if a.Pos == Retired {
			continue
		}
		first := a.FreeAt + slotGap
		if m.tbl.Rate(a.Pos) > 0 && !s.Active.Contains(a.Pos) {
			first = a.FreeAt + 1
		}
		next = append(next, first)
	}

	for _, n := range m.targets {
		if s.Active.Contains(n) {
			continue
		}
		slot := m.budget
		if j := earliest(next); j >= 0 && next[j] < m.budget {
			slot = next[j]
			next[j] += slotGap
		}
		h += m.tbl.Rate(n) * (slot - t)
	}

	return h
}

// earliest returns the index of the smallest slot, or -1 if there is none.
func earliest(next []int64) int {
	best := -1
	for j, v := range next {
		if best < 0 || v < next[best] {
			best = j
		}
	}
	return best
}

// sortByRateDesc orders indices by rate descending, index ascending on ties.
func sortByRateDesc(idx []int, tbl *distance.Table) {
	sort.Slice(idx, func(i, j int) bool {
		ri, rj := tbl.Rate(idx[i]), tbl.Rate(idx[j])
		if ri != rj {
			return ri > rj
		}
		return idx[i] < idx[j]
	})
}
