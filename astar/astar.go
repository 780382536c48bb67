// SPDX-License-Identifier: MIT
package astar

import (
	"fmt"
	"time"
)

// node is one frontier entry; parent links exist only with TrackPath.
type node[S any] struct {
	state  S
	g, f   int64
	seq    uint64
	parent *node[S]
}

// lessNode orders by f, then deeper g first, then insertion order.
func lessNode[S any](a, b *node[S]) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g > b.g
	}
	return a.seq < b.seq
}

// engine holds the mutable state of one Search call.
type engine[S any, K comparable] struct {
	p         Problem[S, K]
	completer Completer[S]
	opts      Options

	open  *Queue[*node[S]]
	best  map[K]int64
	seq   uint64
	stats Stats

	incumbent int64
	stepErr   error
}

// Search runs A* from start and returns the cheapest goal.
//
// Implementation:
//   - Stage 1: Push start with f = h(start). If p implements Completer, seed
//     the incumbent from start.
//   - Stage 2: Pop the minimum-f entry. Entries whose g exceeds the best
//     known g for their key are stale and skipped (lazy decrease-key).
//   - Stage 3: A popped goal is optimal under an admissible heuristic.
//   - Stage 4: Otherwise expand: every successor whose g strictly improves
//     on best[key] is recorded and pushed.
//
// Deadline and context are checked at every dequeue; an expired limit
// yields *TimeoutError.
//
// Errors:
//   - ErrNilProblem, ErrOptionViolation, ErrNegativeCost, ErrNoSolution.
//   - *TimeoutError (errors.Is(err, ErrTimeout)) on deadline, cancellation
//     or MaxExpansions.
//
// Complexity:
//   - Time O(N log N) over N generated states; Space O(N).
func Search[S any, K comparable](p Problem[S, K], start S, opts ...Option) (*Result[S], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	e := &engine[S, K]{
		p:         p,
		opts:      o,
		open:      NewQueue(lessNode[S]),
		best:      make(map[K]int64),
		incumbent: NoIncumbent,
	}
	if c, ok := p.(Completer[S]); ok {
		e.completer = c
	}

	return e.run(start)
}

func (e *engine[S, K]) push(n *node[S]) {
	e.seq++
	n.seq = e.seq
	e.open.Push(n)
	if l := e.open.Len(); l > e.stats.MaxFrontier {
		e.stats.MaxFrontier = l
	}
}

func (e *engine[S, K]) run(start S) (*Result[S], error) {
	e.best[e.p.Key(start)] = 0
	e.push(&node[S]{state: start, f: e.p.Heuristic(start)})
	e.improve(start, 0)

	for e.open.Len() > 0 {
		if err := e.interrupted(); err != nil {
			return nil, err
		}
		cur, _ := e.open.Pop()
		if cur.g > e.best[e.p.Key(cur.state)] {
			continue
		}
		if e.p.IsGoal(cur.state) {
			return e.result(cur), nil
		}

		e.stats.Expanded++
		e.improve(cur.state, cur.g)
		e.expand(cur)
		if e.stepErr != nil {
			return nil, e.stepErr
		}
		if e.opts.OnExpand != nil {
			e.opts.OnExpand(e.stats)
		}
	}

	return nil, ErrNoSolution
}

// interrupted polls the limits; nil means keep going.
func (e *engine[S, K]) interrupted() error {
	if e.opts.MaxExpansions > 0 && e.stats.Expanded >= e.opts.MaxExpansions {
		return e.timeout(ErrExpansionLimit)
	}
	if err := e.opts.Ctx.Err(); err != nil {
		return e.timeout(err)
	}
	if !e.opts.Deadline.IsZero() && !time.Now().Before(e.opts.Deadline) {
		return e.timeout(nil)
	}
	return nil
}

func (e *engine[S, K]) timeout(cause error) *TimeoutError {
	lower := int64(0)
	if top, ok := e.open.Peek(); ok {
		lower = top.f
	}
	if e.incumbent != NoIncumbent && lower > e.incumbent {
		lower = e.incumbent
	}
	return &TimeoutError{Incumbent: e.incumbent, LowerBound: lower, Stats: e.stats, Cause: cause}
}

// improve tightens the incumbent with a cheap completion from s.
func (e *engine[S, K]) improve(s S, g int64) {
	if e.completer == nil {
		return
	}
	if c := g + e.completer.Complete(s); c < e.incumbent {
		e.incumbent = c
	}
}

func (e *engine[S, K]) expand(cur *node[S]) {
	e.p.Successors(cur.state, func(next S, cost int64) {
		if e.stepErr != nil {
			return
		}
		if cost < 0 {
			e.stepErr = fmt.Errorf("%w: %d", ErrNegativeCost, cost)
			return
		}
		e.stats.Generated++
		g := cur.g + cost
		k := e.p.Key(next)
		if old, seen := e.best[k]; seen {
			if old <= g {
				return
			}
			e.stats.Reopened++
		}
		e.best[k] = g
		if e.p.IsGoal(next) && g < e.incumbent {
			e.incumbent = g
		}

		n := &node[S]{state: next, g: g, f: g + e.p.Heuristic(next)}
		if e.opts.TrackPath {
			n.parent = cur
		}
		e.push(n)
	})
}

func (e *engine[S, K]) result(goal *node[S]) *Result[S] {
	res := &Result[S]{Goal: goal.state, Cost: goal.g, Stats: e.stats}
	if e.opts.TrackPath {
		for n := goal; n != nil; n = n.parent {
			res.Path = append(res.Path, n.state)
		}
		for i, j := 0, len(res.Path)-1; i < j; i, j = i+1, j-1 {
			res.Path[i], res.Path[j] = res.Path[j], res.Path[i]
		}
	}
	return res
}
