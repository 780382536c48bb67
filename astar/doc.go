// Package astar is a generic best-first search engine for problems with
// non-negative integer step costs and an admissible heuristic.
//
// A caller describes the space through Problem[S, K]: a canonical key per
// state, a goal test, a successor generator and a heuristic. Search keeps one
// best-cost map keyed by K (insert only on strict improvement), a binary-heap
// frontier ordered by f = g + h with ties broken toward deeper g and then
// insertion order, and skips stale frontier entries on dequeue.
//
// Bounded runs:
//
//	res, err := astar.Search(p, start, astar.WithTimeLimit(2*time.Second))
//	var te *astar.TimeoutError
//	if errors.As(err, &te) {
//	    // te.LowerBound ≤ optimal ≤ te.Incumbent
//	}
//
// Problems that also implement Completer let Search maintain an incumbent
// (an upper bound from a cheap completion), so an interrupted search still
// reports a usable answer.
//
// Queue[T] is exported for reuse as a plain generic priority queue.
package astar
