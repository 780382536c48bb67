// SPDX-License-Identifier: MIT
package astar

import "container/heap"

// Queue is a binary-heap priority queue ordered by a caller-supplied less.
// The zero value is not usable; call NewQueue. Not safe for concurrent use.
type Queue[T any] struct {
	h itemHeap[T]
}

// NewQueue returns an empty queue. Panics if less is nil.
func NewQueue[T any](less func(a, b T) bool) *Queue[T] {
	if less == nil {
		panic("astar: NewQueue(nil)")
	}
	return &Queue[T]{h: itemHeap[T]{less: less}}
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return len(q.h.items) }

// Push inserts x. O(log n).
func (q *Queue[T]) Push(x T) { heap.Push(&q.h, x) }

// Pop removes and returns the minimum item. ok is false on an empty queue.
func (q *Queue[T]) Pop() (x T, ok bool) {
	if len(q.h.items) == 0 {
		return x, false
	}
	return heap.Pop(&q.h).(T), true
}

// Peek returns the minimum item without removing it.
func (q *Queue[T]) Peek() (x T, ok bool) {
	if len(q.h.items) == 0 {
		return x, false
	}
	return q.h.items[0], true
}

// itemHeap adapts a slice to container/heap.
type itemHeap[T any] struct {
	items []T
	less  func(a, b T) bool
}

func (h itemHeap[T]) Len() int           { return len(h.items) }
func (h itemHeap[T]) Less(i, j int) bool { return h.less(h.items[i], h.items[j]) }
func (h itemHeap[T]) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

func (h *itemHeap[T]) Push(x any) { h.items = append(h.items, x.(T)) }

func (h *itemHeap[T]) Pop() any {
	old := h.items
	n := len(old)
	x := old[n-1]
	var zero T
	old[n-1] = zero // drop reference for GC
	h.items = old[:n-1]
	return x
}
