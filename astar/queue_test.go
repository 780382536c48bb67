// SPDX-License-Identifier: MIT
package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/activeplan/astar"
)

func TestQueue_Order(t *testing.T) {
	q := astar.NewQueue(func(a, b int) bool { return a < b })
	_, ok := q.Pop()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)

	for _, x := range []int{5, 1, 4, 1, 3, 9, 2} {
		q.Push(x)
	}
	top, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 1, top)
	assert.Equal(t, 7, q.Len())

	var got []int
	for q.Len() > 0 {
		x, _ := q.Pop()
		got = append(got, x)
	}
	assert.Equal(t, []int{1, 1, 2, 3, 4, 5, 9}, got)
}

func TestQueue_CustomOrder(t *testing.T) {
	type item struct {
		pri int
		seq int
	}
	q := astar.NewQueue(func(a, b item) bool {
		if a.pri != b.pri {
			return a.pri > b.pri
		}
		return a.seq < b.seq
	})
	q.Push(item{1, 0})
	q.Push(item{3, 1})
	q.Push(item{3, 2})
	q.Push(item{2, 3})

	var seqs []int
	for q.Len() > 0 {
		x, _ := q.Pop()
		seqs = append(seqs, x.seq)
	}
	assert.Equal(t, []int{1, 2, 3, 0}, seqs)
}

func TestQueue_NilLess(t *testing.T) {
	assert.Panics(t, func() { astar.NewQueue[int](nil) })
}
