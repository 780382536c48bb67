// SPDX-License-Identifier: MIT
package distance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/activeplan/core"
)

// Unreachable marks a pair with no path.
const Unreachable int64 = -1

// StartIndex is the table index of the start node.
const StartIndex = 0

var (
	// ErrNilGraph is returned when Compute receives a nil graph.
	ErrNilGraph = errors.New("distance: graph is nil")

	// ErrNotFrozen is returned when Compute receives a graph still under
	// construction. It is core.ErrNotFrozen.
	ErrNotFrozen = core.ErrNotFrozen

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")

	// ErrBadTable is returned by NewTable for inconsistent input.
	ErrBadTable = errors.New("distance: malformed table")
)

// Table is the immutable travel-time matrix over indexed nodes.
type Table struct {
	ids   []string
	rates []int64
	dist  []int64 // row-major n×n
	index map[string]int
}

// NewTable assembles a table from raw parts. ids[0] is the start node; dist
// is indexed [from][to]. Inputs are copied.
//
// Errors:
//   - ErrBadTable if sizes disagree, IDs repeat or are empty, a rate is
//     negative, a diagonal entry is non-zero, or an entry is below Unreachable.
func NewTable(ids []string, rates []int64, dist [][]int64) (*Table, error) {
	n := len(ids)
	if n == 0 {
		return nil, fmt.Errorf("%w: no nodes", ErrBadTable)
	}
	if len(rates) != n || len(dist) != n {
		return nil, fmt.Errorf("%w: %d ids, %d rates, %d rows", ErrBadTable, n, len(rates), len(dist))
	}
	t := newTable(ids, rates)
	if len(t.index) != n {
		return nil, fmt.Errorf("%w: duplicate IDs", ErrBadTable)
	}
	for i := 0; i < n; i++ {
		if ids[i] == "" {
			return nil, fmt.Errorf("%w: empty ID at %d", ErrBadTable, i)
		}
		if rates[i] < 0 {
			return nil, fmt.Errorf("%w: negative rate for %q", ErrBadTable, ids[i])
		}
		if len(dist[i]) != n {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrBadTable, i, len(dist[i]))
		}
		for j, d := range dist[i] {
			// Distinct nodes are at least one tunnel apart.
			if d < Unreachable || (i == j && d != 0) || (i != j && d == 0) {
				return nil, fmt.Errorf("%w: dist[%d][%d]=%d", ErrBadTable, i, j, d)
			}
			t.dist[i*n+j] = d
		}
	}

	return t, nil
}

func newTable(ids []string, rates []int64) *Table {
	n := len(ids)
	t := &Table{
		ids:   append([]string(nil), ids...),
		rates: append([]int64(nil), rates...),
		dist:  make([]int64, n*n),
		index: make(map[string]int, n),
	}
	for i, id := range ids {
		t.index[id] = i
	}

	return t
}

// Size returns the number of indexed nodes.
func (t *Table) Size() int { return len(t.ids) }

// ID returns the node ID at index i.
func (t *Table) ID(i int) string { return t.ids[i] }

// IDs returns a copy of all indexed IDs.
func (t *Table) IDs() []string { return append([]string(nil), t.ids...) }

// Index returns the table index of id.
func (t *Table) Index(id string) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// Rate returns the reward rate of index i.
func (t *Table) Rate(i int) int64 { return t.rates[i] }

// Rates returns a copy of all rates in index order.
func (t *Table) Rates() []int64 { return append([]int64(nil), t.rates...) }

// TotalRate is the sum of all indexed rates.
func (t *Table) TotalRate() int64 {
	var sum int64
	for _, r := range t.rates {
		sum += r
	}

	return sum
}

// Dist returns the travel time from i to j, or Unreachable.
func (t *Table) Dist(i, j int) int64 { return t.dist[i*len(t.ids)+j] }

// Reachable reports whether j can be reached from i.
func (t *Table) Reachable(i, j int) bool { return t.Dist(i, j) != Unreachable }

// String renders the matrix with a header row, "-" for unreachable pairs.
func (t *Table) String() string {
	var b strings.Builder
	width := 2
	for _, id := range t.ids {
		if len(id) > width {
			width = len(id)
		}
	}
	fmt.Fprintf(&b, "%*s", width, "")
	for _, id := range t.ids {
		fmt.Fprintf(&b, " %*s", width, id)
	}
	for i, id := range t.ids {
		fmt.Fprintf(&b, "\n%*s", width, id)
		for j := range t.ids {
			if d := t.Dist(i, j); d == Unreachable {
				fmt.Fprintf(&b, " %*s", width, "-")
			} else {
				fmt.Fprintf(&b, " %*d", width, d)
			}
		}
	}

	return b.String()
}
