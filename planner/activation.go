// SPDX-License-Identifier: MIT
package planner

import (
	"fmt"
	"sort"
	"strconv"
)

// Activation records that a node was switched on at a point in time.
type Activation struct {
	Node int   // distance table index
	At   int64 // minute from which the node's rate flows
}

// ActivationSet is an immutable set of activations with at most one entry
// per node. Entries are kept sorted by node index, so two sets holding the
// same pairs are Equal and share a Key whatever order they were built in.
//
// The zero value is the empty set.
type ActivationSet struct {
	entries []Activation
}

// NewActivationSet builds a canonical set from acts in any order.
// Returns ErrDuplicateActivation if a node appears twice.
func NewActivationSet(acts ...Activation) (ActivationSet, error) {
	entries := append([]Activation(nil), acts...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Node < entries[j].Node })
	for i := 1; i < len(entries); i++ {
		if entries[i].Node == entries[i-1].Node {
			return ActivationSet{}, fmt.Errorf("%w: node %d", ErrDuplicateActivation, entries[i].Node)
		}
	}

	return ActivationSet{entries: entries}, nil
}

// search returns the insertion point of node and whether it is present.
func (a ActivationSet) search(node int) (int, bool) {
	i := sort.Search(len(a.entries), func(i int) bool { return a.entries[i].Node >= node })
	return i, i < len(a.entries) && a.entries[i].Node == node
}

// With returns a set that also holds (node, at). A set already holding node
// is returned unchanged.
func (a ActivationSet) With(node int, at int64) ActivationSet {
	i, found := a.search(node)
	if found {
		return a
	}
	entries := make([]Activation, 0, len(a.entries)+1)
	entries = append(entries, a.entries[:i]...)
	entries = append(entries, Activation{Node: node, At: at})
	entries = append(entries, a.entries[i:]...)

	return ActivationSet{entries: entries}
}

// Len returns the number of activations.
func (a ActivationSet) Len() int { return len(a.entries) }

// Contains reports whether node was claimed.
func (a ActivationSet) Contains(node int) bool {
	_, found := a.search(node)
	return found
}

// At returns the activation time of node.
func (a ActivationSet) At(node int) (int64, bool) {
	i, found := a.search(node)
	if !found {
		return 0, false
	}
	return a.entries[i].At, true
}

// Entries returns a copy of the activations in node order.
func (a ActivationSet) Entries() []Activation {
	return append([]Activation(nil), a.entries...)
}

// Equal reports whether both sets hold exactly the same pairs.
func (a ActivationSet) Equal(b ActivationSet) bool {
	if len(a.entries) != len(b.entries) {
		return false
	}
	for i := range a.entries {
		if a.entries[i] != b.entries[i] {
			return false
		}
	}
	return true
}

// Key returns a stable string form, e.g. "1@2,3@4".
func (a ActivationSet) Key() string {
	return string(a.appendKey(nil, -1))
}

// appendKey writes the canonical form to buf. Activations at or before
// settled are written without their time.
func (a ActivationSet) appendKey(buf []byte, settled int64) []byte {
	for i, e := range a.entries {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(e.Node), 10)
		if e.At > settled {
			buf = append(buf, '@')
			buf = strconv.AppendInt(buf, e.At, 10)
		}
	}
	return buf
}

// String implements fmt.Stringer.
func (a ActivationSet) String() string { return "{" + a.Key() + "}" }
