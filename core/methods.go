// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Node lifecycle, tunnels, Freeze and read-only queries.
//
// Determinism:
//   - Nodes(), RewardNodes() and NeighborIDs() return IDs sorted ascending.
package core

import (
	"fmt"
	"sort"
)

// AddNode defines a node with the given reward rate.
//
// Implementation:
//   - Stage 1: Validate ID and rate.
//   - Stage 2: Under muNode, reject frozen graphs, then insert or upgrade a
//     placeholder created by an earlier AddTunnel.
//   - Stage 3: Bootstrap the adjacency bucket under muAdj.
//
// Errors:
//   - ErrEmptyNodeID, ErrNegativeRate, ErrFrozen.
//
// Notes:
//   - Defining the same node twice overwrites its rate; duplicate detection is
//     a parser concern (see builder.ErrDuplicateNode).
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(id string, rate int64) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if rate < 0 {
		return fmt.Errorf("%w: node %q rate=%d", ErrNegativeRate, id, rate)
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	n, ok := g.nodes[id]
	if !ok {
		n = &Node{ID: id}
		g.nodes[id] = n
	}
	n.Rate = rate
	n.defined = true

	g.muAdj.Lock()
	if _, ok = g.adj[id]; !ok {
		g.adj[id] = make(map[string]struct{})
	}
	g.muAdj.Unlock()

	return nil
}

// AddTunnel connects from→to (and to→from on undirected graphs).
// Endpoints that were not defined yet are recorded as placeholders and must
// be defined via AddNode before Freeze, otherwise Freeze reports
// ErrDanglingNeighbor. Repeated tunnels collapse into one.
//
// Errors:
//   - ErrEmptyNodeID, ErrLoopNotAllowed, ErrFrozen.
//
// Complexity:
//   - Time O(1) amortized.
func (g *Graph) AddTunnel(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if from == to {
		return fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	for _, id := range [2]string{from, to} {
		if _, ok := g.nodes[id]; !ok {
			g.nodes[id] = &Node{ID: id}
		}
	}

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	if g.link(from, to) {
		g.edges++
	}
	if !g.directed {
		g.link(to, from)
	}

	return nil
}

// link inserts from→to into adj and reports whether it was new. Caller holds muAdj.
func (g *Graph) link(from, to string) bool {
	bucket, ok := g.adj[from]
	if !ok {
		bucket = make(map[string]struct{})
		g.adj[from] = bucket
	}
	if _, ok = bucket[to]; ok {
		return false
	}
	bucket[to] = struct{}{}
	if _, ok = g.adj[to]; !ok {
		g.adj[to] = make(map[string]struct{})
	}

	return true
}

// SetStart changes the designated start node before Freeze.
func (g *Graph) SetStart(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()
	if g.frozen {
		return ErrFrozen
	}
	g.start = id

	return nil
}

// Freeze validates the graph invariants and makes the graph read-only.
//
// Implementation:
//   - Stage 1: Every node referenced by a tunnel must have been defined.
//   - Stage 2: The start node must exist.
//   - Stage 3: Flip the frozen flag; later mutations fail with ErrFrozen.
//
// Freeze is idempotent. Undefined nodes are reported in sorted order so the
// error text is deterministic.
func (g *Graph) Freeze() error {
	g.muNode.Lock()
	defer g.muNode.Unlock()
	if g.frozen {
		return nil
	}

	var dangling []string
	for id, n := range g.nodes {
		if !n.defined {
			dangling = append(dangling, id)
		}
	}
	if len(dangling) > 0 {
		sort.Strings(dangling)
		return fmt.Errorf("%w: %v", ErrDanglingNeighbor, dangling)
	}
	if _, ok := g.nodes[g.start]; !ok {
		return fmt.Errorf("%w: %q", ErrStartNotFound, g.start)
	}
	g.frozen = true

	return nil
}

// Frozen reports whether Freeze has succeeded.
func (g *Graph) Frozen() bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.frozen
}

// Directed reports whether tunnels are one-way.
func (g *Graph) Directed() bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.directed
}

// Start returns the designated start node ID.
func (g *Graph) Start() string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.start
}

// HasNode reports whether id is a defined node.
func (g *Graph) HasNode(id string) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]

	return ok && n.defined
}

// Rate returns the reward rate of id.
func (g *Graph) Rate(id string) (int64, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok || !n.defined {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	return n.Rate, nil
}

// NeighborIDs returns the sorted IDs reachable from id through one tunnel.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.muNode.RLock()
	_, ok := g.nodes[id]
	g.muNode.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	g.muAdj.RLock()
	out := make([]string, 0, len(g.adj[id]))
	for to := range g.adj[id] {
		out = append(out, to)
	}
	g.muAdj.RUnlock()
	sort.Strings(out)

	return out, nil
}

// Nodes returns all defined node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	g.muNode.RLock()
	out := make([]string, 0, len(g.nodes))
	for id, n := range g.nodes {
		if n.defined {
			out = append(out, id)
		}
	}
	g.muNode.RUnlock()
	sort.Strings(out)

	return out
}

// RewardNodes returns the IDs of nodes with a positive rate, sorted ascending.
func (g *Graph) RewardNodes() []string {
	g.muNode.RLock()
	out := make([]string, 0, len(g.nodes))
	for id, n := range g.nodes {
		if n.defined && n.Rate > 0 {
			out = append(out, id)
		}
	}
	g.muNode.RUnlock()
	sort.Strings(out)

	return out
}

// TotalRate sums the reward rates of all nodes.
func (g *Graph) TotalRate() int64 {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	var sum int64
	for _, n := range g.nodes {
		sum += n.Rate
	}

	return sum
}

// NodeCount returns the number of defined nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	c := 0
	for _, n := range g.nodes {
		if n.defined {
			c++
		}
	}

	return c
}

// EdgeCount returns the number of distinct tunnels (an undirected tunnel counts once).
func (g *Graph) EdgeCount() int {
	g.muAdj.RLock()
	defer g.muAdj.RUnlock()

	return g.edges
}
