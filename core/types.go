// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Graph, GraphOption, sentinel errors and the NewGraph constructor.
//
// Concurrency:
//   - muNode guards nodes, start and the frozen flag.
//   - muAdj guards adjacency and the edge counter.
//   - Lock order is always muNode -> muAdj.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNegativeRate indicates a reward rate below zero.
	ErrNegativeRate = errors.New("core: reward rate is negative")

	// ErrLoopNotAllowed indicates a tunnel from a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDanglingNeighbor indicates an adjacency reference to a node that was never defined.
	ErrDanglingNeighbor = errors.New("core: neighbor references undefined node")

	// ErrStartNotFound indicates the designated start node is not part of the graph.
	ErrStartNotFound = errors.New("core: start node not found")

	// ErrFrozen indicates a mutation was attempted after Freeze.
	ErrFrozen = errors.New("core: graph is frozen")

	// ErrNotFrozen indicates a read-only consumer received a graph that was
	// never frozen. Returned by distance.Compute.
	ErrNotFrozen = errors.New("core: graph is not frozen")
)

// DefaultStart is the conventional start node ID used when none is configured.
const DefaultStart = "AA"

// Node is a location in the graph.
//
// Rate is the reward collected per time unit once the node is activated;
// zero marks a transit-only node that is never an activation target.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID string

	// Rate is the non-negative reward rate.
	Rate int64

	// defined is false for nodes only known as somebody's neighbor.
	defined bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether tunnels are one-way (true) or mirrored (false).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// WithStart designates the start node ID. Empty IDs are ignored.
func WithStart(id string) GraphOption {
	return func(g *Graph) {
		if id != "" {
			g.start = id
		}
	}
}

// Graph is an in-memory graph of rate-bearing nodes connected by unit-cost tunnels.
//
// A Graph is mutable until Freeze succeeds; afterwards it is read-only and
// may be shared between goroutines without further synchronization by callers.
type Graph struct {
	muNode sync.RWMutex // guards nodes, start, frozen
	muAdj  sync.RWMutex // guards adj, edges

	directed bool
	frozen   bool
	start    string

	nodes map[string]*Node
	edges int

	// adj[from][to] = struct{}{}; undirected graphs mirror every tunnel.
	adj map[string]map[string]struct{}
}

// NewGraph creates an empty Graph. By default the graph is undirected and
// starts at DefaultStart.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		start: DefaultStart,
		nodes: make(map[string]*Node),
		adj:   make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
