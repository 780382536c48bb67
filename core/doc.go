// Package core provides the Graph Model of the activation planner: a
// thread-safe, in-memory graph of nodes ("valves") that carry a
// non-negative reward rate and are connected by unit-cost tunnels.
//
// A Graph goes through two phases:
//
//   - Construction: AddNode / AddTunnel / SetStart, guarded by separate
//     sync.RWMutex locks for the node catalog (muNode) and the adjacency
//     (muAdj). Tunnels may reference nodes that are defined later, which is
//     how line-oriented inputs describe forward references.
//   - Read-only: Freeze validates the invariants (no dangling neighbor, start
//     node present) and rejects every later mutation with ErrFrozen.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(bool)  one-way tunnels when true; mirrored otherwise (default).
//	– WithStart(id)       designated start node (default "AA").
//
// Query methods return deterministic, sorted results:
//
//	Nodes() []string                        // O(V·log V)
//	RewardNodes() []string                  // nodes with Rate > 0
//	NeighborIDs(id string) ([]string, error)// O(d·log d)
//	Rate(id string) (int64, error)          // O(1)
//	TotalRate() int64                       // O(V)
//
// Quick ASCII example:
//
//	AA(0) ─── BB(13) ─── CC(2)
//
// is a corridor of three nodes where AA is transit-only.
package core
