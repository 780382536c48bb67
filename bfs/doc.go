// Package bfs provides breadth-first search over a core.Graph, returning
// unit-cost shortest distances, parent links and discovery order.
//
// Every tunnel costs one time unit, so BFS depth is the exact travel time
// between nodes. The distance package runs one BFS per node of interest and
// passes the other nodes of interest as targets, so each search stops as
// soon as its row of the table is known.
//
// Neighbors come from core.Graph.NeighborIDs in sorted order, which makes
// the discovery order reproducible.
//
// Options:
//   - WithContext    cancellation, checked before each visit.
//   - WithOnVisit    hook run per dequeued node; an error aborts.
//   - WithMaxDepth   stop expanding beyond d tunnels.
//   - WithTargets    stop once every listed node is reached.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
