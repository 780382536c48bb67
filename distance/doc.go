// Package distance builds the all-pairs travel-time table between the nodes
// that matter to a planner: the start node and every reward-bearing node.
//
// Transit-only nodes disappear from the table; a move in the planner is
// "travel the shortest path to a reward node", never a single tunnel step.
//
// Index convention:
//
//	0        the start node
//	1..K     reward-bearing nodes in ascending ID order
//
// If the start node itself carries reward it appears once, at index 0.
// Unreachable pairs hold Unreachable (-1).
//
// Compute runs one breadth-first search per indexed node (tunnels cost one
// minute each), optionally fanned out over a bounded errgroup.
package distance
