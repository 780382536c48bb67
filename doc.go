// Package activeplan plans time-bounded activations of rate-bearing nodes.
//
// A cave is a graph whose nodes carry a non-negative reward rate. One or
// more agents start at a common node, move along unit-time tunnels and spend
// one further time unit to activate a node. From the moment of activation
// until the time budget runs out the node contributes its rate every unit.
// The planners in this module find the activation schedule with the largest
// total reward, or report bounds on it when stopped early.
//
// Layout:
//
//	core/      - Graph, Node and Tunnel primitives with freeze semantics
//	bfs/       - unit-weight breadth-first search with depth and parents
//	builder/   - text parser and deterministic synthetic fixtures
//	distance/  - all-pairs travel times between start and reward nodes
//	astar/     - generic best-first search with incumbent tracking
//	planner/   - activation state space, admissible heuristic and Solve
//	config/    - YAML configuration with validation
//	telemetry/ - OpenTelemetry providers for spans and metrics
//	cmd/       - the activeplan command-line tool
//
// Quick example:
//
//	g, _ := builder.ParseString(input)
//	res, _ := planner.SolveGraph(ctx, g, planner.Config{TimeBudget: 30, Agents: 1})
//	fmt.Println(res.Value)
//
//	go install github.com/katalvlaran/activeplan/cmd/activeplan@latest
package activeplan
