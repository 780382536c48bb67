// Package planner finds the activation schedule that collects the most
// reward from rate-bearing nodes within a fixed time budget, for one or more
// cooperating agents.
//
// Model:
//
//	An agent standing on node u may travel to an unclaimed node n in
//	d(u, n) minutes and spend one more minute activating it; from then on n
//	yields its rate every minute until the budget ends. Agents share one
//	ActivationSet, so no node is claimed twice.
//
// The search minimizes forfeited reward instead of maximizing collected
// reward: a transition spanning [t, t') costs (rates not yet flowing at t) ×
// (t' − t). States advance event by event: every agent that is free at the
// current minute picks a target or retires, and time jumps to the next
// minute any agent becomes free. A state is a goal once the budget is
// reached, and
//
//	Value = TotalRate × budget − cost.
//
// Agents are interchangeable, so states sort them and their canonical key
// ignores agent IDs; nodes activated at or before the current minute are
// keyed without their time. Both fold symmetric states together.
//
// The heuristic assumes every agent can activate a node every two minutes
// (one minute on the node it already stands on, if still unclaimed), pairs
// the highest rates with the earliest such slots, and is admissible and
// consistent for any agent count.
//
// Typical use:
//
//	g, _ := builder.Parse(r)
//	res, err := planner.SolveGraph(ctx, g, planner.Config{TimeBudget: 30, Agents: 1},
//	    planner.WithTimeLimit(10*time.Second), planner.WithPlan())
package planner
