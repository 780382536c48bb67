// Package builder turns descriptions into frozen core.Graph values.
//
// Two front ends share the package:
//
//   - Parse / ParseString read the line-oriented text format
//
//     Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//     Valve HH has flow rate=22; tunnel leads to valve GG
//
//     and report malformed input as *ParseError (errors.Is(err, ErrParse)).
//
//   - BuildGraph composes synthetic fixtures from Constructor values
//     (Path, Cycle, Star, Grid, RandomSparse, RandomConnected) under
//     functional options:
//     – WithIDScheme:  ExcelColumnIDFn (default), ValveIDFn, DefaultIDFn, SymbolNumberIDFn.
//     – WithRateFn:    ConstantRateFn (default 0), RatesFn, UniformRateFn, SparseRateFn.
//     – WithSeed / WithRand: RNG for stochastic constructors and rate functions.
//     – WithStartID:   start node (default: ID of index 0).
//
// Guarantees:
//
//   - Determinism: identical inputs, options and seeds yield identical graphs.
//   - Option constructors panic on meaningless arguments; constructors and
//     parsers return sentinel errors and never panic.
//   - Every graph returned by this package is frozen and ready for the
//     distance package.
package builder
