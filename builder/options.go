// SPDX-License-Identifier: MIT
// Package: activeplan/builder
//
// options.go - functional options for synthetic fixtures.
//
// Option constructors validate and PANIC on meaningless inputs; the
// constructors themselves never panic and return sentinel errors instead.

package builder

import "math/rand"

// BuilderOption customizes fixture construction.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic node ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG so fixtures are reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRateFn overrides the per-node reward rate generator. Panics on nil.
func WithRateFn(fn RateFn) BuilderOption {
	if fn == nil {
		panic("builder: WithRateFn(nil)")
	}
	return func(c *builderConfig) { c.rateFn = fn }
}

// WithStartID designates the start node of the fixture (default: idFn(0)).
func WithStartID(id string) BuilderOption {
	if id == "" {
		panic("builder: WithStartID(\"\")")
	}
	return func(c *builderConfig) { c.startID = id }
}
