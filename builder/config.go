// SPDX-License-Identifier: MIT
// Package: activeplan/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn    = ExcelColumnIDFn ("A","B",...,"Z","AA",...)
//   • rng     = nil              (pure/deterministic unless seeded)
//   • rateFn  = ConstantRateFn(0) (transit-only fixtures)
//   • startID = ""               (resolved to idFn(0) by BuildGraph)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/activeplan/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn    IDFn
	rng     *rand.Rand
	rateFn  RateFn
	startID string
}

// newBuilderConfig applies options in order over the defaults.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   ExcelColumnIDFn,
		rateFn: ConstantRateFn(0),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// addNode inserts node idx with its generated ID and rate.
func (c builderConfig) addNode(g *core.Graph, method string, idx int) (string, error) {
	id := c.idFn(idx)
	if err := g.AddNode(id, c.rateFn(idx, c.rng)); err != nil {
		return "", builderErrorf(method, "AddNode(%s): %w", id, err)
	}

	return id, nil
}
