// SPDX-License-Identifier: MIT
// Package: activeplan/builder
//
// api.go - entry points for synthetic fixtures.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves
//     cfg, runs cons in order, designates the start node and freezes g.
//   - Constructors are implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//
// Text inputs go through Parse (parse.go) instead.

package builder

import (
	"fmt"

	"github.com/katalvlaran/activeplan/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they never panic and never freeze the graph themselves.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, applies all constructors in order and
// returns the frozen result.
//
// The start node is the WithStartID value, or the ID of index 0 under the
// configured ID scheme.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped as "BuildGraph: %w".
//   - core.ErrStartNotFound / core.ErrDanglingNeighbor from Freeze.
//
// Complexity:
//   - O(len(bopts)) to resolve options plus the sum of constructor costs.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	start := cfg.startID
	if start == "" {
		start = cfg.idFn(0)
	}
	if err := g.SetStart(start); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}
	if err := g.Freeze(); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}
