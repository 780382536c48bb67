// SPDX-License-Identifier: MIT
// Package: activeplan/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes).
//   • Node 0 is the hub; nodes 1..n-1 are leaves linked hub → leaf.
//   • Every leaf is two minutes away from every other leaf, which makes stars
//     the worst case for ordering decisions.

package builder

import (
	"fmt"

	"github.com/katalvlaran/activeplan/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a hub with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addTunnel(g, methodStar, ids[0], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
