// SPDX-License-Identifier: MIT
// Package: activeplan/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes).
//   • Adds nodes via cfg.idFn/cfg.rateFn in ascending index order (0..n-1).
//   • Emits tunnels in stable order i → i+1 for i=0..n-2.
//
// Complexity:
//   • Time: O(n). Space: O(n) for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/activeplan/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a corridor of n nodes.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addTunnel(g, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
