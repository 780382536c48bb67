// SPDX-License-Identifier: MIT
// Package: activeplan/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 and rows*cols ≥ 2 (else ErrTooFewNodes).
//   • Node index is r*cols + c (row-major).
//   • Emits, per cell in row-major order, the right then the down tunnel.
//
// Complexity:
//   • Time: O(rows*cols). Space: O(rows*cols).

package builder

import (
	"fmt"

	"github.com/katalvlaran/activeplan/core"
)

const methodGrid = "Grid"

// Grid returns a Constructor that builds a 4-neighborhood lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 || rows*cols < 2 {
			return fmt.Errorf("%s: %dx%d: %w", methodGrid, rows, cols, ErrTooFewNodes)
		}
		ids, err := addNodes(g, cfg, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := ids[r*cols+c]
				if c+1 < cols {
					if err = addTunnel(g, methodGrid, u, ids[r*cols+c+1]); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = addTunnel(g, methodGrid, u, ids[(r+1)*cols+c]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
