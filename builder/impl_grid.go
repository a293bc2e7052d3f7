// SPDX-License-Identifier: MIT
// Package: reconf/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1, cols ≥ 1 (else ErrTooFewVertices).
//   - Local index of cell (r, c) is r*cols + c (row-major).
//   - 4-neighborhood: right (r, c+1) and down (r+1, c) edges only.
//
// Complexity:
//   - Time: O(rows·cols). Space: O(1) extra.

package builder

import "fmt"

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor that appends a rows×cols grid graph.
func Grid(rows, cols int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: rows=%d, cols=%d must be ≥ %d: %w",
				methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}

		base := d.addVertices(rows * cols)
		// cell maps (r,c) to its global index.
		cell := func(r, c int) int { return base + r*cols + c }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					d.addEdge(cell(r, c), cell(r, c+1))
				}
				if r+1 < rows {
					d.addEdge(cell(r, c), cell(r+1, c))
				}
			}
		}

		return nil
	}
}
