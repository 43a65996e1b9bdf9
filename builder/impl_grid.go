// SPDX-License-Identifier: MIT
// Package: homcount/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) is vertex first + r*cols + c (row-major).
//   - For each cell, emit Right then Bottom when the neighbour exists.
//
// Complexity: O(rows·cols) vertices and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/homcount/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for the rows×cols grid graph.
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		first, err := addBlock(g, cfg, rows*cols)
		if err != nil {
			return fmt.Errorf("%s: %w", methodGrid, err)
		}
		cell := func(r, c int) int { return first + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, cfg, cell(r, c), cell(r, c+1)); err != nil {
						return fmt.Errorf("%s: right of (%d,%d): %w", methodGrid, r, c, err)
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, cell(r, c), cell(r+1, c)); err != nil {
						return fmt.Errorf("%s: below (%d,%d): %w", methodGrid, r, c, err)
					}
				}
			}
		}

		return nil
	}
}
