// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_grid.go: implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid, 4-neighborhood.
//   • Cell (r, c) has node ID r*cols + c (row-major order).
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell in row-major order emits the edge to its Right neighbor,
//     then to its Bottom neighbor, where they exist. Edges point right and
//     down; WithBidirectional adds the way back.
//
// Complexity:
//   • Time: O(rows*cols). Space: O(1) extra.

package builder

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(el *edgeList, cfg builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		el.reserve(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c, cols)
				if c+1 < cols {
					el.add(u, GridID(r, c+1, cols), cfg)
				}
				if r+1 < rows {
					el.add(u, GridID(r+1, c, cols), cfg)
				}
			}
		}

		return nil
	}
}

// GridID returns the node ID of cell (r, c) in a grid with cols columns.
func GridID(r, c, cols int) int {
	return r*cols + c
}
