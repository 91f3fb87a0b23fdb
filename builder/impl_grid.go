// SPDX-License-Identifier: MIT
// Package: simlath/builder
//
// impl_grid.go - Grid(rows, cols): orthogonal 4-neighbourhood lattice.
//
// Vertex names use the fixed coordinate scheme "r,c" instead of idFn so
// positions stay readable.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell in row-major order, links Right then Bottom if present.
//
// Complexity: O(rows·cols).

package builder

import "github.com/katalvlaran/simlath/epgm"

// Grid returns a Constructor for a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *epgm.LogicalGraph, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addVertex(g, cfg, MethodGrid, gridName(r, c)); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridName(r, c)
				if c+1 < cols {
					if err := addEdge(g, cfg, MethodGrid, u, gridName(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, MethodGrid, u, gridName(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
