// SPDX-License-Identifier: MIT
// Package: simlath/builder
//
// impl_path.go - Path(n): idFn(0) - idFn(1) - ... - idFn(n-1).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits n-1 links, each mirrored unless WithDirected(true).
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/simlath/epgm"

// Path returns a Constructor for the simple path P_n.
func Path(n int) Constructor {
	return func(g *epgm.LogicalGraph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		names := schemeNames(cfg.idFn, n)
		if err := addVertices(g, cfg, MethodPath, names); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodPath, names[i-1], names[i]); err != nil {
				return err
			}
		}
		return nil
	}
}
