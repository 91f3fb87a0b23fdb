// SPDX-License-Identifier: MIT
// Package: simlath/builder
//
// impl_complete.go - Complete(n): K_n over idFn(0..n-1).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Pairs are emitted in lexicographic (i,j), i<j order.
//
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/simlath/epgm"

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *epgm.LogicalGraph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		names := schemeNames(cfg.idFn, n)
		if err := addVertices(g, cfg, MethodComplete, names); err != nil {
			return err
		}
		return addCompleteEdges(g, cfg, MethodComplete, names)
	}
}
