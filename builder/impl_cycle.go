// SPDX-License-Identifier: MIT
// Package: simlath/builder
//
// impl_cycle.go - Cycle(n): the ring i -> (i+1)%n over idFn names.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Every vertex ends with degree 2 per direction in the mirrored form.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/simlath/epgm"

// Cycle returns a Constructor for the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *epgm.LogicalGraph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		names := schemeNames(cfg.idFn, n)
		if err := addVertices(g, cfg, MethodCycle, names); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, MethodCycle, names[i], names[(i+1)%n]); err != nil {
				return err
			}
		}
		return nil
	}
}
