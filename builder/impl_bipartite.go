// SPDX-License-Identifier: MIT
// Package: simlath/builder
//
// impl_bipartite.go - CompleteBipartite(n1,n2): K_{n1,n2}.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left names "{leftPrefix}{i}", right names "{rightPrefix}{j}"
//     (defaults "L"/"R", see WithPartitionPrefix).
//   • Every cross pair L_i, R_j is linked; no edge within a side.
//
// Complexity: O(n1·n2).

package builder

import "github.com/katalvlaran/simlath/epgm"

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *epgm.LogicalGraph, cfg builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "n1", n1, MinPartitionSize); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "n2", n2, MinPartitionSize); err != nil {
			return err
		}

		left := prefixedNames(cfg.leftPrefix, n1)
		right := prefixedNames(cfg.rightPrefix, n2)
		if err := addVertices(g, cfg, MethodCompleteBipartite, left); err != nil {
			return err
		}
		if err := addVertices(g, cfg, MethodCompleteBipartite, right); err != nil {
			return err
		}

		for _, u := range left {
			for _, v := range right {
				if err := addEdge(g, cfg, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
