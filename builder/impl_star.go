// SPDX-License-Identifier: MIT
// Package: simlath/builder
//
// impl_star.go - Star(n): hub "Center" linked to leaves idFn(1..n-1).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); n counts the hub.
//   - Leaves are pairwise non-adjacent, so every leaf pair shares exactly
//     the hub as common neighbour.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/simlath/epgm"

// Star returns a Constructor for the star S_n with n-1 leaves.
func Star(n int) Constructor {
	return func(g *epgm.LogicalGraph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		return addHub(g, cfg, MethodStar, 1, n)
	}
}

// addHub inserts CenterVertexID and a spoke to each idFn(from..to-1).
// Shared by Star and Wheel.
func addHub(g *epgm.LogicalGraph, cfg builderConfig, method string, from, to int) error {
	if err := addVertex(g, cfg, method, CenterVertexID); err != nil {
		return err
	}
	for i := from; i < to; i++ {
		leaf := cfg.idFn(i)
		if err := addVertex(g, cfg, method, leaf); err != nil {
			return err
		}
		if err := addEdge(g, cfg, method, CenterVertexID, leaf); err != nil {
			return err
		}
	}
	return nil
}
