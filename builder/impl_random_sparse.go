// SPDX-License-Identifier: MIT
// Package: simlath/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n,p).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required (else ErrNeedRandSource), even for p ∈ {0,1}.
//   - Undirected (default): one trial per unordered pair {i,j}, i<j,
//     mirrored on success.
//   - Directed: one trial per ordered pair (i,j), i≠j.
//
// Determinism: trials run in (i asc, j asc) order, so a fixed seed
// reproduces the same edge set.
//
// Complexity: O(n²) trials.

package builder

import "github.com/katalvlaran/simlath/epgm"

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *epgm.LogicalGraph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if err := validateRand(MethodRandomSparse, cfg); err != nil {
			return err
		}

		names := schemeNames(cfg.idFn, n)
		if err := addVertices(g, cfg, MethodRandomSparse, names); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			j := i + 1
			if cfg.directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, MethodRandomSparse, names[i], names[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
