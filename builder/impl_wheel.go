// SPDX-License-Identifier: MIT
// Package: simlath/builder
//
// impl_wheel.go - Wheel(n) = Cycle(n-1) + "Center" with a spoke to every rim vertex.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices), so the rim is a valid cycle.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/simlath/epgm"
)

// Wheel returns a Constructor for the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *epgm.LogicalGraph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", MethodWheel, n-1, err)
		}
		return addHub(g, cfg, MethodWheel, 0, n-1)
	}
}
