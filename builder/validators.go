// SPDX-License-Identifier: MIT

package builder

import "math"

// validateMin returns ErrTooFewVertices when got < min.
func validateMin(method, param string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVertices, "%s=%d < min=%d", param, got, min)
	}
	return nil
}

// validateProbability returns ErrInvalidProbability unless p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return builderErrorf(method, ErrInvalidProbability, "p=%v not in [%.1f,%.1f]", p, MinProbability, MaxProbability)
	}
	return nil
}

// validateRand returns ErrNeedRandSource when cfg carries no RNG.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "use WithSeed or WithRand")
	}
	return nil
}
