// SPDX-License-Identifier: MIT
// Package: simlath/builder
//
// options.go - functional options for BuildGraph.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs;
//     constructors themselves return errors.
//   • Determinism is explicit: randomness only via WithSeed or WithRand.
//   • Empty strings for prefixes, labels and scope fall back to defaults.

package builder

import (
	"math/rand"
)

// BuilderOption mutates a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex naming function idx -> name.
// Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic constructors and weights.
// Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn stores fn(rng) as int64 property "weight" on every edge pair.
// Both directions of a mirrored pair share one draw. Panics on nil.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithPartitionPrefix sets the name prefixes of CompleteBipartite sides.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}

// WithGraphLabel sets the label of the graph head.
func WithGraphLabel(label string) BuilderOption {
	return func(c *builderConfig) {
		if label != "" {
			c.graphLabel = label
		}
	}
}

// WithVertexLabel sets the label of every generated vertex.
func WithVertexLabel(label string) BuilderOption {
	return func(c *builderConfig) {
		if label != "" {
			c.vertexLabel = label
		}
	}
}

// WithEdgeLabel sets the label of every generated edge.
func WithEdgeLabel(label string) BuilderOption {
	return func(c *builderConfig) {
		if label != "" {
			c.edgeLabel = label
		}
	}
}

// WithDirected(true) emits only u→v instead of mirrored pairs.
func WithDirected(directed bool) BuilderOption {
	return func(c *builderConfig) {
		c.directed = directed
	}
}

// WithScope namespaces derived ids, so two builds with different scopes can
// be combined without colliding.
func WithScope(scope string) BuilderOption {
	return func(c *builderConfig) {
		c.scope = scope
	}
}
