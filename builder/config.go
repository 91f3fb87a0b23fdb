// SPDX-License-Identifier: MIT
// Package: simlath/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn      ("0","1","2",...)
//   • rng         = nil              (pure/deterministic unless seeded)
//   • weightFn    = nil              (no "weight" property)
//   • left/right  = "L" / "R"
//   • labels      = "Graph" / "Node" / "link"
//   • scope       = "builder"
//   • directed    = false            (mirrored edge pairs)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/simlath/epgm"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex naming strategy: index -> name.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Optional weight generator; nil leaves edges without a weight property.
	weightFn func(*rand.Rand) int64

	// Bipartite name prefixes.
	leftPrefix  string
	rightPrefix string

	graphLabel  string
	vertexLabel string
	edgeLabel   string

	// scope namespaces the derived element ids.
	scope string
	// directed disables edge mirroring.
	directed bool
}

// newBuilderConfig applies options over the defaults in order (last wins)
// and resolves empty strings back to defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
		graphLabel:  DefaultGraphLabel,
		vertexLabel: DefaultVertexLabel,
		edgeLabel:   DefaultEdgeLabel,
		scope:       defaultScope,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}
	if cfg.scope == "" {
		cfg.scope = defaultScope
	}
	return cfg
}

func (c builderConfig) vertexID(name string) epgm.ID {
	return epgm.IDFromName(c.scope + "/vertex/" + name)
}

func (c builderConfig) edgeID(from, to string) epgm.ID {
	return epgm.IDFromName(c.scope + "/edge/" + from + "->" + to)
}
