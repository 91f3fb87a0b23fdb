// SPDX-License-Identifier: MIT
// Package: simlath/builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Constructors live in impl_*.go, one topology per file.
//   - Functional options resolve into an immutable builderConfig (no global state).

package builder

import (
	"fmt"

	"github.com/katalvlaran/simlath/epgm"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate their parameters before touching g
// and return wrapped sentinel errors.
type Constructor func(g *epgm.LogicalGraph, cfg builderConfig) error

// BuildGraph creates an empty LogicalGraph whose head is labelled by the
// resolved graph label, and applies all constructors in order. Vertices
// shared by name across constructors are merged.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor error, wrapped as "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*epgm.LogicalGraph, error) {
	cfg := newBuilderConfig(bopts...)
	g := epgm.NewLogicalGraph(epgm.NewGraphHead(cfg.graphLabel, nil))

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}

// VertexID returns the id BuildGraph assigns to the vertex named name under
// the given options, for looking vertices up in a built graph.
func VertexID(name string, bopts ...BuilderOption) epgm.ID {
	return newBuilderConfig(bopts...).vertexID(name)
}
