// SPDX-License-Identifier: MIT
// Package: simlath/builder
//
// helpers.go - element insertion shared by the impl_*.go constructors.
//
// Every vertex is created from its scheme name; every edge is created from
// the names of its endpoints, so ids never depend on insertion order.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/simlath/epgm"
)

// addVertex inserts the vertex named name. Re-adding replaces it in place.
func addVertex(g *epgm.LogicalGraph, cfg builderConfig, method, name string) error {
	v := &epgm.Vertex{
		ID:         cfg.vertexID(name),
		Label:      cfg.vertexLabel,
		Properties: epgm.PropertiesOf(NameProperty, name),
		Graphs:     epgm.NewIDSet(),
	}
	if err := g.AddVertex(v); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %v: %w", method, name, err, ErrConstructFailed)
	}
	return nil
}

// addVertices inserts names in order.
func addVertices(g *epgm.LogicalGraph, cfg builderConfig, method string, names []string) error {
	for _, name := range names {
		if err := addVertex(g, cfg, method, name); err != nil {
			return err
		}
	}
	return nil
}

// addEdge links u and v, adding the mirror v→u unless cfg.directed.
// The optional weight is drawn once per call.
func addEdge(g *epgm.LogicalGraph, cfg builderConfig, method, u, v string) error {
	props := epgm.NewProperties()
	if cfg.weightFn != nil {
		if err := props.Set(WeightProperty, cfg.weightFn(cfg.rng)); err != nil {
			return fmt.Errorf("%s: weight(%s,%s): %v: %w", method, u, v, err, ErrConstructFailed)
		}
	}

	if err := putEdge(g, cfg, method, u, v, props); err != nil {
		return err
	}
	if cfg.directed || u == v {
		return nil
	}
	return putEdge(g, cfg, method, v, u, props)
}

func putEdge(g *epgm.LogicalGraph, cfg builderConfig, method, u, v string, props *epgm.Properties) error {
	e := &epgm.Edge{
		ID:         cfg.edgeID(u, v),
		Label:      cfg.edgeLabel,
		Source:     cfg.vertexID(u),
		Target:     cfg.vertexID(v),
		Properties: props.Clone(),
		Graphs:     epgm.NewIDSet(),
	}
	if err := g.AddEdge(e); err != nil {
		return fmt.Errorf("%s: AddEdge(%s->%s): %v: %w", method, u, v, err, ErrConstructFailed)
	}
	return nil
}

// addCompleteEdges connects every unordered pair in names.
// Complexity: O(m²) for m = len(names).
func addCompleteEdges(g *epgm.LogicalGraph, cfg builderConfig, method string, names []string) error {
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			if err := addEdge(g, cfg, method, names[i], names[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

// schemeNames returns idFn(0..n-1).
func schemeNames(idFn IDFn, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = idFn(i)
	}
	return names
}

// prefixedNames returns prefix+"0" .. prefix+(n-1).
func prefixedNames(prefix string, n int) []string {
	return schemeNames(SymbolNumberIDFn(prefix), n)
}

// gridName formats a grid coordinate as "r,c".
func gridName(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
