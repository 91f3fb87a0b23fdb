// SPDX-License-Identifier: MIT

package epgm

import (
	"fmt"
	"sort"
)

// EqualsByElementIDs reports whether both graphs contain exactly the same
// vertex and edge identifiers. Heads are not compared.
func (g *LogicalGraph) EqualsByElementIDs(other *LogicalGraph) bool {
	if other == nil {
		return false
	}
	a, b := g.Head(), other.Head()
	return a.Vertices.Equal(b.Vertices) && a.Edges.Equal(b.Edges)
}

// EqualsByElementData reports whether both graphs contain the same vertices
// and edges by label and properties, ignoring identifiers. Edges are compared
// together with the data of their endpoints, so two graphs that differ only
// in generated IDs are equal. Heads are not compared.
//
// Complexity: O((V+E) log(V+E)).
func (g *LogicalGraph) EqualsByElementData(other *LogicalGraph) bool {
	if other == nil {
		return false
	}
	left, right := g.canonical(), other.canonical()
	if len(left) != len(right) {
		return false
	}
	for i := range left {
		if left[i] != right[i] {
			return false
		}
	}
	return true
}

// canonical renders every element as a string and returns them sorted.
func (g *LogicalGraph) canonical() []string {
	vertices := g.Vertices()
	edges := g.Edges()
	data := make(map[ID]string, len(vertices))
	out := make([]string, 0, len(vertices)+len(edges))
	for _, v := range vertices {
		s := fmt.Sprintf("(%s%s)", v.Label, v.Properties)
		data[v.ID] = s
		out = append(out, s)
	}
	for _, e := range edges {
		out = append(out, fmt.Sprintf("%s-[%s%s]->%s", data[e.Source], e.Label, e.Properties, data[e.Target]))
	}
	sort.Strings(out)
	return out
}
