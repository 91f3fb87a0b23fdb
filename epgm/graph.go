// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: LogicalGraph container (head + vertex set + edge set).
// Determinism:
//   - Vertices()/Edges() are sorted by ID ascending.
// Concurrency:
//   - mu guards head, vertices and edges; readers take RLock.

package epgm

import (
	"fmt"
	"sort"
	"sync"
)

// LogicalGraph is one graph head with the vertices and edges it contains.
type LogicalGraph struct {
	mu sync.RWMutex // guards head, vertices, edges

	head     *GraphHead
	vertices map[ID]*Vertex
	edges    map[ID]*Edge
}

// NewLogicalGraph creates an empty graph. A nil head is replaced by a fresh,
// unlabelled one; a given head is cloned and its element sets are reset.
// Complexity: O(1).
func NewLogicalGraph(head *GraphHead) *LogicalGraph {
	if head == nil {
		head = NewGraphHead("", nil)
	} else {
		head = head.Clone()
		head.Vertices = NewIDSet()
		head.Edges = NewIDSet()
	}
	return &LogicalGraph{
		head:     head,
		vertices: make(map[ID]*Vertex),
		edges:    make(map[ID]*Edge),
	}
}

// FromVertexAndEdgeSets builds a new logical graph with a fresh head that
// contains the given vertices and edges. Nil entries are skipped; endpoints
// are not checked (see Validate).
//
// Complexity: O(V + E).
func FromVertexAndEdgeSets(vertices []*Vertex, edges []*Edge) *LogicalGraph {
	g := NewLogicalGraph(nil)
	for _, v := range vertices {
		if v != nil {
			g.putVertex(v)
		}
	}
	for _, e := range edges {
		if e != nil {
			g.putEdge(e)
		}
	}
	return g
}

// putVertex stores a clone of v and links membership both ways. Caller holds mu or owns g.
func (g *LogicalGraph) putVertex(v *Vertex) {
	c := v.Clone()
	c.Graphs.Add(g.head.ID)
	g.vertices[c.ID] = c
	g.head.Vertices.Add(c.ID)
}

func (g *LogicalGraph) putEdge(e *Edge) {
	c := e.Clone()
	c.Graphs.Add(g.head.ID)
	g.edges[c.ID] = c
	g.head.Edges.Add(c.ID)
}

// AddVertex inserts (or replaces by ID) a clone of v.
func (g *LogicalGraph) AddVertex(v *Vertex) error {
	if v == nil {
		return ErrNilElement
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.putVertex(v)
	return nil
}

// AddEdge inserts (or replaces by ID) a clone of e. Both endpoints must
// already be part of the graph.
//
// Errors:
//   - ErrNilElement if e == nil.
//   - ErrVertexNotFound if Source or Target is missing.
func (g *LogicalGraph) AddEdge(e *Edge) error {
	if e == nil {
		return ErrNilElement
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.vertices[e.Source]; !ok {
		return fmt.Errorf("%w: source %s of edge %s", ErrVertexNotFound, e.Source, e.ID)
	}
	if _, ok := g.vertices[e.Target]; !ok {
		return fmt.Errorf("%w: target %s of edge %s", ErrVertexNotFound, e.Target, e.ID)
	}
	g.putEdge(e)
	return nil
}

// Head returns a copy of the graph head.
func (g *LogicalGraph) Head() *GraphHead {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.head.Clone()
}

// Vertices returns all vertices sorted by ID. The pointers are shared; do not mutate.
// Complexity: O(V log V).
func (g *LogicalGraph) Vertices() []*Vertex {
	g.mu.RLock()
	out := make([]*Vertex, 0, len(g.vertices))
	for _, v := range g.vertices {
		out = append(out, v)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Less(out[j].ID) })
	return out
}

// Edges returns all edges sorted by ID. The pointers are shared; do not mutate.
// Complexity: O(E log E).
func (g *LogicalGraph) Edges() []*Edge {
	g.mu.RLock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Less(out[j].ID) })
	return out
}

// Vertex looks up a vertex by ID.
func (g *LogicalGraph) Vertex(id ID) (*Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	v, ok := g.vertices[id]
	return v, ok
}

// Edge looks up an edge by ID.
func (g *LogicalGraph) Edge(id ID) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	return e, ok
}

// VertexCount returns |V|.
func (g *LogicalGraph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertices)
}

// EdgeCount returns |E|.
func (g *LogicalGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Validate checks that every edge endpoint is a vertex of the graph and
// returns the first violation (in edge ID order) wrapped in ErrVertexNotFound.
func (g *LogicalGraph) Validate() error {
	for _, e := range g.Edges() {
		if _, ok := g.Vertex(e.Source); !ok {
			return fmt.Errorf("%w: source %s of edge %s", ErrVertexNotFound, e.Source, e.ID)
		}
		if _, ok := g.Vertex(e.Target); !ok {
			return fmt.Errorf("%w: target %s of edge %s", ErrVertexNotFound, e.Target, e.ID)
		}
	}
	return nil
}

// Combine returns a new graph (fresh head) holding the union of both
// graphs' vertices and edges, de-duplicated by ID. On ID collision the
// element from g wins.
//
// Complexity: O(V + E) over both inputs.
func (g *LogicalGraph) Combine(other *LogicalGraph) *LogicalGraph {
	if other == nil {
		return g.union(nil, nil)
	}
	return g.union(other.Vertices(), other.Edges())
}

// WithEdges returns a new graph (fresh head) holding the vertices and edges
// of g plus extra, de-duplicated by ID with g winning. The extra edges gain
// membership in the new head only. Endpoints are not checked.
func (g *LogicalGraph) WithEdges(extra ...*Edge) *LogicalGraph {
	return g.union(nil, extra)
}

func (g *LogicalGraph) union(moreV []*Vertex, moreE []*Edge) *LogicalGraph {
	vertices := g.Vertices()
	edges := g.Edges()

	seenV := make(IDSet, len(vertices)+len(moreV))
	for _, v := range vertices {
		seenV.Add(v.ID)
	}
	for _, v := range moreV {
		if v != nil && !seenV.Contains(v.ID) {
			seenV.Add(v.ID)
			vertices = append(vertices, v)
		}
	}
	seenE := make(IDSet, len(edges)+len(moreE))
	for _, e := range edges {
		seenE.Add(e.ID)
	}
	for _, e := range moreE {
		if e != nil && !seenE.Contains(e.ID) {
			seenE.Add(e.ID)
			edges = append(edges, e)
		}
	}
	return FromVertexAndEdgeSets(vertices, edges)
}
