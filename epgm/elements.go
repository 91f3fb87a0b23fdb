// SPDX-License-Identifier: MIT

package epgm

import "fmt"

// Vertex is a labelled, property-carrying graph element.
type Vertex struct {
	// ID uniquely identifies the vertex.
	ID ID

	// Label classifies the vertex.
	Label string

	// Properties holds typed key→value data. Never nil for constructed vertices.
	Properties *Properties

	// Graphs lists the logical graphs this vertex belongs to.
	Graphs IDSet
}

// Edge is a directed, labelled connection Source→Target.
//
// Source and Target are expected to reference existing vertices; this is
// not enforced on construction or storage (see LogicalGraph.Validate).
type Edge struct {
	ID         ID
	Label      string
	Source     ID
	Target     ID
	Properties *Properties
	Graphs     IDSet
}

// GraphHead describes one logical graph and the elements it contains.
type GraphHead struct {
	ID         ID
	Label      string
	Properties *Properties
	Vertices   IDSet
	Edges      IDSet
}

// NewVertex creates a vertex with a fresh ID. A nil props becomes an empty set.
func NewVertex(label string, props *Properties, graphs ...ID) *Vertex {
	return &Vertex{
		ID:         NewID(),
		Label:      label,
		Properties: props.Clone(),
		Graphs:     NewIDSet(graphs...),
	}
}

// NewEdge creates an edge with a fresh ID.
func NewEdge(label string, source, target ID, props *Properties, graphs ...ID) *Edge {
	return &Edge{
		ID:         NewID(),
		Label:      label,
		Source:     source,
		Target:     target,
		Properties: props.Clone(),
		Graphs:     NewIDSet(graphs...),
	}
}

// NewGraphHead creates an empty graph head with a fresh ID.
func NewGraphHead(label string, props *Properties) *GraphHead {
	return &GraphHead{
		ID:         NewID(),
		Label:      label,
		Properties: props.Clone(),
		Vertices:   NewIDSet(),
		Edges:      NewIDSet(),
	}
}

// Clone returns a deep copy of v.
func (v *Vertex) Clone() *Vertex {
	if v == nil {
		return nil
	}
	return &Vertex{ID: v.ID, Label: v.Label, Properties: v.Properties.Clone(), Graphs: v.Graphs.Clone()}
}

// Clone returns a deep copy of e.
func (e *Edge) Clone() *Edge {
	if e == nil {
		return nil
	}
	return &Edge{
		ID:         e.ID,
		Label:      e.Label,
		Source:     e.Source,
		Target:     e.Target,
		Properties: e.Properties.Clone(),
		Graphs:     e.Graphs.Clone(),
	}
}

// Clone returns a deep copy of h.
func (h *GraphHead) Clone() *GraphHead {
	if h == nil {
		return nil
	}
	return &GraphHead{
		ID:         h.ID,
		Label:      h.Label,
		Properties: h.Properties.Clone(),
		Vertices:   h.Vertices.Clone(),
		Edges:      h.Edges.Clone(),
	}
}

func (v *Vertex) String() string {
	return fmt.Sprintf("(%s:%s%s)", v.ID, v.Label, v.Properties)
}

func (e *Edge) String() string {
	return fmt.Sprintf("(%s)-[%s:%s%s]->(%s)", e.Source, e.ID, e.Label, e.Properties, e.Target)
}

func (h *GraphHead) String() string {
	return fmt.Sprintf("%s:%s%s[|V|=%d |E|=%d]", h.ID, h.Label, h.Properties, h.Vertices.Len(), h.Edges.Len())
}
