// SPDX-License-Identifier: MIT

package fixture

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/simlath/epgm"
)

// Sentinel errors for fixture parsing.
var (
	// ErrUnknownVariable is returned for a reference to an undeclared var.
	ErrUnknownVariable = errors.New("fixture: unknown variable")

	// ErrDuplicateVariable is returned when a var is declared twice.
	ErrDuplicateVariable = errors.New("fixture: duplicate variable")
)

// MirrorSuffix names the reverse edge declared by mirror: true.
const MirrorSuffix = "~"

type document struct {
	Graphs   []elementDoc `yaml:"graphs"`
	Vertices []elementDoc `yaml:"vertices"`
	Edges    []elementDoc `yaml:"edges"`
}

type elementDoc struct {
	Var        string    `yaml:"var"`
	Label      string    `yaml:"label"`
	Properties yaml.Node `yaml:"properties"`
	Graphs     []string  `yaml:"graphs"`
	Source     string    `yaml:"source"`
	Target     string    `yaml:"target"`
	Mirror     bool      `yaml:"mirror"`
}

// Loader holds the parsed elements addressed by their variables.
type Loader struct {
	heads    map[string]*epgm.GraphHead
	vertices map[string]*epgm.Vertex
	edges    map[string]*epgm.Edge

	// declaration order, for reproducible output
	vertexOrder []string
	edgeOrder   []string
}

// ParseFile reads and parses the YAML document at path.
func ParseFile(path string) (*Loader, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse builds a Loader from a YAML document.
//
// Errors: yaml syntax errors, ErrDuplicateVariable, ErrUnknownVariable and
// epgm.ErrInvalidPropertyType (all wrapped with the offending element).
func Parse(data []byte) (*Loader, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("fixture: %w", err)
	}
	l := &Loader{
		heads:    make(map[string]*epgm.GraphHead),
		vertices: make(map[string]*epgm.Vertex),
		edges:    make(map[string]*epgm.Edge),
	}

	for i, d := range doc.Graphs {
		props, err := decodeProperties(&d.Properties)
		if err != nil {
			return nil, fmt.Errorf("fixture: graph %d: %w", i, err)
		}
		h := epgm.NewGraphHead(d.Label, props)
		if err = declare("graph", d.Var, &h.ID, l.heads, h); err != nil {
			return nil, err
		}
	}

	for i, d := range doc.Vertices {
		props, err := decodeProperties(&d.Properties)
		if err != nil {
			return nil, fmt.Errorf("fixture: vertex %d: %w", i, err)
		}
		graphs, err := l.graphIDs(d.Graphs)
		if err != nil {
			return nil, fmt.Errorf("fixture: vertex %d: %w", i, err)
		}
		v := epgm.NewVertex(d.Label, props, graphs...)
		if err = declare("vertex", d.Var, &v.ID, l.vertices, v); err != nil {
			return nil, err
		}
		l.vertexOrder = append(l.vertexOrder, nameOrID(d.Var, v.ID))
	}

	for i, d := range doc.Edges {
		if err := l.addEdge(i, d); err != nil {
			return nil, err
		}
	}

	l.linkMembers()
	return l, nil
}

func (l *Loader) addEdge(i int, d elementDoc) error {
	props, err := decodeProperties(&d.Properties)
	if err != nil {
		return fmt.Errorf("fixture: edge %d: %w", i, err)
	}
	graphs, err := l.graphIDs(d.Graphs)
	if err != nil {
		return fmt.Errorf("fixture: edge %d: %w", i, err)
	}
	src, ok := l.vertices[d.Source]
	if !ok {
		return fmt.Errorf("%w: edge %d source %q", ErrUnknownVariable, i, d.Source)
	}
	tgt, ok := l.vertices[d.Target]
	if !ok {
		return fmt.Errorf("%w: edge %d target %q", ErrUnknownVariable, i, d.Target)
	}

	e := epgm.NewEdge(d.Label, src.ID, tgt.ID, props, graphs...)
	if err = declare("edge", d.Var, &e.ID, l.edges, e); err != nil {
		return err
	}
	l.edgeOrder = append(l.edgeOrder, nameOrID(d.Var, e.ID))
	if !d.Mirror {
		return nil
	}

	r := epgm.NewEdge(d.Label, tgt.ID, src.ID, props, graphs...)
	rv := ""
	if d.Var != "" {
		rv = d.Var + MirrorSuffix
	}
	if err = declare("edge", rv, &r.ID, l.edges, r); err != nil {
		return err
	}
	l.edgeOrder = append(l.edgeOrder, nameOrID(rv, r.ID))
	return nil
}

// declare registers el under name (or under its random id if name is
// empty) and replaces *id with the stable id of a named element.
func declare[T any](kind, name string, id *epgm.ID, into map[string]T, el T) error {
	key := nameOrID(name, *id)
	if name != "" {
		*id = epgm.IDFromName("fixture/" + kind + "/" + name)
	}
	if _, dup := into[key]; dup {
		return fmt.Errorf("%w: %s %q", ErrDuplicateVariable, kind, name)
	}
	into[key] = el
	return nil
}

// nameOrID keys anonymous elements by their id, which cannot collide with
// a variable name since variables never start with '#'.
func nameOrID(name string, id epgm.ID) string {
	if name != "" {
		return name
	}
	return "#" + id.String()
}

func (l *Loader) graphIDs(vars []string) ([]epgm.ID, error) {
	out := make([]epgm.ID, 0, len(vars))
	for _, v := range vars {
		h, ok := l.heads[v]
		if !ok {
			return nil, fmt.Errorf("%w: graph %q", ErrUnknownVariable, v)
		}
		out = append(out, h.ID)
	}
	return out, nil
}

// linkMembers mirrors element membership into the graph heads.
func (l *Loader) linkMembers() {
	byID := make(map[epgm.ID]*epgm.GraphHead, len(l.heads))
	for _, h := range l.heads {
		byID[h.ID] = h
	}
	for _, v := range l.vertices {
		for id := range v.Graphs {
			byID[id].Vertices.Add(v.ID)
		}
	}
	for _, e := range l.edges {
		for id := range e.Graphs {
			byID[id].Edges.Add(e.ID)
		}
	}
}

// decodeProperties turns a YAML mapping into typed properties. An absent
// node yields an empty set.
func decodeProperties(n *yaml.Node) (*epgm.Properties, error) {
	props := epgm.NewProperties()
	if n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null") {
		return props, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: properties must be a mapping (line %d)", epgm.ErrInvalidPropertyType, n.Line)
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i].Value, n.Content[i+1]
		v, err := decodeScalar(val)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", key, err)
		}
		if err = props.Set(key, v); err != nil {
			return nil, err
		}
	}
	return props, nil
}

func decodeScalar(n *yaml.Node) (any, error) {
	if n.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("%w: non-scalar value (line %d)", epgm.ErrInvalidPropertyType, n.Line)
	}
	switch n.ShortTag() {
	case "!int32":
		v, err := strconv.ParseInt(n.Value, 0, 32)
		return int32(v), err
	case "!float32":
		v, err := strconv.ParseFloat(n.Value, 32)
		return float32(v), err
	case "!!int":
		var v int64
		err := n.Decode(&v)
		return v, err
	case "!!float":
		var v float64
		err := n.Decode(&v)
		return v, err
	case "!!bool":
		var v bool
		err := n.Decode(&v)
		return v, err
	case "!!str":
		return n.Value, nil
	default:
		return nil, fmt.Errorf("%w: yaml tag %s (line %d)", epgm.ErrInvalidPropertyType, n.ShortTag(), n.Line)
	}
}

// Graph returns the logical graph var with its member vertices and edges.
//
// Errors: ErrUnknownVariable; epgm.ErrVertexNotFound if a member edge's
// endpoint is not a member of the graph.
func (l *Loader) Graph(name string) (*epgm.LogicalGraph, error) {
	h, ok := l.heads[name]
	if !ok {
		return nil, fmt.Errorf("%w: graph %q", ErrUnknownVariable, name)
	}
	g := epgm.NewLogicalGraph(h)
	for _, v := range l.orderedVertices() {
		if v.Graphs.Contains(h.ID) {
			if err := g.AddVertex(v); err != nil {
				return nil, err
			}
		}
	}
	for _, e := range l.orderedEdges() {
		if e.Graphs.Contains(h.ID) {
			if err := g.AddEdge(e); err != nil {
				return nil, fmt.Errorf("fixture: graph %q: %w", name, err)
			}
		}
	}
	return g, nil
}

// Vertex returns a copy of the vertex var.
func (l *Loader) Vertex(name string) (*epgm.Vertex, error) {
	v, ok := l.vertices[name]
	if !ok {
		return nil, fmt.Errorf("%w: vertex %q", ErrUnknownVariable, name)
	}
	return v.Clone(), nil
}

// Edge returns a copy of the edge var.
func (l *Loader) Edge(name string) (*epgm.Edge, error) {
	e, ok := l.edges[name]
	if !ok {
		return nil, fmt.Errorf("%w: edge %q", ErrUnknownVariable, name)
	}
	return e.Clone(), nil
}

// GraphHeads returns copies of all declared heads sorted by variable.
func (l *Loader) GraphHeads() []*epgm.GraphHead {
	names := make([]string, 0, len(l.heads))
	for n := range l.heads {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*epgm.GraphHead, 0, len(names))
	for _, n := range names {
		out = append(out, l.heads[n].Clone())
	}
	return out
}

// Database returns every declared vertex and edge in one graph with a
// fresh head.
func (l *Loader) Database() *epgm.LogicalGraph {
	return epgm.FromVertexAndEdgeSets(l.orderedVertices(), l.orderedEdges())
}

func (l *Loader) orderedVertices() []*epgm.Vertex {
	out := make([]*epgm.Vertex, 0, len(l.vertexOrder))
	for _, n := range l.vertexOrder {
		out = append(out, l.vertices[n])
	}
	return out
}

func (l *Loader) orderedEdges() []*epgm.Edge {
	out := make([]*epgm.Edge, 0, len(l.edgeOrder))
	for _, n := range l.edgeOrder {
		out = append(out, l.edges[n])
	}
	return out
}
