// SPDX-License-Identifier: MIT
//
// File: storage.go
// Role: Store interfaces and whole-graph load/write helpers.

package storage

import (
	"errors"
	"fmt"
	"iter"

	"github.com/katalvlaran/simlath/epgm"
)

// Sentinel errors shared by all Store implementations.
var (
	// ErrInvalidPropertyType is epgm.ErrInvalidPropertyType, so both
	// packages' errors match with errors.Is.
	ErrInvalidPropertyType = epgm.ErrInvalidPropertyType

	// ErrNotFound is returned when no row exists for an id.
	ErrNotFound = errors.New("storage: not found")

	// ErrClosed is returned by every call after Close.
	ErrClosed = errors.New("storage: store is closed")

	// ErrCorruptRecord is returned when a stored row cannot be decoded.
	ErrCorruptRecord = errors.New("storage: corrupt record")
)

// Reader reads persisted elements. Iterators yield a non-nil error at most
// once, as their last element.
type Reader interface {
	ReadGraphHead(id epgm.ID) (*epgm.GraphHead, error)
	ReadVertex(id epgm.ID) (*epgm.Vertex, error)
	ReadEdge(id epgm.ID) (*epgm.Edge, error)

	// IncidentEdges returns the ids of the edges entering and leaving a vertex.
	IncidentEdges(id epgm.ID) (in, out epgm.IDSet, err error)

	GraphHeads() iter.Seq2[*epgm.GraphHead, error]
	Vertices() iter.Seq2[*epgm.Vertex, error]
	Edges() iter.Seq2[*epgm.Edge, error]
}

// Writer persists elements. With auto-flush disabled, writes are buffered
// and become visible to readers only after Flush.
type Writer interface {
	WriteGraphHead(h *epgm.GraphHead) error
	WriteVertex(v *epgm.Vertex) error
	WriteEdge(e *epgm.Edge) error

	SetAutoFlush(enabled bool)
	Flush() error
}

// Store is a Reader and Writer with a lifecycle. Close flushes pending writes.
type Store interface {
	Reader
	Writer
	Close() error
}

// LoadGraph reads every vertex and edge of r into one LogicalGraph with a
// fresh head.
func LoadGraph(r Reader) (*epgm.LogicalGraph, error) {
	var (
		vertices []*epgm.Vertex
		edges    []*epgm.Edge
	)
	for v, err := range r.Vertices() {
		if err != nil {
			return nil, err
		}
		vertices = append(vertices, v)
	}
	for e, err := range r.Edges() {
		if err != nil {
			return nil, err
		}
		edges = append(edges, e)
	}
	return epgm.FromVertexAndEdgeSets(vertices, edges), nil
}

// LoadLogicalGraph reads the graph head id and the vertices and edges it
// contains.
//
// Errors: ErrNotFound (wrapped) if the head or one of its members is missing.
func LoadLogicalGraph(r Reader, id epgm.ID) (*epgm.LogicalGraph, error) {
	head, err := r.ReadGraphHead(id)
	if err != nil {
		return nil, err
	}
	g := epgm.NewLogicalGraph(head)
	for _, vid := range head.Vertices.Slice() {
		v, err := r.ReadVertex(vid)
		if err != nil {
			return nil, fmt.Errorf("graph %s: vertex %s: %w", id, vid, err)
		}
		if err = g.AddVertex(v); err != nil {
			return nil, err
		}
	}
	for _, eid := range head.Edges.Slice() {
		e, err := r.ReadEdge(eid)
		if err != nil {
			return nil, fmt.Errorf("graph %s: edge %s: %w", id, eid, err)
		}
		if err = g.AddEdge(e); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// WriteGraph writes the head, vertices and edges of g and flushes w.
func WriteGraph(w Writer, g *epgm.LogicalGraph) error {
	if err := w.WriteGraphHead(g.Head()); err != nil {
		return err
	}
	for _, v := range g.Vertices() {
		if err := w.WriteVertex(v); err != nil {
			return err
		}
	}
	for _, e := range g.Edges() {
		if err := w.WriteEdge(e); err != nil {
			return err
		}
	}
	return w.Flush()
}
