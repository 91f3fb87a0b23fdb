// SPDX-License-Identifier: MIT

// Package epgm defines the extended property graph model used across simlath:
// 128-bit element identifiers, typed property sets, vertices, edges, graph
// heads and the LogicalGraph container.
//
// Model
//
//   - ID: opaque 16-byte identifier backed by github.com/google/uuid.
//   - Properties: ordered key→value pairs; values are restricted to
//     bool, int32, int64, float32, float64 and string.
//   - Vertex:    ID, Label, Properties, Graphs (membership set).
//   - Edge:      ID, Label, Source, Target, Properties, Graphs.
//   - GraphHead: ID, Label, Properties, Vertices and Edges it contains.
//
// LogicalGraph
//
//	A LogicalGraph couples one GraphHead with a vertex set and an edge set.
//	Membership is bidirectional: every element stored in the graph lists the
//	head's ID in its Graphs set and the head lists every element.
//	Elements are cloned on insertion, so callers may keep mutating their
//	own copies without affecting the graph.
//
// Determinism
//
//	Vertices() and Edges() return elements sorted by ID (byte order), which
//	downstream batch operators rely on for reproducible grouping.
//
// Concurrency
//
//	LogicalGraph guards its catalogs with a sync.RWMutex. Returned elements
//	are shared pointers and must be treated as read-only.
//
// Errors
//
//	ErrInvalidID           - string or byte slice is not a valid identifier.
//	ErrInvalidPropertyType - property value of an unsupported Go type.
//	ErrEmptyPropertyKey    - property key is the empty string.
//	ErrNilElement          - nil vertex, edge or graph head passed in.
//	ErrVertexNotFound      - edge endpoint references a missing vertex.
package epgm
