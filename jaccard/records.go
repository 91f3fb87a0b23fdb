// SPDX-License-Identifier: MIT
//
// File: records.go
// Role: ephemeral pipeline records and their grouping keys.
// Lifecycle: every record is produced by one stage and consumed by the next.

package jaccard

import (
	"cmp"
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/simlath/epgm"
)

// AnnotatedEdge is one distinct (center, member) adjacency with the degree
// of the member. Member vertices sharing a Center form candidate pairs.
type AnnotatedEdge struct {
	Center epgm.ID
	Member epgm.ID
	Degree int64
}

// GroupSpan is an AnnotatedEdge with its span: the index of the run of
// GroupSize members (in ascending member order) it falls into.
type GroupSpan struct {
	Center epgm.ID
	Member epgm.ID
	Span   int
	Degree int64
}

// GroupRecord is one replica of a GroupSpan assigned to expansion group
// Group (0 ≤ Group ≤ Span).
type GroupRecord struct {
	Group  int
	Center epgm.ID
	Member epgm.ID
	Span   int
	Degree int64
}

// TwoPath is one shared neighbor of A and B (A < B) with both endpoint degrees.
type TwoPath struct {
	A       epgm.ID
	B       epgm.ID
	DegreeA int64
	DegreeB int64
}

// Score is the reduced similarity of one vertex pair.
type Score struct {
	A           epgm.ID
	B           epgm.ID
	Shared      int64
	DegreeA     int64
	DegreeB     int64
	Denominator int64
	Value       float64
}

func (s Score) String() string {
	return fmt.Sprintf("(%s,%s) %d/%d=%g", s.A, s.B, s.Shared, s.Denominator, s.Value)
}

// VertexPair is the canonical (A < B) key of a two-path group.
type VertexPair struct {
	A epgm.ID
	B epgm.ID
}

// Compare orders pairs by A, then B.
func (p VertexPair) Compare(o VertexPair) int {
	if c := p.A.Compare(o.A); c != 0 {
		return c
	}
	return p.B.Compare(o.B)
}

// Hash mixes both ids.
func (p VertexPair) Hash() uint64 {
	var buf [32]byte
	copy(buf[:16], p.A[:])
	copy(buf[16:], p.B[:])
	return xxhash.Sum64(buf[:])
}

// link keys a (center, member) adjacency for de-duplication.
type link struct {
	Center epgm.ID
	Member epgm.ID
}

func (l link) Compare(o link) int {
	if c := l.Center.Compare(o.Center); c != 0 {
		return c
	}
	return l.Member.Compare(o.Member)
}

func (l link) Hash() uint64 {
	var buf [32]byte
	copy(buf[:16], l.Center[:])
	copy(buf[16:], l.Member[:])
	return xxhash.Sum64(buf[:])
}

// groupKey keys an expansion bucket.
type groupKey struct {
	Group  int
	Center epgm.ID
}

func (k groupKey) Compare(o groupKey) int {
	if c := cmp.Compare(k.Group, o.Group); c != 0 {
		return c
	}
	return k.Center.Compare(o.Center)
}

func (k groupKey) Hash() uint64 {
	var buf [24]byte
	binary.BigEndian.PutUint64(buf[:8], uint64(k.Group))
	copy(buf[8:], k.Center[:])
	return xxhash.Sum64(buf[:])
}
