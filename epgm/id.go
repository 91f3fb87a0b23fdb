// SPDX-License-Identifier: MIT

package epgm

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// IDSize is the length of an ID in bytes.
const IDSize = 16

// Sentinel errors for the property graph model.
var (
	// ErrInvalidID indicates a malformed identifier.
	ErrInvalidID = errors.New("epgm: invalid id")

	// ErrInvalidPropertyType indicates an unsupported property value type.
	ErrInvalidPropertyType = errors.New("epgm: invalid property type")

	// ErrEmptyPropertyKey indicates an empty property key.
	ErrEmptyPropertyKey = errors.New("epgm: property key is empty")

	// ErrNilElement indicates a nil vertex, edge or graph head.
	ErrNilElement = errors.New("epgm: element is nil")

	// ErrVertexNotFound indicates an edge endpoint that is not part of the graph.
	ErrVertexNotFound = errors.New("epgm: vertex not found")
)

// ID is a 128-bit opaque element identifier.
// The zero value is reserved and never produced by NewID.
type ID [IDSize]byte

// NewID returns a fresh random identifier.
func NewID() ID { return ID(uuid.New()) }

// IDFromName derives a stable identifier from name (UUID v5, OID namespace).
// Fixtures and generators use it to obtain reproducible graphs.
func IDFromName(name string) ID {
	return ID(uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)))
}

// ParseID parses the canonical textual form produced by ID.String.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q: %v", ErrInvalidID, s, err)
	}
	return ID(u), nil
}

// IDFromBytes copies a 16-byte slice into an ID.
func IDFromBytes(b []byte) (ID, error) {
	if len(b) != IDSize {
		return ID{}, fmt.Errorf("%w: need %d bytes, got %d", ErrInvalidID, IDSize, len(b))
	}
	var id ID
	copy(id[:], b)
	return id, nil
}

// String returns the canonical UUID text form.
func (id ID) String() string { return uuid.UUID(id).String() }

// Bytes returns a copy of the raw identifier bytes.
func (id ID) Bytes() []byte {
	b := make([]byte, IDSize)
	copy(b, id[:])
	return b
}

// IsZero reports whether id is the reserved zero identifier.
func (id ID) IsZero() bool { return id == ID{} }

// Compare orders identifiers by their raw bytes: -1, 0 or +1.
func (id ID) Compare(other ID) int { return bytes.Compare(id[:], other[:]) }

// Less reports whether id sorts before other.
func (id ID) Less(other ID) bool { return id.Compare(other) < 0 }

// Hash returns a stable 64-bit hash of the identifier.
func (id ID) Hash() uint64 { return xxhash.Sum64(id[:]) }

// IDSet is an unordered set of identifiers.
type IDSet map[ID]struct{}

// NewIDSet builds a set from ids.
func NewIDSet(ids ...ID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id; a nil set is not usable, callers allocate with NewIDSet.
func (s IDSet) Add(id ID) { s[id] = struct{}{} }

// Contains reports membership; safe on a nil set.
func (s IDSet) Contains(id ID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the set size.
func (s IDSet) Len() int { return len(s) }

// Slice returns the members sorted ascending.
func (s IDSet) Slice() []ID {
	out := make([]ID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// Clone returns an independent copy (never nil).
func (s IDSet) Clone() IDSet {
	c := make(IDSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Equal reports whether both sets hold the same members.
func (s IDSet) Equal(other IDSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}
