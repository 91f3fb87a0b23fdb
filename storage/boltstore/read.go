// SPDX-License-Identifier: MIT

package boltstore

import (
	"errors"
	"fmt"
	"iter"

	lru "github.com/hashicorp/golang-lru/v2"
	bolt "go.etcd.io/bbolt"

	"github.com/katalvlaran/simlath/epgm"
	"github.com/katalvlaran/simlath/storage"
)

// cloner is implemented by the element pointer types.
type cloner[T any] interface {
	Clone() T
}

// errStopIteration ends a scan when the consumer breaks out of the loop.
var errStopIteration = errors.New("boltstore: stop iteration")

// ReadGraphHead returns the graph head id.
func (s *Store) ReadGraphHead(id epgm.ID) (*epgm.GraphHead, error) {
	return readRow(s, tableGraphHeads, "graph head", id, s.heads, decodeGraphHead)
}

// ReadVertex returns the vertex id.
func (s *Store) ReadVertex(id epgm.ID) (*epgm.Vertex, error) {
	return readRow(s, tableVertices, "vertex", id, s.vertices, decodeVertex)
}

// ReadEdge returns the edge id.
func (s *Store) ReadEdge(id epgm.ID) (*epgm.Edge, error) {
	return readRow(s, tableEdges, "edge", id, s.edges, decodeEdge)
}

// IncidentEdges returns the ids of the edges entering and leaving vertex id.
func (s *Store) IncidentEdges(id epgm.ID) (in, out epgm.IDSet, err error) {
	if err = s.checkOpen(); err != nil {
		return nil, nil, err
	}
	err = s.db.View(func(tx *bolt.Tx) error {
		r := tx.Bucket(tableVertices).Bucket(id.Bytes())
		if r == nil {
			return fmt.Errorf("%w: vertex %s", storage.ErrNotFound, id)
		}
		if in, err = readIDs(r.Bucket(familyIn), 0); err != nil {
			return err
		}
		out, err = readIDs(r.Bucket(familyOut), 0)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return in, out, nil
}

// GraphHeads streams all graph heads in id order.
func (s *Store) GraphHeads() iter.Seq2[*epgm.GraphHead, error] {
	return scan(s, tableGraphHeads, decodeGraphHead)
}

// Vertices streams all vertices in id order.
func (s *Store) Vertices() iter.Seq2[*epgm.Vertex, error] {
	return scan(s, tableVertices, decodeVertex)
}

// Edges streams all edges in id order.
func (s *Store) Edges() iter.Seq2[*epgm.Edge, error] {
	return scan(s, tableEdges, decodeEdge)
}

func readRow[T cloner[T]](
	s *Store,
	table []byte,
	kind string,
	id epgm.ID,
	cache *lru.Cache[epgm.ID, T],
	decode func(epgm.ID, *bolt.Bucket) (T, error),
) (T, error) {
	var zero T
	gen, err := s.generation()
	if err != nil {
		return zero, err
	}
	if cache != nil {
		if el, ok := cache.Get(id); ok {
			return el.Clone(), nil
		}
	}

	var el T
	err = s.db.View(func(tx *bolt.Tx) error {
		r := tx.Bucket(table).Bucket(id.Bytes())
		if r == nil {
			return storage.ErrNotFound
		}
		var err error
		el, err = decode(id, r)
		return err
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return zero, fmt.Errorf("%w: %s %s", storage.ErrNotFound, kind, id)
		}
		return zero, fmt.Errorf("boltstore: read %s %s: %w", kind, id, err)
	}
	if cache != nil {
		cacheIf(s, cache, gen, id, el)
	}
	return el.Clone(), nil
}

// scan yields every decodable row of table; rows without a meta family
// (vertex rows holding only incident edges) are skipped.
func scan[T any](s *Store, table []byte, decode func(epgm.ID, *bolt.Bucket) (T, error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		var zero T
		if err := s.checkOpen(); err != nil {
			yield(zero, err)
			return
		}
		err := s.db.View(func(tx *bolt.Tx) error {
			c := tx.Bucket(table).Cursor()
			for k, _ := c.First(); k != nil; k, _ = c.Next() {
				id, err := epgm.IDFromBytes(k)
				if err != nil {
					return fmt.Errorf("%w: row key: %v", storage.ErrCorruptRecord, err)
				}
				r := tx.Bucket(table).Bucket(k)
				if r == nil {
					continue
				}
				el, err := decode(id, r)
				if errors.Is(err, storage.ErrNotFound) {
					continue
				}
				if err != nil {
					return err
				}
				if !yield(el, nil) {
					return errStopIteration
				}
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopIteration) {
			yield(zero, fmt.Errorf("boltstore: scan %s: %w", table, err))
		}
	}
}
