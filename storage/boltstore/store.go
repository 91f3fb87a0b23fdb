// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: Store lifecycle and buffered writes.
// Concurrency:
//   - mu guards pending, autoFlush, closed and gen; bbolt serializes transactions.
//   - gen counts flushes; a read only caches its row if no flush happened
//     while it ran.

package boltstore

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"

	"github.com/katalvlaran/simlath/epgm"
	"github.com/katalvlaran/simlath/storage"
)

var _ storage.Store = (*Store)(nil)

// mutation is one queued row write.
type mutation struct {
	apply func(tx *bolt.Tx) error
	evict func()
}

// Store is a storage.Store backed by one bbolt file.
type Store struct {
	db  *bolt.DB
	log logrus.FieldLogger

	mu        sync.Mutex
	pending   []mutation
	autoFlush bool
	closed    bool
	gen       uint64

	// nil when caching is disabled
	heads    *lru.Cache[epgm.ID, *epgm.GraphHead]
	vertices *lru.Cache[epgm.ID, *epgm.Vertex]
	edges    *lru.Cache[epgm.ID, *epgm.Edge]
}

// Open opens (creating if needed) the store file at path.
//
// Errors: ErrOptionViolation for invalid options; bbolt errors (wrapped)
// if the file cannot be opened, e.g. bolt timeout while another process
// holds the lock.
func Open(path string, opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: o.timeout})
	if err != nil {
		return nil, fmt.Errorf("boltstore: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, t := range [][]byte{tableGraphHeads, tableVertices, tableEdges} {
			if _, err := tx.CreateBucketIfNotExists(t); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("boltstore: create tables: %w", err)
	}

	s := &Store{db: db, log: o.logger, autoFlush: o.autoFlush}
	if o.cacheSize > 0 {
		s.heads, _ = lru.New[epgm.ID, *epgm.GraphHead](o.cacheSize)
		s.vertices, _ = lru.New[epgm.ID, *epgm.Vertex](o.cacheSize)
		s.edges, _ = lru.New[epgm.ID, *epgm.Edge](o.cacheSize)
	}
	s.log.WithFields(logrus.Fields{"path": path, "auto_flush": o.autoFlush, "cache_size": o.cacheSize}).
		Debug("store opened")
	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string { return s.db.Path() }

// SetAutoFlush switches buffering. Turning auto-flush on does not flush
// already queued writes; the next write or Flush does.
func (s *Store) SetAutoFlush(enabled bool) {
	s.mu.Lock()
	s.autoFlush = enabled
	s.mu.Unlock()
}

// Pending returns the number of queued writes.
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Flush applies all queued writes in one transaction. A failed flush
// rolls back and discards the whole batch.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrClosed
	}
	return s.flushLocked()
}

func (s *Store) flushLocked() error {
	if len(s.pending) == 0 {
		return nil
	}
	start := time.Now()
	batch := s.pending
	s.pending = nil

	err := s.db.Update(func(tx *bolt.Tx) error {
		for _, m := range batch {
			if err := m.apply(tx); err != nil {
				return err
			}
		}
		return nil
	})
	s.gen++
	for _, m := range batch {
		m.evict()
	}
	if err != nil {
		s.log.WithError(err).WithField("mutations", len(batch)).Error("flush failed")
		return fmt.Errorf("boltstore: flush: %w", err)
	}
	s.log.WithFields(logrus.Fields{"mutations": len(batch), "elapsed": time.Since(start)}).Debug("flushed")
	return nil
}

// Close flushes queued writes and closes the file. Closing twice is a no-op.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	flushErr := s.flushLocked()
	s.closed = true
	if s.heads != nil {
		s.heads.Purge()
		s.vertices.Purge()
		s.edges.Purge()
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("boltstore: close: %w", err)
	}
	return flushErr
}

func (s *Store) enqueue(m mutation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrClosed
	}
	s.pending = append(s.pending, m)
	if s.autoFlush {
		return s.flushLocked()
	}
	return nil
}

func (s *Store) checkOpen() error {
	_, err := s.generation()
	return err
}

func (s *Store) generation() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, storage.ErrClosed
	}
	return s.gen, nil
}

// cacheIf adds el to c unless a flush happened since gen was read.
func cacheIf[T any](s *Store, c *lru.Cache[epgm.ID, T], gen uint64, id epgm.ID, el T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed && s.gen == gen {
		c.Add(id, el)
	}
}

// row returns the row bucket of id in table, creating it if missing.
func row(tx *bolt.Tx, table []byte, id epgm.ID) (*bolt.Bucket, error) {
	return tx.Bucket(table).CreateBucketIfNotExists(id.Bytes())
}

// WriteGraphHead stores h including its member vertex and edge ids.
func (s *Store) WriteGraphHead(h *epgm.GraphHead) error {
	if h == nil {
		return epgm.ErrNilElement
	}
	props, err := encodeProperties(h.Properties)
	if err != nil {
		return err
	}
	id, label := h.ID, h.Label
	vertices, edges := h.Vertices.Slice(), h.Edges.Slice()

	return s.enqueue(mutation{
		apply: func(tx *bolt.Tx) error {
			r, err := row(tx, tableGraphHeads, id)
			if err != nil {
				return err
			}
			if err = putMeta(r, map[string][]byte{string(colLabel): []byte(label)}); err != nil {
				return err
			}
			if err = putProperties(r, props); err != nil {
				return err
			}
			members, err := resetFamily(r, familyMembers)
			if err != nil {
				return err
			}
			if err = putIDs(members, memberVertex, vertices); err != nil {
				return err
			}
			return putIDs(members, memberEdge, edges)
		},
		evict: func() { removeCached(s.heads, id) },
	})
}

// WriteVertex stores v. Incident edge ids recorded by WriteEdge are kept.
func (s *Store) WriteVertex(v *epgm.Vertex) error {
	if v == nil {
		return epgm.ErrNilElement
	}
	props, err := encodeProperties(v.Properties)
	if err != nil {
		return err
	}
	id, label, graphs := v.ID, v.Label, v.Graphs.Slice()

	return s.enqueue(mutation{
		apply: func(tx *bolt.Tx) error {
			r, err := row(tx, tableVertices, id)
			if err != nil {
				return err
			}
			if err = putMeta(r, map[string][]byte{string(colLabel): []byte(label)}); err != nil {
				return err
			}
			if err = putProperties(r, props); err != nil {
				return err
			}
			fam, err := resetFamily(r, familyGraphs)
			if err != nil {
				return err
			}
			return putIDs(fam, 0, graphs)
		},
		evict: func() { removeCached(s.vertices, id) },
	})
}

// WriteEdge stores e and links its id into the out family of the source
// row and the in family of the target row. Rewriting an edge with other
// endpoints unlinks the old ones.
func (s *Store) WriteEdge(e *epgm.Edge) error {
	if e == nil {
		return epgm.ErrNilElement
	}
	props, err := encodeProperties(e.Properties)
	if err != nil {
		return err
	}
	id, label, source, target, graphs := e.ID, e.Label, e.Source, e.Target, e.Graphs.Slice()

	return s.enqueue(mutation{
		apply: func(tx *bolt.Tx) error {
			r, err := row(tx, tableEdges, id)
			if err != nil {
				return err
			}
			if err = unlinkIncident(tx, r, id); err != nil {
				return err
			}
			err = putMeta(r, map[string][]byte{
				string(colLabel):  []byte(label),
				string(colSource): source.Bytes(),
				string(colTarget): target.Bytes(),
			})
			if err != nil {
				return err
			}
			if err = putProperties(r, props); err != nil {
				return err
			}
			fam, err := resetFamily(r, familyGraphs)
			if err != nil {
				return err
			}
			if err = putIDs(fam, 0, graphs); err != nil {
				return err
			}
			if err = linkIncident(tx, source, familyOut, id); err != nil {
				return err
			}
			return linkIncident(tx, target, familyIn, id)
		},
		evict: func() { removeCached(s.edges, id) },
	})
}

func linkIncident(tx *bolt.Tx, vertex epgm.ID, family []byte, edge epgm.ID) error {
	r, err := row(tx, tableVertices, vertex)
	if err != nil {
		return err
	}
	fam, err := r.CreateBucketIfNotExists(family)
	if err != nil {
		return err
	}
	return putIDs(fam, 0, []epgm.ID{edge})
}

// unlinkIncident removes edge from the incident families of the endpoints
// currently stored in its row, if any.
func unlinkIncident(tx *bolt.Tx, edgeRow *bolt.Bucket, edge epgm.ID) error {
	meta := edgeRow.Bucket(familyMeta)
	if meta == nil {
		return nil
	}
	for _, link := range []struct {
		col, family []byte
	}{{colSource, familyOut}, {colTarget, familyIn}} {
		v, err := readIDColumn(meta, link.col)
		if err != nil {
			return err
		}
		r := tx.Bucket(tableVertices).Bucket(v.Bytes())
		if r == nil {
			continue
		}
		if fam := r.Bucket(link.family); fam != nil {
			if err = fam.Delete(edge.Bytes()); err != nil {
				return err
			}
		}
	}
	return nil
}

func removeCached[T any](c *lru.Cache[epgm.ID, T], id epgm.ID) {
	if c != nil {
		c.Remove(id)
	}
}
