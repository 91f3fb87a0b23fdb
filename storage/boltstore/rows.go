// SPDX-License-Identifier: MIT
//
// File: rows.go
// Role: row and family (de)serialization on nested bbolt buckets.

package boltstore

import (
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/katalvlaran/simlath/epgm"
	"github.com/katalvlaran/simlath/storage"
)

var (
	tableGraphHeads = []byte("graph_heads")
	tableVertices   = []byte("vertices")
	tableEdges      = []byte("edges")

	familyMeta       = []byte("meta")
	familyProperties = []byte("properties")
	familyGraphs     = []byte("graphs")
	familyIn         = []byte("in")
	familyOut        = []byte("out")
	familyMembers    = []byte("members")

	colLabel  = []byte("label")
	colSource = []byte("source")
	colTarget = []byte("target")
)

// Prefixes of member keys in a graph head row.
const (
	memberVertex byte = 'v'
	memberEdge   byte = 'e'
)

// encodedProperty is a property ready to be put into a row.
type encodedProperty struct {
	key   []byte
	value []byte
}

// encodeProperties fails fast so invalid values are rejected at write time,
// also when the write is buffered.
func encodeProperties(p *epgm.Properties) ([]encodedProperty, error) {
	out := make([]encodedProperty, 0, p.Len())
	for _, e := range p.Entries() {
		b, err := storage.EncodeValue(e.Value)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", e.Key, err)
		}
		out = append(out, encodedProperty{key: []byte(e.Key), value: b})
	}
	return out, nil
}

// resetFamily drops and recreates a family of row.
func resetFamily(row *bolt.Bucket, name []byte) (*bolt.Bucket, error) {
	if row.Bucket(name) != nil {
		if err := row.DeleteBucket(name); err != nil {
			return nil, err
		}
	}
	return row.CreateBucket(name)
}

func putMeta(row *bolt.Bucket, cols map[string][]byte) error {
	meta, err := resetFamily(row, familyMeta)
	if err != nil {
		return err
	}
	for k, v := range cols {
		if err = meta.Put([]byte(k), v); err != nil {
			return err
		}
	}
	return nil
}

func putProperties(row *bolt.Bucket, props []encodedProperty) error {
	fam, err := resetFamily(row, familyProperties)
	if err != nil {
		return err
	}
	for _, p := range props {
		if err = fam.Put(p.key, p.value); err != nil {
			return err
		}
	}
	return nil
}

// putIDs writes ids as keys of fam; a non-zero prefix is prepended.
func putIDs(fam *bolt.Bucket, prefix byte, ids []epgm.ID) error {
	for _, id := range ids {
		key := id.Bytes()
		if prefix != 0 {
			key = append([]byte{prefix}, key...)
		}
		if err := fam.Put(key, []byte{}); err != nil {
			return err
		}
	}
	return nil
}

// readIDs collects the ids stored in fam, keeping only keys with prefix
// when prefix is non-zero. A nil family yields an empty set.
func readIDs(fam *bolt.Bucket, prefix byte) (epgm.IDSet, error) {
	out := epgm.NewIDSet()
	if fam == nil {
		return out, nil
	}
	err := fam.ForEach(func(k, _ []byte) error {
		if prefix != 0 {
			if len(k) == 0 || k[0] != prefix {
				return nil
			}
			k = k[1:]
		}
		id, err := epgm.IDFromBytes(k)
		if err != nil {
			return fmt.Errorf("%w: %v", storage.ErrCorruptRecord, err)
		}
		out.Add(id)
		return nil
	})
	return out, err
}

func readProperties(row *bolt.Bucket) (*epgm.Properties, error) {
	props := epgm.NewProperties()
	fam := row.Bucket(familyProperties)
	if fam == nil {
		return props, nil
	}
	err := fam.ForEach(func(k, v []byte) error {
		val, err := storage.DecodeValue(v)
		if err != nil {
			return fmt.Errorf("property %q: %w", k, err)
		}
		return props.Set(string(k), val)
	})
	return props, err
}

// readMeta returns the meta family; rows without one are not elements.
func readMeta(row *bolt.Bucket) (*bolt.Bucket, error) {
	meta := row.Bucket(familyMeta)
	if meta == nil {
		return nil, storage.ErrNotFound
	}
	return meta, nil
}

func readIDColumn(meta *bolt.Bucket, col []byte) (epgm.ID, error) {
	id, err := epgm.IDFromBytes(meta.Get(col))
	if err != nil {
		return epgm.ID{}, fmt.Errorf("%w: column %s: %v", storage.ErrCorruptRecord, col, err)
	}
	return id, nil
}

func decodeVertex(id epgm.ID, row *bolt.Bucket) (*epgm.Vertex, error) {
	meta, err := readMeta(row)
	if err != nil {
		return nil, err
	}
	props, err := readProperties(row)
	if err != nil {
		return nil, err
	}
	graphs, err := readIDs(row.Bucket(familyGraphs), 0)
	if err != nil {
		return nil, err
	}
	return &epgm.Vertex{ID: id, Label: string(meta.Get(colLabel)), Properties: props, Graphs: graphs}, nil
}

func decodeEdge(id epgm.ID, row *bolt.Bucket) (*epgm.Edge, error) {
	meta, err := readMeta(row)
	if err != nil {
		return nil, err
	}
	source, err := readIDColumn(meta, colSource)
	if err != nil {
		return nil, err
	}
	target, err := readIDColumn(meta, colTarget)
	if err != nil {
		return nil, err
	}
	props, err := readProperties(row)
	if err != nil {
		return nil, err
	}
	graphs, err := readIDs(row.Bucket(familyGraphs), 0)
	if err != nil {
		return nil, err
	}
	return &epgm.Edge{
		ID:         id,
		Label:      string(meta.Get(colLabel)),
		Source:     source,
		Target:     target,
		Properties: props,
		Graphs:     graphs,
	}, nil
}

func decodeGraphHead(id epgm.ID, row *bolt.Bucket) (*epgm.GraphHead, error) {
	meta, err := readMeta(row)
	if err != nil {
		return nil, err
	}
	props, err := readProperties(row)
	if err != nil {
		return nil, err
	}
	members := row.Bucket(familyMembers)
	vertices, err := readIDs(members, memberVertex)
	if err != nil {
		return nil, err
	}
	edges, err := readIDs(members, memberEdge)
	if err != nil {
		return nil, err
	}
	return &epgm.GraphHead{
		ID:         id,
		Label:      string(meta.Get(colLabel)),
		Properties: props,
		Vertices:   vertices,
		Edges:      edges,
	}, nil
}
