// SPDX-License-Identifier: MIT

// Package boltstore is a column-family graph store on go.etcd.io/bbolt.
//
// Layout
//
//	table (top-level bucket)   row (nested bucket, key = 16-byte id)
//	graph_heads                meta{label} properties members{v|e + id}
//	vertices                   meta{label} properties graphs in out
//	edges                      meta{label source target} properties graphs
//
// Every family is a nested bucket of the row; property values are encoded
// with storage.EncodeValue. Writing an edge also records its id in the
// out family of the source row and the in family of the target row.
//
// Buffering
//
//	With auto-flush on (the default) every write is its own transaction.
//	With auto-flush off, writes are queued and applied in one transaction
//	by Flush or Close; until then readers do not see them.
//
// Caching
//
//	Decoded rows are kept in an LRU cache (github.com/hashicorp/golang-lru/v2)
//	and invalidated when a flush rewrites them. Reads return copies.
//
// Iteration
//
//	GraphHeads, Vertices and Edges stream rows inside one read transaction
//	in id order. Do not write to the store from inside the loop.
package boltstore
