// SPDX-License-Identifier: MIT

// Package storage defines the graph storage adapter consumed at pipeline
// boundaries: read-all-then-compute and compute-then-write-all.
//
// A Store persists graph heads, vertices and edges keyed by their 128-bit
// ids. Property values are encoded with EncodeValue as a one-byte type tag
// followed by a big-endian payload; only the scalar types of epgm are
// accepted. Implementations live in sub-packages (see storage/boltstore).
//
// Errors
//
//	ErrInvalidPropertyType - value of an unsupported type reached the codec.
//	ErrNotFound            - no row for the requested id.
//	ErrClosed              - the store was closed.
//	ErrCorruptRecord       - a stored row or value cannot be decoded.
package storage
