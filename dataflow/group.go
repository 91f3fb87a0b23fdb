// SPDX-License-Identifier: MIT

package dataflow

import (
	"context"
	"slices"

	"github.com/emirpasic/gods/maps/treemap"
)

// Key is a grouping key: comparable for hashing into maps, totally ordered
// by Compare for deterministic group order, and Hash must be stable across
// processes because it decides the target partition.
type Key[K any] interface {
	comparable
	Compare(other K) int
	Hash() uint64
}

// Counted pairs a key with the number of records that carried it.
type Counted[K any] struct {
	Key   K
	Count int64
}

// group collects the records of one key inside a partition.
type group[T any] struct {
	items []T
}

// GroupReduce shuffles records by key, sorts each group with order (stable;
// nil keeps arrival order) and calls reduce once per group.
//
// Implementation:
//   - Stage 1: every input partition hashes its records into per-target buckets.
//   - Stage 2: every target partition concatenates its buckets in source
//     order, indexes them by key in a treemap and reduces groups in key order.
//
// Complexity: O(N log G) for N records and G groups, plus the sort cost.
func GroupReduce[T any, K Key[K], U any](
	name string,
	in *Dataset[T],
	key func(T) K,
	order func(a, b T) int,
	reduce func(k K, items []T, emit func(U)) error,
) (*Dataset[U], error) {
	if key == nil || reduce == nil {
		return nil, ErrNilFunction
	}
	n := in.env.parallelism

	// Stage 1: shuffle.
	buckets := make([][][]T, len(in.parts))
	err := in.env.run(name+" (shuffle)", len(in.parts), func(ctx context.Context, p int) error {
		local := make([][]T, n)
		for _, rec := range in.parts[p] {
			if err := cancelled(ctx); err != nil {
				return err
			}
			target := int(key(rec).Hash() % uint64(n))
			local[target] = append(local[target], rec)
		}
		buckets[p] = local
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Stage 2: group, sort, reduce.
	out := make([][]U, n)
	err = in.env.run(name, n, func(ctx context.Context, p int) error {
		index := treemap.NewWith(func(a, b interface{}) int {
			return a.(K).Compare(b.(K))
		})
		for src := range buckets {
			for _, rec := range buckets[src][p] {
				k := key(rec)
				if g, found := index.Get(k); found {
					g.(*group[T]).items = append(g.(*group[T]).items, rec)
					continue
				}
				index.Put(k, &group[T]{items: []T{rec}})
			}
		}

		var buf []U
		emit := func(u U) { buf = append(buf, u) }
		it := index.Iterator()
		for it.Next() {
			if err := cancelled(ctx); err != nil {
				return err
			}
			items := it.Value().(*group[T]).items
			if order != nil {
				slices.SortStableFunc(items, order)
			}
			if err := reduce(it.Key().(K), items, emit); err != nil {
				return err
			}
		}
		out[p] = buf
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Dataset[U]{env: in.env, parts: out}, nil
}

// CountBy counts the records per key.
func CountBy[T any, K Key[K]](name string, in *Dataset[T], key func(T) K) (*Dataset[Counted[K]], error) {
	return GroupReduce(name, in, key, nil, func(k K, items []T, emit func(Counted[K])) error {
		emit(Counted[K]{Key: k, Count: int64(len(items))})
		return nil
	})
}

// Distinct keeps the first record (in arrival order) of every key.
func Distinct[T any, K Key[K]](name string, in *Dataset[T], key func(T) K) (*Dataset[T], error) {
	return GroupReduce(name, in, key, nil, func(_ K, items []T, emit func(T)) error {
		emit(items[0])
		return nil
	})
}
