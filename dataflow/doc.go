// SPDX-License-Identifier: MIT

// Package dataflow is a small, single-process batch engine offering the
// primitives a distributed dataflow system exposes to graph operators:
// partitioned datasets, element-wise transforms, hash shuffles with
// in-group sorting, hash joins, unions and rebalancing.
//
// Every operator is a barrier: it consumes all partitions of its input and
// materializes a new Dataset. Partitions are processed concurrently with
// golang.org/x/sync/errgroup; the first failing partition cancels the rest
// and the error is returned wrapped with the operator name.
//
// Determinism
//
//	For a fixed input order and parallelism, every operator yields the same
//	partitions in the same order. GroupReduce visits groups in ascending key
//	order within a partition and, when an order function is given, hands
//	each group to the reducer stably sorted. Changing the parallelism moves
//	records between partitions but never changes the multiset of results.
//
// Usage
//
//	env, err := dataflow.NewEnvironment(dataflow.WithContext(ctx), dataflow.WithParallelism(4))
//	words := dataflow.FromSlice(env, []string{"a", "b", "a"})
//	counts, err := dataflow.CountBy("count words", words, func(w string) word { return word(w) })
package dataflow
