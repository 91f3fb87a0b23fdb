// SPDX-License-Identifier: MIT

package dataflow

// Dataset is an immutable, partitioned collection of records.
type Dataset[T any] struct {
	env   *Environment
	parts [][]T
}

// FromSlice splits items into env.Parallelism() contiguous partitions.
// The slice is copied.
func FromSlice[T any](env *Environment, items []T) *Dataset[T] {
	n := env.parallelism
	parts := make([][]T, n)
	chunk := (len(items) + n - 1) / n
	for p := 0; p < n; p++ {
		lo := p * chunk
		hi := lo + chunk
		if lo > len(items) {
			lo = len(items)
		}
		if hi > len(items) {
			hi = len(items)
		}
		parts[p] = append([]T(nil), items[lo:hi]...)
	}
	return &Dataset[T]{env: env, parts: parts}
}

// Environment returns the environment the dataset belongs to.
func (d *Dataset[T]) Environment() *Environment { return d.env }

// Partitions returns the number of partitions.
func (d *Dataset[T]) Partitions() int { return len(d.parts) }

// Count returns the total number of records.
func (d *Dataset[T]) Count() int {
	n := 0
	for _, p := range d.parts {
		n += len(p)
	}
	return n
}

// Collect concatenates all partitions in partition order.
func (d *Dataset[T]) Collect() []T {
	out := make([]T, 0, d.Count())
	for _, p := range d.parts {
		out = append(out, p...)
	}
	return out
}

// Union returns a dataset holding the partitions of a followed by those of b.
// Duplicates are kept.
func Union[T any](a, b *Dataset[T]) *Dataset[T] {
	parts := make([][]T, 0, len(a.parts)+len(b.parts))
	parts = append(parts, a.parts...)
	parts = append(parts, b.parts...)
	return &Dataset[T]{env: a.env, parts: parts}
}

// Rebalance redistributes records round-robin over env.Parallelism()
// partitions, evening out skew left by a previous grouping.
func Rebalance[T any](in *Dataset[T]) *Dataset[T] {
	n := in.env.parallelism
	parts := make([][]T, n)
	i := 0
	for _, p := range in.parts {
		for _, rec := range p {
			parts[i%n] = append(parts[i%n], rec)
			i++
		}
	}
	return &Dataset[T]{env: in.env, parts: parts}
}
