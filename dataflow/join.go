// SPDX-License-Identifier: MIT

package dataflow

import "context"

// Join is an inner equi-join. The right side is built into a hash table,
// the left side is probed partition by partition; output partitions follow
// the left side. For one left record, matches are joined in right-side
// arrival order.
//
// Complexity: O(|L| + |R| + matches).
func Join[L, R any, K comparable, U any](
	name string,
	left *Dataset[L],
	right *Dataset[R],
	leftKey func(L) K,
	rightKey func(R) K,
	join func(L, R) (U, error),
) (*Dataset[U], error) {
	if leftKey == nil || rightKey == nil || join == nil {
		return nil, ErrNilFunction
	}

	table := make(map[K][]R)
	for _, p := range right.parts {
		for _, r := range p {
			k := rightKey(r)
			table[k] = append(table[k], r)
		}
	}

	out := make([][]U, len(left.parts))
	err := left.env.run(name, len(left.parts), func(ctx context.Context, p int) error {
		var buf []U
		for _, l := range left.parts[p] {
			if err := cancelled(ctx); err != nil {
				return err
			}
			for _, r := range table[leftKey(l)] {
				u, err := join(l, r)
				if err != nil {
					return err
				}
				buf = append(buf, u)
			}
		}
		out[p] = buf
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Dataset[U]{env: left.env, parts: out}, nil
}
