// SPDX-License-Identifier: MIT

package jaccard

import (
	"github.com/katalvlaran/simlath/dataflow"
)

// GenerateGroupPairs expands every (group, center) bucket into two-paths.
//
// A bucket is scanned in ascending member order. Its first groupSize members
// (the members of span Group) are kept in a visited list; every member pairs
// with all visited members before it. Across all groups of a center each
// unordered member pair is therefore emitted exactly once, in the group of
// the lower member's span, with the lower id as A.
//
// Complexity: O(groupSize · bucket) per bucket.
func GenerateGroupPairs(in *dataflow.Dataset[GroupRecord], groupSize int) (*dataflow.Dataset[TwoPath], error) {
	return dataflow.GroupReduce("generate group pairs", in,
		func(r GroupRecord) groupKey { return groupKey{Group: r.Group, Center: r.Center} },
		func(a, b GroupRecord) int { return a.Member.Compare(b.Member) },
		func(_ groupKey, bucket []GroupRecord, emit func(TwoPath)) error {
			visited := make([]GroupRecord, 0, min(groupSize, len(bucket)))
			for _, cur := range bucket {
				for _, prior := range visited {
					emit(TwoPath{A: prior.Member, B: cur.Member, DegreeA: prior.Degree, DegreeB: cur.Degree})
				}
				if len(visited) < groupSize {
					visited = append(visited, cur)
				}
			}
			return nil
		})
}
