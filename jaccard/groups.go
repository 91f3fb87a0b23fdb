// SPDX-License-Identifier: MIT

package jaccard

import (
	"github.com/katalvlaran/simlath/dataflow"
	"github.com/katalvlaran/simlath/epgm"
)

// GenerateGroupSpans groups adjacencies by center, orders each group by
// member id and assigns the i-th member span i / groupSize.
func GenerateGroupSpans(in *dataflow.Dataset[AnnotatedEdge], groupSize int) (*dataflow.Dataset[GroupSpan], error) {
	return dataflow.GroupReduce("generate group spans", in,
		func(a AnnotatedEdge) epgm.ID { return a.Center },
		func(a, b AnnotatedEdge) int { return a.Member.Compare(b.Member) },
		func(center epgm.ID, members []AnnotatedEdge, emit func(GroupSpan)) error {
			for i, m := range members {
				emit(GroupSpan{Center: center, Member: m.Member, Span: i / groupSize, Degree: m.Degree})
			}
			return nil
		})
}

// GenerateGroups rebalances the span records and replicates each one into
// every group 0..Span, so that group g of a center holds the members of
// span g followed by all members of higher spans.
func GenerateGroups(in *dataflow.Dataset[GroupSpan]) (*dataflow.Dataset[GroupRecord], error) {
	return dataflow.FlatMap("generate groups", dataflow.Rebalance(in), func(s GroupSpan, emit func(GroupRecord)) error {
		for g := 0; g <= s.Span; g++ {
			emit(GroupRecord{Group: g, Center: s.Center, Member: s.Member, Span: s.Span, Degree: s.Degree})
		}
		return nil
	})
}
