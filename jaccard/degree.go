// SPDX-License-Identifier: MIT

package jaccard

import (
	"github.com/katalvlaran/simlath/dataflow"
	"github.com/katalvlaran/simlath/epgm"
)

// AnnotateDegrees turns the edge set into distinct (center, member)
// adjacencies and attaches the member's degree to each.
//
// For NeighborhoodOut the member is the edge source and the center its
// target, so members sharing a center share an out-neighbor and the degree
// is the member's distinct out-degree. NeighborhoodIn swaps both roles.
// Parallel edges collapse to one adjacency; vertices without edges never
// appear.
func AnnotateDegrees(edges *dataflow.Dataset[*epgm.Edge], n NeighborhoodType) (*dataflow.Dataset[AnnotatedEdge], error) {
	oriented, err := dataflow.Map("orient edges", edges, func(e *epgm.Edge) (link, error) {
		if n == NeighborhoodIn {
			return link{Center: e.Source, Member: e.Target}, nil
		}
		return link{Center: e.Target, Member: e.Source}, nil
	})
	if err != nil {
		return nil, err
	}

	links, err := dataflow.Distinct("distinct adjacencies", oriented, func(l link) link { return l })
	if err != nil {
		return nil, err
	}

	degrees, err := dataflow.CountBy("count degrees", links, func(l link) epgm.ID { return l.Member })
	if err != nil {
		return nil, err
	}

	return dataflow.Join("annotate degrees", links, degrees,
		func(l link) epgm.ID { return l.Member },
		func(c dataflow.Counted[epgm.ID]) epgm.ID { return c.Key },
		func(l link, c dataflow.Counted[epgm.ID]) (AnnotatedEdge, error) {
			return AnnotatedEdge{Center: l.Center, Member: l.Member, Degree: c.Count}, nil
		})
}
