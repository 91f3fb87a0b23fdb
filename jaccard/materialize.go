// SPDX-License-Identifier: MIT

package jaccard

import (
	"github.com/katalvlaran/simlath/dataflow"
	"github.com/katalvlaran/simlath/epgm"
)

// MaterializeEdges emits the mirrored pair A→B, B→A for every score, both
// labelled label and carrying the ratio as float64 property "value".
// Edge ids are derived from (label, source, target), so recomputing the
// same graph yields the same ids.
func MaterializeEdges(in *dataflow.Dataset[Score], label string) (*dataflow.Dataset[*epgm.Edge], error) {
	return dataflow.FlatMap("materialize edges", in, func(s Score, emit func(*epgm.Edge)) error {
		ab, err := similarityEdge(label, s.A, s.B, s.Value)
		if err != nil {
			return err
		}
		ba, err := similarityEdge(label, s.B, s.A, s.Value)
		if err != nil {
			return err
		}
		emit(ab)
		emit(ba)
		return nil
	})
}

func similarityEdge(label string, source, target epgm.ID, value float64) (*epgm.Edge, error) {
	props := epgm.NewProperties()
	if err := props.Set(ValueProperty, value); err != nil {
		return nil, err
	}
	e := epgm.NewEdge(label, source, target, props)
	e.ID = epgm.IDFromName(label + "/" + source.String() + "/" + target.String())
	return e, nil
}
