// SPDX-License-Identifier: MIT

package jaccard

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/simlath/dataflow"
)

// scoreState is the fold accumulator of one vertex pair.
type scoreState struct {
	shared  int64
	degreeA int64
	degreeB int64
}

func (s scoreState) step(p TwoPath) (scoreState, error) {
	if s.shared > 0 && (p.DegreeA != s.degreeA || p.DegreeB != s.degreeB) {
		return s, fmt.Errorf("%w: pair (%s,%s) saw degrees (%d,%d) and (%d,%d)",
			ErrInconsistentDegree, p.A, p.B, s.degreeA, s.degreeB, p.DegreeA, p.DegreeB)
	}
	return scoreState{shared: s.shared + 1, degreeA: p.DegreeA, degreeB: p.DegreeB}, nil
}

// ComputeScore folds the two-paths of one pair into its Score.
//
//	UNION: denominator = deg(A) + deg(B) - shared
//	MAX:   denominator = max(deg(A), deg(B))
//
// Errors:
//   - ErrInconsistentDegree if the records disagree on a degree.
//   - ErrDegenerateDenominator if the denominator is ≤ 0 (including an empty group).
func ComputeScore(pair VertexPair, paths []TwoPath, d Denominator) (Score, error) {
	var (
		acc scoreState
		err error
	)
	for _, p := range paths {
		if acc, err = acc.step(p); err != nil {
			return Score{}, err
		}
	}

	s := Score{A: pair.A, B: pair.B, Shared: acc.shared, DegreeA: acc.degreeA, DegreeB: acc.degreeB}
	switch d {
	case DenominatorMax:
		s.Denominator = max(acc.degreeA, acc.degreeB)
	default:
		s.Denominator = acc.degreeA + acc.degreeB - acc.shared
	}
	if s.Denominator <= 0 {
		return s, fmt.Errorf("%w: pair (%s,%s) shared=%d denominator=%d",
			ErrDegenerateDenominator, pair.A, pair.B, s.Shared, s.Denominator)
	}
	s.Value = float64(s.Shared) / float64(s.Denominator)
	return s, nil
}

// ReduceScores groups two-paths by vertex pair and computes one Score per
// pair. Under DegenerateSkip a degenerate pair is logged and dropped.
func ReduceScores(in *dataflow.Dataset[TwoPath], d Denominator, policy DegeneratePolicy, log logrus.FieldLogger) (*dataflow.Dataset[Score], error) {
	return dataflow.GroupReduce("reduce scores", in,
		func(p TwoPath) VertexPair { return VertexPair{A: p.A, B: p.B} },
		nil,
		func(pair VertexPair, paths []TwoPath, emit func(Score)) error {
			s, err := ComputeScore(pair, paths, d)
			if err != nil {
				if policy == DegenerateSkip && errors.Is(err, ErrDegenerateDenominator) {
					log.WithFields(logrus.Fields{
						"source":      pair.A.String(),
						"target":      pair.B.String(),
						"shared":      s.Shared,
						"denominator": s.Denominator,
					}).Warn("skipping pair with degenerate denominator")
					return nil
				}
				return err
			}
			emit(s)
			return nil
		})
}
