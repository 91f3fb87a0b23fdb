// SPDX-License-Identifier: MIT
//
// File: jaccard.go
// Role: the Jaccard operator; wires the five stages into one batch pipeline.
// Pipeline: Annotate → Partition → Expand → Reduce → Materialize.

package jaccard

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/simlath/dataflow"
	"github.com/katalvlaran/simlath/epgm"
)

// JaccardIndex computes pairwise Jaccard similarity over a LogicalGraph.
// It is immutable after New and safe for concurrent use.
type JaccardIndex struct {
	opts Options
}

// New validates opts over DefaultOptions.
//
// Errors: ErrOptionViolation wrapping the last invalid option.
func New(opts ...Option) (*JaccardIndex, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &JaccardIndex{opts: o}, nil
}

// Name identifies the operator in logs (field "operator").
func (j *JaccardIndex) Name() string { return "JaccardIndex" }

// Options returns a copy of the effective configuration.
func (j *JaccardIndex) Options() Options { return j.opts }

// Scores returns one Score per vertex pair with at least one shared
// neighbor, sorted by (A, B).
func (j *JaccardIndex) Scores(g *epgm.LogicalGraph) ([]Score, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	scores, err := j.scores(g)
	if err != nil {
		return nil, err
	}
	out := scores.Collect()
	sort.Slice(out, func(i, k int) bool {
		return VertexPair{A: out[i].A, B: out[i].B}.Compare(VertexPair{A: out[k].A, B: out[k].B}) < 0
	})
	return out, nil
}

// Compute returns only the similarity edges (two per scored pair), sorted by ID.
func (j *JaccardIndex) Compute(g *epgm.LogicalGraph) ([]*epgm.Edge, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	scores, err := j.scores(g)
	if err != nil {
		return nil, err
	}
	edges, err := MaterializeEdges(scores, j.opts.EdgeLabel)
	if err != nil {
		return nil, err
	}
	j.stage("materialize", edges.Count())

	out := edges.Collect()
	sort.Slice(out, func(i, k int) bool { return out[i].ID.Less(out[k].ID) })
	return out, nil
}

// Execute returns a new graph holding the input vertices, the input edges
// and the similarity edges. The input graph is not modified. On error no
// partial result is returned.
func (j *JaccardIndex) Execute(g *epgm.LogicalGraph) (*epgm.LogicalGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	similar, err := j.Compute(g)
	if err != nil {
		return nil, err
	}
	return g.WithEdges(similar...), nil
}

// Run is a shortcut for New(opts...) followed by Execute(g).
func Run(g *epgm.LogicalGraph, opts ...Option) (*epgm.LogicalGraph, error) {
	j, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return j.Execute(g)
}

func (j *JaccardIndex) scores(g *epgm.LogicalGraph) (*dataflow.Dataset[Score], error) {
	start := time.Now()
	env, err := dataflow.NewEnvironment(
		dataflow.WithContext(j.opts.Ctx),
		dataflow.WithParallelism(j.opts.Parallelism),
	)
	if err != nil {
		return nil, err
	}

	annotated, err := AnnotateDegrees(dataflow.FromSlice(env, g.Edges()), j.opts.Neighborhood)
	if err != nil {
		return nil, err
	}
	j.stage("annotate", annotated.Count())

	spans, err := GenerateGroupSpans(annotated, j.opts.GroupSize)
	if err != nil {
		return nil, err
	}
	groups, err := GenerateGroups(spans)
	if err != nil {
		return nil, err
	}
	j.stage("partition", groups.Count())

	paths, err := GenerateGroupPairs(groups, j.opts.GroupSize)
	if err != nil {
		return nil, err
	}
	j.stage("expand", paths.Count())

	scores, err := ReduceScores(paths, j.opts.Denominator, j.opts.OnDegenerate, j.opts.Logger)
	if err != nil {
		return nil, err
	}
	j.opts.Logger.WithFields(logrus.Fields{
		"operator":     j.Name(),
		"stage":        "reduce",
		"records":      scores.Count(),
		"neighborhood": j.opts.Neighborhood.String(),
		"denominator":  j.opts.Denominator.String(),
		"elapsed":      time.Since(start),
	}).Debug("jaccard scores computed")
	return scores, nil
}

func (j *JaccardIndex) stage(name string, records int) {
	j.opts.Logger.WithFields(logrus.Fields{
		"operator": j.Name(),
		"stage":    name,
		"records":  records,
	}).Debug("jaccard stage done")
}
