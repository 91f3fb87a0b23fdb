// SPDX-License-Identifier: MIT

package builder_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simlath/builder"
	"github.com/katalvlaran/simlath/epgm"
)

// link identifies an edge by its endpoint names.
type link struct{ U, V string }

// names maps vertex ids of g to their "name" property.
func names(t *testing.T, g *epgm.LogicalGraph) map[epgm.ID]string {
	t.Helper()
	out := make(map[epgm.ID]string, g.VertexCount())
	for _, v := range g.Vertices() {
		n, ok := v.Properties.Get(builder.NameProperty)
		require.True(t, ok, "vertex %s without name", v.ID)
		out[v.ID] = n.(string)
	}
	return out
}

// links returns the set of directed links of g by vertex name.
func links(t *testing.T, g *epgm.LogicalGraph) map[link]*epgm.Edge {
	t.Helper()
	byID := names(t, g)
	out := make(map[link]*epgm.Edge, g.EdgeCount())
	for _, e := range g.Edges() {
		out[link{byID[e.Source], byID[e.Target]}] = e
	}
	return out
}

func sortedNames(t *testing.T, g *epgm.LogicalGraph) []string {
	var out []string
	for _, n := range names(t, g) {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func build(t *testing.T, ctor builder.Constructor, opts ...builder.BuilderOption) *epgm.LogicalGraph {
	t.Helper()
	g, err := builder.BuildGraph(opts, ctor)
	require.NoError(t, err)
	require.NoError(t, g.Validate())
	return g
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int // mirrored edge count
		check func(t *testing.T, l map[link]*epgm.Edge)
	}{
		{
			name: "Path(4)", ctor: builder.Path(4), wantV: 4, wantE: 6,
			check: func(t *testing.T, l map[link]*epgm.Edge) {
				for _, p := range []link{{"0", "1"}, {"1", "2"}, {"2", "3"}, {"3", "2"}} {
					assert.Contains(t, l, p)
				}
				assert.NotContains(t, l, link{"0", "3"})
			},
		},
		{
			name: "Cycle(5)", ctor: builder.Cycle(5), wantV: 5, wantE: 10,
			check: func(t *testing.T, l map[link]*epgm.Edge) {
				assert.Contains(t, l, link{"4", "0"})
				assert.Contains(t, l, link{"0", "4"})
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5), wantV: 5, wantE: 8,
			check: func(t *testing.T, l map[link]*epgm.Edge) {
				for _, leaf := range []string{"1", "2", "3", "4"} {
					assert.Contains(t, l, link{builder.CenterVertexID, leaf})
					assert.Contains(t, l, link{leaf, builder.CenterVertexID})
				}
				assert.NotContains(t, l, link{"1", "2"})
			},
		},
		{
			name: "Wheel(5)", ctor: builder.Wheel(5), wantV: 5, wantE: 16,
			check: func(t *testing.T, l map[link]*epgm.Edge) {
				assert.Contains(t, l, link{"3", "0"})
				assert.Contains(t, l, link{builder.CenterVertexID, "0"})
			},
		},
		{
			name: "Complete(4)", ctor: builder.Complete(4), wantV: 4, wantE: 12,
		},
		{
			name: "Complete(1)", ctor: builder.Complete(1), wantV: 1, wantE: 0,
		},
		{
			name: "CompleteBipartite(2,3)", ctor: builder.CompleteBipartite(2, 3), wantV: 5, wantE: 12,
			check: func(t *testing.T, l map[link]*epgm.Edge) {
				assert.Contains(t, l, link{"L1", "R2"})
				assert.Contains(t, l, link{"R2", "L1"})
				assert.NotContains(t, l, link{"L0", "L1"})
			},
		},
		{
			name: "Grid(2,3)", ctor: builder.Grid(2, 3), wantV: 6, wantE: 14,
			check: func(t *testing.T, l map[link]*epgm.Edge) {
				assert.Contains(t, l, link{"0,0", "0,1"})
				assert.Contains(t, l, link{"1,2", "0,2"})
				assert.NotContains(t, l, link{"0,0", "1,1"})
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := build(t, tc.ctor)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())

			l := links(t, g)
			for p := range l {
				assert.Contains(t, l, link{p.V, p.U}, "mirror of %v", p)
			}
			for _, e := range g.Edges() {
				assert.Equal(t, builder.DefaultEdgeLabel, e.Label)
				_, weighted := e.Properties.Get(builder.WeightProperty)
				assert.False(t, weighted)
			}
			if tc.check != nil {
				tc.check(t, l)
			}
		})
	}
}

func TestBuildGraph_StableIDs(t *testing.T) {
	a := build(t, builder.Cycle(6))
	b := build(t, builder.Cycle(6))
	assert.True(t, a.EqualsByElementIDs(b))
	assert.True(t, a.EqualsByElementData(b))

	v, ok := a.Vertex(builder.VertexID("3"))
	require.True(t, ok)
	assert.Equal(t, builder.DefaultVertexLabel, v.Label)

	c := build(t, builder.Cycle(6), builder.WithScope("other"))
	assert.False(t, a.EqualsByElementIDs(c))
	_, ok = c.Vertex(builder.VertexID("3", builder.WithScope("other")))
	assert.True(t, ok)
}

func TestBuildGraph_ComposedConstructorsShareVertices(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Star(3))
	require.NoError(t, err)

	// Path adds 0,1,2; Star adds Center,1,2.
	assert.Equal(t, []string{"0", "1", "2", builder.CenterVertexID}, sortedNames(t, g))
	assert.Equal(t, 8, g.EdgeCount())
}

func TestBuildGraph_Options(t *testing.T) {
	g := build(t, builder.Path(3),
		builder.WithSymbNumb("v"),
		builder.WithGraphLabel("Chain"),
		builder.WithVertexLabel("Person"),
		builder.WithEdgeLabel("knows"),
		builder.WithDirected(true),
		builder.WithSeed(1),
		builder.WithWeightFn(func(r *rand.Rand) int64 { return 1 + r.Int63n(9) }),
	)
	assert.Equal(t, "Chain", g.Head().Label)
	assert.Equal(t, []string{"v0", "v1", "v2"}, sortedNames(t, g))
	assert.Equal(t, 2, g.EdgeCount())

	l := links(t, g)
	require.Contains(t, l, link{"v0", "v1"})
	assert.NotContains(t, l, link{"v1", "v0"})
	for _, e := range g.Edges() {
		assert.Equal(t, "knows", e.Label)
		w, ok := e.Properties.Get(builder.WeightProperty)
		require.True(t, ok)
		assert.IsType(t, int64(0), w)
		assert.GreaterOrEqual(t, w.(int64), int64(1))
	}
	for _, v := range g.Vertices() {
		assert.Equal(t, "Person", v.Label)
	}
}

func TestBuildGraph_MirroredPairsShareWeight(t *testing.T) {
	g := build(t, builder.Complete(4),
		builder.WithSeed(7),
		builder.WithWeightFn(func(r *rand.Rand) int64 { return r.Int63() }),
	)
	l := links(t, g)
	for p, e := range l {
		w1, _ := e.Properties.Get(builder.WeightProperty)
		w2, _ := l[link{p.V, p.U}].Properties.Get(builder.WeightProperty)
		assert.Equal(t, w1, w2, "%v", p)
	}
}

func TestBuildGraph_PartitionPrefix(t *testing.T) {
	g := build(t, builder.CompleteBipartite(1, 2), builder.WithPartitionPrefix("A", ""))
	assert.Equal(t, []string{"A0", "R0", "R1"}, sortedNames(t, g))
}

func TestRandomSparse_Determinism(t *testing.T) {
	a := build(t, builder.RandomSparse(30, 0.2), builder.WithSeed(42))
	b := build(t, builder.RandomSparse(30, 0.2), builder.WithSeed(42))
	assert.True(t, a.EqualsByElementIDs(b))

	c := build(t, builder.RandomSparse(30, 0.2), builder.WithSeed(43))
	assert.False(t, a.EqualsByElementIDs(c))
	assert.Equal(t, 30, c.VertexCount())
}

func TestRandomSparse_Extremes(t *testing.T) {
	empty := build(t, builder.RandomSparse(6, 0), builder.WithSeed(1))
	assert.Equal(t, 0, empty.EdgeCount())

	full := build(t, builder.RandomSparse(6, 1), builder.WithSeed(1))
	assert.Equal(t, 30, full.EdgeCount())

	directed := build(t, builder.RandomSparse(6, 1), builder.WithSeed(1), builder.WithDirected(true))
	assert.Equal(t, 30, directed.EdgeCount())
	for _, e := range directed.Edges() {
		assert.NotEqual(t, e.Source, e.Target)
	}
}

func TestBuilders_Errors(t *testing.T) {
	tests := []struct {
		name string
		ctor builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"Path(1)", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"Cycle(2)", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), nil, builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"CompleteBipartite(0,1)", builder.CompleteBipartite(0, 1), nil, builder.ErrTooFewVertices},
		{"Grid(1,0)", builder.Grid(1, 0), nil, builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, .5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.1), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, .5), nil, builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "42", builder.DefaultIDFn(42))
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "BA", builder.ExcelColumnIDFn(52))
	assert.Equal(t, "v7", builder.SymbolNumberIDFn("v")(7))
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })

	g := build(t, builder.Path(3), builder.WithExcelColumnIDs())
	assert.Equal(t, []string{"A", "B", "C"}, sortedNames(t, g))
}
