// SPDX-License-Identifier: MIT

package jaccard_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simlath/epgm"
	"github.com/katalvlaran/simlath/jaccard"
)

// testGraph keeps the human names of the vertices of a generated graph.
type testGraph struct {
	g     *epgm.LogicalGraph
	names map[epgm.ID]string
}

func vid(name string) epgm.ID { return epgm.IDFromName("vertex/" + name) }

// newTestGraph builds a graph with stable vertex ids; mirror adds b→a for every a→b.
func newTestGraph(t *testing.T, names []string, edges [][2]string, mirror bool) *testGraph {
	t.Helper()
	tg := &testGraph{names: make(map[epgm.ID]string, len(names))}
	vertices := make([]*epgm.Vertex, 0, len(names))
	for _, n := range names {
		v := epgm.NewVertex("Person", epgm.PropertiesOf("name", n))
		v.ID = vid(n)
		tg.names[v.ID] = n
		vertices = append(vertices, v)
	}
	var es []*epgm.Edge
	for _, e := range edges {
		es = append(es, epgm.NewEdge("knows", vid(e[0]), vid(e[1]), nil))
		if mirror {
			es = append(es, epgm.NewEdge("knows", vid(e[1]), vid(e[0]), nil))
		}
	}
	tg.g = epgm.FromVertexAndEdgeSets(vertices, es)
	require.NoError(t, tg.g.Validate())
	return tg
}

// sixVertexGraph is the mirrored graph v0-v1, v0-v2, v2-v1, v2-v3, v3-v1, v3-v4, v5-v3.
func sixVertexGraph(t *testing.T) *testGraph {
	return newTestGraph(t,
		[]string{"v0", "v1", "v2", "v3", "v4", "v5"},
		[][2]string{{"v0", "v1"}, {"v0", "v2"}, {"v2", "v1"}, {"v2", "v3"}, {"v3", "v1"}, {"v3", "v4"}, {"v5", "v3"}},
		true)
}

// randomGraph is a seeded undirected G(n, p) stored as mirrored edges.
func randomGraph(t *testing.T, n int, p float64, seed int64) *testGraph {
	rng := rand.New(rand.NewSource(seed))
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("r%03d", i)
	}
	var edges [][2]string
	for i := 0; i < n; i++ {
		for k := i + 1; k < n; k++ {
			if rng.Float64() < p {
				edges = append(edges, [2]string{names[i], names[k]})
			}
		}
	}
	return newTestGraph(t, names, edges, true)
}

// pairKey names an unordered pair.
func (tg *testGraph) pairKey(a, b epgm.ID) string {
	x, y := tg.names[a], tg.names[b]
	if y < x {
		x, y = y, x
	}
	return x + "|" + y
}

// scoreValues maps every scored pair to its ratio.
func (tg *testGraph) scoreValues(scores []jaccard.Score) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for _, s := range scores {
		out[tg.pairKey(s.A, s.B)] = s.Value
	}
	return out
}

// edgeValues maps every directed similarity edge "src->tgt" to its value.
func (tg *testGraph) edgeValues(t *testing.T, edges []*epgm.Edge) map[string]float64 {
	t.Helper()
	out := make(map[string]float64, len(edges))
	for _, e := range edges {
		v, ok := e.Properties.Float64(jaccard.ValueProperty)
		require.True(t, ok, "edge %s has no value", e)
		key := tg.names[e.Source] + "->" + tg.names[e.Target]
		_, dup := out[key]
		require.False(t, dup, "duplicate similarity edge %s", key)
		out[key] = v
	}
	return out
}

func scoresOf(t *testing.T, g *epgm.LogicalGraph, opts ...jaccard.Option) []jaccard.Score {
	t.Helper()
	j, err := jaccard.New(opts...)
	require.NoError(t, err)
	scores, err := j.Scores(g)
	require.NoError(t, err)
	return scores
}
