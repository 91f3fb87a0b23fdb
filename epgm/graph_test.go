// SPDX-License-Identifier: MIT

package epgm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/simlath/epgm"
)

// LogicalGraphSuite covers container construction, membership and equality.
type LogicalGraphSuite struct {
	suite.Suite

	a, b, c *epgm.Vertex
	ab, bc  *epgm.Edge
}

func (s *LogicalGraphSuite) SetupTest() {
	s.a = epgm.NewVertex("Person", epgm.PropertiesOf("name", "Alice"))
	s.b = epgm.NewVertex("Person", epgm.PropertiesOf("name", "Bob"))
	s.c = epgm.NewVertex("Person", epgm.PropertiesOf("name", "Carol"))
	s.ab = epgm.NewEdge("knows", s.a.ID, s.b.ID, nil)
	s.bc = epgm.NewEdge("knows", s.b.ID, s.c.ID, epgm.PropertiesOf("since", int32(2014)))
}

func (s *LogicalGraphSuite) TestFromSetsLinksMembership() {
	g := epgm.FromVertexAndEdgeSets([]*epgm.Vertex{s.a, s.b, s.c}, []*epgm.Edge{s.ab, s.bc})
	head := g.Head()

	require.Equal(s.T(), 3, g.VertexCount())
	require.Equal(s.T(), 2, g.EdgeCount())
	require.Equal(s.T(), 3, head.Vertices.Len())
	require.Equal(s.T(), 2, head.Edges.Len())

	for _, v := range g.Vertices() {
		require.True(s.T(), v.Graphs.Contains(head.ID))
	}
	for _, e := range g.Edges() {
		require.True(s.T(), e.Graphs.Contains(head.ID))
	}
	// inputs are cloned, not adopted
	require.False(s.T(), s.a.Graphs.Contains(head.ID))
}

func (s *LogicalGraphSuite) TestSortedEnumeration() {
	g := epgm.FromVertexAndEdgeSets([]*epgm.Vertex{s.c, s.a, s.b}, []*epgm.Edge{s.bc, s.ab})
	vs := g.Vertices()
	for i := 1; i < len(vs); i++ {
		require.True(s.T(), vs[i-1].ID.Less(vs[i].ID))
	}
	es := g.Edges()
	require.True(s.T(), es[0].ID.Less(es[1].ID))
}

func (s *LogicalGraphSuite) TestAddEdgeRequiresEndpoints() {
	g := epgm.NewLogicalGraph(nil)
	require.NoError(s.T(), g.AddVertex(s.a))
	err := g.AddEdge(s.ab)
	require.True(s.T(), errors.Is(err, epgm.ErrVertexNotFound))

	require.NoError(s.T(), g.AddVertex(s.b))
	require.NoError(s.T(), g.AddEdge(s.ab))
	require.True(s.T(), errors.Is(g.AddVertex(nil), epgm.ErrNilElement))
	require.True(s.T(), errors.Is(g.AddEdge(nil), epgm.ErrNilElement))
}

func (s *LogicalGraphSuite) TestValidateReportsDanglingEdge() {
	g := epgm.FromVertexAndEdgeSets([]*epgm.Vertex{s.a, s.b}, []*epgm.Edge{s.ab, s.bc})
	require.True(s.T(), errors.Is(g.Validate(), epgm.ErrVertexNotFound))

	ok := epgm.FromVertexAndEdgeSets([]*epgm.Vertex{s.a, s.b}, []*epgm.Edge{s.ab})
	require.NoError(s.T(), ok.Validate())
}

func (s *LogicalGraphSuite) TestCombineDeduplicatesByID() {
	left := epgm.FromVertexAndEdgeSets([]*epgm.Vertex{s.a, s.b}, []*epgm.Edge{s.ab})
	right := epgm.FromVertexAndEdgeSets([]*epgm.Vertex{s.b, s.c}, []*epgm.Edge{s.bc})

	once := left.Combine(right)
	require.Equal(s.T(), 3, once.VertexCount())
	require.Equal(s.T(), 2, once.EdgeCount())

	twice := once.Combine(right)
	require.True(s.T(), once.EqualsByElementIDs(twice))
	require.Equal(s.T(), once.EdgeCount(), twice.EdgeCount())
	require.NotEqual(s.T(), once.Head().ID, twice.Head().ID)
}

func (s *LogicalGraphSuite) TestWithEdgesKeepsMembershipReal() {
	g := epgm.FromVertexAndEdgeSets([]*epgm.Vertex{s.a, s.b, s.c}, []*epgm.Edge{s.ab})
	in := g.Head().ID

	out := g.WithEdges(s.bc, s.ab, nil)
	require.Equal(s.T(), 3, out.VertexCount())
	require.Equal(s.T(), 2, out.EdgeCount())
	require.NoError(s.T(), out.Validate())

	head := out.Head()
	require.NotEqual(s.T(), in, head.ID)
	for _, e := range out.Edges() {
		require.True(s.T(), head.Edges.Contains(e.ID))
		for id := range e.Graphs {
			require.True(s.T(), id == head.ID || id == in, "edge %s in unknown graph %s", e.ID, id)
		}
	}
	bc, ok := out.Edge(s.bc.ID)
	require.True(s.T(), ok)
	require.True(s.T(), bc.Graphs.Equal(epgm.NewIDSet(head.ID)))

	// the input is untouched
	require.Equal(s.T(), 1, g.EdgeCount())
	require.Zero(s.T(), s.bc.Graphs.Len())
}

func (s *LogicalGraphSuite) TestEqualsByElementData() {
	g1 := epgm.FromVertexAndEdgeSets([]*epgm.Vertex{s.a, s.b}, []*epgm.Edge{s.ab})

	a2 := epgm.NewVertex("Person", epgm.PropertiesOf("name", "Alice"))
	b2 := epgm.NewVertex("Person", epgm.PropertiesOf("name", "Bob"))
	g2 := epgm.FromVertexAndEdgeSets([]*epgm.Vertex{b2, a2}, []*epgm.Edge{epgm.NewEdge("knows", a2.ID, b2.ID, nil)})
	require.True(s.T(), g1.EqualsByElementData(g2))
	require.False(s.T(), g1.EqualsByElementIDs(g2))

	// reversed direction differs
	g3 := epgm.FromVertexAndEdgeSets([]*epgm.Vertex{a2, b2}, []*epgm.Edge{epgm.NewEdge("knows", b2.ID, a2.ID, nil)})
	require.False(s.T(), g1.EqualsByElementData(g3))
	require.False(s.T(), g1.EqualsByElementData(nil))
}

func TestLogicalGraphSuite(t *testing.T) {
	suite.Run(t, new(LogicalGraphSuite))
}
