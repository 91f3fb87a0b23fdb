// SPDX-License-Identifier: MIT

package jaccard_test

import (
	"fmt"

	"github.com/katalvlaran/simlath/epgm"
	"github.com/katalvlaran/simlath/jaccard"
)

// ExampleJaccardIndex_Compute scores the path a-b-c (stored as mirrored
// edges): a and c share their only neighbor b.
func ExampleJaccardIndex_Compute() {
	a := epgm.NewVertex("Person", epgm.PropertiesOf("name", "a"))
	b := epgm.NewVertex("Person", epgm.PropertiesOf("name", "b"))
	c := epgm.NewVertex("Person", epgm.PropertiesOf("name", "c"))
	g := epgm.FromVertexAndEdgeSets(
		[]*epgm.Vertex{a, b, c},
		[]*epgm.Edge{
			epgm.NewEdge("knows", a.ID, b.ID, nil), epgm.NewEdge("knows", b.ID, a.ID, nil),
			epgm.NewEdge("knows", b.ID, c.ID, nil), epgm.NewEdge("knows", c.ID, b.ID, nil),
		},
	)

	j, err := jaccard.New(jaccard.WithGroupSize(2))
	if err != nil {
		panic(err)
	}
	edges, err := j.Compute(g)
	if err != nil {
		panic(err)
	}
	for _, e := range edges {
		v, _ := e.Properties.Float64(jaccard.ValueProperty)
		fmt.Println(e.Label, v)
	}
	// Output:
	// jaccardSimilarity 1
	// jaccardSimilarity 1
}
