// SPDX-License-Identifier: MIT

package epgm_test

import (
	"fmt"

	"github.com/katalvlaran/simlath/epgm"
)

// ExampleLogicalGraph_Combine unions two graphs that share a vertex.
func ExampleLogicalGraph_Combine() {
	alice := epgm.NewVertex("Person", epgm.PropertiesOf("name", "Alice"))
	bob := epgm.NewVertex("Person", epgm.PropertiesOf("name", "Bob"))
	knows := epgm.NewEdge("knows", alice.ID, bob.ID, nil)

	left := epgm.FromVertexAndEdgeSets([]*epgm.Vertex{alice, bob}, []*epgm.Edge{knows})
	right := epgm.FromVertexAndEdgeSets([]*epgm.Vertex{bob}, nil)

	merged := left.Combine(right)
	fmt.Println(merged.VertexCount(), merged.EdgeCount())
	// Output:
	// 2 1
}
