// SPDX-License-Identifier: MIT

package builder

// Method names prefix constructor errors.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodGrid              = "Grid"
)

// CenterVertexID names the hub of Star and Wheel.
const CenterVertexID = "Center"

// Minimum sizes per topology.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinPartitionSize = 1
	MinGridDim       = 1
	MinSparseNodes   = 1
)

// Probability bounds of RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Element labels and property keys.
const (
	DefaultGraphLabel  = "Graph"
	DefaultVertexLabel = "Node"
	DefaultEdgeLabel   = "link"

	// NameProperty holds the scheme name of a vertex.
	NameProperty = "name"
	// WeightProperty holds the int64 edge weight when WithWeightFn is set.
	WeightProperty = "weight"
)

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
	defaultScope       = "builder"
)
