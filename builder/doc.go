// SPDX-License-Identifier: MIT

// Package builder generates deterministic topologies as epgm.LogicalGraphs
// for tests, benchmarks and the command line.
//
// The package offers:
//
//   - Constructors: Path, Cycle, Star, Wheel, Complete, CompleteBipartite,
//     Grid and RandomSparse, composed with BuildGraph.
//   - Vertex naming schemes (IDFn): DefaultIDFn ("0","1",…),
//     ExcelColumnIDFn ("A",…,"Z","AA",…), SymbolNumberIDFn(prefix) ("v0",…).
//   - BuilderOption knobs: WithIDScheme, WithSeed, WithRand, WithScope,
//     WithVertexLabel, WithEdgeLabel, WithDirected, WithWeightFn and
//     WithPartitionPrefix.
//
// Graph model
//
//	Every vertex carries its scheme name in property "name" and an id derived
//	from (scope, name), so building the same topology twice yields identical
//	ids. Undirected topologies are emitted as mirrored edge pairs u→v, v→u
//	(the representation the similarity operators expect); WithDirected(true)
//	keeps only u→v. Edge ids are derived from (scope, u, v), so re-adding an
//	edge replaces it instead of creating a parallel one.
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs.
//   - Fast-fail on meaningless option values via panics in option constructors;
//     constructors themselves never panic and return wrapped sentinels.
//
// Errors
//
//	ErrTooFewVertices     - size parameter below the constructor minimum.
//	ErrInvalidProbability - p outside [0,1].
//	ErrNeedRandSource     - stochastic constructor without WithSeed/WithRand.
//	ErrConstructFailed    - nil constructor or graph insertion failure.
package builder
