// SPDX-License-Identifier: MIT

// Package jaccard computes the Jaccard Index of every vertex pair that
// shares at least one neighbor, without materializing the O(V²) pair space.
//
// What
//
//   - Annotate: de-duplicate (center, member) adjacencies and attach each
//     member's degree (out-degree for OUT, in-degree for IN).
//   - Partition: per center, order members by id, cut them into spans of
//     GroupSize and replicate span s into expansion groups 0..s.
//   - Expand: per (group, center) bucket, pair every member with the first
//     GroupSize members before it; emit TwoPath{A<B, DegreeA, DegreeB}.
//   - Reduce: per (A, B), fold the two-paths into shared count and both
//     degrees; ratio = shared / denominator.
//   - Materialize: emit A→B and B→A labelled EdgeLabel with float64 "value".
//
// Denominator
//
//	UNION: deg(A) + deg(B) - shared   (exact |N(A) ∪ N(B)|)
//	MAX:   max(deg(A), deg(B))
//
// Neighborhood
//
//	OUT: A and B are similar if they point at common targets.
//	IN:  A and B are similar if common sources point at them.
//	For undirected graphs stored as mirrored edge pairs both agree.
//
// Determinism
//
//	Every grouping stage sorts its groups by member id, so spans and pair
//	orientation are fixed. The emitted pair set and values do not depend on
//	GroupSize or Parallelism. Similarity edge ids are derived from
//	(label, source, target).
//
// Complexity (E = distinct adjacencies, g = GroupSize, d = max center degree)
//
//   - Annotate:  O(E log E)
//   - Partition: O(E · d/g) replicated records
//   - Expand:    O(g · d) per bucket, O(Σ d²) two-paths overall
//   - Reduce:    O(P log P) for P two-paths
//
// Errors
//
//	ErrGraphNil              - nil input graph.
//	ErrOptionViolation       - invalid option passed to New.
//	ErrDegenerateDenominator - denominator ≤ 0 under DegenerateFail.
//	ErrInconsistentDegree    - two-paths of one pair disagree on a degree.
//	context errors           - the batch was cancelled.
//
// Usage
//
//	j, err := jaccard.New(
//	    jaccard.WithNeighborhood(jaccard.NeighborhoodOut),
//	    jaccard.WithDenominator(jaccard.DenominatorUnion),
//	    jaccard.WithGroupSize(64),
//	)
//	if err != nil { /* ErrOptionViolation */ }
//	out, err := j.Execute(g)   // input graph plus similarity edges
//	edges, err := j.Compute(g) // similarity edges only
package jaccard
