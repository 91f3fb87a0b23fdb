// Package simlath computes Jaccard similarity between the vertices of
// property graphs and keeps those graphs in an embedded column-family store.
//
// What is in the module?
//
//	epgm/               graph heads, vertices, edges, typed properties, 128-bit ids
//	dataflow/           partitioned, parallel map / group / join operators
//	jaccard/            the similarity operator built on dataflow
//	storage/            Reader / Writer contracts and the property value codec
//	storage/boltstore/  bbolt tables graph_heads, vertices, edges with column families
//	fixture/            YAML graph fixtures for tests and the CLI
//	builder/            deterministic topologies (path, cycle, star, …)
//	config/             viper configuration with SIMLATH_* overrides
//	cmd/simlath/        cobra CLI: load, generate, jaccard, dump
//
// Quick ASCII example (OUT neighbourhood, UNION denominator):
//
//	    A ──▶ C ◀── B        N(A) = {C}, N(B) = {C}
//	                         J(A,B) = |{C}| / |{C}| = 1
//
// The operator adds the mirrored pair A→B, B→A labelled "jaccardSimilarity"
// with property value = 1.
//
//	go get github.com/katalvlaran/simlath
package simlath
