// Package core defines the central Edge, Hypergraph, and Graph types,
// and provides the structural queries every algorithm package builds on.
//
// A Hypergraph holds a vertex set, an edge set (each edge a set of ≥1
// vertices, optionally carrying a designated head vertex), a weight map
// with exactly one positive entry per edge, and a directedness flag.
// A Graph is a Hypergraph whose edges all have exactly two vertices.
//
// Vertices are any ordered comparable type (cmp.Ordered): equality and
// hashing come from Go's comparable semantics, and the total order fixes
// a deterministic iteration order for every accessor and algorithm.
//
// All validation is fail-fast: constructors reject the whole initial
// collection before committing any state, and a failed AddEdge or
// RemoveVertex leaves the structure unchanged.
//
// Errors:
//
//	ErrEmptyEdge         - edge constructed with no vertices.
//	ErrHeadNotMember     - designated head is not among the edge's vertices.
//	ErrDirectedMismatch  - edge directedness disagrees with the hypergraph's.
//	ErrBadWeight         - weight is NaN, infinite, or non-positive.
//	ErrVertexNotFound    - removal of a vertex that does not exist.
//	ErrEdgeNotFound      - removal or lookup of an edge that does not exist.
//	ErrNotBinary         - Graph edge without exactly two vertices.
package core
