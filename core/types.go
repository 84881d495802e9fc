// Package core: sentinel errors, constants, and construction options.

package core

import (
	"cmp"
	"errors"
)

// Sentinel errors for core hypergraph operations.
var (
	// ErrEmptyEdge indicates an edge was constructed with no vertices.
	ErrEmptyEdge = errors.New("core: edge must contain at least one vertex")

	// ErrHeadNotMember indicates a head vertex outside the edge's vertex set.
	ErrHeadNotMember = errors.New("core: head vertex is not a member of the edge")

	// ErrDirectedMismatch indicates an edge whose directedness disagrees
	// with the hypergraph's: a directed hypergraph accepts only edges with
	// a head, an undirected one only edges without.
	ErrDirectedMismatch = errors.New("core: edge directedness mismatch")

	// ErrBadWeight indicates a NaN, infinite, or non-positive edge weight.
	ErrBadWeight = errors.New("core: bad edge weight")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNotBinary indicates a Graph edge without exactly two vertices.
	ErrNotBinary = errors.New("core: graph edges must have exactly two vertices")
)

const (
	// DefaultWeight is assigned to edges added without an explicit weight.
	DefaultWeight = 1.0

	// WeightTolerance bounds the per-edge weight difference tolerated by
	// Hypergraph.Equal.
	WeightTolerance = 1e-4
)

// Option configures a Hypergraph or Graph before creation.
type Option[V cmp.Ordered] func(*config[V])

// config collects construction-time state; it is validated as a whole
// before any of it is committed to the new structure.
type config[V cmp.Ordered] struct {
	directed bool
	allowNeg bool
	vertices []V
	edges    []weightedEdge[V]
}

// weightedEdge pairs an initial edge with its weight.
type weightedEdge[V cmp.Ordered] struct {
	edge   Edge[V]
	weight float64
}

// WithDirected makes the new hypergraph directed: every edge must carry
// a head vertex.
func WithDirected[V cmp.Ordered]() Option[V] {
	return func(c *config[V]) { c.directed = true }
}

// WithAllowNegative relaxes the weight domain from positive reals to any
// finite real, admitting graphs meant for negative-weight path analysis
// (Bellman–Ford). NaN and infinities remain rejected.
func WithAllowNegative[V cmp.Ordered]() Option[V] {
	return func(c *config[V]) { c.allowNeg = true }
}

// WithVertices seeds the initial vertex set.
func WithVertices[V cmp.Ordered](vertices ...V) Option[V] {
	return func(c *config[V]) { c.vertices = append(c.vertices, vertices...) }
}

// WithEdges seeds initial edges at DefaultWeight.
func WithEdges[V cmp.Ordered](edges ...Edge[V]) Option[V] {
	return func(c *config[V]) {
		for _, e := range edges {
			c.edges = append(c.edges, weightedEdge[V]{edge: e, weight: DefaultWeight})
		}
	}
}

// WithWeightedEdge seeds one initial edge with an explicit weight.
func WithWeightedEdge[V cmp.Ordered](e Edge[V], weight float64) Option[V] {
	return func(c *config[V]) {
		c.edges = append(c.edges, weightedEdge[V]{edge: e, weight: weight})
	}
}
