// Package core: the Graph specialization.
//
// A Graph is a 2-uniform Hypergraph: every edge has exactly two
// vertices, enforced both at construction and on every subsequent add.

package core

import (
	"cmp"
	"fmt"
)

// Graph is a Hypergraph whose edges all have exactly two vertices.
// All Hypergraph queries are promoted; AddEdge additionally enforces the
// arity invariant.
type Graph[V cmp.Ordered] struct {
	*Hypergraph[V]
}

// NewGraph creates a Graph from the given options. Any initial edge
// without exactly two vertices aborts construction with ErrNotBinary
// before any state is committed.
func NewGraph[V cmp.Ordered](opts ...Option[V]) (*Graph[V], error) {
	var c config[V]
	for _, opt := range opts {
		opt(&c)
	}
	for _, we := range c.edges {
		if we.edge.Len() != 2 {
			return nil, fmt.Errorf("%w: %s", ErrNotBinary, we.edge)
		}
	}
	h, err := build(c)
	if err != nil {
		return nil, err
	}

	return &Graph[V]{Hypergraph: h}, nil
}

// AddEdge inserts e with the given weight, rejecting edges without
// exactly two vertices (ErrNotBinary) before any mutation.
func (g *Graph[V]) AddEdge(e Edge[V], weight float64) error {
	if e.Len() != 2 {
		return fmt.Errorf("%w: %s", ErrNotBinary, e)
	}

	return g.Hypergraph.AddEdge(e, weight)
}

// Uniform reports 2-uniformity: true iff k is omitted or equals 2.
// Holds by construction regardless of the current edge set.
func (g *Graph[V]) Uniform(k ...int) bool {
	return len(k) == 0 || k[0] == 2
}

// Clone returns a deep copy of the Graph.
func (g *Graph[V]) Clone() *Graph[V] {
	return &Graph[V]{Hypergraph: g.Hypergraph.Clone()}
}

// Hyper returns the underlying Hypergraph view, for APIs operating on
// general hypergraphs (matrix builders, traversal).
func (g *Graph[V]) Hyper() *Hypergraph[V] { return g.Hypergraph }
