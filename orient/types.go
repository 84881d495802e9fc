// Package orient: sentinel errors and shared helpers.
package orient

import (
	"cmp"
	"errors"

	"github.com/setgraph/hyperg/core"
)

var (
	// ErrNilHypergraph is returned if a nil hypergraph pointer is passed.
	ErrNilHypergraph = errors.New("orient: hypergraph is nil")

	// ErrDirected is returned when the input hypergraph is already
	// directed; orientations apply to undirected hypergraphs only.
	ErrDirected = errors.New("orient: hypergraph is already directed")
)

// tolerance is the minimum improvement accepted by the weighted
// local-search passes.
const tolerance = 1e-4

// validate rejects nil and already-directed inputs.
func validate[V cmp.Ordered](h *core.Hypergraph[V]) error {
	if h == nil {
		return ErrNilHypergraph
	}
	if h.Directed() {
		return ErrDirected
	}

	return nil
}

// emptyOrientation creates a directed hypergraph carrying the vertex
// set of h and no edges yet.
func emptyOrientation[V cmp.Ordered](h *core.Hypergraph[V]) *core.Hypergraph[V] {
	l, err := core.New[V](core.WithDirected[V](), core.WithVertices[V](h.Vertices()...))
	if err != nil {
		// Unreachable: a vertex-only construction cannot fail.
		panic(err)
	}

	return l
}

// reassign points edge e of l at the new head, preserving its weight.
func reassign[V cmp.Ordered](l *core.Hypergraph[V], e core.Edge[V], head V) error {
	w, _ := l.Weight(e)
	oriented, err := core.NewDirectedEdge(head, e.Vertices()...)
	if err != nil {
		return err
	}
	if err = l.RemoveEdge(e); err != nil {
		return err
	}

	return l.AddEdge(oriented, w)
}
