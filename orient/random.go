// Package orient: uniformly random orientation.

package orient

import (
	"cmp"
	"math/rand"

	"github.com/setgraph/hyperg/core"
)

// Random returns an orientation of h in which every edge receives a
// uniformly random member as its head; weights are copied unchanged.
// Returns ErrNilHypergraph or ErrDirected.
// Complexity: O(V + E·n).
func Random[V cmp.Ordered](h *core.Hypergraph[V]) (*core.Hypergraph[V], error) {
	if err := validate(h); err != nil {
		return nil, err
	}
	l := emptyOrientation(h)
	for _, e := range h.Edges() {
		members := e.Vertices()
		head := members[rand.Intn(len(members))]
		oriented, err := core.NewDirectedEdge(head, members...)
		if err != nil {
			return nil, err
		}
		w, _ := h.Weight(e)
		if err = l.AddEdge(oriented, w); err != nil {
			return nil, err
		}
	}

	return l, nil
}
