// Package core: deep-copy helpers.
//
// Algorithms that must not perturb the caller's instance (shortest-path
// pruning, orientation) operate on clones produced here. Edges are
// immutable, so the edge values themselves are shared; all maps are
// rebuilt.

package core

// CloneEmpty returns a new Hypergraph with identical configuration and
// vertex set, but no edges.
// Complexity: O(V).
func (h *Hypergraph[V]) CloneEmpty() *Hypergraph[V] {
	clone := &Hypergraph[V]{
		directed: h.directed,
		allowNeg: h.allowNeg,
		vertices: make(map[V]struct{}, len(h.vertices)),
		edges:    make(map[string]Edge[V]),
		weights:  make(map[string]float64),
	}
	for v := range h.vertices {
		clone.vertices[v] = struct{}{}
	}

	return clone
}

// Clone returns a deep copy of the Hypergraph: configuration, vertices,
// edges, and weights.
// Complexity: O(V + E).
func (h *Hypergraph[V]) Clone() *Hypergraph[V] {
	clone := h.CloneEmpty()
	for key, e := range h.edges {
		clone.edges[key] = e
		clone.weights[key] = h.weights[key]
	}

	return clone
}
