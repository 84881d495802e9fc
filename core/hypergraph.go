// Package core: Hypergraph construction and mutation.
//
// Storage mirrors the weight relation of the model: edges and weights
// live in two maps keyed by the canonical edge key, kept in lockstep so
// there is never an edge without a weight or a weight for a non-existent
// edge. Vertices live in a separate set; AddEdge unions edge members
// into it, RemoveVertex cascades over incident edges first.

package core

import (
	"cmp"
	"fmt"
	"math"
)

// Hypergraph is the core in-memory structure: vertex set, edge set,
// weight map, and directedness flag. It is exclusively owned by its
// caller; no internal synchronization is provided.
type Hypergraph[V cmp.Ordered] struct {
	directed bool
	allowNeg bool

	vertices map[V]struct{}
	edges    map[string]Edge[V]
	weights  map[string]float64
}

// New creates a Hypergraph from the given options. The initial edge and
// weight collections are validated as a whole: any invalid edge aborts
// construction before any state is committed.
// Complexity: O(V + E·n) for E edges of arity n.
func New[V cmp.Ordered](opts ...Option[V]) (*Hypergraph[V], error) {
	var c config[V]
	for _, opt := range opts {
		opt(&c)
	}

	return build(c)
}

// build validates a construction config and commits it. Shared by New
// and NewGraph.
func build[V cmp.Ordered](c config[V]) (*Hypergraph[V], error) {
	h := &Hypergraph[V]{
		directed: c.directed,
		allowNeg: c.allowNeg,
		vertices: make(map[V]struct{}, len(c.vertices)),
		edges:    make(map[string]Edge[V], len(c.edges)),
		weights:  make(map[string]float64, len(c.edges)),
	}
	// Validate every initial edge before touching any state.
	for _, we := range c.edges {
		if err := h.checkEdge(we.edge, we.weight); err != nil {
			return nil, err
		}
	}
	// Commit: vertices first, then edges (which union their members).
	for _, v := range c.vertices {
		h.vertices[v] = struct{}{}
	}
	for _, we := range c.edges {
		h.commitEdge(we.edge, we.weight)
	}

	return h, nil
}

// Directed reports the directedness flag of the hypergraph.
func (h *Hypergraph[V]) Directed() bool { return h.directed }

// AddVertex inserts v into the vertex set. Idempotent: re-adding an
// existing vertex is a no-op.
// Complexity: O(1).
func (h *Hypergraph[V]) AddVertex(v V) {
	h.vertices[v] = struct{}{}
}

// RemoveVertex removes v and every incident edge (and its weight entry)
// atomically, edges first. Returns ErrVertexNotFound if v is absent; the
// structure is unchanged in that case.
// Complexity: O(E·n).
func (h *Hypergraph[V]) RemoveVertex(v V) error {
	if _, ok := h.vertices[v]; !ok {
		return ErrVertexNotFound
	}
	for key, e := range h.edges {
		if e.Contains(v) {
			delete(h.edges, key)
			delete(h.weights, key)
		}
	}
	delete(h.vertices, v)

	return nil
}

// AddEdge inserts e with the given weight, unioning e's vertices into
// the vertex set. Validation runs before any mutation: a failed add
// leaves the hypergraph unchanged. Re-adding an existing edge replaces
// its weight (set semantics).
// Returns ErrEmptyEdge, ErrDirectedMismatch, or ErrBadWeight.
// Complexity: O(n).
func (h *Hypergraph[V]) AddEdge(e Edge[V], weight float64) error {
	if err := h.checkEdge(e, weight); err != nil {
		return err
	}
	h.commitEdge(e, weight)

	return nil
}

// RemoveEdge removes e from the edge set and deletes its weight entry.
// Returns ErrEdgeNotFound if e is not present.
// Complexity: O(1).
func (h *Hypergraph[V]) RemoveEdge(e Edge[V]) error {
	if _, ok := h.edges[e.Key()]; !ok {
		return fmt.Errorf("%w: %s", ErrEdgeNotFound, e)
	}
	delete(h.edges, e.Key())
	delete(h.weights, e.Key())

	return nil
}

// Weight returns the weight of e and whether e belongs to the hypergraph.
func (h *Hypergraph[V]) Weight(e Edge[V]) (float64, bool) {
	w, ok := h.weights[e.Key()]

	return w, ok
}

// HasVertex reports whether v is in the vertex set. Complexity: O(1).
func (h *Hypergraph[V]) HasVertex(v V) bool {
	_, ok := h.vertices[v]

	return ok
}

// HasEdge reports whether e is in the edge set. Complexity: O(1).
func (h *Hypergraph[V]) HasEdge(e Edge[V]) bool {
	_, ok := h.edges[e.Key()]

	return ok
}

// Order returns the number of vertices. Complexity: O(1).
func (h *Hypergraph[V]) Order() int { return len(h.vertices) }

// Size returns the number of edges. Complexity: O(1).
func (h *Hypergraph[V]) Size() int { return len(h.edges) }

// FilterEdges removes every edge (and its weight) failing the predicate,
// which receives each edge with its weight. Vertices are untouched.
// Complexity: O(E).
func (h *Hypergraph[V]) FilterEdges(pred func(Edge[V], float64) bool) {
	for key, e := range h.edges {
		if !pred(e, h.weights[key]) {
			delete(h.edges, key)
			delete(h.weights, key)
		}
	}
}

// checkEdge validates e and its weight against this hypergraph without
// mutating anything.
func (h *Hypergraph[V]) checkEdge(e Edge[V], weight float64) error {
	if e.Len() == 0 {
		return ErrEmptyEdge
	}
	if e.Directed() != h.directed {
		return fmt.Errorf("%w: edge %s, hypergraph directed=%t", ErrDirectedMismatch, e, h.directed)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %v", ErrBadWeight, weight)
	}
	if !h.allowNeg && weight <= 0 {
		return fmt.Errorf("%w: %v must be positive", ErrBadWeight, weight)
	}

	return nil
}

// commitEdge performs the already-validated insertion.
func (h *Hypergraph[V]) commitEdge(e Edge[V], weight float64) {
	for _, v := range e.members {
		h.vertices[v] = struct{}{}
	}
	h.edges[e.Key()] = e
	h.weights[e.Key()] = weight
}
