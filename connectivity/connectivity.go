// Package connectivity: algebraic connectivity, edge cut, and the
// isoperimetric number.

package connectivity

import (
	"cmp"
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/setgraph/hyperg/core"
	"github.com/setgraph/hyperg/matrix"
)

// Tolerance is the zero threshold for the algebraic connectivity test:
// an eigenvalue above it counts as strictly positive.
const Tolerance = 1e-8

var (
	// ErrNilHypergraph is returned if a nil hypergraph pointer is passed.
	ErrNilHypergraph = errors.New("connectivity: hypergraph is nil")

	// ErrDirected is returned when a connectivity property defined only
	// for undirected hypergraphs is requested for a directed one.
	ErrDirected = errors.New("connectivity: hypergraph must be undirected")

	// ErrNotSubset is returned when a cut set contains vertices outside
	// the hypergraph.
	ErrNotSubset = errors.New("connectivity: set is not a subset of the hypergraph vertices")
)

// Connected reports whether an undirected hypergraph is connected using
// the eigenvalues of its Laplacian matrix: true iff the second-smallest
// eigenvalue (the algebraic connectivity) exceeds Tolerance.
// A hypergraph with fewer than two vertices is trivially connected.
// Returns ErrDirected for directed input; the Laplacian restriction to
// 2-uniform hypergraphs propagates as matrix.ErrNotUniform.
// Complexity: O(V³).
func Connected[V cmp.Ordered](h *core.Hypergraph[V]) (bool, error) {
	if h == nil {
		return false, ErrNilHypergraph
	}
	if h.Directed() {
		return false, ErrDirected
	}
	if h.Order() < 2 {
		return true, nil
	}
	eigs, err := matrix.LaplacianEigenvalues(h)
	if err != nil {
		return false, err
	}

	return eigs[1] > Tolerance, nil
}

// EdgeCut returns the edge cut (coboundary) of the vertex subset xs:
// every edge with at least one vertex in xs and at least one vertex in
// the complement, sorted by canonical key.
// Returns ErrNotSubset if any element of xs is not a vertex of h.
// Complexity: O(E·n).
func EdgeCut[V cmp.Ordered](h *core.Hypergraph[V], xs []V) ([]core.Edge[V], error) {
	if h == nil {
		return nil, ErrNilHypergraph
	}
	in := make(map[V]struct{}, len(xs))
	for _, x := range xs {
		if !h.HasVertex(x) {
			return nil, ErrNotSubset
		}
		in[x] = struct{}{}
	}

	return cut(h, in), nil
}

// IsoperimetricNumber returns the isoperimetric number (Cheeger
// constant) of h: the minimum over every nonempty subset X with
// |X| ≤ |V|/2 of |edge_cut(X)| / |X|. Exhaustive over all subsets —
// exponential; a reference computation, not scalable. Returns +Inf when
// no subset qualifies (fewer than two vertices).
func IsoperimetricNumber[V cmp.Ordered](h *core.Hypergraph[V]) (float64, error) {
	if h == nil {
		return 0, ErrNilHypergraph
	}
	vertices := h.Vertices()
	n := len(vertices)
	best := math.Inf(1)
	for k := 1; k <= n/2; k++ {
		for _, idx := range combin.Combinations(n, k) {
			in := make(map[V]struct{}, k)
			for _, i := range idx {
				in[vertices[i]] = struct{}{}
			}
			ratio := float64(len(cut(h, in))) / float64(k)
			if ratio < best {
				best = ratio
			}
		}
	}

	return best, nil
}

// cut collects the edges meeting both the subset and its complement.
func cut[V cmp.Ordered](h *core.Hypergraph[V], in map[V]struct{}) []core.Edge[V] {
	var out []core.Edge[V]
	for _, e := range h.Edges() {
		var inside, outside bool
		for _, v := range e.Vertices() {
			if _, ok := in[v]; ok {
				inside = true
			} else {
				outside = true
			}
		}
		if inside && outside {
			out = append(out, e)
		}
	}

	return out
}
