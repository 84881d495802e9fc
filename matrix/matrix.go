// Package matrix: builders for the four standard matrices.

package matrix

import (
	"cmp"

	"gonum.org/v1/gonum/mat"

	"github.com/setgraph/hyperg/core"
)

// DegreeMatrix returns the diagonal degree matrix of h over the sorted
// vertex ordering: entry (v,v) is the weighted indegree of v for
// directed hypergraphs, the weighted degree otherwise.
// Complexity: O(V·E).
func DegreeMatrix[V cmp.Ordered](h *core.Hypergraph[V]) (*mat.DiagDense, error) {
	vertices, err := orderedVertices(h)
	if err != nil {
		return nil, err
	}
	diag := make([]float64, len(vertices))
	for i, v := range vertices {
		if h.Directed() {
			diag[i] = h.Indegree(v, true)
		} else {
			diag[i] = h.Degree(v, true)
		}
	}

	return mat.NewDiagDense(len(diag), diag), nil
}

// AdjacencyMatrix returns the weighted adjacency matrix of a 2-uniform
// hypergraph: entry (u,v) is the total weight of edges connecting u to v
// respecting direction (directed: v reachable as head from u).
// Returns ErrNotUniform for non-2-uniform input.
// Complexity: O(V²·E).
func AdjacencyMatrix[V cmp.Ordered](h *core.Hypergraph[V]) (*mat.Dense, error) {
	vertices, err := orderedVertices(h)
	if err != nil {
		return nil, err
	}
	if !h.Uniform(2) {
		return nil, ErrNotUniform
	}
	n := len(vertices)
	a := mat.NewDense(n, n, nil)
	for i, u := range vertices {
		for j, v := range vertices {
			var total float64
			for _, e := range h.Reachable(u, v) {
				w, _ := h.Weight(e)
				total += w
			}
			a.Set(i, j, total)
		}
	}

	return a, nil
}

// IncidenceMatrix returns the vertex-by-edge incidence matrix over the
// sorted vertex and canonical edge orderings. Undirected: 1 where v ∈ e.
// Directed: +1 at the head row, −1 at each tail row, 0 elsewhere.
// Returns ErrNoEdges when the edge set is empty.
// Complexity: O(V + E·n).
func IncidenceMatrix[V cmp.Ordered](h *core.Hypergraph[V]) (*mat.Dense, error) {
	vertices, err := orderedVertices(h)
	if err != nil {
		return nil, err
	}
	edges := h.Edges()
	if len(edges) == 0 {
		return nil, ErrNoEdges
	}
	row := make(map[V]int, len(vertices))
	for i, v := range vertices {
		row[v] = i
	}
	m := mat.NewDense(len(vertices), len(edges), nil)
	for j, e := range edges {
		if head, ok := e.Head(); ok {
			m.Set(row[head], j, 1)
			for _, v := range e.Tail() {
				m.Set(row[v], j, -1)
			}
			continue
		}
		for _, v := range e.Vertices() {
			m.Set(row[v], j, 1)
		}
	}

	return m, nil
}

// LaplacianMatrix returns degree matrix minus adjacency matrix for a
// 2-uniform hypergraph (ErrNotUniform otherwise).
// Complexity: O(V²·E).
func LaplacianMatrix[V cmp.Ordered](h *core.Hypergraph[V]) (*mat.Dense, error) {
	a, err := AdjacencyMatrix(h)
	if err != nil {
		return nil, err
	}
	d, err := DegreeMatrix(h)
	if err != nil {
		return nil, err
	}
	n, _ := a.Dims()
	l := mat.NewDense(n, n, nil)
	l.Sub(d, a)

	return l, nil
}

// orderedVertices validates h and returns its sorted vertex slice.
func orderedVertices[V cmp.Ordered](h *core.Hypergraph[V]) ([]V, error) {
	if h == nil {
		return nil, ErrNilHypergraph
	}
	vertices := h.Vertices()
	if len(vertices) == 0 {
		return nil, ErrNoVertices
	}

	return vertices, nil
}
