// Package core: structural query methods.
//
// Every accessor returning a collection sorts it — vertices by their
// total order, edges by canonical key — so all downstream algorithms are
// deterministic without further bookkeeping.

package core

import (
	"cmp"
	"slices"
	"strings"
)

// Vertices returns the vertex set in ascending order.
// Complexity: O(V log V).
func (h *Hypergraph[V]) Vertices() []V {
	out := make([]V, 0, len(h.vertices))
	for v := range h.vertices {
		out = append(out, v)
	}
	slices.Sort(out)

	return out
}

// Edges returns the edge set sorted by canonical key.
// Complexity: O(E log E).
func (h *Hypergraph[V]) Edges() []Edge[V] {
	out := make([]Edge[V], 0, len(h.edges))
	for _, e := range h.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// Uniform reports whether every edge has exactly k vertices. With no
// argument, k is inferred from the first edge in canonical order; a
// hypergraph without edges is vacuously uniform.
func (h *Hypergraph[V]) Uniform(k ...int) bool {
	edges := h.Edges()
	if len(edges) == 0 {
		return true
	}
	want := edges[0].Len()
	if len(k) > 0 {
		want = k[0]
	}
	for _, e := range edges {
		if e.Len() != want {
			return false
		}
	}

	return true
}

// Regular reports whether every vertex has weighted degree d. With no
// argument, d is inferred from the smallest vertex; a hypergraph without
// vertices is vacuously regular.
func (h *Hypergraph[V]) Regular(d ...float64) bool {
	vertices := h.Vertices()
	if len(vertices) == 0 {
		return true
	}
	want := h.Degree(vertices[0], true)
	if len(d) > 0 {
		want = d[0]
	}
	for _, v := range vertices {
		if h.Degree(v, true) != want {
			return false
		}
	}

	return true
}

// Adjacent returns the edges containing both u and v, sorted by key.
// Empty when u == v.
// Complexity: O(E log n).
func (h *Hypergraph[V]) Adjacent(u, v V) []Edge[V] {
	if u == v {
		return nil
	}
	var out []Edge[V]
	for _, e := range h.edges {
		if e.Contains(u) && e.Contains(v) {
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out
}

// Incident returns the edges incident on v. In an undirected hypergraph
// this is every edge containing v (forward has no effect). In a directed
// hypergraph, forward selects edges whose head is v; backward (forward
// false) selects edges containing v where v is not the head.
// Complexity: O(E log n).
func (h *Hypergraph[V]) Incident(v V, forward bool) []Edge[V] {
	var out []Edge[V]
	for _, e := range h.edges {
		head, hasHead := e.Head()
		if forward && h.directed {
			if hasHead && head == v {
				out = append(out, e)
			}
			continue
		}
		if e.Contains(v) && (!hasHead || head != v) {
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out
}

// Reachable returns the edges which contain tail and are directed into
// head; in an undirected hypergraph this is the same as Adjacent.
// Complexity: O(E log n).
func (h *Hypergraph[V]) Reachable(tail, head V) []Edge[V] {
	if tail == head {
		return nil
	}
	var out []Edge[V]
	for _, e := range h.edges {
		if !e.Contains(tail) || !e.Contains(head) {
			continue
		}
		if h.directed {
			if eh, ok := e.Head(); !ok || eh != head {
				continue
			}
		}
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// Neighbors returns the vertices u for which Reachable(v, u) is
// non-empty, in ascending order.
// Complexity: O(V·E).
func (h *Hypergraph[V]) Neighbors(v V) []V {
	var out []V
	for _, u := range h.Vertices() {
		if len(h.Reachable(v, u)) > 0 {
			out = append(out, u)
		}
	}

	return out
}

// Degree returns the weighted (sum of weights) or unweighted (count)
// degree of v over all edges containing it.
// Complexity: O(E log n).
func (h *Hypergraph[V]) Degree(v V, weighted bool) float64 {
	var total float64
	for key, e := range h.edges {
		if e.Contains(v) {
			total += h.edgeContribution(key, weighted)
		}
	}

	return total
}

// Indegree returns the (weighted) indegree of v: over edges whose head
// is v in a directed hypergraph, equal to Degree otherwise.
// Complexity: O(E).
func (h *Hypergraph[V]) Indegree(v V, weighted bool) float64 {
	if !h.directed {
		return h.Degree(v, weighted)
	}
	var total float64
	for key, e := range h.edges {
		if head, ok := e.Head(); ok && head == v {
			total += h.edgeContribution(key, weighted)
		}
	}

	return total
}

// Outdegree returns the (weighted) outdegree of v: over edges containing
// v where v is not the head in a directed hypergraph, equal to Degree
// otherwise.
// Complexity: O(E log n).
func (h *Hypergraph[V]) Outdegree(v V, weighted bool) float64 {
	if !h.directed {
		return h.Degree(v, weighted)
	}
	var total float64
	for key, e := range h.edges {
		head, _ := e.Head()
		if e.Contains(v) && head != v {
			total += h.edgeContribution(key, weighted)
		}
	}

	return total
}

// Equal reports whether h and other have the same directedness, vertex
// set, edge set, and weights equal within WeightTolerance.
// Complexity: O(V + E).
func (h *Hypergraph[V]) Equal(other *Hypergraph[V]) bool {
	if other == nil || h.directed != other.directed {
		return false
	}
	if len(h.vertices) != len(other.vertices) || len(h.edges) != len(other.edges) {
		return false
	}
	for v := range h.vertices {
		if _, ok := other.vertices[v]; !ok {
			return false
		}
	}
	for key := range h.edges {
		if _, ok := other.edges[key]; !ok {
			return false
		}
		diff := h.weights[key] - other.weights[key]
		if diff < -WeightTolerance || diff > WeightTolerance {
			return false
		}
	}

	return true
}

// edgeContribution returns the weight of the edge under key, or 1 for an
// unweighted count.
func (h *Hypergraph[V]) edgeContribution(key string, weighted bool) float64 {
	if weighted {
		return h.weights[key]
	}

	return 1
}

// sortEdges orders a slice of edges by canonical key.
func sortEdges[V cmp.Ordered](edges []Edge[V]) {
	slices.SortFunc(edges, func(a, b Edge[V]) int {
		return strings.Compare(a.key, b.key)
	})
}
