// Package path: the Bellman–Ford algorithm.

package path

import (
	"cmp"
	"fmt"
	"math"

	"github.com/setgraph/hyperg/core"
)

// BellmanFord computes shortest distances from source to every vertex
// of a directed graph, tolerating negative edge weights.
//
// |V|−1 relaxation rounds run over all arcs in deterministic order,
// followed by one verification pass: if any arc is still relaxable the
// graph contains a negative-weight cycle and ErrNegativeCycle is
// returned (fatal, no partial result).
//
// Returns ErrNilGraph, ErrNotDirected for undirected input, or
// ErrVertexNotFound for an absent source. Result maps follow the same
// conventions as Dijkstra.
// Complexity: O(V·E) time, O(V) space.
func BellmanFord[V cmp.Ordered](g *core.Graph[V], source V) (map[V]float64, map[V]V, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, nil, ErrNotDirected
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	vertices := g.Vertices()
	dist := make(map[V]float64, len(vertices))
	prev := make(map[V]V, len(vertices))
	for _, v := range vertices {
		dist[v] = math.Inf(1)
	}
	dist[source] = 0

	adj := adjacency(g)
	relaxRound := func(commit bool) bool {
		relaxed := false
		for _, u := range vertices {
			if math.IsInf(dist[u], 1) {
				continue
			}
			for _, a := range adj[u] {
				if candidate := dist[u] + a.weight; candidate < dist[a.to] {
					relaxed = true
					if commit {
						dist[a.to] = candidate
						prev[a.to] = u
					}
				}
			}
		}

		return relaxed
	}
	for round := 0; round < len(vertices)-1; round++ {
		if !relaxRound(true) {
			break // early exit: already stable
		}
	}
	// Verification pass: a still-relaxable arc means a negative cycle.
	if relaxRound(false) {
		return nil, nil, ErrNegativeCycle
	}

	return dist, prev, nil
}
