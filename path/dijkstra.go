// Package path: Dijkstra's algorithm.
//
// Standard greedy relaxation over a min-heap with the lazy-decrease-key
// strategy: improved distances push duplicate heap entries, and stale
// entries are skipped on pop via the visited set.

package path

import (
	"cmp"
	"container/heap"
	"fmt"
	"math"

	"github.com/setgraph/hyperg/core"
)

// Dijkstra computes shortest distances from source to every vertex of
// g, which must have only non-negative weights.
//
// Returns:
//
//   - dist: vertex → minimum distance (+Inf if unreachable).
//   - prev: predecessor map; prev[v] == u means the shortest path to v
//     arrives from u. The source and unreachable vertices are absent.
//   - err:  ErrNilGraph, ErrVertexNotFound for an absent source, or
//     ErrNegativeWeight from the upfront edge scan (fail-fast, before
//     any computation).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra[V cmp.Ordered](g *core.Graph[V], source V) (map[V]float64, map[V]V, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}
	for _, e := range g.Edges() {
		if w, _ := g.Weight(e); w < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s weight=%v", ErrNegativeWeight, e, w)
		}
	}

	dist := make(map[V]float64, g.Order())
	prev := make(map[V]V, g.Order())
	for _, v := range g.Vertices() {
		dist[v] = math.Inf(1)
	}
	dist[source] = 0

	adj := adjacency(g)
	visited := make(map[V]struct{}, g.Order())
	pq := &distHeap[V]{{v: source, dist: 0}}
	heap.Init(pq)
	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem[V])
		if _, done := visited[item.v]; done {
			continue // stale lazy-decrease-key entry
		}
		visited[item.v] = struct{}{}
		for _, a := range adj[item.v] {
			candidate := dist[item.v] + a.weight
			if candidate >= dist[a.to] {
				continue
			}
			dist[a.to] = candidate
			prev[a.to] = item.v
			heap.Push(pq, distItem[V]{v: a.to, dist: candidate})
		}
	}

	return dist, prev, nil
}

// distItem pairs a vertex with its tentative distance in the heap.
type distItem[V cmp.Ordered] struct {
	v    V
	dist float64
}

// distHeap is a min-heap of distItem ordered by distance ascending,
// ties toward the smaller vertex for determinism.
type distHeap[V cmp.Ordered] []distItem[V]

func (h distHeap[V]) Len() int { return len(h) }

func (h distHeap[V]) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}

	return h[i].v < h[j].v
}

func (h distHeap[V]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *distHeap[V]) Push(x any) { *h = append(*h, x.(distItem[V])) }

func (h *distHeap[V]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}
