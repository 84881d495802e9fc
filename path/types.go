// Package path: sentinel errors and the shared adjacency snapshot.
package path

import (
	"cmp"
	"errors"

	"github.com/setgraph/hyperg/core"
)

var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("path: graph is nil")

	// ErrVertexNotFound is returned when a start or end vertex is absent.
	ErrVertexNotFound = errors.New("path: vertex not found")

	// ErrNegativeWeight is returned by Dijkstra's pre-scan when any edge
	// weight is negative.
	ErrNegativeWeight = errors.New("path: negative edge weight")

	// ErrNotDirected is returned by Bellman–Ford for undirected graphs.
	ErrNotDirected = errors.New("path: graph must be directed")

	// ErrNegativeCycle is returned when Bellman–Ford's verification pass
	// finds a still-relaxable edge: a negative-weight cycle. Fatal, never
	// retried.
	ErrNegativeCycle = errors.New("path: negative-weight cycle detected")

	// ErrNoPath is returned when the end vertex is unreachable from the
	// start vertex.
	ErrNoPath = errors.New("path: no path between vertices")
)

// arc is one traversable direction of a 2-vertex edge.
type arc[V cmp.Ordered] struct {
	to     V
	weight float64
}

// adjacency snapshots the graph as per-vertex outgoing arcs in
// deterministic (edge key) order: directed edges contribute tail→head
// only, undirected edges both directions.
func adjacency[V cmp.Ordered](g *core.Graph[V]) map[V][]arc[V] {
	adj := make(map[V][]arc[V], g.Order())
	for _, e := range g.Edges() {
		w, _ := g.Weight(e)
		members := e.Vertices()
		u, v := members[0], members[1]
		if head, ok := e.Head(); ok {
			tail := u
			if head == u {
				tail = v
			}
			adj[tail] = append(adj[tail], arc[V]{to: head, weight: w})
			continue
		}
		adj[u] = append(adj[u], arc[V]{to: v, weight: w})
		adj[v] = append(adj[v], arc[V]{to: u, weight: w})
	}

	return adj
}
