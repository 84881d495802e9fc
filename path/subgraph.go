// Package path: shortest-path-subgraph extraction.

package path

import (
	"cmp"

	"github.com/setgraph/hyperg/core"
)

// ShortestPathSubgraph returns a copy of g retaining only the "tight"
// edges — those whose weight equals the all-pairs shortest distance
// between their endpoints (directed: tail to head). Pruning non-tight
// edges never changes all-pairs distances. The caller's graph is not
// mutated; the result is a deep copy.
// Complexity: O(V³).
func ShortestPathSubgraph[V cmp.Ordered](g *core.Graph[V]) (*core.Graph[V], error) {
	dist, err := FloydWarshall(g)
	if err != nil {
		return nil, err
	}
	pruned := g.Clone()
	pruned.FilterEdges(func(e core.Edge[V], w float64) bool {
		members := e.Vertices()
		u, v := members[0], members[1]
		if head, ok := e.Head(); ok {
			if head == u {
				u, v = v, u
			}

			return w == dist[u][v]
		}

		return w == dist[u][v]
	})

	return pruned, nil
}
