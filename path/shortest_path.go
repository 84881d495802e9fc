// Package path: the combined single-pair front end.

package path

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/setgraph/hyperg/core"
)

// ShortestPath returns the shortest vertex path from start to end and
// its total distance. Dijkstra runs first; if its non-negative-weight
// precondition fails, Bellman–Ford takes over (directed graphs only —
// its own preconditions propagate). Returns ErrNoPath when end is
// unreachable from start.
func ShortestPath[V cmp.Ordered](g *core.Graph[V], start, end V) ([]V, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if !g.HasVertex(end) {
		return nil, 0, fmt.Errorf("%w: %v", ErrVertexNotFound, end)
	}
	dist, prev, err := Dijkstra(g, start)
	if errors.Is(err, ErrNegativeWeight) {
		dist, prev, err = BellmanFord(g, start)
	}
	if err != nil {
		return nil, 0, err
	}
	if math.IsInf(dist[end], 1) {
		return nil, 0, fmt.Errorf("%w: %v to %v", ErrNoPath, start, end)
	}

	// Walk predecessors from end back to start, then reverse.
	route := []V{end}
	for cur := end; cur != start; {
		p, ok := prev[cur]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %v to %v", ErrNoPath, start, end)
		}
		route = append(route, p)
		cur = p
	}
	slices.Reverse(route)

	return route, dist[end], nil
}
