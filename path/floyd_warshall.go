// Package path: all-pairs shortest distances.

package path

import (
	"cmp"
	"math"

	"github.com/setgraph/hyperg/core"
)

// FloydWarshall returns all-pairs shortest distances via dynamic
// programming over intermediate vertices. Initial distance is the
// minimum direct edge weight respecting direction, +Inf when no direct
// edge exists, and 0 on the diagonal.
// Complexity: O(V³) time, O(V²) space.
func FloydWarshall[V cmp.Ordered](g *core.Graph[V]) (map[V]map[V]float64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	vertices := g.Vertices()
	dist := make(map[V]map[V]float64, len(vertices))
	for _, u := range vertices {
		dist[u] = make(map[V]float64, len(vertices))
		for _, v := range vertices {
			switch {
			case u == v:
				dist[u][v] = 0
			default:
				dist[u][v] = directWeight(g, u, v)
			}
		}
	}
	for _, w := range vertices {
		for _, u := range vertices {
			for _, v := range vertices {
				if via := dist[u][w] + dist[w][v]; via < dist[u][v] {
					dist[u][v] = via
				}
			}
		}
	}

	return dist, nil
}

// directWeight returns the minimum weight over edges traversable from u
// into v, or +Inf when none exists.
func directWeight[V cmp.Ordered](g *core.Graph[V], u, v V) float64 {
	best := math.Inf(1)
	for _, e := range g.Reachable(u, v) {
		if w, _ := g.Weight(e); w < best {
			best = w
		}
	}

	return best
}
