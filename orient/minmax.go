// Package orient: exact minimum-maximum-indegree orientation.
//
// The loop maintains a directed hypergraph L and the unweighted
// indegree of every vertex. Each iteration picks the smallest vertex
// vmax achieving the maximum indegree and breadth-first searches the
// directed edge structure backward from vmax — following edges whose
// head is the current frontier vertex — for a reducing path: a sequence
// of (edge, next-vertex) steps ending at a vertex whose indegree is at
// least 2 below vmax's. Reversing every edge on the path lowers vmax's
// indegree by one, raises the endpoint's by one, and leaves every
// intermediate vertex unchanged. When no reducing path exists the
// orientation is a local optimum and the algorithm terminates.

package orient

import (
	"cmp"

	"github.com/setgraph/hyperg/core"
)

// pathStep records one reversal: the edge to re-head and its new head.
type pathStep[V cmp.Ordered] struct {
	edge core.Edge[V]
	next V
}

// MinMaxIndegree returns an orientation of h minimizing the maximum
// unweighted indegree up to a reducing-path local optimum. The initial
// orientation heads every edge at its smallest member; weights are
// copied unchanged. Returns ErrNilHypergraph or ErrDirected.
func MinMaxIndegree[V cmp.Ordered](h *core.Hypergraph[V]) (*core.Hypergraph[V], error) {
	if err := validate(h); err != nil {
		return nil, err
	}
	l := emptyOrientation(h)
	for _, e := range h.Edges() {
		members := e.Vertices() // sorted; members[0] is the smallest
		oriented, err := core.NewDirectedEdge(members[0], members...)
		if err != nil {
			return nil, err
		}
		w, _ := h.Weight(e)
		if err = l.AddEdge(oriented, w); err != nil {
			return nil, err
		}
	}

	for {
		deg := make(map[V]float64, l.Order())
		vertices := l.Vertices()
		var vmax V
		for i, v := range vertices {
			deg[v] = l.Indegree(v, false)
			if i == 0 || deg[v] > deg[vmax] {
				vmax = v
			}
		}
		path := reducingPath(l, deg, vmax)
		if path == nil {
			return l, nil
		}
		for _, step := range path {
			if err := reassign(l, step.edge, step.next); err != nil {
				return nil, err
			}
		}
	}
}

// reducingPath breadth-first searches backward from u over edges headed
// at the frontier, returning the first path to a vertex whose indegree
// is at least 2 below deg[u], or nil when none exists. Vertices with
// indegree above deg[u] are not crossed.
func reducingPath[V cmp.Ordered](l *core.Hypergraph[V], deg map[V]float64, u V) []pathStep[V] {
	type item struct {
		v    V
		path []pathStep[V]
	}
	marked := map[V]struct{}{u: {}}
	queue := []item{{v: u}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range l.Incident(cur.v, true) {
			for _, w := range e.Vertices() {
				if _, seen := marked[w]; seen {
					continue
				}
				step := pathStep[V]{edge: e, next: w}
				next := append(append([]pathStep[V]{}, cur.path...), step)
				if deg[w] < deg[u]-1 {
					return next
				}
				if deg[w] <= deg[u] {
					marked[w] = struct{}{}
					queue = append(queue, item{v: w, path: next})
				}
			}
		}
	}

	return nil
}
