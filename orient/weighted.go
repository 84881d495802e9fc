// Package orient: weighted minimum-maximum-indegree heuristic.
//
// Seeding is greedy: each edge, in canonical order, is headed at its
// currently least-loaded member. Two local-search passes then run
// alternately until neither finds an improving move:
//
//   - reduce-max: for the most-loaded vertex, try re-heading one of its
//     edges at another member whose resulting load stays at least
//     tolerance below the max vertex's reduced load; accept the first
//     improving reassignment and restart the scan.
//   - interchange: order vertices by weighted indegree; for every
//     heavier/lighter pair, look for an edge headed at the heavier
//     containing the lighter and vice versa, and swap their heads when
//     that lowers the pair's maximum load by at least tolerance; accept
//     the first improving swap and restart.
//
// No optimality guarantee: the result is a local optimum of this
// neighborhood.

package orient

import (
	"cmp"
	"slices"

	"github.com/setgraph/hyperg/core"
)

// MinMaxWeightedIndegree returns a heuristic orientation of h
// approximately minimizing the maximum weighted indegree; weights are
// copied unchanged. Returns ErrNilHypergraph or ErrDirected.
func MinMaxWeightedIndegree[V cmp.Ordered](h *core.Hypergraph[V]) (*core.Hypergraph[V], error) {
	if err := validate(h); err != nil {
		return nil, err
	}
	l := emptyOrientation(h)
	// Greedy seed: head at the least-loaded member, ties to the smallest.
	for _, e := range h.Edges() {
		members := e.Vertices()
		head := members[0]
		for _, m := range members[1:] {
			if l.Indegree(m, true) < l.Indegree(head, true) {
				head = m
			}
		}
		oriented, err := core.NewDirectedEdge(head, members...)
		if err != nil {
			return nil, err
		}
		w, _ := h.Weight(e)
		if err = l.AddEdge(oriented, w); err != nil {
			return nil, err
		}
	}

	for {
		movedMax, err := reduceMaxPass(l)
		if err != nil {
			return nil, err
		}
		swapped, err := interchangePass(l)
		if err != nil {
			return nil, err
		}
		if !movedMax && !swapped {
			return l, nil
		}
	}
}

// reduceMaxPass repeatedly re-heads edges away from the most-loaded
// vertex while an acceptable reassignment exists. Reports whether any
// move was accepted.
func reduceMaxPass[V cmp.Ordered](l *core.Hypergraph[V]) (bool, error) {
	moved := false
	for {
		vmax, imax := maxLoaded(l)
		accepted := false
		for _, e := range l.Incident(vmax, true) {
			w, _ := l.Weight(e)
			for _, m := range e.Vertices() {
				if m == vmax {
					continue
				}
				// Accept iff the member's resulting load stays at least
				// tolerance below the max vertex's reduced load.
				if imax-w-(l.Indegree(m, true)+w) >= tolerance {
					if err := reassign(l, e, m); err != nil {
						return moved, err
					}
					accepted, moved = true, true
					break
				}
			}
			if accepted {
				break
			}
		}
		if !accepted {
			return moved, nil
		}
	}
}

// interchangePass repeatedly swaps edge heads between heavier/lighter
// vertex pairs while an improving swap exists. Reports whether any swap
// was accepted.
func interchangePass[V cmp.Ordered](l *core.Hypergraph[V]) (bool, error) {
	swapped := false
	for {
		e1, e2, m1, m2, ok := findInterchange(l)
		if !ok {
			return swapped, nil
		}
		if err := reassign(l, e1, m2); err != nil {
			return swapped, err
		}
		if err := reassign(l, e2, m1); err != nil {
			return swapped, err
		}
		swapped = true
	}
}

// findInterchange scans heavier/lighter vertex pairs in load order for
// the first head swap lowering the pair's maximum load by at least
// tolerance.
func findInterchange[V cmp.Ordered](l *core.Hypergraph[V]) (e1, e2 core.Edge[V], m1, m2 V, ok bool) {
	order := byLoad(l)
	for i := len(order) - 1; i > 0; i-- {
		for j := 0; j < i; j++ {
			heavy, light := order[i], order[j]
			ih, il := l.Indegree(heavy, true), l.Indegree(light, true)
			for _, ej := range l.Incident(heavy, true) {
				if !ej.Contains(light) {
					continue
				}
				wj, _ := l.Weight(ej)
				for _, ek := range l.Incident(light, true) {
					if !ek.Contains(heavy) {
						continue
					}
					wk, _ := l.Weight(ek)
					after := max(ih-wj+wk, il-wk+wj)
					if max(ih, il)-after >= tolerance {
						return ej, ek, heavy, light, true
					}
				}
			}
		}
	}

	return e1, e2, m1, m2, false
}

// maxLoaded returns the smallest vertex achieving the maximum weighted
// indegree, with that indegree.
func maxLoaded[V cmp.Ordered](l *core.Hypergraph[V]) (V, float64) {
	var vmax V
	var imax float64
	for i, v := range l.Vertices() {
		if d := l.Indegree(v, true); i == 0 || d > imax {
			vmax, imax = v, d
		}
	}

	return vmax, imax
}

// byLoad returns the vertices sorted ascending by weighted indegree,
// ties toward the smaller vertex.
func byLoad[V cmp.Ordered](l *core.Hypergraph[V]) []V {
	order := l.Vertices() // already ascending, the tie-break order
	load := make(map[V]float64, len(order))
	for _, v := range order {
		load[v] = l.Indegree(v, true)
	}
	// Stable sort preserves the vertex order among equal loads.
	slices.SortStableFunc(order, func(a, b V) int {
		return cmp.Compare(load[a], load[b])
	})

	return order
}
