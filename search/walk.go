// Package search: the Walk cursor and its BFS/DFS constructors.
//
// The cursor form replaces recursive traversal with an explicit frontier
// (FIFO queue for BFS, LIFO stack for DFS) so arbitrarily deep
// hypergraphs cannot exhaust the call stack.

package search

import (
	"cmp"

	"github.com/setgraph/hyperg/core"
)

// Walk is a lazy, one-shot traversal cursor. Obtain one from
// BreadthFirst or DepthFirst and drain it with Next or Visit.
type Walk[V cmp.Ordered] struct {
	h        *core.Hypergraph[V]
	frontier []V
	visited  map[V]struct{}
	depth    bool // LIFO expansion when true
}

// BreadthFirst returns a Walk yielding the vertices reachable from
// start in breadth-first discovery order, start first.
// Returns ErrNilHypergraph or ErrStartNotFound.
func BreadthFirst[V cmp.Ordered](h *core.Hypergraph[V], start V) (*Walk[V], error) {
	return newWalk(h, start, false)
}

// DepthFirst returns a Walk yielding the vertices reachable from start
// in depth-first discovery order, start first.
// Returns ErrNilHypergraph or ErrStartNotFound.
func DepthFirst[V cmp.Ordered](h *core.Hypergraph[V], start V) (*Walk[V], error) {
	return newWalk(h, start, true)
}

func newWalk[V cmp.Ordered](h *core.Hypergraph[V], start V, depth bool) (*Walk[V], error) {
	if h == nil {
		return nil, ErrNilHypergraph
	}
	if !h.HasVertex(start) {
		return nil, ErrStartNotFound
	}

	w := &Walk[V]{
		h:        h,
		frontier: []V{start},
		visited:  make(map[V]struct{}),
		depth:    depth,
	}
	if !depth {
		// BFS marks on enqueue; the queue never holds duplicates.
		w.visited[start] = struct{}{}
	}

	return w, nil
}

// Next advances the traversal by one vertex. The second return value is
// false once every reachable vertex has been yielded.
// Amortized complexity per vertex: O(E·n).
func (w *Walk[V]) Next() (V, bool) {
	for len(w.frontier) > 0 {
		var v V
		if w.depth {
			// DFS marks on pop; stale stack entries are skipped.
			v = w.frontier[len(w.frontier)-1]
			w.frontier = w.frontier[:len(w.frontier)-1]
			if _, seen := w.visited[v]; seen {
				continue
			}
			w.visited[v] = struct{}{}
		} else {
			// BFS queue entries were marked on enqueue and are unique.
			v = w.frontier[0]
			w.frontier = w.frontier[1:]
		}
		w.expand(v)

		return v, true
	}
	var zero V

	return zero, false
}

// Visit drains the remaining traversal, invoking fn for each vertex.
// A non-nil error from fn stops the walk and is returned.
func (w *Walk[V]) Visit(fn func(V) error) error {
	for v, ok := w.Next(); ok; v, ok = w.Next() {
		if err := fn(v); err != nil {
			return err
		}
	}

	return nil
}

// expand pushes the unvisited successors of v onto the frontier.
// BFS marks on push to keep the queue duplicate-free; DFS pushes in
// reverse so the smallest successor surfaces first on pop.
func (w *Walk[V]) expand(v V) {
	next := w.successors(v)
	if w.depth {
		for i := len(next) - 1; i >= 0; i-- {
			if _, seen := w.visited[next[i]]; !seen {
				w.frontier = append(w.frontier, next[i])
			}
		}

		return
	}
	for _, u := range next {
		if _, seen := w.visited[u]; !seen {
			w.visited[u] = struct{}{}
			w.frontier = append(w.frontier, u)
		}
	}
}

// successors lists the vertices reachable from v across one edge, in
// deterministic order with duplicates removed. Directed: heads of edges
// in which v is a tail member. Undirected: co-members of incident edges.
func (w *Walk[V]) successors(v V) []V {
	var out []V
	seen := make(map[V]struct{})
	add := func(u V) {
		if _, dup := seen[u]; !dup {
			seen[u] = struct{}{}
			out = append(out, u)
		}
	}
	for _, e := range w.h.Incident(v, false) {
		if w.h.Directed() {
			if head, ok := e.Head(); ok {
				add(head)
			}
			continue
		}
		for _, u := range e.Vertices() {
			if u != v {
				add(u)
			}
		}
	}

	return out
}
