// Package hyperg is an in-memory toolkit for graphs and hypergraphs —
// from core set-based primitives to spectral analysis, edge orientation
// and weighted shortest paths.
//
// 🚀 What is hyperg?
//
//	A small, synchronous, generically-typed library that brings together:
//		• Core primitives: hyperedges with optional head vertices, weighted
//		  hypergraphs and 2-uniform graphs with fail-fast validation
//		• Traversals: lazy breadth-first and depth-first cursors
//		• Matrix views: degree, adjacency, incidence and Laplacian matrices
//		• Spectral queries: Laplacian eigenvalues, algebraic connectivity,
//		  edge cuts and the isoperimetric number
//		• Orientation: random and minimum-maximum-indegree orientations of
//		  undirected hypergraphs (unweighted and weighted local search)
//		• Shortest paths: Dijkstra, Bellman–Ford, Floyd–Warshall and
//		  tight-edge subgraph extraction
//
// ✨ Why choose hyperg?
//
//   - Hyperedges first – every edge is a set of ≥1 vertices, with an
//     optional designated head for directed use
//   - Deterministic – all iteration orders are total-order sorted, so
//     every algorithm is reproducible without seeds or maps leaking state
//   - Explicit errors – sentinel errors per package, validated before any
//     mutation is committed (never partially applied)
//   - Pure computation – no I/O, no goroutines, no hidden globals; each
//     structure is exclusively owned by its caller
//
// Everything is organized under six subpackages:
//
//	core/         — Edge, Hypergraph and Graph types plus all structural queries
//	search/       — lazy BFS/DFS walk cursors
//	matrix/       — matrix builders and Laplacian eigenvalues (gonum-backed)
//	connectivity/ — algebraic connectivity, edge cut, isoperimetric number
//	orient/       — orientation algorithms over undirected hypergraphs
//	path/         — weighted shortest-path algorithms over 2-uniform graphs
//
// Quick ASCII example:
//
//	    1───2
//	        │
//	    4───3
//
//	a path graph on four vertices: three 2-vertex edges, weight 1.0 each.
//
//	go get github.com/setgraph/hyperg
package hyperg
