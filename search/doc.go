// Package search provides lazy breadth-first and depth-first traversal
// over a core.Hypergraph's incidence structure.
//
// Both traversals return a one-shot Walk cursor holding explicit
// frontier and visited state, advancing one vertex per Next call. Each
// reachable vertex is yielded exactly once, the start vertex first, in
// discovery order. Directed hypergraphs only follow outgoing edges (the
// frontier vertex is a tail member, the destination is the head);
// undirected hypergraphs follow any incident edge.
//
// Expansion order is deterministic: edges in canonical key order,
// members in ascending vertex order. Consumers may stop early without
// side effects; a Walk is not restartable.
package search
