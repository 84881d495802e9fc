// Package path implements weighted shortest-path algorithms over
// 2-uniform graphs: single-source Dijkstra and Bellman–Ford, the
// combined ShortestPath front end, all-pairs Floyd–Warshall, and
// tight-edge shortest-path-subgraph extraction.
//
// All functions operate on a *core.Graph, so 2-uniformity is enforced
// by the type system rather than a runtime precondition. Distances are
// float64; unreachable vertices carry +Inf. Predecessor maps omit the
// source (start → none) and unreachable vertices.
//
// Error policy follows the taxonomy of the model: precondition errors
// (ErrNegativeWeight for Dijkstra, ErrNotDirected for Bellman–Ford) are
// validated before any computation; the negative-weight cycle detected
// by Bellman–Ford's verification pass is a fatal algorithmic failure
// (ErrNegativeCycle), surfaced immediately and never retried.
package path
