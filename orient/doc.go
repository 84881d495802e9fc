// Package orient transforms an undirected hypergraph into a directed
// one by assigning a head vertex to every edge, optimizing a
// load-balancing objective over vertex indegree.
//
// Three orientations are provided:
//
//   - Random: each edge gets a uniformly random member as head.
//   - MinMaxIndegree: exact local optimization of the maximum unweighted
//     indegree via reducing-path reversals, generalizing the
//     outdegree-minimization method of Asahiro, Miyano, Ono and Zenmyo
//     (Int. J. Foundations of Computer Science 18, 2007) to hyperedges.
//   - MinMaxWeightedIndegree: a local-search heuristic (no optimality
//     guarantee) for the weighted objective, after Piersma and Van Dijk's
//     neighborhood search for unrelated parallel machine scheduling
//     (Mathematical and Computer Modelling 24(9), 1996).
//
// Every orientation returns a new directed hypergraph with the same
// vertex set, the same edge member sets, and the input's weights; the
// input is never mutated. Except for Random, all scans are
// deterministic: vertices ascending under their total order, edges
// ascending by canonical key, ties broken toward the smallest vertex.
package orient
