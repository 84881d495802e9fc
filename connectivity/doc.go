// Package connectivity derives connectivity properties of a hypergraph:
// the algebraic connectivity test via Laplacian eigenvalues, edge cuts
// (coboundaries) of vertex subsets, and the isoperimetric number
// (Cheeger constant).
//
// IsoperimetricNumber enumerates every nonempty vertex subset up to half
// the vertex set — it is an exponential-time reference computation with
// no internal bound; bounding input size is the caller's responsibility.
package connectivity
