// Package matrix builds degree, adjacency, incidence, and Laplacian
// matrices from a core.Hypergraph snapshot, and derives Laplacian
// eigenvalues for spectral connectivity analysis.
//
// All matrices are built over a fixed, deterministic ordering — vertices
// ascending under their total order, edges ascending by canonical key —
// so results are reproducible across runs.
//
// The Laplacian is defined as degree matrix minus adjacency matrix and
// is therefore restricted to 2-uniform hypergraphs; the generalized
// row-sum variant for arbitrary hypergraphs is deliberately not
// supported (one definition, documented, never both).
//
// Numerics are backed by gonum/mat; eigenvalues come from the symmetric
// eigendecomposition (EigenSym) and are returned sorted ascending.
package matrix
