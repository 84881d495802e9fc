// Package matrix: sentinel errors for matrix construction.
package matrix

import "errors"

var (
	// ErrNilHypergraph is returned if a nil hypergraph pointer is passed.
	ErrNilHypergraph = errors.New("matrix: hypergraph is nil")

	// ErrNoVertices is returned when a matrix is requested over an empty
	// vertex set (gonum matrices cannot be zero-dimensional).
	ErrNoVertices = errors.New("matrix: hypergraph has no vertices")

	// ErrNoEdges is returned when an incidence matrix is requested over
	// an empty edge set.
	ErrNoEdges = errors.New("matrix: hypergraph has no edges")

	// ErrNotUniform is returned when an adjacency or Laplacian matrix is
	// requested for a hypergraph that is not 2-uniform.
	ErrNotUniform = errors.New("matrix: hypergraph is not 2-uniform")

	// ErrDirected is returned when a symmetric (spectral) computation is
	// requested for a directed hypergraph.
	ErrDirected = errors.New("matrix: hypergraph must be undirected")

	// ErrEigenFailed is returned if the eigendecomposition does not
	// converge.
	ErrEigenFailed = errors.New("matrix: eigendecomposition failed")
)
