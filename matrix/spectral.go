// Package matrix: Laplacian eigenvalues.

package matrix

import (
	"cmp"

	"gonum.org/v1/gonum/mat"

	"github.com/setgraph/hyperg/core"
)

// LaplacianEigenvalues returns the real eigenvalues of the symmetric
// Laplacian of an undirected 2-uniform hypergraph, sorted ascending.
// Returns ErrDirected for directed input (whose Laplacian is not
// symmetric), ErrNotUniform for non-2-uniform input, and ErrEigenFailed
// if the decomposition does not converge.
// Complexity: O(V³).
func LaplacianEigenvalues[V cmp.Ordered](h *core.Hypergraph[V]) ([]float64, error) {
	if h == nil {
		return nil, ErrNilHypergraph
	}
	if h.Directed() {
		return nil, ErrDirected
	}
	l, err := LaplacianMatrix(h)
	if err != nil {
		return nil, err
	}
	n, _ := l.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, l.At(i, j))
		}
	}
	var eig mat.EigenSym
	if ok := eig.Factorize(sym, false); !ok {
		return nil, ErrEigenFailed
	}

	// EigenSym yields eigenvalues in ascending order.
	return eig.Values(nil), nil
}
