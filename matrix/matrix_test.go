// Package matrix_test contains unit tests for the matrix builders and
// the spectral eigenvalue queries, checked against hand-computed values
// for small graphs.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/setgraph/hyperg/core"
	"github.com/setgraph/hyperg/matrix"
)

// pathGraph returns the undirected path a—b—c with unit weights.
func pathGraph(t *testing.T) *core.Hypergraph[string] {
	t.Helper()
	ab, err := core.NewEdge("a", "b")
	require.NoError(t, err)
	bc, err := core.NewEdge("b", "c")
	require.NoError(t, err)
	h, err := core.New(core.WithEdges(ab, bc))
	require.NoError(t, err)

	return h
}

func TestDegreeMatrix_Undirected(t *testing.T) {
	d, err := matrix.DegreeMatrix(pathGraph(t))
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 1}, []float64{d.At(0, 0), d.At(1, 1), d.At(2, 2)})
}

func TestDegreeMatrix_DirectedUsesIndegree(t *testing.T) {
	ab, err := core.NewDirectedEdge("b", "a", "b")
	require.NoError(t, err)
	h, err := core.New(core.WithDirected[string](), core.WithWeightedEdge(ab, 2))
	require.NoError(t, err)

	d, err := matrix.DegreeMatrix(h)
	require.NoError(t, err)
	require.Equal(t, 0.0, d.At(0, 0)) // a heads nothing
	require.Equal(t, 2.0, d.At(1, 1)) // b is the head of ab
}

func TestAdjacencyMatrix_Undirected(t *testing.T) {
	a, err := matrix.AdjacencyMatrix(pathGraph(t))
	require.NoError(t, err)
	want := mat.NewDense(3, 3, []float64{
		0, 1, 0,
		1, 0, 1,
		0, 1, 0,
	})
	require.True(t, mat.EqualApprox(a, want, 1e-12))
}

func TestAdjacencyMatrix_DirectedRespectsHeads(t *testing.T) {
	ab, err := core.NewDirectedEdge("b", "a", "b")
	require.NoError(t, err)
	h, err := core.New(core.WithDirected[string](), core.WithWeightedEdge(ab, 3))
	require.NoError(t, err)

	a, err := matrix.AdjacencyMatrix(h)
	require.NoError(t, err)
	require.Equal(t, 3.0, a.At(0, 1)) // a → b
	require.Equal(t, 0.0, a.At(1, 0)) // not b → a
}

func TestAdjacencyMatrix_NotUniform(t *testing.T) {
	h := pathGraph(t)
	abc, err := core.NewEdge("a", "b", "c")
	require.NoError(t, err)
	require.NoError(t, h.AddEdge(abc, 1))

	_, err = matrix.AdjacencyMatrix(h)
	require.ErrorIs(t, err, matrix.ErrNotUniform)
	_, err = matrix.LaplacianMatrix(h)
	require.ErrorIs(t, err, matrix.ErrNotUniform)
}

func TestIncidenceMatrix_Undirected(t *testing.T) {
	m, err := matrix.IncidenceMatrix(pathGraph(t))
	require.NoError(t, err)
	// Rows a,b,c; columns ab, bc in canonical order.
	want := mat.NewDense(3, 2, []float64{
		1, 0,
		1, 1,
		0, 1,
	})
	require.True(t, mat.EqualApprox(m, want, 1e-12))
}

func TestIncidenceMatrix_DirectedHyperedge(t *testing.T) {
	e, err := core.NewDirectedEdge("b", "a", "b", "c")
	require.NoError(t, err)
	h, err := core.New(core.WithDirected[string](), core.WithEdges(e))
	require.NoError(t, err)

	m, err := matrix.IncidenceMatrix(h)
	require.NoError(t, err)
	require.Equal(t, -1.0, m.At(0, 0)) // a: tail
	require.Equal(t, 1.0, m.At(1, 0))  // b: head
	require.Equal(t, -1.0, m.At(2, 0)) // c: tail
}

func TestIncidenceMatrix_NoEdges(t *testing.T) {
	h, err := core.New(core.WithVertices("a"))
	require.NoError(t, err)
	_, err = matrix.IncidenceMatrix(h)
	require.ErrorIs(t, err, matrix.ErrNoEdges)
}

func TestLaplacianMatrix_PathGraph(t *testing.T) {
	l, err := matrix.LaplacianMatrix(pathGraph(t))
	require.NoError(t, err)
	want := mat.NewDense(3, 3, []float64{
		1, -1, 0,
		-1, 2, -1,
		0, -1, 1,
	})
	require.True(t, mat.EqualApprox(l, want, 1e-12))
}

func TestLaplacianEigenvalues_PathGraph(t *testing.T) {
	eigs, err := matrix.LaplacianEigenvalues(pathGraph(t))
	require.NoError(t, err)
	require.Len(t, eigs, 3)
	// Known spectrum of the path Laplacian: 0, 1, 3.
	require.InDelta(t, 0, eigs[0], 1e-8)
	require.InDelta(t, 1, eigs[1], 1e-8)
	require.InDelta(t, 3, eigs[2], 1e-8)
}

func TestLaplacianEigenvalues_TwoComponents(t *testing.T) {
	ab, err := core.NewEdge("a", "b")
	require.NoError(t, err)
	cd, err := core.NewEdge("c", "d")
	require.NoError(t, err)
	h, err := core.New(core.WithEdges(ab, cd))
	require.NoError(t, err)

	eigs, err := matrix.LaplacianEigenvalues(h)
	require.NoError(t, err)
	// Two disconnected components: two eigenvalues at zero.
	require.InDelta(t, 0, eigs[0], 1e-8)
	require.InDelta(t, 0, eigs[1], 1e-8)
	require.Greater(t, eigs[2], 1e-8)
}

func TestLaplacianEigenvalues_DirectedRejected(t *testing.T) {
	ab, err := core.NewDirectedEdge("b", "a", "b")
	require.NoError(t, err)
	h, err := core.New(core.WithDirected[string](), core.WithEdges(ab))
	require.NoError(t, err)

	_, err = matrix.LaplacianEigenvalues(h)
	require.ErrorIs(t, err, matrix.ErrDirected)
}

func TestMatrix_EmptyHypergraph(t *testing.T) {
	h, err := core.New[string]()
	require.NoError(t, err)
	_, err = matrix.DegreeMatrix(h)
	require.ErrorIs(t, err, matrix.ErrNoVertices)

	_, err = matrix.DegreeMatrix[string](nil)
	require.ErrorIs(t, err, matrix.ErrNilHypergraph)
}
