// Package core_test contains unit tests for Hypergraph construction,
// mutation, and the structural query surface.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/setgraph/hyperg/core"
)

// mustEdge builds an undirected edge or fails the test.
func mustEdge(t *testing.T, vs ...string) core.Edge[string] {
	t.Helper()
	e, err := core.NewEdge(vs...)
	require.NoError(t, err)

	return e
}

// mustArc builds a directed edge or fails the test.
func mustArc(t *testing.T, head string, vs ...string) core.Edge[string] {
	t.Helper()
	e, err := core.NewDirectedEdge(head, vs...)
	require.NoError(t, err)

	return e
}

// ------------------------------------------------------------------------
// 1. Construction: whole-collection validation, no partial commit.
// ------------------------------------------------------------------------

func TestNew_DirectednessMismatchAbortsConstruction(t *testing.T) {
	// A headless edge cannot enter a directed hypergraph.
	_, err := core.New(
		core.WithDirected[string](),
		core.WithEdges(mustEdge(t, "a", "b")),
	)
	require.ErrorIs(t, err, core.ErrDirectedMismatch)

	// And an edge with a head cannot enter an undirected one.
	_, err = core.New(core.WithEdges(mustArc(t, "b", "a", "b")))
	require.ErrorIs(t, err, core.ErrDirectedMismatch)
}

func TestNew_BadInitialWeight(t *testing.T) {
	for _, w := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := core.New(core.WithWeightedEdge(mustEdge(t, "a", "b"), w))
		require.ErrorIs(t, err, core.ErrBadWeight, "weight %v", w)
	}
}

func TestNew_AllowNegativeRelaxesSign(t *testing.T) {
	h, err := core.New(
		core.WithAllowNegative[string](),
		core.WithWeightedEdge(mustEdge(t, "a", "b"), -2.5),
	)
	require.NoError(t, err)
	w, ok := h.Weight(mustEdge(t, "a", "b"))
	require.True(t, ok)
	require.Equal(t, -2.5, w)

	// NaN stays rejected.
	_, err = core.New(
		core.WithAllowNegative[string](),
		core.WithWeightedEdge(mustEdge(t, "a", "b"), math.NaN()),
	)
	require.ErrorIs(t, err, core.ErrBadWeight)
}

// ------------------------------------------------------------------------
// 2. Mutation: implicit vertex union, cascades, fail-fast errors.
// ------------------------------------------------------------------------

func TestAddEdge_UnionsVertices(t *testing.T) {
	h, err := core.New(core.WithVertices("a"))
	require.NoError(t, err)
	require.NoError(t, h.AddEdge(mustEdge(t, "b", "c", "d"), 1))
	require.Equal(t, []string{"a", "b", "c", "d"}, h.Vertices())
}

func TestAddEdge_FailureLeavesStructureUnchanged(t *testing.T) {
	h, err := core.New[string]()
	require.NoError(t, err)
	err = h.AddEdge(mustEdge(t, "x", "y"), -1)
	require.ErrorIs(t, err, core.ErrBadWeight)
	// No vertex leaked from the rejected edge.
	require.Zero(t, h.Order())
	require.Zero(t, h.Size())
}

func TestRemoveVertex_CascadesIncidentEdges(t *testing.T) {
	ab := mustEdge(t, "a", "b")
	bc := mustEdge(t, "b", "c")
	cd := mustEdge(t, "c", "d")
	h, err := core.New(core.WithEdges(ab, bc, cd))
	require.NoError(t, err)

	require.NoError(t, h.RemoveVertex("b"))

	// No remaining edge contains b, and the weight map has no entry for
	// a removed edge.
	require.False(t, h.HasVertex("b"))
	for _, e := range h.Edges() {
		require.False(t, e.Contains("b"))
	}
	_, ok := h.Weight(ab)
	require.False(t, ok)
	_, ok = h.Weight(bc)
	require.False(t, ok)
	w, ok := h.Weight(cd)
	require.True(t, ok)
	require.Equal(t, 1.0, w)
}

func TestRemove_Missing(t *testing.T) {
	h, err := core.New(core.WithVertices("a"))
	require.NoError(t, err)
	require.ErrorIs(t, h.RemoveVertex("z"), core.ErrVertexNotFound)
	require.ErrorIs(t, h.RemoveEdge(mustEdge(t, "a", "z")), core.ErrEdgeNotFound)
}

// ------------------------------------------------------------------------
// 3. Queries.
// ------------------------------------------------------------------------

func TestUniformAndRegular(t *testing.T) {
	h, err := core.New(core.WithEdges(
		mustEdge(t, "a", "b"),
		mustEdge(t, "b", "c"),
		mustEdge(t, "c", "a"),
	))
	require.NoError(t, err)
	require.True(t, h.Uniform())
	require.True(t, h.Uniform(2))
	require.False(t, h.Uniform(3))
	require.True(t, h.Regular())
	require.True(t, h.Regular(2))
	require.False(t, h.Regular(1))

	require.NoError(t, h.AddEdge(mustEdge(t, "a", "b", "c"), 1))
	require.False(t, h.Uniform())
	require.False(t, h.Regular(2))
}

func TestAdjacent(t *testing.T) {
	abc := mustEdge(t, "a", "b", "c")
	ab := mustEdge(t, "a", "b")
	h, err := core.New(core.WithEdges(abc, ab, mustEdge(t, "c", "d")))
	require.NoError(t, err)

	require.Empty(t, h.Adjacent("a", "a"))
	got := h.Adjacent("a", "b")
	require.Len(t, got, 2)
	require.Empty(t, h.Adjacent("b", "d"))
}

func TestIncident_Directed(t *testing.T) {
	into := mustArc(t, "b", "a", "b", "c") // head b
	out := mustArc(t, "c", "b", "c")       // b is a tail member
	h, err := core.New(core.WithDirected[string](), core.WithEdges(into, out))
	require.NoError(t, err)

	forward := h.Incident("b", true)
	require.Len(t, forward, 1)
	require.True(t, forward[0].Equal(into))

	backward := h.Incident("b", false)
	require.Len(t, backward, 1)
	require.True(t, backward[0].Equal(out))
}

func TestIncident_UndirectedIgnoresForward(t *testing.T) {
	ab := mustEdge(t, "a", "b")
	bc := mustEdge(t, "b", "c")
	h, err := core.New(core.WithEdges(ab, bc))
	require.NoError(t, err)
	require.Len(t, h.Incident("b", true), 2)
	require.Len(t, h.Incident("b", false), 2)
}

func TestReachableAndNeighbors(t *testing.T) {
	h, err := core.New(core.WithDirected[string](), core.WithEdges(
		mustArc(t, "b", "a", "b"),
		mustArc(t, "c", "b", "c"),
		mustArc(t, "a", "c", "a"),
	))
	require.NoError(t, err)

	require.Len(t, h.Reachable("a", "b"), 1)
	require.Empty(t, h.Reachable("b", "a"))
	require.Equal(t, []string{"b"}, h.Neighbors("a"))

	// Undirected: reachable coincides with adjacent.
	u, err := core.New(core.WithEdges(mustEdge(t, "a", "b")))
	require.NoError(t, err)
	require.Len(t, u.Reachable("b", "a"), 1)
	require.Equal(t, []string{"a"}, u.Neighbors("b"))
}

func TestDegreeIdentity_Directed(t *testing.T) {
	// For every vertex of a directed hypergraph:
	// indegree + outdegree == degree (unweighted).
	h, err := core.New(core.WithDirected[string](), core.WithEdges(
		mustArc(t, "b", "a", "b", "c"),
		mustArc(t, "c", "b", "c"),
		mustArc(t, "a", "a", "d"),
	))
	require.NoError(t, err)
	for _, v := range h.Vertices() {
		in := h.Indegree(v, false)
		out := h.Outdegree(v, false)
		require.Equal(t, h.Degree(v, false), in+out, "vertex %s", v)
	}
}

func TestDegree_Weighted(t *testing.T) {
	h, err := core.New(
		core.WithWeightedEdge(mustEdge(t, "a", "b"), 2.5),
		core.WithWeightedEdge(mustEdge(t, "a", "c"), 0.5),
	)
	require.NoError(t, err)
	require.Equal(t, 3.0, h.Degree("a", true))
	require.Equal(t, 2.0, h.Degree("a", false))
	// Undirected: indegree and outdegree both equal degree.
	require.Equal(t, 3.0, h.Indegree("a", true))
	require.Equal(t, 3.0, h.Outdegree("a", true))
}

// ------------------------------------------------------------------------
// 4. Clone and equality.
// ------------------------------------------------------------------------

func TestClone_Independent(t *testing.T) {
	h, err := core.New(core.WithEdges(mustEdge(t, "a", "b")))
	require.NoError(t, err)
	clone := h.Clone()
	require.True(t, h.Equal(clone))

	require.NoError(t, clone.RemoveVertex("a"))
	require.True(t, h.HasVertex("a"))
	require.Equal(t, 1, h.Size())
	require.False(t, h.Equal(clone))
}

func TestEqual_WeightTolerance(t *testing.T) {
	ab := mustEdge(t, "a", "b")
	h1, err := core.New(core.WithWeightedEdge(ab, 1.0))
	require.NoError(t, err)
	h2, err := core.New(core.WithWeightedEdge(ab, 1.0+1e-5))
	require.NoError(t, err)
	h3, err := core.New(core.WithWeightedEdge(ab, 1.01))
	require.NoError(t, err)

	require.True(t, h1.Equal(h2))
	require.False(t, h1.Equal(h3))
}
