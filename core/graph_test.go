// Package core_test contains unit tests for the 2-uniform Graph
// specialization.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/setgraph/hyperg/core"
)

func TestNewGraph_RejectsWrongArity(t *testing.T) {
	_, err := core.NewGraph(core.WithEdges(mustEdge(t, "a", "b", "c")))
	require.ErrorIs(t, err, core.ErrNotBinary)

	_, err = core.NewGraph(core.WithEdges(mustEdge(t, "a")))
	require.ErrorIs(t, err, core.ErrNotBinary)
}

func TestGraph_AddEdgeEnforcesArity(t *testing.T) {
	g, err := core.NewGraph[string]()
	require.NoError(t, err)

	require.ErrorIs(t, g.AddEdge(mustEdge(t, "a", "b", "c"), 1), core.ErrNotBinary)
	require.Zero(t, g.Size())
	require.NoError(t, g.AddEdge(mustEdge(t, "a", "b"), 1))
	require.Equal(t, 1, g.Size())
}

func TestGraph_Uniform(t *testing.T) {
	g, err := core.NewGraph(core.WithEdges(mustEdge(t, "a", "b")))
	require.NoError(t, err)
	require.True(t, g.Uniform())
	require.True(t, g.Uniform(2))
	require.False(t, g.Uniform(3))
}

func TestGraph_CloneIsGraph(t *testing.T) {
	g, err := core.NewGraph(core.WithEdges(mustEdge(t, "a", "b")))
	require.NoError(t, err)
	clone := g.Clone()

	// Arity stays enforced on the clone.
	require.ErrorIs(t, clone.AddEdge(mustEdge(t, "x", "y", "z"), 1), core.ErrNotBinary)
	require.True(t, g.Hyper().Equal(clone.Hyper()))
}
