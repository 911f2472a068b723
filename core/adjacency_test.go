package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquer/core"
)

// buildTriangleWithTail returns A–B–C–A plus the pendant edge C–D.
func buildTriangleWithTail(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"C", "D"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	return g
}

func TestIncidentEdges(t *testing.T) {
	g := buildTriangleWithTail(t)

	edges, err := g.IncidentEdges("C")
	require.NoError(t, err)
	require.Len(t, edges, 3)
	// Sorted by edge ID: e2 (B–C), e3 (C–A), e4 (C–D).
	assert.Equal(t, "e2", edges[0].ID)
	assert.Equal(t, "e3", edges[1].ID)
	assert.Equal(t, "e4", edges[2].ID)
}

func TestIncidentEdges_Errors(t *testing.T) {
	g := core.NewGraph()
	_, err := g.IncidentEdges("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.IncidentEdges("Z")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestIncidentEdges_SelfLoopOnce(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)

	edges, err := g.IncidentEdges("A")
	require.NoError(t, err)
	assert.Len(t, edges, 1, "a self-loop is incident once")
}

func TestNeighborIDs(t *testing.T) {
	g := buildTriangleWithTail(t)

	nbrs, err := g.NeighborIDs("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, nbrs)

	nbrs, err = g.NeighborIDs("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"C"}, nbrs)
}

func TestDegree(t *testing.T) {
	g := buildTriangleWithTail(t)

	deg, err := g.Degree("C")
	require.NoError(t, err)
	assert.Equal(t, 3, deg)

	deg, err = g.Degree("D")
	require.NoError(t, err)
	assert.Equal(t, 1, deg)
}

func TestDegree_SelfLoopCountsTwice(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)

	deg, err := g.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, deg)
}

func TestEdgeOpposite(t *testing.T) {
	e := &core.Edge{ID: "e1", From: "A", To: "B"}

	opp, err := e.Opposite("A")
	require.NoError(t, err)
	assert.Equal(t, "B", opp)

	opp, err = e.Opposite("B")
	require.NoError(t, err)
	assert.Equal(t, "A", opp)

	_, err = e.Opposite("C")
	assert.ErrorIs(t, err, core.ErrNotEndpoint)
}

func TestEdgeOpposite_SelfLoop(t *testing.T) {
	e := &core.Edge{ID: "e1", From: "A", To: "A"}
	opp, err := e.Opposite("A")
	require.NoError(t, err)
	assert.Equal(t, "A", opp)
}
