package clique_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquer/builder"
	"github.com/katalvlaran/cliquer/clique"
	"github.com/katalvlaran/cliquer/core"
)

// countingStrategy wraps another Strategy and counts Run invocations.
type countingStrategy struct {
	inner clique.Strategy
	runs  int
}

func (s *countingStrategy) Run(adj clique.Adjacency, deadline time.Time, emit func([]string)) bool {
	s.runs++

	return s.inner.Run(adj, deadline, emit)
}

func TestNew_NilGraph(t *testing.T) {
	f, err := clique.New(nil)
	assert.Nil(t, f)
	assert.ErrorIs(t, err, clique.ErrNilGraph)
}

func TestNew_NegativeTimeout(t *testing.T) {
	f, err := clique.New(core.NewGraph(), clique.WithTimeout(-time.Second))
	assert.Nil(t, f)
	assert.ErrorIs(t, err, clique.ErrInvalidTimeout)
}

func TestNew_ZeroTimeoutMeansUnbounded(t *testing.T) {
	f, err := clique.New(core.NewGraph(), clique.WithTimeout(0))
	require.NoError(t, err)
	assert.NotNil(t, f)
}

func TestCliques_SelfLoopRejected(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)

	f, err := clique.New(g)
	require.NoError(t, err, "simplicity is validated on first enumeration, not at construction")

	_, err = f.Cliques()
	assert.ErrorIs(t, err, clique.ErrNotSimple)
	_, err = f.MaximumCliques()
	assert.ErrorIs(t, err, clique.ErrNotSimple)
	_, err = f.MaxSize()
	assert.ErrorIs(t, err, clique.ErrNotSimple)
}

func TestCliques_ParallelEdgeRejected(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)

	f, err := clique.New(g)
	require.NoError(t, err)

	_, err = f.Cliques()
	assert.ErrorIs(t, err, clique.ErrNotSimple)
}

func TestCliques_EmptyGraph(t *testing.T) {
	f, err := clique.New(core.NewGraph())
	require.NoError(t, err)

	all, err := f.Cliques()
	require.NoError(t, err)
	assert.Empty(t, all)

	maxes, err := f.MaximumCliques()
	require.NoError(t, err)
	assert.Empty(t, maxes)

	size, err := f.MaxSize()
	require.NoError(t, err)
	assert.Equal(t, 0, size)
	assert.False(t, f.TimeLimitReached())
}

func TestCliques_RunsSearchExactlyOnce(t *testing.T) {
	g := buildFixture(t, nil, builder.Complete(4))
	strategy := &countingStrategy{inner: clique.Pivot{}}

	f, err := clique.New(g, clique.WithStrategy(strategy))
	require.NoError(t, err)

	first, err := f.Cliques()
	require.NoError(t, err)
	second, err := f.Cliques()
	require.NoError(t, err)
	maxes, err := f.MaximumCliques()
	require.NoError(t, err)
	_, err = f.MaxSize()
	require.NoError(t, err)

	assert.Equal(t, 1, strategy.runs, "search must run exactly once per Finder")
	assert.Equal(t, first, second)
	assert.Equal(t, first, maxes, "K4 has a single clique, which is also maximum")
}

func TestCliques_ReturnsFreshOuterSlice(t *testing.T) {
	g := buildFixture(t, nil, builder.Cycle(4))
	f, err := clique.New(g)
	require.NoError(t, err)

	first, err := f.Cliques()
	require.NoError(t, err)
	require.Len(t, first, 4)

	// Reorder the caller's view; the memoized collection must be unaffected.
	first[0], first[3] = first[3], first[0]

	second, err := f.Cliques()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.ElementsMatch(t, joined(first), joined(second))
}

func TestCliques_TimeLimit(t *testing.T) {
	// Moon–Moser M_8: 24 vertices, 3^8 = 6561 maximal cliques. A nanosecond
	// budget expires before the first branch is explored.
	g := buildFixture(t, nil, builder.MoonMoser(8))

	f, err := clique.New(g, clique.WithTimeout(time.Nanosecond))
	require.NoError(t, err)

	all, err := f.Cliques()
	require.NoError(t, err)
	assert.True(t, f.TimeLimitReached())
	assert.Less(t, len(all), 6561, "the cutoff must abandon part of the search space")

	// Whatever was emitted before the cutoff is still a valid maximal clique.
	for _, c := range all {
		assert.True(t, isMaximalClique(g, c), "partial output contains non-maximal set %v", c)
	}

	// The flag is sticky and the collection memoized.
	again, err := f.Cliques()
	require.NoError(t, err)
	assert.Equal(t, joined(all), joined(again))
	assert.True(t, f.TimeLimitReached())
}

func TestCliques_GenerousTimeoutCompletes(t *testing.T) {
	g := buildFixture(t, nil, builder.Complete(4))

	f, err := clique.New(g, clique.WithTimeout(time.Minute))
	require.NoError(t, err)

	all, err := f.Cliques()
	require.NoError(t, err)
	assert.False(t, f.TimeLimitReached())
	assert.Len(t, all, 1)
}
