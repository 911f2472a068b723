package clique_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquer/builder"
	"github.com/katalvlaran/cliquer/core"
)

// buildFixture materializes a single builder topology, failing the test on
// any construction error.
func buildFixture(t *testing.T, bopts []builder.Option, con builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, bopts, con)
	require.NoError(t, err)

	return g
}

// joined flattens cliques into canonical "a,b,c" strings for set comparison.
func joined(cliques [][]string) []string {
	out := make([]string, 0, len(cliques))
	for _, c := range cliques {
		out = append(out, strings.Join(c, ","))
	}

	return out
}

// isClique reports whether every pair of members is adjacent in g.
func isClique(g *core.Graph, members []string) bool {
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			if !g.HasEdge(members[i], members[j]) {
				return false
			}
		}
	}

	return true
}

// isMaximalClique reports whether members is a clique and no outside vertex
// of g is adjacent to every member.
func isMaximalClique(g *core.Graph, members []string) bool {
	if !isClique(g, members) {
		return false
	}

	inside := make(map[string]struct{}, len(members))
	for _, v := range members {
		inside[v] = struct{}{}
	}

outer:
	for _, w := range g.Vertices() {
		if _, ok := inside[w]; ok {
			continue
		}
		for _, v := range members {
			if !g.HasEdge(w, v) {
				continue outer
			}
		}

		return false // w extends the clique
	}

	return true
}

// bruteForceMaximalCliques enumerates every maximal clique of g by checking
// all 2^n vertex subsets. Only usable for small graphs (|V| ≤ 12 or so);
// the independent oracle the search results are verified against.
func bruteForceMaximalCliques(g *core.Graph) [][]string {
	vertices := g.Vertices()
	n := len(vertices)

	var out [][]string
	for mask := 1; mask < 1<<n; mask++ {
		var members []string // in sorted order, since vertices is sorted
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				members = append(members, vertices[i])
			}
		}
		if isMaximalClique(g, members) {
			out = append(out, members)
		}
	}

	return out
}
