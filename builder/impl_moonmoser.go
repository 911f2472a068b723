package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquer/core"
)

const (
	methodMoonMoser = "MoonMoser"
	minMoonParts    = 1
	moonPartSize    = 3
)

// MoonMoser returns a Constructor that builds the Moon–Moser graph M_k
// (k ≥ 1): the complete k-partite graph with parts of size three. Vertex
// index i belongs to part i/3; vertices are adjacent iff their parts differ.
//
// M_k has 3k vertices and exactly 3^k maximal cliques (one vertex per part),
// the known worst case for maximal-clique enumeration. Use it to exercise
// time budgets and to benchmark the search.
// Complexity: O(k²) edges.
func MoonMoser(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minMoonParts {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodMoonMoser, k, minMoonParts, ErrTooFewVertices)
		}

		n := k * moonPartSize
		ids, err := addVertices(g, cfg, methodMoonMoser, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if i/moonPartSize == j/moonPartSize {
					continue // same part, no edge
				}
				if err = addEdge(g, methodMoonMoser, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
