package builder

import (
	"fmt"

	"github.com/katalvlaran/cliquer/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 1
	minProbability     = 0.0
	maxProbability     = 1.0
)

// RandomSparse returns a Constructor that builds a G(n,p) Erdős–Rényi graph
// (n ≥ 1, 0 ≤ p ≤ 1): each unordered pair {i,j}, i<j, receives an edge
// independently with probability p. Requires an RNG (WithSeed or WithRand);
// for a fixed seed the emitted topology is reproducible.
// Complexity: O(n²) pair draws.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < minProbability || p > maxProbability {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}
		// Draw pairs in lexicographic (i,j) order so a fixed seed yields a
		// fixed topology.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					if err = addEdge(g, methodRandomSparse, ids[i], ids[j]); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
