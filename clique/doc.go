// Package clique enumerates all maximal cliques of an undirected simple
// core.Graph using Bron–Kerbosch backtracking with the Tomita pivoting
// rule, optionally bounded by a wall-clock time budget.
//
// What:
//
//   - Finder: lazily runs the search exactly once per instance, memoizes
//     the result collection, and exposes it through Cliques (all maximal
//     cliques), MaximumCliques (largest ones only), and MaxSize.
//   - Pivot: the reference Strategy. At each node it picks the vertex of
//     P ∪ X with the most neighbors inside P and branches only on
//     P \ N(pivot), which preserves completeness while bounding the
//     branching factor (Tomita, Tanaka, Takahashi 2006).
//   - Time budget: WithTimeout sets a wall-clock budget; the deadline is
//     checked at every recursion entry. Cliques recorded before the cutoff
//     remain valid output, and TimeLimitReached reports the sticky flag.
//
// Why:
//   - Community and cohesive-subgroup detection in social or biological networks
//   - Finding maximum cliques (take MaximumCliques of a completed run)
//   - Bounded-effort enumeration on graphs too large to finish exhaustively
//
// Determinism:
//
//	Vertex enumeration, candidate iteration, and pivot tie-breaking all run
//	in lexicographic vertex order, so the emitted clique sequence is
//	reproducible run to run. Each emitted clique is itself sorted.
//
// Complexity:
//
//   - Time: O(3^(n/3)) worst case excluding output writing, which is tight
//     for maximal-clique enumeration; recursion depth is bounded by |V|.
//   - Memory: O(V²) for the adjacency snapshot plus O(V) per recursion level.
//
// Errors:
//
//   - ErrNilGraph        nil graph passed to New
//   - ErrInvalidTimeout  negative timeout (zero means unbounded)
//   - ErrNotSimple       graph with self-loops or parallel edges, reported
//     on first enumeration before any search state is built
//
// Concurrency:
//
//	A Finder is synchronous and single-threaded: the whole search runs to
//	completion or timeout inside the first accessor call. A Finder must not
//	be used from multiple goroutines while that run is active.
package clique
