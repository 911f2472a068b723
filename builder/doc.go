// Package builder assembles deterministic core.Graph fixtures for tests,
// benchmarks, and the cliquer CLI.
//
// What:
//
//   - BuildGraph(gopts, bopts, cons...): the single orchestrator. Creates a
//     graph with the given core options, resolves the builder configuration,
//     and applies each Constructor in order.
//   - Topology constructors: Complete, Cycle, Path, Star, Wheel,
//     RandomSparse, MoonMoser.
//
// MoonMoser(k) deserves a note: it is the complete k-partite graph with
// parts of size three, the Moon–Moser worst case for maximal-clique
// enumeration. It has 3k vertices and exactly 3^k maximal cliques, which
// makes it the fixture of choice for clique benchmarks and time-budget
// tests.
//
// Determinism:
//
//	Same inputs, options, seed, and constructor order produce identical
//	graphs. Vertex IDs come from the configured ID scheme ("0","1",... by
//	default) and edges are emitted in a stable documented order.
//
// Errors:
//
//   - ErrTooFewVertices     parameter below the constructor's minimum
//   - ErrInvalidProbability probability outside [0,1]
//   - ErrNeedRandSource     stochastic constructor without WithSeed/WithRand
//   - ErrConstructFailed    nil constructor passed to BuildGraph
//
// Constructors never panic; they validate early and return sentinel errors
// wrapped with method context, so callers branch with errors.Is.
package builder
