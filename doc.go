// Package cliquer enumerates the maximal cliques of undirected simple
// graphs using Bron–Kerbosch backtracking with Tomita pivoting, under an
// optional wall-clock time budget.
//
// 🚀 What is cliquer?
//
//	A small, deterministic library plus CLI built from three pieces:
//		• core/    — undirected Graph primitives (vertices, edges, adjacency)
//		• clique/  — the maximal-clique Finder (pivoted search, timeout, views)
//		• builder/ — deterministic graph fixtures (Complete, Cycle, MoonMoser, …)
//
// ✨ Why choose cliquer?
//
//   - Deterministic output – cliques and vertex orders are sorted, so runs
//     are reproducible across machines and map iteration orders
//   - Time-budgeted – hand the Finder a budget; everything discovered before
//     the deadline stays valid
//   - Worst-case optimal search – the pivoting rule bounds branching at
//     O(3^(n/3)), which is tight for maximal-clique enumeration
//
// Quick ASCII example (a 4-cycle has four maximal cliques, all edges):
//
//	    1───2
//	    │   │
//	    4───3
//
//	g := core.NewGraph()
//	g.AddEdge("1", "2", 0)
//	g.AddEdge("2", "3", 0)
//	g.AddEdge("3", "4", 0)
//	g.AddEdge("4", "1", 0)
//	f, _ := clique.New(g)
//	all, _ := f.Cliques() // [[1 2] [1 4] [2 3] [3 4]]
//
// The cliquer command under cmd/cliquer exposes the same search over
// whitespace-separated edge lists; see `cliquer find --help`.
package cliquer
