package clique_test

import (
	"fmt"

	"github.com/katalvlaran/cliquer/clique"
	"github.com/katalvlaran/cliquer/core"
)

// ExampleFinder enumerates the maximal cliques of a 4-cycle.
// Every edge is maximal: no triangle exists to absorb it.
//
//	    1───2
//	    │   │
//	    4───3
func ExampleFinder() {
	g := core.NewGraph()
	g.AddEdge("1", "2", 0)
	g.AddEdge("2", "3", 0)
	g.AddEdge("3", "4", 0)
	g.AddEdge("4", "1", 0)

	f, _ := clique.New(g)
	all, _ := f.Cliques()
	size, _ := f.MaxSize()

	fmt.Println(all)
	fmt.Println(size)
	// Output:
	// [[1 2] [1 4] [2 3] [3 4]]
	// 2
}

// ExampleFinder_MaximumCliques keeps only the largest cliques: the triangle
// A-B-C wins over the pendant edge C-D.
func ExampleFinder_MaximumCliques() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 0)
	g.AddEdge("B", "C", 0)
	g.AddEdge("C", "A", 0)
	g.AddEdge("C", "D", 0)

	f, _ := clique.New(g)
	maxes, _ := f.MaximumCliques()

	fmt.Println(maxes)
	// Output:
	// [[A B C]]
}
