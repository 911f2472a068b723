package builder_test

import (
	"fmt"

	"github.com/katalvlaran/cliquer/builder"
	"github.com/katalvlaran/cliquer/clique"
)

// ExampleMoonMoser builds the Moon–Moser worst case M_2 and counts its
// maximal cliques: one vertex per part, 3^2 = 9 in total.
func ExampleMoonMoser() {
	g, err := builder.BuildGraph(nil, nil, builder.MoonMoser(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	f, _ := clique.New(g)
	all, _ := f.Cliques()

	fmt.Println(g.VertexCount(), "vertices")
	fmt.Println(len(all), "maximal cliques")
	// Output:
	// 6 vertices
	// 9 maximal cliques
}

// ExampleComplete builds K_4, whose only maximal clique is the whole graph.
func ExampleComplete() {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(4))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	f, _ := clique.New(g)
	all, _ := f.Cliques()

	fmt.Println(all)
	// Output:
	// [[0 1 2 3]]
}
