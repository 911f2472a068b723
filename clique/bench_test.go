package clique_test

import (
	"testing"

	"github.com/katalvlaran/cliquer/builder"
	"github.com/katalvlaran/cliquer/clique"
	"github.com/katalvlaran/cliquer/core"
)

// benchGraph builds a fixture or aborts the benchmark.
func benchGraph(b *testing.B, bopts []builder.Option, con builder.Constructor) *core.Graph {
	b.Helper()
	g, err := builder.BuildGraph(nil, bopts, con)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// BenchmarkPivot_MoonMoser6 enumerates the 3^6 = 729 maximal cliques of the
// 18-vertex Moon–Moser worst case.
func BenchmarkPivot_MoonMoser6(b *testing.B) {
	g := benchGraph(b, nil, builder.MoonMoser(6))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		f, err := clique.New(g)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = f.Cliques(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPivot_RandomSparse enumerates a moderately dense G(40, 0.3).
func BenchmarkPivot_RandomSparse(b *testing.B) {
	g := benchGraph(b, []builder.Option{builder.WithSeed(1)}, builder.RandomSparse(40, 0.3))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		f, err := clique.New(g)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = f.Cliques(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPivot_Complete enumerates K_32, a single huge clique reached with
// no branching at all.
func BenchmarkPivot_Complete(b *testing.B) {
	g := benchGraph(b, nil, builder.Complete(32))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		f, err := clique.New(g)
		if err != nil {
			b.Fatal(err)
		}
		if _, err = f.Cliques(); err != nil {
			b.Fatal(err)
		}
	}
}
