package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/graphtrace/builder"
	"github.com/katalvlaran/graphtrace/dijkstra"
)

// BenchmarkDijkstra_Sparse500 runs on a seeded 500-node sparse graph.
func BenchmarkDijkstra_Sparse500(b *testing.B) {
	g, err := builder.BuildGraph(500, []builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithWeightFn(builder.UniformWeightFn(1, 1000)),
	}, builder.RandomSparse(0.02))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = dijkstra.Dijkstra(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
