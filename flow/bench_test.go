package flow_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/seamcut/flow"
)

// BenchmarkEdmondsKarp measures the solver with both path-search strategies
// on random networks of increasing size. The network is built once per case
// and Reset between iterations to isolate algorithmic cost.
func BenchmarkEdmondsKarp(b *testing.B) {
	cases := []struct {
		name     string
		vertices int
		edgeProb float64
		maxCap   int64
		seed     int64
	}{
		{"Small", 200, 0.05, 10, 42},
		{"Medium", 500, 0.02, 20, 4242},
		{"Large", 1000, 0.01, 50, 424242},
	}

	for _, tc := range cases {
		tc := tc
		b.Run(tc.name, func(b *testing.B) {
			g := randomNetwork(b, tc.vertices, tc.edgeProb, tc.maxCap, tc.seed)
			dst := tc.vertices - 1
			ctx := context.Background()

			b.Run("BFS", func(b *testing.B) {
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					g.Reset()
					_, _ = flow.EdmondsKarp(ctx, g, 0, dst)
				}
			})

			b.Run("Concurrent", func(b *testing.B) {
				cs, err := flow.NewConcurrentSearch(flow.DefaultSearchConfig())
				if err != nil {
					b.Fatal(err)
				}
				defer cs.Close()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					g.Reset()
					_, _ = flow.EdmondsKarp(ctx, g, 0, dst, flow.WithPathFinder(cs))
				}
			})
		})
	}
}
