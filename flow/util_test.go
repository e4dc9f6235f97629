package flow_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seamcut/flow"
)

func mustGraph(t testing.TB, n int) *flow.ResidualGraph {
	t.Helper()
	g, err := flow.NewResidualGraph(n)
	require.NoError(t, err)

	return g
}

func mustEdge(t testing.TB, g *flow.ResidualGraph, from, to int, c int64) flow.EdgeID {
	t.Helper()
	id, err := g.AddEdge(from, to, c)
	require.NoError(t, err)

	return id
}

// randomNetwork builds a directed network with n nodes where every ordered
// pair u→v (u != v) gets an edge with probability p and a capacity uniform in
// [1, maxCap]. The seed makes fixtures reproducible.
func randomNetwork(t testing.TB, n int, p float64, maxCap int64, seed int64) *flow.ResidualGraph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := mustGraph(t, n)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v {
				continue
			}
			if r.Float64() < p {
				mustEdge(t, g, u, v, r.Int63n(maxCap)+1)
			}
		}
	}

	return g
}
