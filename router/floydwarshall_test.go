// SPDX-License-Identifier: MIT

package router_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transcat/core"
	"github.com/katalvlaran/transcat/router"
)

// randomGraph builds a reproducible graph with n vertices and m edges.
func randomGraph(t testing.TB, seed int64, n, m int) *core.DirectedWeightedGraph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g := core.NewDirectedWeightedGraph(n)
	for i := 0; i < m; i++ {
		_, err := g.AddEdge(core.Edge{
			From:   rng.Intn(n),
			To:     rng.Intn(n),
			Weight: float64(rng.Intn(50)) + rng.Float64(),
		})
		require.NoError(t, err)
	}

	return g
}

func TestFloydWarshall_MatchesDijkstra(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := randomGraph(t, seed, 30, 120)

		dj, err := router.New(g)
		require.NoError(t, err)
		fw, err := router.New(g, router.WithStrategy(router.StrategyFloydWarshall))
		require.NoError(t, err)

		for from := 0; from < 30; from++ {
			for to := 0; to < 30; to++ {
				want, okWant := dj.BuildRoute(from, to)
				got, okGot := fw.BuildRoute(from, to)
				require.Equal(t, okWant, okGot, "seed %d: %d→%d reachability", seed, from, to)
				if !okGot {
					continue
				}
				assert.InDelta(t, want.Weight, got.Weight, 1e-9, "seed %d: %d→%d", seed, from, to)

				// the reconstructed path is a real chain with the reported weight
				at, sum := from, 0.0
				for _, id := range got.Edges {
					e, err := g.Edge(id)
					require.NoError(t, err)
					require.Equal(t, at, e.From)
					at = e.To
					sum += e.Weight
				}
				assert.Equal(t, to, at)
				assert.InDelta(t, got.Weight, sum, 1e-9)
			}
		}
	}
}

func TestFloydWarshall_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := router.New(randomGraph(t, 1, 4, 4),
		router.WithStrategy(router.StrategyFloydWarshall), router.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestWithStrategy_UnknownPanics(t *testing.T) {
	g := core.NewDirectedWeightedGraph(1)
	assert.Panics(t, func() { _, _ = router.New(g, router.WithStrategy(router.Strategy(42))) })
}

// BenchmarkNew_FloydWarshall is the dense counterpart of BenchmarkNew.
func BenchmarkNew_FloydWarshall(b *testing.B) {
	g := randomGraph(b, 7, 200, 400)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := router.New(g, router.WithStrategy(router.StrategyFloydWarshall)); err != nil {
			b.Fatal(err)
		}
	}
}
