// SPDX-License-Identifier: MIT

package router_test

import (
	"testing"

	"github.com/katalvlaran/transcat/core"
	"github.com/katalvlaran/transcat/router"
)

// BenchmarkNew builds tables for a ring of 200 vertices with chords.
func BenchmarkNew(b *testing.B) {
	const n = 200
	g := core.NewDirectedWeightedGraph(n)
	for v := 0; v < n; v++ {
		_, _ = g.AddEdge(core.Edge{From: v, To: (v + 1) % n, Weight: 1})
		_, _ = g.AddEdge(core.Edge{From: v, To: (v + 7) % n, Weight: 5})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := router.New(g); err != nil {
			b.Fatal(err)
		}
	}
}
