// SPDX-License-Identifier: MIT
// Package core_test provides benchmarks for core.DirectedWeightedGraph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/transcat/core"
)

// BenchmarkAddEdge measures appending edges out of a single hub vertex.
func BenchmarkAddEdge(b *testing.B) {
	const vertices = 1000
	g := core.NewDirectedWeightedGraph(vertices)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.AddEdge(core.Edge{From: 0, To: i % vertices, Weight: float64(i)})
	}
}

// BenchmarkIncidentEdges measures iterating a star with 1000 leaves.
func BenchmarkIncidentEdges(b *testing.B) {
	const leaves = 1000
	g := core.NewDirectedWeightedGraph(leaves + 1)
	for i := 1; i <= leaves; i++ {
		_, _ = g.AddEdge(core.Edge{From: 0, To: i, Weight: 1})
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list, _ := g.IncidentEdges(0)
		for id := range list.All() {
			_ = id
		}
	}
}
