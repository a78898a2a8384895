// SPDX-License-Identifier: MIT

// Package router precomputes shortest paths between every pair of vertices of a
// directed weighted graph and answers point-to-point route queries from the
// resulting tables.
//
// Overview:
//
//   - New runs single-source Dijkstra from every vertex of the graph. Each run
//     uses a binary heap with lazy decrease-key: improved distances are pushed
//     as fresh entries and stale entries are skipped when popped.
//   - For each (source, target) pair the router keeps the best weight and the
//     last edge of one shortest path. BuildRoute walks those "previous edge"
//     links back from the target to recover the full edge sequence.
//   - WithStrategy(StrategyFloydWarshall) swaps the repeated Dijkstra for the
//     dense k → i → j dynamic programme. It tracks the same "previous edge"
//     per cell, so BuildRoute is unchanged.
//   - Queries never touch the graph: the router snapshots every edge during
//     construction, so BuildRoute is a pure table walk.
//
// Determinism:
//
//   - Outgoing edges are relaxed in insertion order, and a distance is only
//     replaced by a strictly smaller one. Heap ties are broken by vertex id.
//     Rebuilding a router over the same graph therefore yields identical routes.
//
// Complexity:
//
//   - Build: O(V · (V + E) log V) time with Dijkstra, O(V³) with
//     Floyd–Warshall; O(V²) space for the tables either way.
//   - BuildRoute: O(k) where k is the number of edges in the returned route.
//
// Errors:
//
//   - ErrNegativeWeight if any edge has a negative (or NaN) weight.
//   - ctx.Err() wrapped with the failing source vertex when WithContext is
//     supplied and the context ends mid-build.
//
// An edge id that the graph reports as out of range during construction is a
// broken Graph implementation; New panics rather than build partial tables.
//
// Thread safety:
//
//   - A built Router is immutable. BuildRoute may be called from any number of
//     goroutines.
//
// Example:
//
//	g := core.NewDirectedWeightedGraph(3)
//	g.AddEdge(core.Edge{From: 0, To: 1, Weight: 2})
//	g.AddEdge(core.Edge{From: 1, To: 2, Weight: 3})
//	r, _ := router.New(g)
//	info, ok := r.BuildRoute(0, 2) // info.Weight == 5, info.Edges == [0 1]
package router
