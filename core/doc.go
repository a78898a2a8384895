// SPDX-License-Identifier: MIT

// Package core provides the directed weighted multigraph the routing layer is
// built on.
//
// The graph G = (V, E) has a fixed vertex count chosen at construction time.
// Vertices are dense integer handles 0..N-1; edges are appended and receive
// sequential EdgeID values that are never reused:
//
//	g := core.NewDirectedWeightedGraph(3)
//	id, err := g.AddEdge(core.Edge{From: 0, To: 2, Weight: 4.5}) // id == 0
//
// Storage:
//
//   - edges []Edge: edge catalog indexed by EdgeID.
//   - incidence [][]EdgeID: outgoing edge ids per vertex, insertion order.
//
// Parallel edges and self-loops are allowed (a bus network routinely has
// several lines between the same two stops).
//
// Core Methods:
//
//	AddEdge(e Edge) (EdgeID, error)                 // O(1) amortized
//	Edge(id EdgeID) (Edge, error)                   // O(1)
//	IncidentEdges(v VertexID) (IncidenceList, error) // O(1), read-only view
//	VertexCount() int                               // O(1)
//	EdgeCount() int                                 // O(1)
//
// Errors:
//
//	ErrOutOfRange      – vertex or edge id outside the graph
//	ErrNegativeWeight  – negative or NaN edge weight
//
// An ErrOutOfRange always means the caller computed a bad id; it is returned
// rather than panicking so the caller decides how loudly to fail.
//
// Concurrency:
//
// Mutations take a write lock, queries a read lock. An IncidenceList is a
// snapshot of the list at call time; edges added later are not visible
// through it.
package core
