// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/Edge/Edges/EdgeCount.
// Determinism:
//   - EdgeIDs are sequential from 0 and never reused.
//   - Edges() yields edges in EdgeID order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"iter"
	"math"
)

// AddEdge appends e to the graph and returns its id.
//
// Steps:
//  1. Validate the weight (ErrNegativeWeight for < 0 or NaN).
//  2. Lock, validate both endpoints (ErrOutOfRange).
//  3. Assign id = len(edges), append to the catalog and to incidence[e.From].
//
// Complexity: O(1) amortized.
func (g *DirectedWeightedGraph) AddEdge(e Edge) (EdgeID, error) {
	if e.Weight < 0 || math.IsNaN(e.Weight) {
		return 0, fmt.Errorf("%w: %d→%d weight=%g", ErrNegativeWeight, e.From, e.To, e.Weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasVertex(e.From) {
		return 0, fmt.Errorf("%w: edge source vertex %d (vertex count %d)", ErrOutOfRange, e.From, len(g.incidence))
	}
	if !g.hasVertex(e.To) {
		return 0, fmt.Errorf("%w: edge target vertex %d (vertex count %d)", ErrOutOfRange, e.To, len(g.incidence))
	}

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, e)
	g.incidence[e.From] = append(g.incidence[e.From], id)

	return id, nil
}

// Edge returns the edge with the given id.
// Complexity: O(1).
func (g *DirectedWeightedGraph) Edge(id EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.edges) {
		return Edge{}, fmt.Errorf("%w: edge %d (edge count %d)", ErrOutOfRange, id, len(g.edges))
	}

	return g.edges[id], nil
}

// Edges yields every edge in EdgeID order. The sequence covers the edges
// present when iteration starts.
func (g *DirectedWeightedGraph) Edges() iter.Seq2[EdgeID, Edge] {
	g.mu.RLock()
	snapshot := g.edges[:len(g.edges):len(g.edges)]
	g.mu.RUnlock()

	return func(yield func(EdgeID, Edge) bool) {
		for id, e := range snapshot {
			if !yield(id, e) {
				return
			}
		}
	}
}

// EdgeCount returns the number of edges added so far.
// Complexity: O(1).
func (g *DirectedWeightedGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// hasVertex reports whether v is a valid vertex. Caller holds mu.
func (g *DirectedWeightedGraph) hasVertex(v VertexID) bool {
	return v >= 0 && v < len(g.incidence)
}
