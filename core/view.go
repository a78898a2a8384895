// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Read-only vertex views: VertexCount, IncidentEdges and the IncidenceList type.
// Determinism:
//   - IncidenceList preserves insertion order.
// Concurrency:
//   - Views are snapshots taken under the read lock; they never observe later appends.

package core

import (
	"fmt"
	"iter"
)

// IncidenceList is a read-only, restartable view over the outgoing edge ids of
// one vertex.
type IncidenceList struct {
	ids []EdgeID
}

// Len returns the number of outgoing edges in the view.
func (l IncidenceList) Len() int { return len(l.ids) }

// At returns the i-th outgoing edge id. It panics if i is out of range, like
// a slice index.
func (l IncidenceList) At(i int) EdgeID { return l.ids[i] }

// All yields the edge ids in insertion order. Each call starts a fresh pass.
func (l IncidenceList) All() iter.Seq[EdgeID] {
	return func(yield func(EdgeID) bool) {
		for _, id := range l.ids {
			if !yield(id) {
				return
			}
		}
	}
}

// VertexCount returns the fixed number of vertices.
// Complexity: O(1).
func (g *DirectedWeightedGraph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.incidence)
}

// IncidentEdges returns the outgoing edges of v.
//
// The returned view shares storage with the graph and is capped at the
// current length; later appends land past its end.
// Complexity: O(1).
func (g *DirectedWeightedGraph) IncidentEdges(v VertexID) (IncidenceList, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasVertex(v) {
		return IncidenceList{}, fmt.Errorf("%w: vertex %d (vertex count %d)", ErrOutOfRange, v, len(g.incidence))
	}
	ids := g.incidence[v]

	return IncidenceList{ids: ids[:len(ids):len(ids)]}, nil
}
