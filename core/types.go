// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: VertexID, EdgeID, Edge, DirectedWeightedGraph, sentinel errors and the constructor.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrOutOfRange indicates a vertex or edge id that does not exist in the graph.
	ErrOutOfRange = errors.New("core: id out of range")

	// ErrNegativeWeight indicates an edge weight below zero (or NaN).
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// VertexID is a dense vertex handle in [0, VertexCount()).
type VertexID = int

// EdgeID is a dense edge handle in [0, EdgeCount()), assigned at insertion.
type EdgeID = int

// Edge is a directed weighted connection From→To.
type Edge struct {
	// From is the source vertex.
	From VertexID

	// To is the destination vertex.
	To VertexID

	// Weight is the non-negative cost of traversing the edge.
	Weight float64
}

// DirectedWeightedGraph is an append-only directed multigraph over a fixed
// vertex set.
//
// mu guards edges and incidence.
type DirectedWeightedGraph struct {
	mu sync.RWMutex

	edges     []Edge     // EdgeID → Edge
	incidence [][]EdgeID // VertexID → outgoing EdgeIDs, insertion order
}

// NewDirectedWeightedGraph creates a graph with vertexCount isolated vertices.
// A negative count is treated as zero.
// Complexity: O(V).
func NewDirectedWeightedGraph(vertexCount int) *DirectedWeightedGraph {
	if vertexCount < 0 {
		vertexCount = 0
	}

	return &DirectedWeightedGraph{
		incidence: make([][]EdgeID, vertexCount),
	}
}
