// SPDX-License-Identifier: MIT

package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/transcat/core"
)

// Sentinel errors returned by the router.
var (
	// ErrNegativeWeight indicates that an edge with a negative or NaN weight
	// was found while scanning the graph.
	ErrNegativeWeight = errors.New("router: negative edge weight encountered")

	// ErrNilGraph indicates that New was called without a graph.
	ErrNilGraph = errors.New("router: graph is nil")
)

// Graph is the read-only view of a directed weighted graph the router needs.
// *core.DirectedWeightedGraph satisfies it.
type Graph interface {
	VertexCount() int
	EdgeCount() int
	Edge(id core.EdgeID) (core.Edge, error)
	IncidentEdges(v core.VertexID) (core.IncidenceList, error)
}

// RouteInfo describes one shortest route.
//
// Weight is the sum of the edge weights. Edges lists the edge ids in travel
// order; it is empty when the route starts and ends at the same vertex.
type RouteInfo struct {
	Weight float64
	Edges  []core.EdgeID
}

// Strategy selects the all-pairs algorithm New uses.
type Strategy int

const (
	// StrategyDijkstra runs Dijkstra from every vertex. Best for sparse graphs.
	StrategyDijkstra Strategy = iota

	// StrategyFloydWarshall runs the k → i → j dynamic programme over a dense
	// table. O(V³) regardless of edge count; wins when E approaches V².
	StrategyFloydWarshall
)

// Options configures router construction.
//
// Context  - checked between single-source runs (or between intermediate
// vertices for Floyd–Warshall); a cancelled context aborts the build.
// Strategy - all-pairs algorithm; both produce the same minimum weights.
type Options struct {
	Context  context.Context
	Strategy Strategy
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithContext makes construction abort once ctx is done.
// Panics on a nil context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			panic("router: WithContext requires a non-nil context")
		}
		o.Context = ctx
	}
}

// WithStrategy selects the all-pairs algorithm. Panics on an unknown value.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != StrategyDijkstra && s != StrategyFloydWarshall {
			panic(fmt.Sprintf("router: unknown strategy %d", s))
		}
		o.Strategy = s
	}
}

// DefaultOptions returns the options used when New receives none.
//
// Defaults:
//   - Context:  context.Background() (never cancelled).
//   - Strategy: StrategyDijkstra.
func DefaultOptions() Options {
	return Options{Context: context.Background(), Strategy: StrategyDijkstra}
}
