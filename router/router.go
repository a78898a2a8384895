// SPDX-License-Identifier: MIT
//
// File: router.go
// Role: Router construction, repeated-Dijkstra build and route reconstruction.
// Determinism:
//   - Fixed relaxation order (incidence insertion order), strict "<" improvement,
//     heap ties broken by vertex id.
// Concurrency:
//   - Built tables are read-only; BuildRoute is safe for concurrent use.

package router

import (
	"container/heap"
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/transcat/core"
)

// noEdge marks a table cell that has no previous edge (source itself or unreachable).
const noEdge core.EdgeID = -1

// routeData is one cell of the routing table.
type routeData struct {
	weight   float64
	prevEdge core.EdgeID
	reached  bool
}

// Router answers shortest-route queries over a graph snapshot.
type Router struct {
	graph Graph
	edges []core.Edge   // snapshot, indexed by EdgeID
	table [][]routeData // table[from][to]
}

// New validates g and precomputes shortest routes from every vertex.
//
// Returns ErrNilGraph for a nil graph and ErrNegativeWeight (wrapped with the
// offending edge) if any weight is negative or NaN. With WithContext, a
// cancelled context aborts the build between sources.
//
// Complexity: O(V · (V + E) log V) time, O(V² + E) space.
func New(g Graph, opts ...Option) (*Router, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	// Snapshot and pre-scan edges; fail fast on a negative weight.
	edgeCount := g.EdgeCount()
	edges := make([]core.Edge, edgeCount)
	for id := 0; id < edgeCount; id++ {
		e, err := g.Edge(id)
		if err != nil {
			panic(fmt.Sprintf("router: edge %d reported by EdgeCount is unreadable: %v", id, err))
		}
		if e.Weight < 0 || math.IsNaN(e.Weight) {
			return nil, fmt.Errorf("%w: edge %d (%d→%d) weight=%g", ErrNegativeWeight, id, e.From, e.To, e.Weight)
		}
		edges[id] = e
	}

	r := &Router{
		graph: g,
		edges: edges,
		table: make([][]routeData, g.VertexCount()),
	}

	var err error
	switch cfg.Strategy {
	case StrategyFloydWarshall:
		err = r.buildFloydWarshall(cfg.Context)
	default:
		err = r.buildDijkstra(cfg.Context)
	}
	if err != nil {
		return nil, err
	}

	return r, nil
}

// buildDijkstra fills the table one source row at a time.
func (r *Router) buildDijkstra(ctx context.Context) error {
	run := newRunner(r)
	for src := range r.table {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("router: build aborted before source %d: %w", src, err)
		}
		r.table[src] = run.shortestFrom(src)
	}

	return nil
}

// Graph returns the graph the router was built over.
func (r *Router) Graph() Graph { return r.graph }

// BuildRoute returns the shortest route from → to.
//
// The second result is false when either vertex is outside the graph or to is
// unreachable from from. A route from a vertex to itself has zero weight and
// no edges.
// Complexity: O(k) for a route of k edges.
func (r *Router) BuildRoute(from, to core.VertexID) (RouteInfo, bool) {
	if from < 0 || from >= len(r.table) || to < 0 || to >= len(r.table) {
		return RouteInfo{}, false
	}
	cell := r.table[from][to]
	if !cell.reached {
		return RouteInfo{}, false
	}

	path := make([]core.EdgeID, 0)
	for id := cell.prevEdge; id != noEdge; {
		path = append(path, id)
		id = r.table[from][r.edges[id].From].prevEdge
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return RouteInfo{Weight: cell.weight, Edges: path}, true
}

// runner holds the scratch state reused across single-source runs.
type runner struct {
	r       *Router
	visited []bool
	pq      nodePQ
}

func newRunner(r *Router) *runner {
	n := len(r.table)

	return &runner{
		r:       r,
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
}

// shortestFrom runs Dijkstra from src and returns the finished table row.
func (run *runner) shortestFrom(src core.VertexID) []routeData {
	row := make([]routeData, len(run.r.table))
	for v := range row {
		row[v] = routeData{weight: math.Inf(1), prevEdge: noEdge}
		run.visited[v] = false
	}
	row[src] = routeData{weight: 0, prevEdge: noEdge, reached: true}

	run.pq = run.pq[:0]
	heap.Push(&run.pq, &nodeItem{id: src, dist: 0})

	for run.pq.Len() > 0 {
		item := heap.Pop(&run.pq).(*nodeItem)
		u := item.id
		if run.visited[u] {
			continue // stale entry
		}
		run.visited[u] = true
		run.relax(row, u)
	}

	return row
}

// relax tries to improve every neighbour of the finalized vertex u.
func (run *runner) relax(row []routeData, u core.VertexID) {
	list, err := run.r.graph.IncidentEdges(u)
	if err != nil {
		panic(fmt.Sprintf("router: incidence of vertex %d unreadable: %v", u, err))
	}
	for id := range list.All() {
		if id < 0 || id >= len(run.r.edges) {
			panic(fmt.Sprintf("router: vertex %d lists edge %d outside the snapshot of %d edges", u, id, len(run.r.edges)))
		}
		e := run.r.edges[id]
		candidate := row[u].weight + e.Weight
		if candidate >= row[e.To].weight {
			continue
		}
		row[e.To] = routeData{weight: candidate, prevEdge: id, reached: true}
		heap.Push(&run.pq, &nodeItem{id: e.To, dist: candidate})
	}
}
