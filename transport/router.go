// SPDX-License-Identifier: MIT
//
// File: router.go
// Role: Transport Router: settings, one-shot graph build, route queries with LRU memoization.
// Determinism:
//   - Buses are processed in table order and edges inserted i-major, j-minor,
//     so edge ids and chosen routes are identical across builds.
// Concurrency:
//   - mu guards the state transition and settings; a built network is
//     read-only and FindRoute may run from many goroutines.

package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bluele/gcache"

	"github.com/katalvlaran/transcat/catalogue"
	"github.com/katalvlaran/transcat/core"
	"github.com/katalvlaran/transcat/router"
)

// network is everything Build produces. It is never mutated afterwards.
type network struct {
	graph  *core.DirectedWeightedGraph
	router *router.Router
	mapper *IndexMapper
	items  []RoutingItemInfo // indexed by EdgeID
}

// cached is a memoized FindRoute outcome.
type cached struct {
	itinerary *Itinerary
	err       error
}

// Router builds the transport graph over a catalogue and answers route queries.
type Router struct {
	mu       sync.Mutex
	db       Catalogue
	logger   *slog.Logger
	settings Settings
	strategy router.Strategy
	net      *network
	cache    gcache.Cache // nil when disabled
}

// New returns an unbuilt Router over db with DefaultSettings.
// A nil logger discards output.
func New(db Catalogue, logger *slog.Logger, opts ...Option) *Router {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	r := &Router{
		db:       db,
		logger:   logger,
		settings: DefaultSettings(),
		strategy: cfg.Strategy,
	}
	if cfg.CacheSize > 0 {
		r.cache = gcache.New(cfg.CacheSize).LRU().Build()
	}

	return r
}

// SetWaitTime sets the boarding wait in minutes.
func (r *Router) SetWaitTime(minutes float64) error {
	return r.update(func(s *Settings) { s.BusWaitTime = minutes })
}

// SetVelocity sets the bus speed in km/h.
func (r *Router) SetVelocity(kmh float64) error {
	return r.update(func(s *Settings) { s.BusVelocity = kmh })
}

// SetSettings replaces both settings at once.
func (r *Router) SetSettings(s Settings) error {
	return r.update(func(dst *Settings) { *dst = s })
}

func (r *Router) update(apply func(*Settings)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.net != nil {
		return fmt.Errorf("%w: settings are frozen after build", ErrInvalidState)
	}
	next := r.settings
	apply(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	r.settings = next

	return nil
}

// Settings returns the current settings.
func (r *Router) Settings() Settings {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.settings
}

// Build constructs the graph and the shortest-path tables. It may run once.
// ctx cancels the shortest-path precomputation.
func (r *Router) Build(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.net != nil {
		return fmt.Errorf("%w: already built", ErrInvalidState)
	}

	start := time.Now()
	mapper := NewIndexMapper(r.db.Stops())
	net := &network{
		graph:  core.NewDirectedWeightedGraph(mapper.Len()),
		mapper: mapper,
	}
	for _, bus := range r.db.Buses() {
		if err := r.addBusEdges(net, bus); err != nil {
			return err
		}
	}

	rt, err := router.New(net.graph, router.WithContext(ctx), router.WithStrategy(r.strategy))
	if err != nil {
		return fmt.Errorf("transport: build router: %w", err)
	}
	net.router = rt
	r.net = net

	r.logger.Info("transport router built",
		"vertices", net.graph.VertexCount(),
		"edges", net.graph.EdgeCount(),
		"wait_time", r.settings.BusWaitTime,
		"velocity", r.settings.BusVelocity,
		"elapsed", time.Since(start),
	)

	return nil
}

// addBusEdges inserts one edge for every i < j along bus.Route.
// This is quadratic in route length; long routes dominate build time.
func (r *Router) addBusEdges(net *network, bus *catalogue.Bus) error {
	route := bus.Route
	if len(route) < 2 {
		return nil
	}

	vertices := make([]core.VertexID, len(route))
	for i, stop := range route {
		v, ok := net.mapper.Vertex(stop)
		if !ok {
			return fmt.Errorf("%w: stop %q on bus %q is not in the stop table", ErrNotFound, stop.Name, bus.Name)
		}
		vertices[i] = v
	}

	wait := r.settings.BusWaitTime
	minutesPerMeter := 60 / (r.settings.BusVelocity * 1000)
	terminus := bus.Terminus()

	for i := 0; i < len(route)-1; i++ {
		var travel float64
		for j := i + 1; j < len(route); j++ {
			hop := j - 1
			if !bus.IsRoundtrip && hop > i && route[hop] == terminus {
				travel += wait
			}
			travel += r.db.DistanceBetweenStops(route[hop], route[j]).Road * minutesPerMeter

			id, err := net.graph.AddEdge(core.Edge{From: vertices[i], To: vertices[j], Weight: wait + travel})
			if err != nil {
				return fmt.Errorf("transport: bus %q: %w", bus.Name, err)
			}
			if id != len(net.items) {
				panic(fmt.Sprintf("transport: edge id %d out of step with %d item infos", id, len(net.items)))
			}
			net.items = append(net.items, RoutingItemInfo{
				BusName:          bus.Name,
				WaitTime:         wait,
				TravelTime:       travel,
				SpanCount:        j - i,
				FromStop:         route[i],
				ToStop:           route[j],
				IntermediateStop: route[hop],
			})
		}
	}

	return nil
}

// built returns the network or ErrInvalidState.
func (r *Router) built() (*network, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.net == nil {
		return nil, fmt.Errorf("%w: not built", ErrInvalidState)
	}

	return r.net, nil
}

// FindRoute returns the fastest itinerary between two stops.
//
// Errors: ErrInvalidState before Build, ErrNotFound for an unknown stop name,
// ErrNoRoute when to is unreachable from from. Every call returns its own
// Itinerary, including answers served from the cache.
func (r *Router) FindRoute(from, to string) (*Itinerary, error) {
	net, err := r.built()
	if err != nil {
		return nil, err
	}

	key := from + "|" + to
	if r.cache != nil {
		if v, err := r.cache.Get(key); err == nil {
			hit := v.(cached)
			return hit.itinerary.clone(), hit.err
		}
	}

	itinerary, err := net.findRoute(from, to)
	if r.cache != nil && (err == nil || errors.Is(err, ErrNoRoute)) {
		_ = r.cache.Set(key, cached{itinerary: itinerary.clone(), err: err})
	}

	return itinerary, err
}

func (net *network) findRoute(from, to string) (*Itinerary, error) {
	src, ok := net.mapper.VertexByName(from)
	if !ok {
		return nil, fmt.Errorf("%w: stop %q", ErrNotFound, from)
	}
	dst, ok := net.mapper.VertexByName(to)
	if !ok {
		return nil, fmt.Errorf("%w: stop %q", ErrNotFound, to)
	}

	info, ok := net.router.BuildRoute(src, dst)
	if !ok {
		return nil, fmt.Errorf("%w: %q → %q", ErrNoRoute, from, to)
	}

	out := &Itinerary{TotalTime: info.Weight, Items: make([]Item, 0, 2*len(info.Edges))}
	for _, id := range info.Edges {
		item := net.items[id]
		out.Items = append(out.Items,
			Wait{StopName: item.FromStop.Name, Time: item.WaitTime},
			Ride{BusName: item.BusName, SpanCount: item.SpanCount, Time: item.TravelTime},
		)
	}

	return out, nil
}

// Info returns the annotation of graph edge id.
func (r *Router) Info(id core.EdgeID) (RoutingItemInfo, error) {
	net, err := r.built()
	if err != nil {
		return RoutingItemInfo{}, err
	}
	if id < 0 || id >= len(net.items) {
		return RoutingItemInfo{}, fmt.Errorf("%w: edge %d", core.ErrOutOfRange, id)
	}

	return net.items[id], nil
}

// Mapper returns the stop/vertex mapping, or nil before Build.
func (r *Router) Mapper() *IndexMapper {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.net == nil {
		return nil
	}

	return r.net.mapper
}

// Graph returns the built graph, or nil before Build.
func (r *Router) Graph() *core.DirectedWeightedGraph {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.net == nil {
		return nil
	}

	return r.net.graph
}
