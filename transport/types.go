// SPDX-License-Identifier: MIT

package transport

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/transcat/catalogue"
	"github.com/katalvlaran/transcat/router"
)

// Sentinel errors returned by Router.
var (
	// ErrInvalidState indicates a query before Build, a second Build, or a
	// settings change after Build.
	ErrInvalidState = errors.New("transport: invalid router state")

	// ErrNotFound indicates an unknown stop name. It matches catalogue.ErrNotFound.
	ErrNotFound = fmt.Errorf("transport: %w", catalogue.ErrNotFound)

	// ErrNoRoute indicates that the destination is unreachable from the origin.
	ErrNoRoute = errors.New("transport: no route")

	// ErrBadSettings indicates a non-positive wait time or velocity.
	ErrBadSettings = errors.New("transport: settings must be positive")
)

// Catalogue is the read side of catalogue.Database the router depends on.
type Catalogue interface {
	Stops() []*catalogue.Stop
	Buses() []*catalogue.Bus
	DistanceBetweenStops(from, to *catalogue.Stop) catalogue.MeasuredDistance
}

// Settings are the routing parameters.
//
// BusWaitTime is the wait at a stop before boarding, in minutes.
// BusVelocity is the bus speed in km/h.
type Settings struct {
	BusWaitTime float64
	BusVelocity float64
}

// DefaultSettings returns a 6 minute wait and 40 km/h velocity.
func DefaultSettings() Settings {
	return Settings{BusWaitTime: 6, BusVelocity: 40}
}

// Validate reports ErrBadSettings for a non-positive field.
func (s Settings) Validate() error {
	if !(s.BusWaitTime > 0) {
		return fmt.Errorf("%w: bus_wait_time=%g", ErrBadSettings, s.BusWaitTime)
	}
	if !(s.BusVelocity > 0) {
		return fmt.Errorf("%w: bus_velocity=%g", ErrBadSettings, s.BusVelocity)
	}

	return nil
}

// RoutingItemInfo annotates one graph edge.
//
// WaitTime + TravelTime equals the edge weight. SpanCount is the number of
// stop-to-stop hops the ride covers. IntermediateStop is the last stop passed
// before ToStop (FromStop for a single hop).
type RoutingItemInfo struct {
	BusName          string
	WaitTime         float64
	TravelTime       float64
	SpanCount        int
	FromStop         *catalogue.Stop
	ToStop           *catalogue.Stop
	IntermediateStop *catalogue.Stop
}

// Options configures a Router.
//
// CacheSize - capacity of the route-query LRU; 0 disables memoization.
// Strategy  - all-pairs algorithm handed to router.New.
type Options struct {
	CacheSize int
	Strategy  router.Strategy
}

// Option represents a functional option for configuring New.
type Option func(*Options)

// WithCacheSize sets the route-query cache capacity. Panics if n < 0.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic("transport: WithCacheSize requires n >= 0")
		}
		o.CacheSize = n
	}
}

// WithStrategy selects the shortest-path precomputation.
func WithStrategy(s router.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// DefaultOptions returns the options used when New receives none.
//
// Defaults:
//   - CacheSize: 1024.
//   - Strategy:  router.StrategyDijkstra.
func DefaultOptions() Options {
	return Options{CacheSize: 1024, Strategy: router.StrategyDijkstra}
}
