// SPDX-License-Identifier: MIT

package catalogue

import (
	"errors"

	"github.com/katalvlaran/transcat/geo"
)

// Sentinel errors returned by Database methods.
var (
	// ErrNotFound indicates that a stop or bus name is not in the catalogue.
	ErrNotFound = errors.New("catalogue: not found")

	// ErrAlreadyExists indicates a second AddStop or AddBus with the same name.
	ErrAlreadyExists = errors.New("catalogue: already exists")

	// ErrEmptyName indicates an empty stop or bus name.
	ErrEmptyName = errors.New("catalogue: empty name")

	// ErrNilBus indicates that BusInfo received a nil bus.
	ErrNilBus = errors.New("catalogue: bus is nil")
)

// Stop is a named point on the map. Identity is the name.
type Stop struct {
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named route over stops.
//
// Route is stored exactly as traversed: a roundtrip bus lists its cycle with
// the first stop repeated at the end, a non-roundtrip bus lists the outbound
// leg followed by the way back (see ExpandRoute).
type Bus struct {
	Name        string
	Route       []*Stop
	IsRoundtrip bool
}

// Terminus returns the last stop of the declared route: the final stop for a
// roundtrip bus, the turnaround stop for a doubled-back one. Nil for an empty
// route.
func (b *Bus) Terminus() *Stop {
	if len(b.Route) == 0 {
		return nil
	}
	if b.IsRoundtrip {
		return b.Route[len(b.Route)-1]
	}

	return b.Route[len(b.Route)/2]
}

// MeasuredDistance holds the road distance reported by the data source and
// the great-circle distance between the same stops, both in meters.
type MeasuredDistance struct {
	Road float64
	Geo  float64
}

// DistanceEntry is one explicitly set directed distance.
type DistanceEntry struct {
	From, To *Stop
	Distance MeasuredDistance
}

// BusStat is the statistics summary of one bus route.
//
// TotalStops counts route entries with repeats, UniqueStops counts distinct
// stops. RouteLength sums road distances along the route. Curvature is
// RouteLength divided by the great-circle length (floored at 1 meter).
type BusStat struct {
	TotalStops  int
	UniqueStops int
	RouteLength float64
	Curvature   float64
}

// stopPair is a directed distance key.
type stopPair struct {
	from, to *Stop
}
