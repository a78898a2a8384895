// SPDX-License-Identifier: MIT
//
// File: queries.go
// Role: Read side of the Database: lookups, inverted index, distances, bus statistics.
// Concurrency:
//   - Unsynchronized; call only after the load phase has finished.

package catalogue

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/transcat/geo"
)

// Stop looks a stop up by name.
func (db *Database) Stop(name string) (*Stop, bool) {
	s, ok := db.stopsByName[name]
	return s, ok
}

// Bus looks a bus up by name.
func (db *Database) Bus(name string) (*Bus, bool) {
	b, ok := db.busesByName[name]
	return b, ok
}

// Stops returns the stop table in insertion order. The slice is a copy; the
// stops are not.
func (db *Database) Stops() []*Stop { return slices.Clone(db.stops) }

// Buses returns the bus table in insertion order.
func (db *Database) Buses() []*Bus { return slices.Clone(db.buses) }

// StopCount returns the number of stops.
func (db *Database) StopCount() int { return len(db.stops) }

// BusCount returns the number of buses.
func (db *Database) BusCount() int { return len(db.buses) }

// BusesForStop returns the names of the buses serving stop, sorted.
//
// A stop that no bus serves yields an empty, non-nil slice. A stop that does
// not belong to this database yields ErrNotFound.
func (db *Database) BusesForStop(stop *Stop) ([]string, error) {
	if stop == nil || db.stopsByName[stop.Name] != stop {
		return nil, ErrNotFound
	}
	set := db.stopBuses[stop]
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	slices.Sort(names)

	return names, nil
}

// DistanceBetweenStops returns the measured distance from → to, falling back
// to the to → from entry and then to the zero distance.
func (db *Database) DistanceBetweenStops(from, to *Stop) MeasuredDistance {
	d, _ := db.lookupDistance(from, to)
	return d
}

// Distances returns every explicitly set directed distance in insertion order.
func (db *Database) Distances() []DistanceEntry {
	out := make([]DistanceEntry, 0, len(db.distOrder))
	for _, key := range db.distOrder {
		out = append(out, DistanceEntry{From: key.from, To: key.to, Distance: db.distances[key]})
	}

	return out
}

// BusInfo walks bus.Route once and summarizes it.
//
// A consecutive pair without a measured distance contributes no road length
// but still contributes its great-circle length, computed from the stop
// coordinates. BusInfo therefore does not sum DistanceBetweenStops, which
// reports (0, 0) for such a pair; the curvature denominator stays the true
// straight-line length of the route.
func (db *Database) BusInfo(bus *Bus) (BusStat, error) {
	if bus == nil {
		return BusStat{}, ErrNilBus
	}

	unique := make(map[*Stop]struct{}, len(bus.Route))
	var road, straight float64
	for i, stop := range bus.Route {
		unique[stop] = struct{}{}
		if i == 0 {
			continue
		}
		prev := bus.Route[i-1]
		d, ok := db.lookupDistance(prev, stop)
		if !ok {
			d.Geo = geo.ComputeDistance(prev.Coordinates, stop.Coordinates)
		}
		road += d.Road
		straight += d.Geo
	}

	return BusStat{
		TotalStops:  len(bus.Route),
		UniqueStops: len(unique),
		RouteLength: road,
		Curvature:   road / max(straight, 1.0),
	}, nil
}

// BusInfoByName is BusInfo for a bus looked up by name.
func (db *Database) BusInfoByName(name string) (BusStat, error) {
	bus, ok := db.busesByName[name]
	if !ok {
		return BusStat{}, fmt.Errorf("%w: bus %q", ErrNotFound, name)
	}

	return db.BusInfo(bus)
}

// lookupDistance probes from → to, then to → from.
func (db *Database) lookupDistance(from, to *Stop) (MeasuredDistance, bool) {
	if d, ok := db.distances[stopPair{from: from, to: to}]; ok {
		return d, true
	}
	d, ok := db.distances[stopPair{from: to, to: from}]

	return d, ok
}
