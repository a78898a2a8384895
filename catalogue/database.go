// SPDX-License-Identifier: MIT
//
// File: database.go
// Role: Database construction and the write side: AddStop, AddBus, ForceAddBus, SetMeasuredDistance.
// Determinism:
//   - Stops, buses and distances keep insertion order.
// Concurrency:
//   - All writers take db.mu; readers do not (load phase precedes query phase).

package catalogue

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/transcat/geo"
)

// Database is the catalogue of stops, buses and measured distances.
type Database struct {
	mu sync.Mutex

	stops       []*Stop
	buses       []*Bus
	stopsByName map[string]*Stop
	busesByName map[string]*Bus
	stopBuses   map[*Stop]map[string]struct{}
	distances   map[stopPair]MeasuredDistance
	distOrder   []stopPair
}

// New returns an empty Database.
func New() *Database {
	return &Database{
		stopsByName: make(map[string]*Stop),
		busesByName: make(map[string]*Bus),
		stopBuses:   make(map[*Stop]map[string]struct{}),
		distances:   make(map[stopPair]MeasuredDistance),
	}
}

// AddStop registers a stop and returns its stable reference.
// Re-adding an existing name fails with ErrAlreadyExists and leaves the
// original stop untouched.
func (db *Database) AddStop(name string, c geo.Coordinates) (*Stop, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: stop", ErrEmptyName)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.stopsByName[name]; ok {
		return nil, fmt.Errorf("%w: stop %q", ErrAlreadyExists, name)
	}
	stop := &Stop{Name: name, Coordinates: c}
	db.stops = append(db.stops, stop)
	db.stopsByName[name] = stop

	return stop, nil
}

// AddBus registers a bus over already known stops.
//
// stopNames is the route as traversed (callers expand non-roundtrip routes
// with ExpandRoute first). An unknown stop name fails with ErrNotFound and
// nothing is inserted.
func (db *Database) AddBus(name string, stopNames []string, isRoundtrip bool) (*Bus, error) {
	return db.addBus(name, stopNames, isRoundtrip, false)
}

// ForceAddBus is AddBus that silently drops unknown stop names from the route.
func (db *Database) ForceAddBus(name string, stopNames []string, isRoundtrip bool) (*Bus, error) {
	return db.addBus(name, stopNames, isRoundtrip, true)
}

func (db *Database) addBus(name string, stopNames []string, isRoundtrip, lenient bool) (*Bus, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: bus", ErrEmptyName)
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	if _, ok := db.busesByName[name]; ok {
		return nil, fmt.Errorf("%w: bus %q", ErrAlreadyExists, name)
	}

	route := make([]*Stop, 0, len(stopNames))
	for _, stopName := range stopNames {
		stop, ok := db.stopsByName[stopName]
		if !ok {
			if lenient {
				continue
			}
			return nil, fmt.Errorf("%w: stop %q on bus %q", ErrNotFound, stopName, name)
		}
		route = append(route, stop)
	}

	bus := &Bus{Name: name, Route: route, IsRoundtrip: isRoundtrip}
	db.buses = append(db.buses, bus)
	db.busesByName[name] = bus
	for _, stop := range route {
		names, ok := db.stopBuses[stop]
		if !ok {
			names = make(map[string]struct{})
			db.stopBuses[stop] = names
		}
		names[name] = struct{}{}
	}

	return bus, nil
}

// SetMeasuredDistance records the road distance from → to in meters and the
// great-circle distance for the same pair. Both stops must exist.
//
// Only the first write for a direction is kept; the reverse direction is a
// separate entry.
func (db *Database) SetMeasuredDistance(from, to string, meters float64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	fromStop, ok := db.stopsByName[from]
	if !ok {
		return fmt.Errorf("%w: stop %q", ErrNotFound, from)
	}
	toStop, ok := db.stopsByName[to]
	if !ok {
		return fmt.Errorf("%w: stop %q", ErrNotFound, to)
	}

	key := stopPair{from: fromStop, to: toStop}
	if _, ok = db.distances[key]; ok {
		return nil
	}
	db.distances[key] = MeasuredDistance{
		Road: meters,
		Geo:  geo.ComputeDistance(fromStop.Coordinates, toStop.Coordinates),
	}
	db.distOrder = append(db.distOrder, key)

	return nil
}
