// SPDX-License-Identifier: MIT

// Package catalogue is the in-memory store of bus stops, bus routes and
// measured road distances between stops.
//
// A Database owns every Stop and Bus it hands out. Entities are allocated
// individually and never moved, so the *Stop values held by bus routes and
// indexes stay valid for the lifetime of the database.
//
// Indexes kept alongside the entity tables:
//
//   - name → *Stop and name → *Bus for O(1) lookups;
//   - *Stop → set of bus names (the inverted index behind BusesForStop);
//   - (from, to) → MeasuredDistance, keyed by a directed pair. Lookups probe
//     the reverse pair before falling back to a zero distance.
//
// Phases:
//
//	Writes (AddStop, AddBus, ForceAddBus, SetMeasuredDistance) are serialized
//	by a mutex and may come from several loader goroutines. Reads are not
//	synchronized; issue them only once loading has finished.
//
// Errors:
//
//   - ErrNotFound      a referenced stop or bus name is unknown.
//   - ErrAlreadyExists a stop or bus with that name was already added.
//   - ErrEmptyName     the entity name is empty.
//   - ErrNilBus        BusInfo was given a nil bus.
package catalogue
