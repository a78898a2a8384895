// SPDX-License-Identifier: MIT

// Package transcat is a transport catalogue query engine: it stores bus
// stops, bus routes and measured road distances, answers statistics about
// them and finds the fastest trip between two stops.
//
// The module is organized in layers:
//
//	geo/        great-circle distance between coordinates
//	core/       directed weighted graph with append-only edges
//	router/     all-pairs shortest paths over a core graph (Dijkstra or Floyd–Warshall)
//	catalogue/  stops, buses, distances and per-bus statistics
//	transport/  routing graph built from a catalogue; wait and ride itineraries
//	store/      binary protobuf snapshot of a catalogue plus routing settings
//
// The transcat command (cmd/transcat) wires these together: make_base reads
// base requests as JSON and writes a snapshot; process_requests loads the
// snapshot and answers stat requests as JSON.
//
// Quick start:
//
//	db := catalogue.New()
//	db.AddStop("A", geo.Coordinates{Lat: 55.6, Lng: 37.2})
//	db.AddStop("B", geo.Coordinates{Lat: 55.6, Lng: 37.3})
//	_ = db.SetMeasuredDistance("A", "B", 1200)
//	db.AddBus("14", catalogue.ExpandRoute([]string{"A", "B"}, false), false)
//
//	tr := transport.New(db, nil)
//	_ = tr.Build(context.Background())
//	it, _ := tr.FindRoute("A", "B")
//	fmt.Println(it.TotalTime)
package transcat
