// SPDX-License-Identifier: MIT

// Package store serializes a catalogue to a byte blob and back.
//
// The blob is a protobuf message (schema in transcat.proto) written and read
// with google.golang.org/protobuf/encoding/protowire, so no generated code is
// needed. Buses and distances reference stops by their index in the stop
// table. Unknown fields are skipped on load, which lets older readers accept
// newer snapshots.
//
// What survives a round trip: every stop name and coordinate pair, every bus
// name, route (as traversed) and roundtrip flag, every explicitly set
// directed distance, and optionally the routing settings. Great-circle
// distances are recomputed on load.
//
// Malformed input fails with ErrCorrupt wrapped with the message and field
// that could not be decoded.
package store
