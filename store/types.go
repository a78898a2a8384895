// SPDX-License-Identifier: MIT

package store

import (
	"errors"

	"github.com/katalvlaran/transcat/catalogue"
	"github.com/katalvlaran/transcat/transport"
)

// ErrCorrupt indicates a snapshot that cannot be decoded.
var ErrCorrupt = errors.New("store: corrupt snapshot")

// Snapshot is a decoded catalogue plus the routing settings stored with it.
// Routing is nil when the snapshot was saved without settings.
type Snapshot struct {
	Catalogue *catalogue.Database
	Routing   *transport.Settings
}

// SaveOption configures Save.
type SaveOption func(*saveOptions)

type saveOptions struct {
	routing *transport.Settings
}

// WithRouting stores s alongside the catalogue.
func WithRouting(s transport.Settings) SaveOption {
	return func(o *saveOptions) { o.routing = &s }
}

// Field numbers, mirrored from transcat.proto.
const (
	catalogueStops     = 1
	catalogueBuses     = 2
	catalogueDistances = 3
	catalogueRouting   = 4

	stopName        = 1
	stopCoordinates = 2

	coordinatesLat = 1
	coordinatesLng = 2

	busName      = 1
	busStops     = 2
	busRoundtrip = 3

	distanceFrom   = 1
	distanceTo     = 2
	distanceMeters = 3

	routingWaitTime = 1
	routingVelocity = 2
)
