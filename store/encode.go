// SPDX-License-Identifier: MIT

package store

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/katalvlaran/transcat/catalogue"
	"github.com/katalvlaran/transcat/geo"
	"github.com/katalvlaran/transcat/transport"
)

// Save encodes db (and optionally routing settings) into a snapshot blob.
func Save(db *catalogue.Database, opts ...SaveOption) ([]byte, error) {
	var cfg saveOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	stops := db.Stops()
	index := make(map[*catalogue.Stop]uint32, len(stops))
	var out []byte
	for i, s := range stops {
		index[s] = uint32(i)
		out = appendMessage(out, catalogueStops, encodeStop(s))
	}

	for _, b := range db.Buses() {
		msg, err := encodeBus(b, index)
		if err != nil {
			return nil, err
		}
		out = appendMessage(out, catalogueBuses, msg)
	}

	for _, d := range db.Distances() {
		from, okFrom := index[d.From]
		to, okTo := index[d.To]
		if !okFrom || !okTo {
			return nil, fmt.Errorf("store: distance %q → %q references a stop outside the table", d.From.Name, d.To.Name)
		}
		var msg []byte
		msg = appendUint(msg, distanceFrom, uint64(from))
		msg = appendUint(msg, distanceTo, uint64(to))
		msg = appendDouble(msg, distanceMeters, d.Distance.Road)
		out = appendMessage(out, catalogueDistances, msg)
	}

	if cfg.routing != nil {
		out = appendMessage(out, catalogueRouting, encodeRouting(*cfg.routing))
	}

	return out, nil
}

func encodeStop(s *catalogue.Stop) []byte {
	var msg []byte
	msg = protowire.AppendTag(msg, stopName, protowire.BytesType)
	msg = protowire.AppendString(msg, s.Name)

	return appendMessage(msg, stopCoordinates, encodeCoordinates(s.Coordinates))
}

func encodeCoordinates(c geo.Coordinates) []byte {
	var msg []byte
	msg = appendDouble(msg, coordinatesLat, c.Lat)

	return appendDouble(msg, coordinatesLng, c.Lng)
}

func encodeBus(b *catalogue.Bus, index map[*catalogue.Stop]uint32) ([]byte, error) {
	var msg []byte
	msg = protowire.AppendTag(msg, busName, protowire.BytesType)
	msg = protowire.AppendString(msg, b.Name)

	var packed []byte
	for _, s := range b.Route {
		i, ok := index[s]
		if !ok {
			return nil, fmt.Errorf("store: bus %q references stop %q outside the table", b.Name, s.Name)
		}
		packed = protowire.AppendVarint(packed, uint64(i))
	}
	msg = appendMessage(msg, busStops, packed)

	if b.IsRoundtrip {
		msg = protowire.AppendTag(msg, busRoundtrip, protowire.VarintType)
		msg = protowire.AppendVarint(msg, protowire.EncodeBool(true))
	}

	return msg, nil
}

func encodeRouting(s transport.Settings) []byte {
	var msg []byte
	msg = appendDouble(msg, routingWaitTime, s.BusWaitTime)

	return appendDouble(msg, routingVelocity, s.BusVelocity)
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

func appendDouble(b []byte, num protowire.Number, v float64) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed64Type)
	return protowire.AppendFixed64(b, math.Float64bits(v))
}

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}
