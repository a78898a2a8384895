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

// field is one decoded tag/value pair. Only the member matching typ is set.
type field struct {
	num     protowire.Number
	typ     protowire.Type
	varint  uint64
	fixed64 uint64
	bytes   []byte
}

func (f field) double() float64 { return math.Float64frombits(f.fixed64) }

// stopIndex narrows a decoded stop reference to the table's index width.
func stopIndex(v uint64, path string) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %s: stop index %d overflows uint32", ErrCorrupt, path, v)
	}

	return uint32(v), nil
}

// walk calls fn for every field of the message in b, in wire order.
// Groups and fixed32 values are consumed and handed to fn without a value.
func walk(b []byte, msg string, fn func(field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %s: tag: %v", ErrCorrupt, msg, protowire.ParseError(n))
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.Fixed64Type:
			f.fixed64, n = protowire.ConsumeFixed64(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return fmt.Errorf("%w: %s field %d: %v", ErrCorrupt, msg, num, protowire.ParseError(n))
		}
		b = b[n:]

		if err := fn(f); err != nil {
			return err
		}
	}

	return nil
}

// expect fails unless a known field arrived with the wire type the schema declares.
func expect(f field, typ protowire.Type, msg string) error {
	if f.typ != typ {
		return fmt.Errorf("%w: %s field %d: wire type %d, want %d", ErrCorrupt, msg, f.num, f.typ, typ)
	}

	return nil
}

type rawBus struct {
	name      string
	stops     []uint32
	roundtrip bool
}

type rawDistance struct {
	from, to uint32
	meters   float64
}

// Load decodes a snapshot produced by Save into a fresh catalogue.
func Load(data []byte) (*Snapshot, error) {
	var (
		stops     []*catalogue.Stop
		buses     []rawBus
		distances []rawDistance
		routing   *transport.Settings
	)

	err := walk(data, "Catalogue", func(f field) error {
		switch f.num {
		case catalogueStops:
			if err := expect(f, protowire.BytesType, "Catalogue"); err != nil {
				return err
			}
			s, err := decodeStop(f.bytes)
			if err != nil {
				return err
			}
			stops = append(stops, s)
		case catalogueBuses:
			if err := expect(f, protowire.BytesType, "Catalogue"); err != nil {
				return err
			}
			b, err := decodeBus(f.bytes)
			if err != nil {
				return err
			}
			buses = append(buses, b)
		case catalogueDistances:
			if err := expect(f, protowire.BytesType, "Catalogue"); err != nil {
				return err
			}
			d, err := decodeDistance(f.bytes)
			if err != nil {
				return err
			}
			distances = append(distances, d)
		case catalogueRouting:
			if err := expect(f, protowire.BytesType, "Catalogue"); err != nil {
				return err
			}
			s, err := decodeRouting(f.bytes)
			if err != nil {
				return err
			}
			routing = &s
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	db, err := assemble(stops, buses, distances)
	if err != nil {
		return nil, err
	}

	return &Snapshot{Catalogue: db, Routing: routing}, nil
}

// assemble replays decoded tables into a Database: stops, distances, buses.
func assemble(stops []*catalogue.Stop, buses []rawBus, distances []rawDistance) (*catalogue.Database, error) {
	db := catalogue.New()
	for _, s := range stops {
		if _, err := db.AddStop(s.Name, s.Coordinates); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
	}

	name := func(i uint32, what string) (string, error) {
		if int(i) >= len(stops) {
			return "", fmt.Errorf("%w: %s references stop %d of %d", ErrCorrupt, what, i, len(stops))
		}
		return stops[i].Name, nil
	}

	for _, d := range distances {
		from, err := name(d.from, "Distance.from")
		if err != nil {
			return nil, err
		}
		to, err := name(d.to, "Distance.to")
		if err != nil {
			return nil, err
		}
		if err = db.SetMeasuredDistance(from, to, d.meters); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
	}

	for _, b := range buses {
		route := make([]string, len(b.stops))
		for i, idx := range b.stops {
			n, err := name(idx, fmt.Sprintf("Bus %q", b.name))
			if err != nil {
				return nil, err
			}
			route[i] = n
		}
		if _, err := db.AddBus(b.name, route, b.roundtrip); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
		}
	}

	return db, nil
}

func decodeStop(b []byte) (*catalogue.Stop, error) {
	s := &catalogue.Stop{}
	err := walk(b, "Stop", func(f field) error {
		switch f.num {
		case stopName:
			if err := expect(f, protowire.BytesType, "Stop"); err != nil {
				return err
			}
			s.Name = string(f.bytes)
		case stopCoordinates:
			if err := expect(f, protowire.BytesType, "Stop"); err != nil {
				return err
			}
			c, err := decodeCoordinates(f.bytes)
			if err != nil {
				return err
			}
			s.Coordinates = c
		}
		return nil
	})

	return s, err
}

func decodeCoordinates(b []byte) (geo.Coordinates, error) {
	var c geo.Coordinates
	err := walk(b, "Coordinates", func(f field) error {
		switch f.num {
		case coordinatesLat:
			if err := expect(f, protowire.Fixed64Type, "Coordinates"); err != nil {
				return err
			}
			c.Lat = f.double()
		case coordinatesLng:
			if err := expect(f, protowire.Fixed64Type, "Coordinates"); err != nil {
				return err
			}
			c.Lng = f.double()
		}
		return nil
	})

	return c, err
}

func decodeBus(b []byte) (rawBus, error) {
	var bus rawBus
	err := walk(b, "Bus", func(f field) error {
		switch f.num {
		case busName:
			if err := expect(f, protowire.BytesType, "Bus"); err != nil {
				return err
			}
			bus.name = string(f.bytes)
		case busStops:
			// packed encoding, or a single unpacked element
			if f.typ == protowire.VarintType {
				idx, err := stopIndex(f.varint, "Bus.stops")
				if err != nil {
					return err
				}
				bus.stops = append(bus.stops, idx)
				return nil
			}
			if err := expect(f, protowire.BytesType, "Bus"); err != nil {
				return err
			}
			for packed := f.bytes; len(packed) > 0; {
				v, n := protowire.ConsumeVarint(packed)
				if n < 0 {
					return fmt.Errorf("%w: Bus.stops: %v", ErrCorrupt, protowire.ParseError(n))
				}
				idx, err := stopIndex(v, "Bus.stops")
				if err != nil {
					return err
				}
				bus.stops = append(bus.stops, idx)
				packed = packed[n:]
			}
		case busRoundtrip:
			if err := expect(f, protowire.VarintType, "Bus"); err != nil {
				return err
			}
			bus.roundtrip = protowire.DecodeBool(f.varint)
		}
		return nil
	})

	return bus, err
}

func decodeDistance(b []byte) (rawDistance, error) {
	var d rawDistance
	err := walk(b, "Distance", func(f field) error {
		switch f.num {
		case distanceFrom:
			if err := expect(f, protowire.VarintType, "Distance"); err != nil {
				return err
			}
			idx, err := stopIndex(f.varint, "Distance.from")
			if err != nil {
				return err
			}
			d.from = idx
		case distanceTo:
			if err := expect(f, protowire.VarintType, "Distance"); err != nil {
				return err
			}
			idx, err := stopIndex(f.varint, "Distance.to")
			if err != nil {
				return err
			}
			d.to = idx
		case distanceMeters:
			if err := expect(f, protowire.Fixed64Type, "Distance"); err != nil {
				return err
			}
			d.meters = f.double()
		}
		return nil
	})

	return d, err
}

func decodeRouting(b []byte) (transport.Settings, error) {
	var s transport.Settings
	err := walk(b, "RoutingSettings", func(f field) error {
		switch f.num {
		case routingWaitTime:
			if err := expect(f, protowire.Fixed64Type, "RoutingSettings"); err != nil {
				return err
			}
			s.BusWaitTime = f.double()
		case routingVelocity:
			if err := expect(f, protowire.Fixed64Type, "RoutingSettings"); err != nil {
				return err
			}
			s.BusVelocity = f.double()
		}
		return nil
	})

	return s, err
}
