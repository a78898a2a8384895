// SPDX-License-Identifier: MIT

package transport

import "slices"

// Item is one leg of an Itinerary: a Wait or a Ride.
type Item interface {
	Minutes() float64
	isItem()
}

// Wait is time spent at StopName before boarding.
type Wait struct {
	StopName string
	Time     float64
}

// Ride is a trip on BusName covering SpanCount hops.
type Ride struct {
	BusName   string
	SpanCount int
	Time      float64
}

func (w Wait) Minutes() float64 { return w.Time }
func (r Ride) Minutes() float64 { return r.Time }
func (Wait) isItem()            {}
func (Ride) isItem()            {}

// Itinerary is the fastest journey between two stops. TotalTime is the sum
// of the item times, in minutes.
type Itinerary struct {
	TotalTime float64
	Items     []Item
}

// clone returns a copy whose Items can be modified without touching it.
func (it *Itinerary) clone() *Itinerary {
	if it == nil {
		return nil
	}

	return &Itinerary{TotalTime: it.TotalTime, Items: slices.Clone(it.Items)}
}
