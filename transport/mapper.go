// SPDX-License-Identifier: MIT

package transport

import (
	"github.com/katalvlaran/transcat/catalogue"
	"github.com/katalvlaran/transcat/core"
)

// IndexMapper assigns graph vertices to stops in stop-table order.
type IndexMapper struct {
	stops  []*catalogue.Stop
	byStop map[*catalogue.Stop]core.VertexID
	byName map[string]core.VertexID
}

// NewIndexMapper numbers stops 0..len(stops)-1.
func NewIndexMapper(stops []*catalogue.Stop) *IndexMapper {
	m := &IndexMapper{
		stops:  stops,
		byStop: make(map[*catalogue.Stop]core.VertexID, len(stops)),
		byName: make(map[string]core.VertexID, len(stops)),
	}
	for v, s := range stops {
		m.byStop[s] = v
		m.byName[s.Name] = v
	}

	return m
}

// Len returns the number of mapped stops.
func (m *IndexMapper) Len() int { return len(m.stops) }

// Vertex returns the vertex of stop.
func (m *IndexMapper) Vertex(stop *catalogue.Stop) (core.VertexID, bool) {
	v, ok := m.byStop[stop]
	return v, ok
}

// VertexByName returns the vertex of the stop called name.
func (m *IndexMapper) VertexByName(name string) (core.VertexID, bool) {
	v, ok := m.byName[name]
	return v, ok
}

// Stop returns the stop at vertex v, or nil if v is out of range.
func (m *IndexMapper) Stop(v core.VertexID) *catalogue.Stop {
	if v < 0 || v >= len(m.stops) {
		return nil
	}

	return m.stops[v]
}
