// SPDX-License-Identifier: MIT

// Package requests decodes the JSON request documents consumed by transcat,
// loads base requests into a catalogue and answers stat requests.
package requests

import (
	"errors"

	"github.com/katalvlaran/transcat/transport"
)

// ErrInvalid indicates a request document that failed decoding or validation.
var ErrInvalid = errors.New("requests: invalid document")

// Base request types.
const (
	TypeStop = "Stop"
	TypeBus  = "Bus"
)

// Stat request types. TypeMap, like any type not listed here, is answered
// with "not found".
const (
	TypeRoute = "Route"
	TypeMap   = "Map"
)

// Document is one input document. make_base reads the base requests and
// settings; process_requests reads the stat requests.
type Document struct {
	BaseRequests          []BaseRequest          `json:"base_requests" validate:"dive"`
	StatRequests          []StatRequest          `json:"stat_requests" validate:"dive"`
	RoutingSettings       *RoutingSettings       `json:"routing_settings" validate:"omitnil"`
	SerializationSettings *SerializationSettings `json:"serialization_settings" validate:"omitnil"`
}

// BaseRequest adds a stop (with its outgoing road distances) or a bus.
type BaseRequest struct {
	Type          string             `json:"type" validate:"oneof=Stop Bus"`
	Name          string             `json:"name" validate:"required"`
	Latitude      float64            `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude     float64            `json:"longitude" validate:"gte=-180,lte=180"`
	RoadDistances map[string]float64 `json:"road_distances" validate:"dive,gte=0"`
	Stops         []string           `json:"stops"`
	IsRoundtrip   bool               `json:"is_roundtrip"`
}

// StatRequest asks about a bus, a stop, a route between two stops or the map.
type StatRequest struct {
	ID   int    `json:"id"`
	Type string `json:"type" validate:"required"`
	Name string `json:"name"`
	From string `json:"from"`
	To   string `json:"to"`
}

// RoutingSettings are the routing parameters as they appear on the wire.
type RoutingSettings struct {
	BusWaitTime int     `json:"bus_wait_time" validate:"gte=1,lte=1000"`
	BusVelocity float64 `json:"bus_velocity" validate:"gte=1,lte=1000"`
}

// Settings converts to transport settings.
func (s RoutingSettings) Settings() transport.Settings {
	return transport.Settings{BusWaitTime: float64(s.BusWaitTime), BusVelocity: s.BusVelocity}
}

// SerializationSettings names the snapshot file.
type SerializationSettings struct {
	File string `json:"file" validate:"required"`
}

// Response is one element of the output array: one of BusResponse,
// StopResponse, RouteResponse or ErrorResponse.
type Response = any

// BusResponse answers a Bus stat request.
type BusResponse struct {
	Curvature       float64 `json:"curvature"`
	RequestID       int     `json:"request_id"`
	RouteLength     float64 `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

// StopResponse answers a Stop stat request.
type StopResponse struct {
	Buses     []string `json:"buses"`
	RequestID int      `json:"request_id"`
}

// RouteResponse answers a Route stat request.
type RouteResponse struct {
	Items     []RouteItem `json:"items"`
	RequestID int         `json:"request_id"`
	TotalTime float64     `json:"total_time"`
}

// RouteItem is a "Wait" or a "Bus" leg.
type RouteItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

// ErrorResponse is returned for anything that cannot be answered.
type ErrorResponse struct {
	ErrorMessage string `json:"error_message"`
	RequestID    int    `json:"request_id"`
}

const notFound = "not found"
