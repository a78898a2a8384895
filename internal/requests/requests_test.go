// SPDX-License-Identifier: MIT

package requests_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transcat/catalogue"
	"github.com/katalvlaran/transcat/internal/requests"
	"github.com/katalvlaran/transcat/transport"
)

const baseDocument = `{
  "serialization_settings": {"file": "transport.db"},
  "routing_settings": {"bus_wait_time": 6, "bus_velocity": 40},
  "base_requests": [
    {"type": "Bus", "name": "256", "stops": ["Biryulyovo Zapadnoye", "Biryusinka", "Universam",
      "Biryulyovo Tovarnaya", "Biryulyovo Passazhirskaya", "Biryulyovo Zapadnoye"], "is_roundtrip": true},
    {"type": "Bus", "name": "750", "stops": ["Tolstopaltsevo", "Marushkino", "Marushkino", "Rasskazovka"], "is_roundtrip": false},
    {"type": "Stop", "name": "Tolstopaltsevo", "latitude": 55.611087, "longitude": 37.20829,
      "road_distances": {"Marushkino": 3900}},
    {"type": "Stop", "name": "Marushkino", "latitude": 55.595884, "longitude": 37.209755,
      "road_distances": {"Rasskazovka": 9900, "Marushkino": 100}},
    {"type": "Bus", "name": "828", "stops": ["Biryulyovo Zapadnoye", "Universam", "Rossoshanskaya ulitsa",
      "Biryulyovo Zapadnoye"], "is_roundtrip": true},
    {"type": "Stop", "name": "Rasskazovka", "latitude": 55.632761, "longitude": 37.333324,
      "road_distances": {"Marushkino": 9500}},
    {"type": "Stop", "name": "Biryulyovo Zapadnoye", "latitude": 55.574371, "longitude": 37.6517,
      "road_distances": {"Rossoshanskaya ulitsa": 7500, "Biryusinka": 1800, "Universam": 2400}},
    {"type": "Stop", "name": "Biryusinka", "latitude": 55.581065, "longitude": 37.64839,
      "road_distances": {"Universam": 750}},
    {"type": "Stop", "name": "Universam", "latitude": 55.587655, "longitude": 37.645687,
      "road_distances": {"Rossoshanskaya ulitsa": 5600, "Biryulyovo Tovarnaya": 900}},
    {"type": "Stop", "name": "Biryulyovo Tovarnaya", "latitude": 55.592028, "longitude": 37.653656,
      "road_distances": {"Biryulyovo Passazhirskaya": 1300}},
    {"type": "Stop", "name": "Biryulyovo Passazhirskaya", "latitude": 55.580999, "longitude": 37.659164,
      "road_distances": {"Biryulyovo Zapadnoye": 1200}},
    {"type": "Stop", "name": "Rossoshanskaya ulitsa", "latitude": 55.595579, "longitude": 37.605757},
    {"type": "Stop", "name": "Prazhskaya", "latitude": 55.611678, "longitude": 37.603831}
  ]
}`

const statDocument = `{
  "stat_requests": [
    {"id": 1, "type": "Bus", "name": "256"},
    {"id": 2, "type": "Bus", "name": "750"},
    {"id": 3, "type": "Bus", "name": "751"},
    {"id": 4, "type": "Stop", "name": "Samara"},
    {"id": 5, "type": "Stop", "name": "Prazhskaya"},
    {"id": 6, "type": "Stop", "name": "Biryulyovo Zapadnoye"},
    {"id": 7, "type": "Route", "from": "Biryulyovo Zapadnoye", "to": "Universam"},
    {"id": 8, "type": "Route", "from": "Biryulyovo Zapadnoye", "to": "Rossoshanskaya ulitsa"},
    {"id": 9, "type": "Route", "from": "Prazhskaya", "to": "Universam"},
    {"id": 10, "type": "Map"}
  ]
}`

func loadBase(t *testing.T) (*catalogue.Database, *requests.Document) {
	t.Helper()
	doc, err := requests.Decode(strings.NewReader(baseDocument))
	require.NoError(t, err)

	db := catalogue.New()
	require.NoError(t, requests.ApplyBase(db, doc.BaseRequests))
	return db, doc
}

func TestDecode_Settings(t *testing.T) {
	_, doc := loadBase(t)
	require.NotNil(t, doc.RoutingSettings)
	assert.Equal(t, transport.Settings{BusWaitTime: 6, BusVelocity: 40}, doc.RoutingSettings.Settings())
	require.NotNil(t, doc.SerializationSettings)
	assert.Equal(t, "transport.db", doc.SerializationSettings.File)
	assert.Len(t, doc.BaseRequests, 13)
}

func TestDecode_Invalid(t *testing.T) {
	tests := map[string]string{
		"not json":          `{"base_requests": [`,
		"unknown base type": `{"base_requests": [{"type": "Tram", "name": "x"}]}`,
		"empty name":        `{"base_requests": [{"type": "Stop", "name": ""}]}`,
		"bad latitude":      `{"base_requests": [{"type": "Stop", "name": "x", "latitude": 91}]}`,
		"negative distance": `{"base_requests": [{"type": "Stop", "name": "x", "road_distances": {"y": -1}}]}`,
		"zero velocity":     `{"routing_settings": {"bus_wait_time": 6, "bus_velocity": 0}}`,
		"wait too long":     `{"routing_settings": {"bus_wait_time": 1001, "bus_velocity": 40}}`,
		"missing stat type": `{"stat_requests": [{"id": 1, "name": "256"}]}`,
		"empty file":        `{"serialization_settings": {"file": ""}}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := requests.Decode(strings.NewReader(doc))
			require.ErrorIs(t, err, requests.ErrInvalid)
		})
	}
}

func TestApplyBase_Canonical(t *testing.T) {
	db, _ := loadBase(t)
	assert.Equal(t, 10, db.StopCount())
	assert.Equal(t, 3, db.BusCount())

	b750, ok := db.Bus("750")
	require.True(t, ok)
	assert.Len(t, b750.Route, 7, "non-roundtrip routes are expanded")
}

func TestApplyBase_UnknownStop(t *testing.T) {
	db := catalogue.New()
	err := requests.ApplyBase(db, []requests.BaseRequest{
		{Type: requests.TypeBus, Name: "1", Stops: []string{"nowhere"}, IsRoundtrip: true},
	})
	require.ErrorIs(t, err, catalogue.ErrNotFound)

	err = requests.ApplyBase(catalogue.New(), []requests.BaseRequest{
		{Type: requests.TypeStop, Name: "A", RoadDistances: map[string]float64{"B": 10}},
	})
	require.ErrorIs(t, err, catalogue.ErrNotFound)
}

func TestHandler_AnswerAll(t *testing.T) {
	db, doc := loadBase(t)
	router := transport.New(db, nil)
	require.NoError(t, router.SetSettings(doc.RoutingSettings.Settings()))
	require.NoError(t, router.Build(context.Background()))

	stats, err := requests.Decode(strings.NewReader(statDocument))
	require.NoError(t, err)

	got := requests.NewHandler(db, router, nil).AnswerAll(stats.StatRequests)
	require.Len(t, got, 10)

	bus256 := got[0].(requests.BusResponse)
	assert.Equal(t, 1, bus256.RequestID)
	assert.Equal(t, 6, bus256.StopCount)
	assert.Equal(t, 5, bus256.UniqueStopCount)
	assert.InDelta(t, 5950, bus256.RouteLength, 1e-9)
	assert.InDelta(t, 1.36124, bus256.Curvature, 1e-5)

	bus750 := got[1].(requests.BusResponse)
	assert.Equal(t, 7, bus750.StopCount)
	assert.Equal(t, 3, bus750.UniqueStopCount)
	assert.InDelta(t, 27400, bus750.RouteLength, 1e-9)

	assert.Equal(t, requests.ErrorResponse{ErrorMessage: "not found", RequestID: 3}, got[2])
	assert.Equal(t, requests.ErrorResponse{ErrorMessage: "not found", RequestID: 4}, got[3])
	assert.Equal(t, requests.StopResponse{Buses: []string{}, RequestID: 5}, got[4])
	assert.Equal(t, requests.StopResponse{Buses: []string{"256", "828"}, RequestID: 6}, got[5])

	route := got[6].(requests.RouteResponse)
	assert.InDelta(t, 9.6, route.TotalTime, 1e-9)
	require.Len(t, route.Items, 2)
	assert.Equal(t, requests.RouteItem{Type: "Wait", StopName: "Biryulyovo Zapadnoye", Time: 6}, route.Items[0])
	assert.Equal(t, "828", route.Items[1].Bus)
	assert.Equal(t, 1, route.Items[1].SpanCount)

	route = got[7].(requests.RouteResponse)
	assert.InDelta(t, 18, route.TotalTime, 1e-9)
	require.Len(t, route.Items, 2)
	assert.Equal(t, 2, route.Items[1].SpanCount)
	assert.InDelta(t, 12, route.Items[1].Time, 1e-9)

	assert.Equal(t, requests.ErrorResponse{ErrorMessage: "not found", RequestID: 9}, got[8])
	assert.Equal(t, requests.ErrorResponse{ErrorMessage: "not found", RequestID: 10}, got[9])
}

func TestHandler_UnknownStatType(t *testing.T) {
	db, _ := loadBase(t)
	doc, err := requests.Decode(strings.NewReader(`{"stat_requests": [
		{"id": 1, "type": "Train", "name": "256"},
		{"id": 2, "type": "Bus", "name": "256"}
	]}`))
	require.NoError(t, err)

	got := requests.NewHandler(db, nil, nil).AnswerAll(doc.StatRequests)
	require.Len(t, got, 2)
	assert.Equal(t, requests.ErrorResponse{ErrorMessage: "not found", RequestID: 1}, got[0])
	assert.Equal(t, 6, got[1].(requests.BusResponse).StopCount)
}

func TestHandler_RouteWithoutRouter(t *testing.T) {
	db, _ := loadBase(t)
	got := requests.NewHandler(db, nil, nil).Answer(requests.StatRequest{
		ID: 1, Type: requests.TypeRoute, From: "Universam", To: "Biryusinka",
	})
	assert.Equal(t, requests.ErrorResponse{ErrorMessage: "not found", RequestID: 1}, got)
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, requests.Encode(&buf, []requests.Response{
		requests.StopResponse{Buses: []string{}, RequestID: 5},
		requests.RouteResponse{
			Items: []requests.RouteItem{
				{Type: "Wait", StopName: "A", Time: 6},
				{Type: "Bus", Bus: "297", SpanCount: 2, Time: 5.235},
			},
			RequestID: 7,
			TotalTime: 11.235,
		},
	}))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, []any{}, decoded[0]["buses"])
	items := decoded[1]["items"].([]any)
	assert.Equal(t, map[string]any{"type": "Wait", "stop_name": "A", "time": 6.0}, items[0])
	assert.Equal(t, map[string]any{"type": "Bus", "bus": "297", "span_count": 2.0, "time": 5.235}, items[1])

	buf.Reset()
	require.NoError(t, requests.Encode(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
