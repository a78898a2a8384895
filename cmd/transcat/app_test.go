// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transcat/internal/config"
)

const makeBaseInput = `{
  "serialization_settings": {"file": %q},
  "routing_settings": {"bus_wait_time": 2, "bus_velocity": 30},
  "base_requests": [
    {"type": "Bus", "name": "297", "stops": ["Biryulyovo Zapadnoye", "Biryulyovo Tovarnaya", "Universam",
      "Biryulyovo Zapadnoye"], "is_roundtrip": true},
    {"type": "Bus", "name": "635", "stops": ["Biryulyovo Tovarnaya", "Universam", "Prazhskaya"], "is_roundtrip": false},
    {"type": "Stop", "name": "Biryulyovo Zapadnoye", "latitude": 55.574371, "longitude": 37.6517,
      "road_distances": {"Biryulyovo Tovarnaya": 2600}},
    {"type": "Stop", "name": "Biryulyovo Tovarnaya", "latitude": 55.592028, "longitude": 37.653656,
      "road_distances": {"Universam": 890}},
    {"type": "Stop", "name": "Universam", "latitude": 55.587655, "longitude": 37.645687,
      "road_distances": {"Biryulyovo Zapadnoye": 2500, "Biryulyovo Tovarnaya": 1380, "Prazhskaya": 4650}},
    {"type": "Stop", "name": "Prazhskaya", "latitude": 55.611717, "longitude": 37.603938,
      "road_distances": {"Universam": 4650}}
  ]
}`

const processInput = `{
  "serialization_settings": {"file": %q},
  "stat_requests": [
    {"id": 1, "type": "Bus", "name": "297"},
    {"id": 2, "type": "Stop", "name": "Universam"},
    {"id": 3, "type": "Route", "from": "Biryulyovo Zapadnoye", "to": "Universam"},
    {"id": 4, "type": "Route", "from": "Biryulyovo Zapadnoye", "to": "Prazhskaya"},
    {"id": 5, "type": "Route", "from": "Nowhere", "to": "Prazhskaya"}
  ]
}`

func runBoth(t *testing.T, backend, algorithm string) []map[string]any {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snapshot."+backend)
	cfg := config.Default()
	cfg.Storage.Backend = backend
	cfg.Routing.Algorithm = algorithm

	maker := &app{cfg: cfg, logger: discard(), in: strings.NewReader(fmt.Sprintf(makeBaseInput, path)), out: &bytes.Buffer{}}
	require.NoError(t, maker.makeBase(context.Background()))

	var out bytes.Buffer
	proc := &app{cfg: cfg, logger: discard(), in: strings.NewReader(fmt.Sprintf(processInput, path)), out: &out}
	require.NoError(t, proc.processRequests(context.Background()))

	var answers []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &answers))
	return answers
}

func TestMakeBaseThenProcess(t *testing.T) {
	for _, tc := range []struct{ backend, algorithm string }{
		{"file", "dijkstra"},
		{"sqlite", "dijkstra"},
		{"file", "floyd_warshall"},
	} {
		t.Run(tc.backend+"/"+tc.algorithm, func(t *testing.T) {
			answers := runBoth(t, tc.backend, tc.algorithm)
			require.Len(t, answers, 5)

			assert.Equal(t, 4.0, answers[0]["stop_count"])
			assert.Equal(t, 3.0, answers[0]["unique_stop_count"])
			assert.Equal(t, 5990.0, answers[0]["route_length"])

			assert.Equal(t, []any{"297", "635"}, answers[1]["buses"])

			// 2 min wait + 2600 m and 890 m at 30 km/h = 2 + 5.2 + 1.78
			assert.InDelta(t, 8.98, answers[2]["total_time"].(float64), 1e-9)

			// one transfer onto 635; Tovarnaya and Universam tie as transfer points
			route := answers[3]
			items := route["items"].([]any)
			require.Len(t, items, 4)
			assert.Equal(t, "297", items[1].(map[string]any)["bus"])
			assert.Equal(t, "635", items[3].(map[string]any)["bus"])
			assert.InDelta(t, 8.98+2+9.3, route["total_time"].(float64), 1e-9)

			assert.Equal(t, "not found", answers[4]["error_message"])
		})
	}
}

func TestSnapshotPath_Missing(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Path = ""
	a := &app{cfg: cfg, logger: discard(), in: strings.NewReader(`{"base_requests": []}`), out: &bytes.Buffer{}}
	require.ErrorIs(t, a.makeBase(context.Background()), errNoSnapshotPath)
}
