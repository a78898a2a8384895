// SPDX-License-Identifier: MIT

package catalogue_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transcat/catalogue"
	"github.com/katalvlaran/transcat/geo"
)

type stopRow struct {
	name     string
	lat, lng float64
	roads    map[string]float64
}

// canonicalStops is the ten-stop Moscow sample used across catalogue tests.
var canonicalStops = []stopRow{
	{"Tolstopaltsevo", 55.611087, 37.20829, map[string]float64{"Marushkino": 3900}},
	{"Marushkino", 55.595884, 37.209755, map[string]float64{"Rasskazovka": 9900, "Marushkino": 100}},
	{"Rasskazovka", 55.632761, 37.333324, map[string]float64{"Marushkino": 9500}},
	{"Biryulyovo Zapadnoye", 55.574371, 37.6517, map[string]float64{
		"Rossoshanskaya ulitsa": 7500, "Biryusinka": 1800, "Universam": 2400,
	}},
	{"Biryusinka", 55.581065, 37.64839, map[string]float64{"Universam": 750}},
	{"Universam", 55.587655, 37.645687, map[string]float64{
		"Rossoshanskaya ulitsa": 5600, "Biryulyovo Tovarnaya": 900,
	}},
	{"Biryulyovo Tovarnaya", 55.592028, 37.653656, map[string]float64{"Biryulyovo Passazhirskaya": 1300}},
	{"Biryulyovo Passazhirskaya", 55.580999, 37.659164, map[string]float64{"Biryulyovo Zapadnoye": 1200}},
	{"Rossoshanskaya ulitsa", 55.595579, 37.605757, nil},
	{"Prazhskaya", 55.611678, 37.603831, nil},
}

// loadCanonical fills a Database the way a loader does: stops, distances, buses.
func loadCanonical(t testing.TB) *catalogue.Database {
	t.Helper()
	db := catalogue.New()
	for _, s := range canonicalStops {
		_, err := db.AddStop(s.name, geo.Coordinates{Lat: s.lat, Lng: s.lng})
		require.NoError(t, err)
	}
	for _, s := range canonicalStops {
		for to, m := range s.roads {
			require.NoError(t, db.SetMeasuredDistance(s.name, to, m))
		}
	}

	buses := []struct {
		name      string
		stops     []string
		roundtrip bool
	}{
		{"256", []string{
			"Biryulyovo Zapadnoye", "Biryusinka", "Universam",
			"Biryulyovo Tovarnaya", "Biryulyovo Passazhirskaya", "Biryulyovo Zapadnoye",
		}, true},
		{"750", []string{"Tolstopaltsevo", "Marushkino", "Marushkino", "Rasskazovka"}, false},
		{"828", []string{
			"Biryulyovo Zapadnoye", "Universam", "Rossoshanskaya ulitsa", "Biryulyovo Zapadnoye",
		}, true},
	}
	for _, b := range buses {
		_, err := db.AddBus(b.name, catalogue.ExpandRoute(b.stops, b.roundtrip), b.roundtrip)
		require.NoError(t, err)
	}

	return db
}
