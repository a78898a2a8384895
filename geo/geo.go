// SPDX-License-Identifier: MIT

// Package geo computes great-circle distances between stop coordinates.
//
// Distances follow the spherical law of cosines on a sphere of radius
// EarthRadiusMeters. The approximation is good to a few meters at city scale,
// which is the precision the catalogue works with.
package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used by ComputeDistance.
const EarthRadiusMeters = 6_371_000

// Coordinates is a WGS 84 point in degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// ComputeDistance returns the great-circle distance in meters between a and b.
// Identical coordinates yield exactly 0.
func ComputeDistance(a, b Coordinates) float64 {
	if a == b {
		return 0
	}
	latA, latB := toRad(a.Lat), toRad(b.Lat)
	cos := math.Sin(latA)*math.Sin(latB) +
		math.Cos(latA)*math.Cos(latB)*math.Cos(math.Abs(toRad(a.Lng-b.Lng)))
	// rounding can push nearly coincident points just past 1
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos) * EarthRadiusMeters
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
