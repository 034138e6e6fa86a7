// Package geo resolves addresses to coordinates and decides whether they
// fall inside the store's service radius.
package geo

import "math"

const earthRadiusMiles = 3963.0

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// IsZero reports the (0,0) coordinate the geocoder yields for an
// unresolved address.
func (c Coordinate) IsZero() bool {
	return c.Lat == 0 && c.Lon == 0
}

// DistanceMiles computes the great-circle distance between two coordinates
// using the haversine formula.
func DistanceMiles(a, b Coordinate) float64 {
	lat1 := degToRad(a.Lat)
	lon1 := degToRad(a.Lon)
	lat2 := degToRad(b.Lat)
	lon2 := degToRad(b.Lon)

	deltaLat := lat2 - lat1
	deltaLon := lon2 - lon1

	h := math.Pow(math.Sin(deltaLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(deltaLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

// WithinRadius reports whether candidate lies within radiusMiles of store.
// The zero coordinate means the geocode did not resolve, so it is never
// within range regardless of the radius.
func WithinRadius(store, candidate Coordinate, radiusMiles float64) bool {
	if candidate.IsZero() {
		return false
	}
	d := DistanceMiles(store, candidate)
	return d >= 0 && d <= radiusMiles
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
