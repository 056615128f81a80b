// Package geo provides great-circle distance over the WGS 84 mean radius.
// A single formula backs every distance comparison in the planner so that
// nearest-neighbor choices stay stable across call sites.
package geo

import (
	"math"

	"nightshift-routing-service/internal/domain"
)

const earthRadiusKm = 6371.0

// Kilometers returns the haversine great-circle distance between two
// coordinates. Pure computation: no I/O, no error path. NaN or infinite
// inputs propagate into the result unchanged.
func Kilometers(a, b domain.Coordinates) float64 {
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(a.Lat*math.Pi/180)*math.Cos(b.Lat*math.Pi/180)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
