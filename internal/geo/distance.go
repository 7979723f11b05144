// Package geo holds the pure distance model used by vendor allocation.
// Spherical approximation only; good to well under 0.5% at city-scale
// delivery radii.
package geo

import (
	"math"

	"aquadrop/internal/domain"
)

const earthRadiusKm = 6371.0

// Distance returns the great-circle distance between two coordinates in
// kilometers, per the Haversine formula. Total over all valid coordinate
// pairs and symmetric in its arguments.
func Distance(a, b domain.Coordinate) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	h := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// Within reports whether point lies within radiusKm of center.
func Within(center, point domain.Coordinate, radiusKm float64) bool {
	return Distance(center, point) <= radiusKm
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
