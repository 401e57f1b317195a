// Package spatial provides the geographic helpers behind the explorer's map
// widget queries.
package spatial

import (
	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is Earth's mean radius in meters
const EarthRadiusMeters = 6371000.0

// Distance calculates the great-circle distance between two points in meters
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lng1)
	p2 := s2.LatLngFromDegrees(lat2, lng2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// WithinRadius reports whether a point lies within radius meters of a center
func WithinRadius(centerLat, centerLng, lat, lng, radius float64) bool {
	return Distance(centerLat, centerLng, lat, lng) <= radius
}
