package models

import "time"

// Meter is a registered energy meter with its map location.
type Meter struct {
	ID        string    `json:"id" db:"id"`
	Lat       float64   `json:"lat" db:"lat"`
	Lng       float64   `json:"lng" db:"lng"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NearbyMeter is a meter annotated with its distance from a query point.
type NearbyMeter struct {
	Meter
	DistanceMeters float64 `json:"distance_meters"`
}
