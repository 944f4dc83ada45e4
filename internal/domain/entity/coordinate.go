package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// Coordinate is a WGS84 position stored as (longitude, latitude), the same
// order orb and GeoJSON use. It serializes to JSON as [lng, lat].
type Coordinate = orb.Point

// NewCoordinate builds a coordinate from longitude and latitude.
func NewCoordinate(lng, lat float64) Coordinate {
	return Coordinate{lng, lat}
}

// CoordinateFrom builds an optional coordinate from nullable columns.
// A missing half or a NaN component yields nil.
func CoordinateFrom(lng, lat *float64) *Coordinate {
	if lng == nil || lat == nil || math.IsNaN(*lng) || math.IsNaN(*lat) {
		return nil
	}

	c := NewCoordinate(*lng, *lat)

	return &c
}
