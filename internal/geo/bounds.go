package geo

import (
	"math"

	"storefront/internal/domain/entity"

	"github.com/paulmach/orb"
)

// BoundingBox returns the smallest box containing every coordinate.
// For an empty input the box is inverted (Min > Max); callers must check
// IsValidBounds before fitting a map camera to it.
func BoundingBox(coordinates []entity.Coordinate) orb.Bound {
	bound := orb.Bound{
		Min: orb.Point{math.Inf(1), math.Inf(1)},
		Max: orb.Point{math.Inf(-1), math.Inf(-1)},
	}

	for _, c := range coordinates {
		bound.Min[0] = math.Min(bound.Min[0], c.Lon())
		bound.Min[1] = math.Min(bound.Min[1], c.Lat())
		bound.Max[0] = math.Max(bound.Max[0], c.Lon())
		bound.Max[1] = math.Max(bound.Max[1], c.Lat())
	}

	return bound
}

// IsValidBounds reports whether b was built from at least one coordinate.
func IsValidBounds(b orb.Bound) bool {
	return b.Min[0] <= b.Max[0] && b.Min[1] <= b.Max[1]
}

// IsValidCoordinate reports whether c is a finite WGS84 position.
func IsValidCoordinate(c entity.Coordinate) bool {
	lng, lat := c.Lon(), c.Lat()
	if math.IsNaN(lng) || math.IsNaN(lat) {
		return false
	}

	return lng >= -180 && lng <= 180 && lat >= -90 && lat <= 90
}
