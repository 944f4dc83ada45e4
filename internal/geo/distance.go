// Package geo provides the geographic calculations shared by ranking, map
// clustering and navigation. Every distance goes through one haversine
// implementation with one Earth radius.
package geo

import (
	"fmt"
	"math"

	"storefront/internal/domain/entity"
)

// EarthRadiusMeters is the mean Earth radius.
const EarthRadiusMeters = 6371000.0

const metersPerKm = 1000.0

// Unit selects the unit a distance is reported in.
type Unit int

const (
	Meters Unit = iota
	Kilometers
)

// Haversine returns the great-circle distance between a and b in meters.
// NaN components propagate to the result.
func Haversine(a, b entity.Coordinate) float64 {
	lat1 := toRadians(a.Lat())
	lat2 := toRadians(b.Lat())
	dLat := lat2 - lat1
	dLng := toRadians(b.Lon() - a.Lon())

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	// Rounding can push h marginally above 1 for antipodal points.
	h = math.Min(h, 1)

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// Distance returns the great-circle distance between a and b in the given unit.
func Distance(a, b entity.Coordinate, unit Unit) float64 {
	meters := Haversine(a, b)
	if unit == Kilometers {
		return meters / metersPerKm
	}

	return meters
}

// DistanceKm is shorthand for Distance(a, b, Kilometers).
func DistanceKm(a, b entity.Coordinate) float64 {
	return Distance(a, b, Kilometers)
}

// PointToSegmentDistance returns the distance in meters from point to the
// segment [start, end]. The projection parameter is computed on the
// lng/lat plane and clamped to [0,1]; the distance to the projected point is
// then measured with Haversine.
func PointToSegmentDistance(point, start, end entity.Coordinate) float64 {
	dx := end.Lon() - start.Lon()
	dy := end.Lat() - start.Lat()

	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return Haversine(point, start)
	}

	t := ((point.Lon()-start.Lon())*dx + (point.Lat()-start.Lat())*dy) / lengthSq
	t = math.Max(0, math.Min(1, t))

	closest := entity.NewCoordinate(start.Lon()+t*dx, start.Lat()+t*dy)

	return Haversine(point, closest)
}

// DistanceToRoute returns the distance in meters from point to the closest
// segment of a precomputed route. ok is false for an empty route.
func DistanceToRoute(point entity.Coordinate, route []entity.Coordinate) (meters float64, ok bool) {
	switch len(route) {
	case 0:
		return 0, false
	case 1:
		return Haversine(point, route[0]), true
	}

	best := math.Inf(1)
	for i := 1; i < len(route); i++ {
		best = math.Min(best, PointToSegmentDistance(point, route[i-1], route[i]))
	}

	return best, true
}

// FormatDistance renders a distance for display: whole meters below one
// kilometer, one decimal above.
func FormatDistance(meters float64) string {
	if meters < metersPerKm {
		return fmt.Sprintf("%d m", int(math.Round(meters)))
	}

	return fmt.Sprintf("%.1f km", meters/metersPerKm)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
