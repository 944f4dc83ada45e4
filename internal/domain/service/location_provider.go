package service

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

var (
	// ErrPermissionDenied is returned when the user refused location access.
	ErrPermissionDenied = errors.New("location permission denied")
	// ErrNoPosition is returned when no device fix is available.
	ErrNoPosition = errors.New("device position unavailable")
)

// DeviceLocationProvider is the device GPS.
type DeviceLocationProvider interface {
	// RequestPermission asks for location access and reports whether it was granted.
	RequestPermission(ctx context.Context) (bool, error)

	// CurrentPosition returns the latest device fix.
	CurrentPosition(ctx context.Context) (entity.Coordinate, error)
}

// Geocoder converts between coordinates and human-readable places.
type Geocoder interface {
	// ReverseGeocode names the place at a coordinate.
	ReverseGeocode(ctx context.Context, coord entity.Coordinate) (*entity.Place, error)

	// Search resolves a free-text query into candidate places.
	Search(ctx context.Context, query string) ([]entity.Place, error)
}
