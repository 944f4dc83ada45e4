// Package usecase declares the application services exposed to the delivery layer.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// LocationSnapshot is the observable state of the location resolver.
type LocationSnapshot struct {
	Status entity.LocationStatus `json:"status"`

	// Device is the last device fix, nil until a probe succeeds.
	Device     *entity.Coordinate `json:"device,omitempty"`
	DeviceName string             `json:"device_name,omitempty"`

	// Custom is the persisted user selection, if any.
	Custom *entity.SelectedLocation `json:"custom,omitempty"`

	// Active is the location geo-aware queries run against, nil while
	// loading or when permission is denied and no custom location exists.
	Active *entity.EffectiveLocation `json:"active,omitempty"`
}

// IsCustomLocation reports whether the active location is a user selection.
func (s LocationSnapshot) IsCustomLocation() bool {
	return s.Active != nil && s.Active.IsCustom
}

// LocationUsecase resolves the effective location from a persisted custom
// selection or the device position.
type LocationUsecase interface {
	// Init loads the persisted selection. Without one it starts a background
	// device probe; with one the device is not probed.
	Init(ctx context.Context) error

	// ActiveLocation returns the custom location if set, else the device
	// location, else nil.
	ActiveLocation() *entity.EffectiveLocation
	Snapshot() LocationSnapshot

	// SetCustomLocation switches to a user-chosen location. The in-memory state
	// changes before the write to durable storage; a failed write is logged only.
	SetCustomLocation(ctx context.Context, coord entity.Coordinate, name string) (LocationSnapshot, error)

	// ResetToDeviceLocation forgets the custom selection and re-probes the device.
	ResetToDeviceLocation(ctx context.Context) LocationSnapshot

	// Retry probes device permission and position synchronously.
	Retry(ctx context.Context) LocationSnapshot

	// SearchPlaces forward-geocodes a free-text query.
	SearchPlaces(ctx context.Context, query string) ([]entity.Place, error)

	// Subscribe registers a listener called after every state change.
	Subscribe(listener func(LocationSnapshot)) (unsubscribe func())

	// Close stops background probes.
	Close()
}
