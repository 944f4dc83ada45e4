package location

import (
	"context"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// StaticDeviceProvider is the device bridge for a headless process. It starts
// from configuration and is updated by whoever owns the real GPS.
type StaticDeviceProvider struct {
	mu       sync.RWMutex
	granted  bool
	position *entity.Coordinate
}

var _ service.DeviceLocationProvider = (*StaticDeviceProvider)(nil)

// NewStaticDeviceProvider seeds the provider from the location.device section.
func NewStaticDeviceProvider(cfg *config.Config) *StaticDeviceProvider {
	device := cfg.LocationOrDefault().Device

	return &StaticDeviceProvider{
		granted:  device.PermissionGranted,
		position: entity.CoordinateFrom(device.Longitude, device.Latitude),
	}
}

func (p *StaticDeviceProvider) RequestPermission(_ context.Context) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.granted, nil
}

func (p *StaticDeviceProvider) CurrentPosition(_ context.Context) (entity.Coordinate, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.granted {
		return entity.Coordinate{}, service.ErrPermissionDenied
	}
	if p.position == nil {
		return entity.Coordinate{}, service.ErrNoPosition
	}

	return *p.position, nil
}

// SetPermission records the outcome of a platform permission prompt.
func (p *StaticDeviceProvider) SetPermission(granted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.granted = granted
}

// SetPosition records a new device fix.
func (p *StaticDeviceProvider) SetPosition(coord entity.Coordinate) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.position = &coord
}
