package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/geo"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LocationServiceParams holds the dependencies of the location resolver.
type LocationServiceParams struct {
	fx.In

	Config   *config.Config
	Storage  service.KeyValueStorage
	Device   service.DeviceLocationProvider
	Geocoder service.Geocoder `optional:"true"`
	Logger   *slog.Logger
}

type locationService struct {
	storage  service.KeyValueStorage
	device   service.DeviceLocationProvider
	geocoder service.Geocoder
	cfg      *config.LocationConfig
	logger   *slog.Logger

	// Background probes run on this context so they outlive the request
	// that started them.
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu         sync.RWMutex
	status     entity.LocationStatus
	deviceFix  *entity.Coordinate
	deviceName string
	custom     *entity.SelectedLocation
	probeGen   uint64

	listeners *broadcaster[usecase.LocationSnapshot]
}

// NewLocationService creates the location resolver.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	ctx, cancel := context.WithCancel(context.Background())

	return &locationService{
		storage:   params.Storage,
		device:    params.Device,
		geocoder:  params.Geocoder,
		cfg:       params.Config.LocationOrDefault(),
		logger:    params.Logger,
		ctx:       ctx,
		cancel:    cancel,
		status:    entity.LocationUninitialized,
		listeners: newBroadcaster[usecase.LocationSnapshot](),
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Init loads the persisted custom location, which becomes active without
// waiting for the device. A device probe always starts in the background; with
// a custom location it only records the fix so a later reset can use it.
func (srv *locationService) Init(ctx context.Context) error {
	selected, err := srv.loadSelected(ctx)
	if err != nil {
		srv.log(ctx).Warn("Failed to load persisted location", slog.Any("error", err))
	}

	srv.mu.Lock()
	if selected != nil {
		srv.custom = selected
		srv.status = entity.LocationCustomActive
	} else {
		srv.status = entity.LocationProbingDevice
	}
	snapshot := srv.snapshotLocked()
	srv.mu.Unlock()

	srv.listeners.Notify(snapshot)
	srv.probeAsync()

	return nil
}

func (srv *locationService) loadSelected(ctx context.Context) (*entity.SelectedLocation, error) {
	raw, found, err := srv.storage.GetItem(ctx, srv.cfg.StorageKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read selected location")
	}
	if !found || raw == "" {
		return nil, nil
	}

	var selected entity.SelectedLocation
	if err := json.Unmarshal([]byte(raw), &selected); err != nil {
		return nil, errors.Wrap(err, "failed to decode selected location")
	}
	if !geo.IsValidCoordinate(selected.Coordinates) {
		return nil, errors.Errorf("stored location %v is out of range", selected.Coordinates)
	}

	return &selected, nil
}

func (srv *locationService) ActiveLocation() *entity.EffectiveLocation {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.activeLocked()
}

func (srv *locationService) Snapshot() usecase.LocationSnapshot {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.snapshotLocked()
}

func (srv *locationService) activeLocked() *entity.EffectiveLocation {
	switch {
	case srv.custom != nil:
		return &entity.EffectiveLocation{
			Coordinates: srv.custom.Coordinates,
			Name:        srv.custom.Name,
			IsCustom:    true,
		}
	case srv.deviceFix != nil:
		return &entity.EffectiveLocation{
			Coordinates: *srv.deviceFix,
			Name:        srv.deviceName,
		}
	default:
		return nil
	}
}

func (srv *locationService) snapshotLocked() usecase.LocationSnapshot {
	snapshot := usecase.LocationSnapshot{
		Status:     srv.status,
		DeviceName: srv.deviceName,
		Active:     srv.activeLocked(),
	}
	if srv.deviceFix != nil {
		fix := *srv.deviceFix
		snapshot.Device = &fix
	}
	if srv.custom != nil {
		custom := *srv.custom
		snapshot.Custom = &custom
	}

	return snapshot
}

// SetCustomLocation makes coord the active location before persisting it.
func (srv *locationService) SetCustomLocation(ctx context.Context, coord entity.Coordinate, name string) (usecase.LocationSnapshot, error) {
	if !geo.IsValidCoordinate(coord) {
		return srv.Snapshot(), domainerrors.ErrInvalidCoordinates
	}

	selected := entity.SelectedLocation{Coordinates: coord, Name: strings.TrimSpace(name)}

	srv.mu.Lock()
	srv.custom = &selected
	srv.status = entity.LocationCustomActive
	snapshot := srv.snapshotLocked()
	srv.mu.Unlock()

	srv.listeners.Notify(snapshot)

	payload, err := json.Marshal(selected)
	if err == nil {
		err = srv.storage.SetItem(ctx, srv.cfg.StorageKey, string(payload))
	}
	if err != nil {
		srv.log(ctx).Warn("Failed to persist custom location", slog.Any("error", err))
	}

	return snapshot, nil
}

// ResetToDeviceLocation drops the custom location and re-probes the device.
func (srv *locationService) ResetToDeviceLocation(ctx context.Context) usecase.LocationSnapshot {
	if err := srv.storage.RemoveItem(ctx, srv.cfg.StorageKey); err != nil {
		srv.log(ctx).Warn("Failed to remove custom location", slog.Any("error", err))
	}

	srv.mu.Lock()
	srv.custom = nil
	switch {
	case srv.deviceFix != nil:
		srv.status = entity.LocationDeviceActive
	case srv.status == entity.LocationCustomActive || srv.status == entity.LocationUninitialized:
		srv.status = entity.LocationProbingDevice
	}
	snapshot := srv.snapshotLocked()
	srv.mu.Unlock()

	srv.listeners.Notify(snapshot)
	srv.probeAsync()

	return snapshot
}

func (srv *locationService) probeAsync() {
	srv.wg.Add(1)
	go func() {
		defer srv.wg.Done()
		srv.Retry(srv.ctx)
	}()
}

// Retry asks for permission and reads the device position. Only the most
// recent probe may update the state.
func (srv *locationService) Retry(ctx context.Context) usecase.LocationSnapshot {
	srv.mu.Lock()
	srv.probeGen++
	gen := srv.probeGen
	if srv.custom == nil && srv.deviceFix == nil {
		srv.status = entity.LocationProbingDevice
	}
	srv.mu.Unlock()

	fix, err := srv.probeDevice(ctx)
	if err != nil {
		srv.log(ctx).Info("Device location unavailable", slog.Any("error", err))

		return srv.applyProbe(gen, nil, "")
	}

	// Reverse geocoding is best-effort; the fix is usable with the fallback name.
	snapshot := srv.applyProbe(gen, &fix, srv.cfg.FallbackName)
	if name := srv.reverseGeocode(ctx, fix); name != "" {
		snapshot = srv.applyDeviceName(gen, name)
	}

	return snapshot
}

func (srv *locationService) probeDevice(ctx context.Context) (entity.Coordinate, error) {
	granted, err := srv.device.RequestPermission(ctx)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "failed to request location permission")
	}
	if !granted {
		return entity.Coordinate{}, service.ErrPermissionDenied
	}

	fix, err := srv.device.CurrentPosition(ctx)
	if err != nil {
		return entity.Coordinate{}, errors.Wrap(err, "failed to read device position")
	}
	if !geo.IsValidCoordinate(fix) {
		return entity.Coordinate{}, errors.Wrapf(service.ErrNoPosition, "invalid fix %v", fix)
	}

	return fix, nil
}

func (srv *locationService) reverseGeocode(ctx context.Context, fix entity.Coordinate) string {
	if srv.geocoder == nil {
		return ""
	}

	place, err := srv.geocoder.ReverseGeocode(ctx, fix)
	if err != nil {
		srv.log(ctx).Warn("Reverse geocoding failed", slog.Any("error", err))

		return ""
	}

	return place.Label()
}

func (srv *locationService) applyProbe(gen uint64, fix *entity.Coordinate, name string) usecase.LocationSnapshot {
	srv.mu.Lock()
	if gen != srv.probeGen {
		snapshot := srv.snapshotLocked()
		srv.mu.Unlock()

		return snapshot
	}

	if fix == nil {
		srv.deviceFix = nil
		srv.deviceName = ""
		if srv.custom == nil {
			srv.status = entity.LocationPermissionDenied
		}
	} else {
		srv.deviceFix = fix
		srv.deviceName = name
		if srv.custom == nil {
			srv.status = entity.LocationDeviceActive
		}
	}
	snapshot := srv.snapshotLocked()
	srv.mu.Unlock()

	srv.listeners.Notify(snapshot)

	return snapshot
}

func (srv *locationService) applyDeviceName(gen uint64, name string) usecase.LocationSnapshot {
	srv.mu.Lock()
	if gen != srv.probeGen || srv.deviceFix == nil {
		snapshot := srv.snapshotLocked()
		srv.mu.Unlock()

		return snapshot
	}
	srv.deviceName = name
	snapshot := srv.snapshotLocked()
	srv.mu.Unlock()

	srv.listeners.Notify(snapshot)

	return snapshot
}

func (srv *locationService) SearchPlaces(ctx context.Context, query string) ([]entity.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" || srv.geocoder == nil {
		return []entity.Place{}, nil
	}

	places, err := srv.geocoder.Search(ctx, query)
	if err != nil {
		srv.log(ctx).Error("Place search failed", slog.String("query", query), slog.Any("error", err))

		return nil, domainerrors.ErrGeocodingFailed.WrapMessage(err.Error())
	}

	return places, nil
}

func (srv *locationService) Subscribe(listener func(usecase.LocationSnapshot)) func() {
	return srv.listeners.Subscribe(listener)
}

func (srv *locationService) Close() {
	srv.cancel()
	srv.wg.Wait()
}
