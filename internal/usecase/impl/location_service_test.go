package impl

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryStorage is a KeyValueStorage that survives a resolver restart.
type memoryStorage struct {
	mu    sync.Mutex
	items map[string]string
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{items: make(map[string]string)}
}

func (m *memoryStorage) GetItem(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]

	return v, ok, nil
}

func (m *memoryStorage) SetItem(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value

	return nil
}

func (m *memoryStorage) RemoveItem(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)

	return nil
}

func newTestLocationService(t *testing.T, storage service.KeyValueStorage, device service.DeviceLocationProvider, geocoder service.Geocoder) usecase.LocationUsecase {
	t.Helper()

	srv := NewLocationService(LocationServiceParams{
		Config:   &config.Config{},
		Storage:  storage,
		Device:   device,
		Geocoder: geocoder,
		Logger:   slog.New(slog.DiscardHandler),
	})
	t.Cleanup(srv.Close)

	return srv
}

func waitForStatus(t *testing.T, srv usecase.LocationUsecase, want entity.LocationStatus) {
	t.Helper()

	require.Eventually(t, func() bool {
		return srv.Snapshot().Status == want
	}, time.Second, 5*time.Millisecond)
}

func TestLocationService_CustomLocationSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage()
	paris := entity.NewCoordinate(2.3522, 48.8566)

	// First run: the device probe succeeds, then the user picks Paris.
	device := mockService.NewMockDeviceLocationProvider(t)
	device.EXPECT().RequestPermission(mock.Anything).Return(true, nil)
	device.EXPECT().CurrentPosition(mock.Anything).Return(entity.NewCoordinate(-3.7038, 40.4168), nil)

	first := newTestLocationService(t, storage, device, nil)
	require.NoError(t, first.Init(ctx))
	waitForStatus(t, first, entity.LocationDeviceActive)

	_, err := first.SetCustomLocation(ctx, paris, "Paris")
	require.NoError(t, err)
	first.Close()

	// Second run: the device answers only after the custom location is served.
	madrid := entity.NewCoordinate(-3.7038, 40.4168)
	release := make(chan struct{})
	slowDevice := mockService.NewMockDeviceLocationProvider(t)
	slowDevice.EXPECT().RequestPermission(mock.Anything).
		RunAndReturn(func(context.Context) (bool, error) {
			<-release

			return true, nil
		})
	slowDevice.EXPECT().CurrentPosition(mock.Anything).Return(madrid, nil)

	second := newTestLocationService(t, storage, slowDevice, nil)
	require.NoError(t, second.Init(ctx))

	snapshot := second.Snapshot()
	assert.Equal(t, entity.LocationCustomActive, snapshot.Status)
	assert.True(t, snapshot.IsCustomLocation())
	assert.Nil(t, snapshot.Device)
	require.NotNil(t, second.ActiveLocation())
	assert.Equal(t, paris, second.ActiveLocation().Coordinates)
	assert.Equal(t, "Paris", second.ActiveLocation().Name)

	// The background fix is recorded without displacing the custom location.
	close(release)
	require.Eventually(t, func() bool {
		return second.Snapshot().Device != nil
	}, time.Second, 5*time.Millisecond)

	snapshot = second.Snapshot()
	assert.Equal(t, madrid, *snapshot.Device)
	assert.Equal(t, entity.LocationCustomActive, snapshot.Status)
	assert.Equal(t, paris, second.ActiveLocation().Coordinates)

	reset := second.ResetToDeviceLocation(ctx)
	assert.Equal(t, entity.LocationDeviceActive, reset.Status)
	assert.Equal(t, madrid, reset.Active.Coordinates)
}

func TestLocationService_Init_ProbesDevice(t *testing.T) {
	ctx := context.Background()
	fix := entity.NewCoordinate(121.5654, 25.0330)

	storage := mockService.NewMockKeyValueStorage(t)
	storage.EXPECT().GetItem(ctx, "selected_location").Return("", false, nil)

	device := mockService.NewMockDeviceLocationProvider(t)
	device.EXPECT().RequestPermission(mock.Anything).Return(true, nil)
	device.EXPECT().CurrentPosition(mock.Anything).Return(fix, nil)

	geocoder := mockService.NewMockGeocoder(t)
	geocoder.EXPECT().ReverseGeocode(mock.Anything, fix).Return(&entity.Place{Name: "Xinyi", City: "Taipei"}, nil)

	srv := newTestLocationService(t, storage, device, geocoder)
	require.NoError(t, srv.Init(ctx))

	require.Eventually(t, func() bool {
		return srv.Snapshot().DeviceName == "Taipei"
	}, time.Second, 5*time.Millisecond)

	active := srv.ActiveLocation()
	require.NotNil(t, active)
	assert.Equal(t, fix, active.Coordinates)
	assert.False(t, active.IsCustom)
	assert.Equal(t, entity.LocationDeviceActive, srv.Snapshot().Status)
}

func TestLocationService_Init_PermissionDenied(t *testing.T) {
	ctx := context.Background()

	device := mockService.NewMockDeviceLocationProvider(t)
	device.EXPECT().RequestPermission(mock.Anything).Return(false, nil)

	srv := newTestLocationService(t, newMemoryStorage(), device, nil)
	require.NoError(t, srv.Init(ctx))

	waitForStatus(t, srv, entity.LocationPermissionDenied)
	assert.Nil(t, srv.ActiveLocation())
}

func TestLocationService_ReverseGeocodeFailureUsesFallbackName(t *testing.T) {
	ctx := context.Background()
	fix := entity.NewCoordinate(10, 10)

	device := mockService.NewMockDeviceLocationProvider(t)
	device.EXPECT().RequestPermission(ctx).Return(true, nil)
	device.EXPECT().CurrentPosition(ctx).Return(fix, nil)

	geocoder := mockService.NewMockGeocoder(t)
	geocoder.EXPECT().ReverseGeocode(ctx, fix).Return(nil, errors.New("rate limited"))

	srv := newTestLocationService(t, newMemoryStorage(), device, geocoder)

	snapshot := srv.Retry(ctx)
	assert.Equal(t, entity.LocationDeviceActive, snapshot.Status)
	require.NotNil(t, snapshot.Active)
	assert.Equal(t, "Current location", snapshot.Active.Name)
}

func TestLocationService_SetCustomLocation_StorageFailureKeepsState(t *testing.T) {
	ctx := context.Background()
	coord := entity.NewCoordinate(-0.1276, 51.5072)

	storage := mockService.NewMockKeyValueStorage(t)
	storage.EXPECT().SetItem(ctx, "selected_location", mock.AnythingOfType("string")).Return(errors.New("disk full"))

	srv := newTestLocationService(t, storage, mockService.NewMockDeviceLocationProvider(t), nil)

	var notified []usecase.LocationSnapshot
	srv.Subscribe(func(s usecase.LocationSnapshot) { notified = append(notified, s) })

	snapshot, err := srv.SetCustomLocation(ctx, coord, " London ")
	require.NoError(t, err)
	assert.Equal(t, entity.LocationCustomActive, snapshot.Status)
	assert.Equal(t, "London", snapshot.Active.Name)
	assert.Equal(t, coord, srv.ActiveLocation().Coordinates)
	require.Len(t, notified, 1)
	assert.True(t, notified[0].IsCustomLocation())
}

func TestLocationService_SetCustomLocation_RejectsInvalidCoordinates(t *testing.T) {
	srv := newTestLocationService(t, mockService.NewMockKeyValueStorage(t), mockService.NewMockDeviceLocationProvider(t), nil)

	_, err := srv.SetCustomLocation(context.Background(), entity.NewCoordinate(200, 0), "Nowhere")

	require.ErrorIs(t, err, domainerrors.ErrInvalidCoordinates)
	assert.Nil(t, srv.ActiveLocation())
}

func TestLocationService_ResetToDeviceLocation(t *testing.T) {
	ctx := context.Background()
	fix := entity.NewCoordinate(139.6917, 35.6895)
	storage := newMemoryStorage()

	device := mockService.NewMockDeviceLocationProvider(t)
	device.EXPECT().RequestPermission(mock.Anything).Return(true, nil)
	device.EXPECT().CurrentPosition(mock.Anything).Return(fix, nil)

	srv := newTestLocationService(t, storage, device, nil)
	srv.Retry(ctx)

	_, err := srv.SetCustomLocation(ctx, entity.NewCoordinate(2.35, 48.85), "Paris")
	require.NoError(t, err)

	snapshot := srv.ResetToDeviceLocation(ctx)
	assert.Equal(t, entity.LocationDeviceActive, snapshot.Status)
	assert.False(t, snapshot.IsCustomLocation())
	assert.Equal(t, fix, snapshot.Active.Coordinates)

	_, found, _ := storage.GetItem(ctx, "selected_location")
	assert.False(t, found)

	// The reset re-probes the device in the background.
	srv.Close()
	device.AssertNumberOfCalls(t, "RequestPermission", 2)
}

func TestLocationService_ResetWithoutDeviceBecomesDenied(t *testing.T) {
	ctx := context.Background()

	device := mockService.NewMockDeviceLocationProvider(t)
	device.EXPECT().RequestPermission(mock.Anything).Return(false, nil)

	srv := newTestLocationService(t, newMemoryStorage(), device, nil)
	_, err := srv.SetCustomLocation(ctx, entity.NewCoordinate(2.35, 48.85), "Paris")
	require.NoError(t, err)

	srv.ResetToDeviceLocation(ctx)

	waitForStatus(t, srv, entity.LocationPermissionDenied)
	assert.Nil(t, srv.ActiveLocation())
}

func TestLocationService_SearchPlaces(t *testing.T) {
	ctx := context.Background()
	places := []entity.Place{{Name: "Lyon", Coordinates: entity.NewCoordinate(4.8357, 45.764)}}

	geocoder := mockService.NewMockGeocoder(t)
	geocoder.EXPECT().Search(ctx, "lyon").Return(places, nil).Once()
	geocoder.EXPECT().Search(ctx, "fail").Return(nil, errors.New("upstream down")).Once()

	srv := newTestLocationService(t, newMemoryStorage(), mockService.NewMockDeviceLocationProvider(t), geocoder)

	got, err := srv.SearchPlaces(ctx, "  lyon ")
	require.NoError(t, err)
	assert.Equal(t, places, got)

	empty, err := srv.SearchPlaces(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = srv.SearchPlaces(ctx, "fail")
	require.ErrorIs(t, err, domainerrors.ErrGeocodingFailed)
}
