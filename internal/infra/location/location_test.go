package location

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, handler http.HandlerFunc) service.Geocoder {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{Location: &config.LocationConfig{
		Geocoder: &config.GeocoderConfig{
			BaseURL:           server.URL,
			UserAgent:         "storefront-test",
			RequestsPerSecond: 1000,
		},
	}}

	geocoder, err := NewNominatimGeocoder(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return geocoder
}

func TestNominatimGeocoder_ReverseGeocode(t *testing.T) {
	var calls atomic.Int32
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		assert.Equal(t, "25.033", r.URL.Query().Get("lat"))
		assert.Equal(t, "121.5654", r.URL.Query().Get("lon"))
		assert.Equal(t, "storefront-test", r.Header.Get("User-Agent"))

		_, _ = io.WriteString(w, `{
			"display_name": "Taipei 101, Xinyi District, Taipei, Taiwan",
			"lat": "25.0330",
			"lon": "121.5654",
			"address": {"town": "Xinyi", "state": "Taipei", "country": "Taiwan"}
		}`)
	})

	coord := entity.NewCoordinate(121.5654, 25.033)
	place, err := geocoder.ReverseGeocode(context.Background(), coord)
	require.NoError(t, err)
	assert.Equal(t, "Xinyi", place.City)
	assert.Equal(t, "Taipei", place.Region)
	assert.Equal(t, "Taiwan", place.Country)
	assert.Equal(t, "Xinyi", place.Label())
	assert.InDelta(t, 121.5654, place.Coordinates.Lon(), 1e-9)

	// Second lookup of the same coordinate is served from the cache.
	_, err = geocoder.ReverseGeocode(context.Background(), coord)
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNominatimGeocoder_ReverseGeocodeErrors(t *testing.T) {
	t.Run("unable to geocode", func(t *testing.T) {
		geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, `{"error": "Unable to geocode"}`)
		})

		_, err := geocoder.ReverseGeocode(context.Background(), entity.NewCoordinate(0, 0))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unable to geocode")
	})

	t.Run("upstream failure", func(t *testing.T) {
		geocoder := newTestGeocoder(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})

		_, err := geocoder.ReverseGeocode(context.Background(), entity.NewCoordinate(0, 0))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})
}

func TestNominatimGeocoder_Search(t *testing.T) {
	geocoder := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "night market", r.URL.Query().Get("q"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		_, _ = io.WriteString(w, `[
			{"display_name": "Raohe Night Market", "lat": "25.0509", "lon": "121.5775", "address": {"city": "Taipei"}},
			{"display_name": "Broken", "lat": "n/a", "lon": "121.0"},
			{"display_name": "Shilin Night Market", "lat": "25.0880", "lon": "121.5240", "address": {"village": "Shilin"}}
		]`)
	})

	places, err := geocoder.Search(context.Background(), "  night market ")
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Taipei", places[0].City)
	assert.Equal(t, "Shilin", places[1].City)
	assert.InDelta(t, 25.088, places[1].Coordinates.Lat(), 1e-9)
}

func TestNominatimGeocoder_SearchBlankSkipsRequest(t *testing.T) {
	geocoder := newTestGeocoder(t, func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("unexpected request")
	})

	places, err := geocoder.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, places)
}

func TestStaticDeviceProvider(t *testing.T) {
	lat, lng := 25.04, 121.51
	cfg := &config.Config{Location: &config.LocationConfig{
		Device: &config.DeviceConfig{PermissionGranted: true, Latitude: &lat, Longitude: &lng},
	}}
	ctx := context.Background()

	provider := NewStaticDeviceProvider(cfg)

	granted, err := provider.RequestPermission(ctx)
	require.NoError(t, err)
	assert.True(t, granted)

	pos, err := provider.CurrentPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.NewCoordinate(lng, lat), pos)

	provider.SetPosition(entity.NewCoordinate(120.0, 23.0))
	pos, err = provider.CurrentPosition(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.NewCoordinate(120.0, 23.0), pos)

	provider.SetPermission(false)
	_, err = provider.CurrentPosition(ctx)
	require.ErrorIs(t, err, service.ErrPermissionDenied)
}

func TestStaticDeviceProvider_NoFix(t *testing.T) {
	provider := NewStaticDeviceProvider(&config.Config{Location: &config.LocationConfig{
		Device: &config.DeviceConfig{PermissionGranted: true},
	}})

	_, err := provider.CurrentPosition(context.Background())
	require.ErrorIs(t, err, service.ErrNoPosition)
}
