package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"discovery": map[string]any{
			"defaultRadiusKm": 10,
		},
		"location": map[string]any{
			"storageUrl": "mem://",
			"geocoder": map[string]any{
				"baseUrl": "",
			},
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "DISCOVERY_DEFAULTRADIUSKM", want: "discovery.defaultRadiusKm"},
		{envKey: "LOCATION_STORAGEURL", want: "location.storageUrl"},
		{envKey: "LOCATION_GEOCODER_BASEURL", want: "location.geocoder.baseUrl"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
env:
  serviceName: storefront
discovery:
  defaultRadiusKm: 10
  thisWeekWindow: 72h
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("DISCOVERY_DEFAULTRADIUSKM", "25")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)
	require.NotNil(t, cfg.Discovery)
	assert.Equal(t, "storefront", cfg.Env.ServiceName)
	assert.InDelta(t, 25.0, cfg.Discovery.DefaultRadiusKm, 1e-9)
	assert.Equal(t, 72*time.Hour, cfg.Discovery.ThisWeekWindow)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}

	discovery := cfg.DiscoveryOrDefault()
	assert.InDelta(t, 10.0, discovery.DefaultRadiusKm, 1e-9)
	assert.InDelta(t, 20.0, discovery.ClusterThresholdMeters, 1e-9)
	assert.Equal(t, 500, discovery.ClusterIndexThreshold)
	assert.Equal(t, 7*24*time.Hour, discovery.ThisWeekWindow)
	assert.InDelta(t, 50.0, discovery.OffRouteThresholdMeters, 1e-9)

	location := cfg.LocationOrDefault()
	assert.Equal(t, "mem://", location.StorageURL)
	assert.Equal(t, "selected_location", location.StorageKey)
	assert.NotNil(t, location.Device)
	require.NotNil(t, location.Geocoder)
	assert.Equal(t, 256, location.Geocoder.CacheSize)
}
