package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath     = "."
	defaultFileName = "config"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Host     string `json:"host" yaml:"host"`
		Port     int    `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout  time.Duration `json:"readTimeout" yaml:"readTimeout"`
			WriteTimeout time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout  time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		// Access is the shared secret the hosted auth provider signs session tokens with.
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Discovery configures listing, ranking and map clustering.
	Discovery *DiscoveryConfig `json:"discovery" yaml:"discovery"`

	// Location configures the location resolver and its adapters.
	Location *LocationConfig `json:"location" yaml:"location"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DiscoveryConfig defines listing and ranking parameters.
type DiscoveryConfig struct {
	// Radius in kilometers applied by the "nearby" filter
	DefaultRadiusKm float64 `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`

	// Maximum distance in meters between two markers grouped into one cluster
	ClusterThresholdMeters float64 `json:"clusterThresholdMeters" yaml:"clusterThresholdMeters"`

	// Above this many markers clustering switches to the R-tree backed search
	ClusterIndexThreshold int `json:"clusterIndexThreshold" yaml:"clusterIndexThreshold"`

	// Look-ahead window of the "this_week" filter
	ThisWeekWindow time.Duration `json:"thisWeekWindow" yaml:"thisWeekWindow"`

	// Distance from a followed route past which the user counts as off route
	OffRouteThresholdMeters float64 `json:"offRouteThresholdMeters" yaml:"offRouteThresholdMeters"`
}

// LocationConfig defines the location resolver configuration.
type LocationConfig struct {
	// gocloud blob URL used as durable key-value storage (file:// or mem://)
	StorageURL string `json:"storageUrl" yaml:"storageUrl"`

	// Storage key holding the user-selected location
	StorageKey string `json:"storageKey" yaml:"storageKey"`

	// Label shown when the device position cannot be reverse geocoded
	FallbackName string `json:"fallbackName" yaml:"fallbackName"`

	Device   *DeviceConfig   `json:"device" yaml:"device"`
	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`
}

// DeviceConfig seeds the device location bridge until the shell reports a fix.
type DeviceConfig struct {
	PermissionGranted bool     `json:"permissionGranted" yaml:"permissionGranted"`
	Latitude          *float64 `json:"latitude" yaml:"latitude"`
	Longitude         *float64 `json:"longitude" yaml:"longitude"`
}

// GeocoderConfig defines the Nominatim-compatible geocoding endpoint.
type GeocoderConfig struct {
	BaseURL           string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent         string        `json:"userAgent" yaml:"userAgent"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	CacheSize         int           `json:"cacheSize" yaml:"cacheSize"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
}

// LoadWithEnv loads a yaml file through koanf and overlays environment variables.
func LoadWithEnv[T any](name string, configPath ...string) (*T, error) {
	configFile, err := findConfigFile(name, configPath...)
	if err != nil {
		return nil, err
	}

	koanfInstance := koanf.New(".")
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", name)
	}

	existingConfigMap := koanfInstance.Raw()

	// DISCOVERY_DEFAULTRADIUSKM -> discovery.defaultRadiusKm, aligned with the yaml keys.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	cfg := new(T)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", name)
	}

	return cfg, nil
}

func findConfigFile(name string, configPath ...string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, name+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", name)
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config](defaultFileName, "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.Discovery = cfg.DiscoveryOrDefault()
	cfg.Location = cfg.LocationOrDefault()

	return cfg, nil
}

// DiscoveryOrDefault returns the discovery section with unset values defaulted.
func (c *Config) DiscoveryOrDefault() *DiscoveryConfig {
	out := DiscoveryConfig{}
	if c != nil && c.Discovery != nil {
		out = *c.Discovery
	}
	if out.DefaultRadiusKm <= 0 {
		out.DefaultRadiusKm = 10
	}
	if out.ClusterThresholdMeters <= 0 {
		out.ClusterThresholdMeters = 20
	}
	if out.ClusterIndexThreshold <= 0 {
		out.ClusterIndexThreshold = 500
	}
	if out.ThisWeekWindow <= 0 {
		out.ThisWeekWindow = 7 * 24 * time.Hour
	}
	if out.OffRouteThresholdMeters <= 0 {
		out.OffRouteThresholdMeters = 50
	}

	return &out
}

// LocationOrDefault returns the location section with unset values defaulted.
func (c *Config) LocationOrDefault() *LocationConfig {
	out := LocationConfig{}
	if c != nil && c.Location != nil {
		out = *c.Location
	}
	if out.StorageURL == "" {
		out.StorageURL = "mem://"
	}
	if out.StorageKey == "" {
		out.StorageKey = "selected_location"
	}
	if out.FallbackName == "" {
		out.FallbackName = "Current location"
	}
	if out.Device == nil {
		out.Device = &DeviceConfig{}
	}

	geocoder := GeocoderConfig{}
	if out.Geocoder != nil {
		geocoder = *out.Geocoder
	}
	if geocoder.BaseURL == "" {
		geocoder.BaseURL = "https://nominatim.openstreetmap.org"
	}
	if geocoder.UserAgent == "" {
		geocoder.UserAgent = "storefront/1.0"
	}
	if geocoder.RequestsPerSecond <= 0 {
		geocoder.RequestsPerSecond = 1
	}
	if geocoder.CacheSize <= 0 {
		geocoder.CacheSize = 256
	}
	if geocoder.Timeout <= 0 {
		geocoder.Timeout = 10 * time.Second
	}
	out.Geocoder = &geocoder

	return &out
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
