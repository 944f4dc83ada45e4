// Package location provides the device and geocoding adapters behind the
// location resolver.
package location

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

const searchResultLimit = 5

// nominatimAddress is the subset of the jsonv2 address block we read.
type nominatimAddress struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type nominatimPlace struct {
	DisplayName string           `json:"display_name"`
	Name        string           `json:"name"`
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	Address     nominatimAddress `json:"address"`
	Error       string           `json:"error"`
}

type nominatimGeocoder struct {
	baseURL   string
	userAgent string
	client    *http.Client
	limiter   *rate.Limiter
	reverse   *lru.Cache[string, *entity.Place]
	logger    *slog.Logger
}

// NewNominatimGeocoder creates a rate limited client for a Nominatim-compatible endpoint.
func NewNominatimGeocoder(cfg *config.Config, logger *slog.Logger) (service.Geocoder, error) {
	geocoderCfg := cfg.LocationOrDefault().Geocoder

	cache, err := lru.New[string, *entity.Place](geocoderCfg.CacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "create reverse geocode cache")
	}

	return &nominatimGeocoder{
		baseURL:   strings.TrimRight(geocoderCfg.BaseURL, "/"),
		userAgent: geocoderCfg.UserAgent,
		client:    &http.Client{Timeout: geocoderCfg.Timeout},
		limiter:   rate.NewLimiter(rate.Limit(geocoderCfg.RequestsPerSecond), 1),
		reverse:   cache,
		logger:    logger.With("component", "nominatim_geocoder"),
	}, nil
}

func (g *nominatimGeocoder) ReverseGeocode(ctx context.Context, coord entity.Coordinate) (*entity.Place, error) {
	// ~1 m precision is enough to share a lookup between nearby fixes.
	key := fmt.Sprintf("%.5f,%.5f", coord.Lat(), coord.Lon())
	if place, ok := g.reverse.Get(key); ok {
		return place, nil
	}

	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("addressdetails", "1")
	query.Set("lat", strconv.FormatFloat(coord.Lat(), 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coord.Lon(), 'f', -1, 64))

	var result nominatimPlace
	if err := g.get(ctx, "/reverse", query, &result); err != nil {
		return nil, err
	}
	if result.Error != "" {
		return nil, errors.Errorf("reverse geocode: %s", result.Error)
	}

	place, err := result.toPlace()
	if err != nil {
		return nil, err
	}
	g.reverse.Add(key, place)

	return place, nil
}

func (g *nominatimGeocoder) Search(ctx context.Context, text string) ([]entity.Place, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []entity.Place{}, nil
	}

	query := url.Values{}
	query.Set("format", "jsonv2")
	query.Set("addressdetails", "1")
	query.Set("q", text)
	query.Set("limit", strconv.Itoa(searchResultLimit))

	var results []nominatimPlace
	if err := g.get(ctx, "/search", query, &results); err != nil {
		return nil, err
	}

	places := make([]entity.Place, 0, len(results))
	for _, result := range results {
		place, err := result.toPlace()
		if err != nil {
			g.logger.WarnContext(ctx, "Skipping malformed search result", slog.String("name", result.DisplayName), slog.Any("error", err))

			continue
		}
		places = append(places, *place)
	}

	return places, nil
}

func (g *nominatimGeocoder) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := g.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "geocoder rate limit wait")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "create geocoder request")
	}
	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "geocoder request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode geocoder response")
	}

	return nil
}

func (p nominatimPlace) toPlace() (*entity.Place, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse latitude %q", p.Lat)
	}
	lng, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return nil, errors.Wrapf(err, "parse longitude %q", p.Lon)
	}

	city := p.Address.City
	if city == "" {
		city = p.Address.Town
	}
	if city == "" {
		city = p.Address.Village
	}

	name := p.DisplayName
	if name == "" {
		name = p.Name
	}

	return &entity.Place{
		Name:        name,
		City:        city,
		Region:      p.Address.State,
		Country:     p.Address.Country,
		Coordinates: entity.NewCoordinate(lng, lat),
	}, nil
}
