package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// FilterType selects how a collection is narrowed before ranking.
type FilterType string

const (
	FilterAll      FilterType = "all"
	FilterNearby   FilterType = "nearby"
	FilterThisWeek FilterType = "this_week"
	FilterUpcoming FilterType = "upcoming"
	FilterBoosted  FilterType = "boosted"
)

// ErrUnknownFilter is returned when parsing an unsupported filter type.
var ErrUnknownFilter = errors.New("unknown filter type")

// ParseFilterType parses a filter name. An empty string means FilterAll.
func ParseFilterType(raw string) (FilterType, error) {
	switch f := FilterType(raw); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterNearby, FilterThisWeek, FilterUpcoming, FilterBoosted:
		return f, nil
	default:
		return "", errors.Wrapf(ErrUnknownFilter, "%q", raw)
	}
}

// FetchParams describes one consumer's view of a collection.
type FetchParams struct {
	SearchQuery string
	Filter      FilterType

	// Reference overrides the active location for distance ranking.
	Reference *entity.Coordinate

	// RadiusKm overrides the default "nearby" radius when positive.
	RadiusKm float64
}

// CollectionState is what a consumer renders: the ranked data, whether a
// fetch is running, and the message of the last failed fetch. Data from the
// last successful fetch is kept when a later fetch fails.
type CollectionState[T any] struct {
	Data      []entity.Ranked[T] `json:"data"`
	Loading   bool               `json:"loading"`
	Error     string             `json:"error,omitempty"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// CollectionUsecase is a shared cache of one entity collection. Consumers
// with the same search query share a single fetch and a single cache entry.
type CollectionUsecase[T entity.Discoverable] interface {
	// Watch registers a listener for the view described by params and returns
	// the current state. The first watcher of an unloaded entry starts a fetch.
	Watch(ctx context.Context, params FetchParams, listener func(CollectionState[T])) (CollectionState[T], func())

	// Refetch reloads the entry for params, notifies every watcher of that
	// entry and returns the resulting view. Concurrent calls share one fetch.
	Refetch(ctx context.Context, params FetchParams) CollectionState[T]

	// Current returns the cached view without fetching.
	Current(params FetchParams) CollectionState[T]

	// Invalidate discards in-flight results. Cached data stays visible.
	Invalidate()

	Close()
}

// Collection aliases used for dependency injection.
type (
	OfferCollection    = CollectionUsecase[*entity.Offer]
	EventCollection    = CollectionUsecase[*entity.Event]
	CommerceCollection = CollectionUsecase[*entity.Commerce]
)
