package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/ranking"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/singleflight"
)

// collectionSource adapts one catalog table to the shared collection cache.
type collectionSource[T entity.Discoverable] struct {
	kind entity.EntityType
	load func(ctx context.Context, query repository.CatalogQuery) ([]T, error)

	// parentID and attach join the owning commerce. Both are nil for commerces.
	parentID func(T) uuid.UUID
	attach   func(T, *entity.Commerce)

	// startsAt feeds the time-window filters. Nil means the filters do not apply:
	// commerces have no date and offers are only loaded once they have started.
	startsAt func(T) *time.Time

	// likeCount is nil for entities that cannot be liked.
	likeCount func(T) int
}

// CountSeeder receives like counters observed in fetched collections.
type CountSeeder interface {
	SeedCounts(entityType entity.EntityType, counts map[uuid.UUID]int)
}

// CollectionServiceParams holds the dependencies shared by every collection.
type CollectionServiceParams struct {
	Config   *config.Config
	Catalog  repository.CatalogRepository
	Location usecase.LocationUsecase
	Likes    CountSeeder
	Logger   *slog.Logger
}

// cacheEntry holds the rows fetched for one search query. Views for
// individual watchers are computed from it on every notification.
type cacheEntry[T entity.Discoverable] struct {
	search     string
	items      []T
	loaded     bool
	loading    bool
	err        string
	updatedAt  time.Time
	generation uint64
	watchers   map[uint64]watcher[T]
}

type watcher[T entity.Discoverable] struct {
	params   usecase.FetchParams
	listener func(usecase.CollectionState[T])
}

type collectionService[T entity.Discoverable] struct {
	source   collectionSource[T]
	catalog  repository.CatalogRepository
	location usecase.LocationUsecase
	likes    CountSeeder
	cfg      *config.DiscoveryConfig
	logger   *slog.Logger
	now      func() time.Time

	group singleflight.Group

	mu          sync.Mutex
	entries     map[string]*cacheEntry[T]
	generation  uint64
	nextWatcher uint64

	unsubscribeLocation func()
}

func newCollectionService[T entity.Discoverable](params CollectionServiceParams, source collectionSource[T]) *collectionService[T] {
	srv := &collectionService[T]{
		source:   source,
		catalog:  params.Catalog,
		location: params.Location,
		likes:    params.Likes,
		cfg:      params.Config.DiscoveryOrDefault(),
		logger:   params.Logger.With(slog.String("collection", source.kind.String())),
		now:      time.Now,
		entries:  make(map[string]*cacheEntry[T]),
	}

	// Distances depend on the active location, so views are recomputed
	// whenever it moves.
	if srv.location != nil {
		srv.unsubscribeLocation = srv.location.Subscribe(func(usecase.LocationSnapshot) {
			srv.notifyAll()
		})
	}

	return srv
}

// NewOfferCollection creates the shared offer collection.
func NewOfferCollection(params CollectionServiceParams) usecase.OfferCollection {
	return newCollectionService(params, collectionSource[*entity.Offer]{
		kind: entity.EntityTypeOffer,
		load: params.Catalog.FindActiveOffers,
		parentID: func(o *entity.Offer) uuid.UUID {
			return o.CommerceID
		},
		attach: func(o *entity.Offer, c *entity.Commerce) {
			o.Commerce = c
		},
		likeCount: func(o *entity.Offer) int {
			return o.LikeCount
		},
	})
}

// NewEventCollection creates the shared event collection.
func NewEventCollection(params CollectionServiceParams) usecase.EventCollection {
	return newCollectionService(params, collectionSource[*entity.Event]{
		kind: entity.EntityTypeEvent,
		load: params.Catalog.FindActiveEvents,
		parentID: func(e *entity.Event) uuid.UUID {
			return e.CommerceID
		},
		attach: func(e *entity.Event, c *entity.Commerce) {
			e.Commerce = c
		},
		startsAt: func(e *entity.Event) *time.Time {
			return &e.StartDate
		},
		likeCount: func(e *entity.Event) int {
			return e.LikeCount
		},
	})
}

// NewCommerceCollection creates the shared commerce collection.
func NewCommerceCollection(params CollectionServiceParams) usecase.CommerceCollection {
	return newCollectionService(params, collectionSource[*entity.Commerce]{
		kind: entity.EntityTypeCommerce,
		load: params.Catalog.FindActiveCommerces,
	})
}

func normalizeSearch(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// entryLocked returns the cache entry for params, creating it on first use.
// Callers hold srv.mu.
func (srv *collectionService[T]) entryLocked(params usecase.FetchParams) *cacheEntry[T] {
	search := normalizeSearch(params.SearchQuery)
	e, ok := srv.entries[search]
	if !ok {
		e = &cacheEntry[T]{
			search:   search,
			watchers: make(map[uint64]watcher[T]),
		}
		srv.entries[search] = e
	}

	return e
}

func (srv *collectionService[T]) Watch(
	ctx context.Context,
	params usecase.FetchParams,
	listener func(usecase.CollectionState[T]),
) (usecase.CollectionState[T], func()) {
	srv.mu.Lock()
	e := srv.entryLocked(params)
	id := srv.nextWatcher
	srv.nextWatcher++
	e.watchers[id] = watcher[T]{params: params, listener: listener}

	startFetch := !e.loaded && !e.loading
	var flightKey string
	if startFetch {
		flightKey = srv.beginLocked(e)
	}
	state := srv.viewLocked(e, params)
	srv.mu.Unlock()

	if startFetch {
		ch := srv.group.DoChan(flightKey, func() (any, error) {
			return nil, srv.fetch(context.WithoutCancel(ctx), e, e.search)
		})
		go func() { <-ch }()
	}

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			srv.mu.Lock()
			delete(e.watchers, id)
			srv.mu.Unlock()
		})
	}

	return state, unsubscribe
}

// beginLocked marks e as loading and returns the singleflight key of the
// current generation.
func (srv *collectionService[T]) beginLocked(e *cacheEntry[T]) string {
	e.loading = true

	return fmt.Sprintf("%s#%d", e.search, e.generation)
}

func (srv *collectionService[T]) Refetch(ctx context.Context, params usecase.FetchParams) usecase.CollectionState[T] {
	srv.mu.Lock()
	e := srv.entryLocked(params)
	wasLoading := e.loading
	flightKey := srv.beginLocked(e)
	srv.mu.Unlock()

	if !wasLoading {
		srv.notify(e)
	}

	ch := srv.group.DoChan(flightKey, func() (any, error) {
		return nil, srv.fetch(context.WithoutCancel(ctx), e, e.search)
	})

	select {
	case <-ch:
	case <-ctx.Done():
	}

	return srv.Current(params)
}

// fetch loads the rows, joins their commerces and replaces the entry in one
// step. Results of a superseded generation are dropped.
func (srv *collectionService[T]) fetch(ctx context.Context, e *cacheEntry[T], search string) error {
	srv.mu.Lock()
	gen := e.generation
	srv.mu.Unlock()

	items, err := srv.loadItems(ctx, search)

	srv.mu.Lock()
	if gen != e.generation {
		srv.mu.Unlock()
		srv.logger.Debug("Discarding superseded fetch", slog.String("search", search))

		return nil
	}

	e.loading = false
	if err != nil {
		e.err = err.Error()
	} else {
		e.items = items
		e.loaded = true
		e.err = ""
		e.updatedAt = srv.now()
	}
	srv.mu.Unlock()

	if err != nil {
		srv.logger.Error("Failed to fetch collection", slog.String("search", search), slog.Any("error", err))
	} else {
		srv.seedCounts(items)
	}

	srv.notify(e)

	return err
}

func (srv *collectionService[T]) loadItems(ctx context.Context, search string) ([]T, error) {
	items, err := srv.source.load(ctx, repository.CatalogQuery{Search: search, Now: srv.now()})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %ss", srv.source.kind)
	}

	if srv.source.parentID == nil || len(items) == 0 {
		return items, nil
	}

	ids := make([]uuid.UUID, 0, len(items))
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, item := range items {
		id := srv.source.parentID(item)
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return items, nil
	}

	commerces, err := srv.catalog.FindCommercesByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load commerces")
	}

	byID := make(map[uuid.UUID]*entity.Commerce, len(commerces))
	for _, c := range commerces {
		byID[c.ID] = c
	}
	for _, item := range items {
		if c, ok := byID[srv.source.parentID(item)]; ok {
			srv.source.attach(item, c)
		}
	}

	return items, nil
}

func (srv *collectionService[T]) seedCounts(items []T) {
	if srv.likes == nil || srv.source.likeCount == nil {
		return
	}

	counts := make(map[uuid.UUID]int, len(items))
	for _, item := range items {
		counts[item.EntityID()] = srv.source.likeCount(item)
	}
	srv.likes.SeedCounts(srv.source.kind, counts)
}

func (srv *collectionService[T]) Current(params usecase.FetchParams) usecase.CollectionState[T] {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.viewLocked(srv.entryLocked(params), params)
}

func (srv *collectionService[T]) Invalidate() {
	srv.mu.Lock()
	srv.generation++
	entries := make([]*cacheEntry[T], 0, len(srv.entries))
	for _, e := range srv.entries {
		e.generation = srv.generation
		e.loading = false
		entries = append(entries, e)
	}
	srv.mu.Unlock()

	for _, e := range entries {
		srv.notify(e)
	}
}

func (srv *collectionService[T]) Close() {
	if srv.unsubscribeLocation != nil {
		srv.unsubscribeLocation()
	}
}

// notify delivers the current view of e to each of its watchers.
func (srv *collectionService[T]) notify(e *cacheEntry[T]) {
	srv.mu.Lock()
	ids := sortedKeys(e.watchers)
	type delivery struct {
		listener func(usecase.CollectionState[T])
		state    usecase.CollectionState[T]
	}
	deliveries := make([]delivery, 0, len(ids))
	for _, id := range ids {
		w := e.watchers[id]
		deliveries = append(deliveries, delivery{listener: w.listener, state: srv.viewLocked(e, w.params)})
	}
	srv.mu.Unlock()

	for _, d := range deliveries {
		d.listener(d.state)
	}
}

func (srv *collectionService[T]) notifyAll() {
	srv.mu.Lock()
	entries := make([]*cacheEntry[T], 0, len(srv.entries))
	for _, e := range srv.entries {
		if len(e.watchers) > 0 {
			entries = append(entries, e)
		}
	}
	srv.mu.Unlock()

	for _, e := range entries {
		srv.notify(e)
	}
}

// viewLocked applies the time-window and promotion predicates, then ranks
// by distance to the resolved reference. Callers hold srv.mu.
func (srv *collectionService[T]) viewLocked(e *cacheEntry[T], params usecase.FetchParams) usecase.CollectionState[T] {
	now := srv.now()

	filtered := make([]T, 0, len(e.items))
	for _, item := range e.items {
		if srv.matchesFilter(item, params.Filter, now) {
			filtered = append(filtered, item)
		}
	}

	opts := ranking.Options{Reference: srv.reference(params)}
	if params.Filter == usecase.FilterNearby && opts.Reference != nil {
		opts.RadiusKm = srv.cfg.DefaultRadiusKm
		if params.RadiusKm > 0 {
			opts.RadiusKm = params.RadiusKm
		}
	}

	return usecase.CollectionState[T]{
		Data:      ranking.Rank(filtered, opts),
		Loading:   e.loading,
		Error:     e.err,
		UpdatedAt: e.updatedAt,
	}
}

func (srv *collectionService[T]) reference(params usecase.FetchParams) *entity.Coordinate {
	if params.Reference != nil {
		ref := *params.Reference

		return &ref
	}
	if srv.location == nil {
		return nil
	}
	if active := srv.location.ActiveLocation(); active != nil {
		ref := active.Coordinates

		return &ref
	}

	return nil
}

func (srv *collectionService[T]) matchesFilter(item T, filter usecase.FilterType, now time.Time) bool {
	switch filter {
	case usecase.FilterBoosted:
		return item.IsBoosted()
	case usecase.FilterThisWeek:
		if srv.source.startsAt == nil {
			return true
		}
		start := srv.source.startsAt(item)

		return start != nil && !start.Before(now) && !start.After(now.Add(srv.cfg.ThisWeekWindow))
	case usecase.FilterUpcoming:
		if srv.source.startsAt == nil {
			return true
		}
		start := srv.source.startsAt(item)

		return start != nil && start.After(now)
	default:
		return true
	}
}

func sortedKeys[V any](m map[uint64]V) []uint64 {
	keys := make([]uint64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	return keys
}
