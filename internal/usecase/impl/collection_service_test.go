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
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var collectionNow = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)

type stateRecorder[T any] struct {
	mu     sync.Mutex
	states []usecase.CollectionState[T]
}

func (r *stateRecorder[T]) record(s usecase.CollectionState[T]) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states = append(r.states, s)
}

func (r *stateRecorder[T]) last() (usecase.CollectionState[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.states) == 0 {
		return usecase.CollectionState[T]{}, false
	}

	return r.states[len(r.states)-1], true
}

func (r *stateRecorder[T]) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.states)
}

type countRecorder struct {
	mu     sync.Mutex
	counts map[uuid.UUID]int
}

func (c *countRecorder) SeedCounts(_ entity.EntityType, counts map[uuid.UUID]int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts = counts
}

func newTestOfferCollection(t *testing.T, catalog repository.CatalogRepository, location usecase.LocationUsecase, likes CountSeeder) *collectionService[*entity.Offer] {
	t.Helper()

	srv, ok := NewOfferCollection(CollectionServiceParams{
		Config:   &config.Config{},
		Catalog:  catalog,
		Location: location,
		Likes:    likes,
		Logger:   slog.New(slog.DiscardHandler),
	}).(*collectionService[*entity.Offer])
	require.True(t, ok)
	srv.now = func() time.Time { return collectionNow }
	t.Cleanup(srv.Close)

	return srv
}

func ptrCoord(lng, lat float64) *entity.Coordinate {
	c := entity.NewCoordinate(lng, lat)

	return &c
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

func offerIDs(state usecase.CollectionState[*entity.Offer]) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(state.Data))
	for _, r := range state.Data {
		ids = append(ids, r.Item.ID)
	}

	return ids
}

func TestCollectionService_RefetchJoinsCommercesInOneBatch(t *testing.T) {
	ctx := context.Background()
	shopA := &entity.Commerce{ID: uuid.New(), Name: "Shop A", Location: ptrCoord(2.35, 48.85)}
	shopB := &entity.Commerce{ID: uuid.New(), Name: "Shop B", Location: ptrCoord(2.36, 48.86)}

	offers := []*entity.Offer{
		{ID: uuid.New(), CommerceID: shopA.ID, Title: "Two for one", LikeCount: 4},
		{ID: uuid.New(), CommerceID: shopB.ID, Title: "Free coffee", LikeCount: 1},
		{ID: uuid.New(), CommerceID: shopA.ID, Title: "Happy hour", LikeCount: 0},
	}

	catalog := mockRepo.NewMockCatalogRepository(t)
	catalog.EXPECT().
		FindActiveOffers(mock.Anything, repository.CatalogQuery{Search: "coffee", Now: collectionNow}).
		Return(offers, nil).Once()
	catalog.EXPECT().
		FindCommercesByIDs(mock.Anything, []uuid.UUID{shopA.ID, shopB.ID}).
		Return([]*entity.Commerce{shopA, shopB}, nil).Once()

	likes := &countRecorder{}
	srv := newTestOfferCollection(t, catalog, nil, likes)

	state := srv.Refetch(ctx, usecase.FetchParams{SearchQuery: "  Coffee "})

	require.Empty(t, state.Error)
	require.Len(t, state.Data, 3)
	for _, r := range state.Data {
		require.NotNil(t, r.Item.Commerce)
		assert.Equal(t, r.Item.CommerceID, r.Item.Commerce.ID)
		assert.Nil(t, r.DistanceKm)
	}
	assert.Equal(t, collectionNow, state.UpdatedAt)
	assert.Equal(t, map[uuid.UUID]int{offers[0].ID: 4, offers[1].ID: 1, offers[2].ID: 0}, likes.counts)
}

func TestCollectionService_SharedFetchFansOut(t *testing.T) {
	ctx := context.Background()
	shop := &entity.Commerce{ID: uuid.New(), Location: ptrCoord(0, 0)}
	offers := []*entity.Offer{{ID: uuid.New(), CommerceID: shop.ID}}

	release := make(chan struct{})
	catalog := mockRepo.NewMockCatalogRepository(t)
	catalog.EXPECT().
		FindActiveOffers(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, repository.CatalogQuery) ([]*entity.Offer, error) {
			<-release

			return offers, nil
		}).Times(2)
	catalog.EXPECT().
		FindCommercesByIDs(mock.Anything, []uuid.UUID{shop.ID}).
		Return([]*entity.Commerce{shop}, nil).Times(2)

	srv := newTestOfferCollection(t, catalog, nil, nil)
	params := usecase.FetchParams{Filter: usecase.FilterAll}

	var a, b stateRecorder[*entity.Offer]
	first, unsubscribeA := srv.Watch(ctx, params, a.record)
	defer unsubscribeA()
	second, unsubscribeB := srv.Watch(ctx, params, b.record)
	defer unsubscribeB()

	assert.True(t, first.Loading)
	assert.True(t, second.Loading)

	close(release)
	// b is notified after a, so its settled state means the fan-out finished.
	require.Eventually(t, func() bool {
		s, ok := b.last()

		return ok && !s.Loading
	}, time.Second, 5*time.Millisecond)
	catalog.AssertNumberOfCalls(t, "FindActiveOffers", 1)

	refetched := srv.Refetch(ctx, params)
	catalog.AssertNumberOfCalls(t, "FindActiveOffers", 2)

	lastA, ok := a.last()
	require.True(t, ok)
	lastB, ok := b.last()
	require.True(t, ok)
	assert.Equal(t, lastA, lastB)
	assert.Equal(t, refetched, lastA)
	assert.Equal(t, []uuid.UUID{offers[0].ID}, offerIDs(lastA))
}

func TestCollectionService_FailureKeepsPreviousData(t *testing.T) {
	ctx := context.Background()
	offers := []*entity.Offer{{ID: uuid.New(), Location: ptrCoord(1, 1)}}

	catalog := mockRepo.NewMockCatalogRepository(t)
	catalog.EXPECT().FindActiveOffers(mock.Anything, mock.Anything).Return(offers, nil).Once()
	catalog.EXPECT().FindActiveOffers(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()

	srv := newTestOfferCollection(t, catalog, nil, nil)

	ok := srv.Refetch(ctx, usecase.FetchParams{})
	require.Empty(t, ok.Error)

	failed := srv.Refetch(ctx, usecase.FetchParams{})
	assert.Contains(t, failed.Error, "connection reset")
	assert.False(t, failed.Loading)
	assert.Equal(t, offerIDs(ok), offerIDs(failed))
	assert.Equal(t, ok.UpdatedAt, failed.UpdatedAt)
}

func TestCollectionService_CommerceFailureFailsWholeCycle(t *testing.T) {
	ctx := context.Background()
	offers := []*entity.Offer{{ID: uuid.New(), CommerceID: uuid.New()}}

	catalog := mockRepo.NewMockCatalogRepository(t)
	catalog.EXPECT().FindActiveOffers(mock.Anything, mock.Anything).Return(offers, nil).Once()
	catalog.EXPECT().FindCommercesByIDs(mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()

	srv := newTestOfferCollection(t, catalog, nil, nil)

	state := srv.Refetch(ctx, usecase.FetchParams{})
	assert.Contains(t, state.Error, "failed to load commerces")
	assert.Empty(t, state.Data)
}

func TestCollectionService_InvalidateDiscardsInFlight(t *testing.T) {
	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})

	catalog := mockRepo.NewMockCatalogRepository(t)
	catalog.EXPECT().
		FindActiveOffers(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, repository.CatalogQuery) ([]*entity.Offer, error) {
			close(started)
			<-release

			return []*entity.Offer{{ID: uuid.New()}}, nil
		}).Once()

	srv := newTestOfferCollection(t, catalog, nil, nil)

	done := make(chan usecase.CollectionState[*entity.Offer])
	go func() { done <- srv.Refetch(ctx, usecase.FetchParams{}) }()

	<-started
	srv.Invalidate()
	close(release)

	state := <-done
	assert.Empty(t, state.Data)
	assert.False(t, state.Loading)
}

func TestCollectionService_Filters(t *testing.T) {
	ctx := context.Background()
	paris := entity.NewCoordinate(2.3522, 48.8566)

	// Active offers have always started; the repository never returns future ones.
	near := &entity.Offer{ID: uuid.New(), Location: ptrCoord(2.36, 48.86), StartDate: ptrTime(collectionNow.Add(-48 * time.Hour))}
	far := &entity.Offer{ID: uuid.New(), Location: ptrCoord(4.8357, 45.764)}
	boostedFar := &entity.Offer{ID: uuid.New(), Boosted: true, Location: ptrCoord(5.37, 43.29), StartDate: ptrTime(collectionNow.Add(-time.Hour))}
	unknown := &entity.Offer{ID: uuid.New()}

	catalog := mockRepo.NewMockCatalogRepository(t)
	catalog.EXPECT().
		FindActiveOffers(mock.Anything, mock.Anything).
		Return([]*entity.Offer{unknown, far, near, boostedFar}, nil).Once()

	srv := newTestOfferCollection(t, catalog, nil, nil)
	srv.Refetch(ctx, usecase.FetchParams{})

	ranked := []uuid.UUID{boostedFar.ID, near.ID, far.ID, unknown.ID}

	tests := []struct {
		name   string
		params usecase.FetchParams
		want   []uuid.UUID
	}{
		{
			name:   "all ranks boosted first then distance then unknown",
			params: usecase.FetchParams{Filter: usecase.FilterAll, Reference: &paris},
			want:   ranked,
		},
		{
			name:   "nearby drops far and unknown",
			params: usecase.FetchParams{Filter: usecase.FilterNearby, Reference: &paris},
			want:   []uuid.UUID{near.ID},
		},
		{
			name:   "nearby radius override",
			params: usecase.FetchParams{Filter: usecase.FilterNearby, Reference: &paris, RadiusKm: 500},
			want:   []uuid.UUID{near.ID, far.ID},
		},
		{
			name:   "this week keeps running offers",
			params: usecase.FetchParams{Filter: usecase.FilterThisWeek, Reference: &paris},
			want:   ranked,
		},
		{
			name:   "upcoming keeps running offers",
			params: usecase.FetchParams{Filter: usecase.FilterUpcoming, Reference: &paris},
			want:   ranked,
		},
		{
			name:   "boosted",
			params: usecase.FetchParams{Filter: usecase.FilterBoosted},
			want:   []uuid.UUID{boostedFar.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, offerIDs(srv.Current(tt.params)))
		})
	}
}

func TestCollectionService_EventTimeFilters(t *testing.T) {
	ctx := context.Background()
	paris := entity.NewCoordinate(2.3522, 48.8566)

	soon := &entity.Event{ID: uuid.New(), Location: ptrCoord(2.36, 48.86), StartDate: collectionNow.Add(48 * time.Hour)}
	later := &entity.Event{ID: uuid.New(), Location: ptrCoord(4.8357, 45.764), StartDate: collectionNow.Add(30 * 24 * time.Hour)}
	weekEdge := &entity.Event{ID: uuid.New(), Location: ptrCoord(5.37, 43.29), StartDate: collectionNow.Add(7 * 24 * time.Hour)}
	running := &entity.Event{
		ID:        uuid.New(),
		Boosted:   true,
		Location:  ptrCoord(2.35, 48.85),
		StartDate: collectionNow.Add(-time.Hour),
		EndDate:   ptrTime(collectionNow.Add(5 * time.Hour)),
	}

	catalog := mockRepo.NewMockCatalogRepository(t)
	catalog.EXPECT().
		FindActiveEvents(mock.Anything, repository.CatalogQuery{Now: collectionNow}).
		Return([]*entity.Event{later, running, weekEdge, soon}, nil).Once()

	srv, ok := NewEventCollection(CollectionServiceParams{
		Config:  &config.Config{},
		Catalog: catalog,
		Logger:  slog.New(slog.DiscardHandler),
	}).(*collectionService[*entity.Event])
	require.True(t, ok)
	srv.now = func() time.Time { return collectionNow }
	t.Cleanup(srv.Close)

	srv.Refetch(ctx, usecase.FetchParams{})

	eventIDs := func(state usecase.CollectionState[*entity.Event]) []uuid.UUID {
		ids := make([]uuid.UUID, 0, len(state.Data))
		for _, r := range state.Data {
			ids = append(ids, r.Item.ID)
		}

		return ids
	}

	tests := []struct {
		name   string
		filter usecase.FilterType
		want   []uuid.UUID
	}{
		{name: "all", filter: usecase.FilterAll, want: []uuid.UUID{running.ID, soon.ID, later.ID, weekEdge.ID}},
		{name: "this week includes the window edge", filter: usecase.FilterThisWeek, want: []uuid.UUID{soon.ID, weekEdge.ID}},
		{name: "upcoming excludes running", filter: usecase.FilterUpcoming, want: []uuid.UUID{soon.ID, later.ID, weekEdge.ID}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := usecase.FetchParams{Filter: tt.filter, Reference: &paris}
			assert.Equal(t, tt.want, eventIDs(srv.Current(params)))
		})
	}
}

func TestCollectionService_UsesActiveLocationAndFollowsIt(t *testing.T) {
	ctx := context.Background()
	paris := &entity.Offer{ID: uuid.New(), Location: ptrCoord(2.3522, 48.8566)}
	lyon := &entity.Offer{ID: uuid.New(), Location: ptrCoord(4.8357, 45.764)}

	location := newTestLocationService(t, newMemoryStorage(), mockService.NewMockDeviceLocationProvider(t), nil)
	_, err := location.SetCustomLocation(ctx, entity.NewCoordinate(2.35, 48.85), "Paris")
	require.NoError(t, err)

	catalog := mockRepo.NewMockCatalogRepository(t)
	catalog.EXPECT().FindActiveOffers(mock.Anything, mock.Anything).Return([]*entity.Offer{lyon, paris}, nil).Once()

	srv := newTestOfferCollection(t, catalog, location, nil)
	params := usecase.FetchParams{Filter: usecase.FilterNearby}

	var rec stateRecorder[*entity.Offer]
	_, unsubscribe := srv.Watch(ctx, params, rec.record)
	defer unsubscribe()

	require.Eventually(t, func() bool {
		s, ok := rec.last()

		return ok && !s.Loading
	}, time.Second, 5*time.Millisecond)
	s, _ := rec.last()
	assert.Equal(t, []uuid.UUID{paris.ID}, offerIDs(s))

	before := rec.count()
	_, err = location.SetCustomLocation(ctx, entity.NewCoordinate(4.83, 45.76), "Lyon")
	require.NoError(t, err)

	assert.Equal(t, before+1, rec.count())
	s, _ = rec.last()
	assert.Equal(t, []uuid.UUID{lyon.ID}, offerIDs(s))
	catalog.AssertNumberOfCalls(t, "FindActiveOffers", 1)
}

func TestCollectionService_TimeFiltersIgnoredForCommerces(t *testing.T) {
	ctx := context.Background()
	shop := &entity.Commerce{ID: uuid.New()}

	catalog := mockRepo.NewMockCatalogRepository(t)
	catalog.EXPECT().FindActiveCommerces(mock.Anything, mock.Anything).Return([]*entity.Commerce{shop}, nil).Once()

	srv := NewCommerceCollection(CollectionServiceParams{
		Config:  &config.Config{},
		Catalog: catalog,
		Logger:  slog.New(slog.DiscardHandler),
	})
	t.Cleanup(srv.Close)

	state := srv.Refetch(ctx, usecase.FetchParams{Filter: usecase.FilterUpcoming})
	require.Len(t, state.Data, 1)
	assert.Equal(t, shop.ID, state.Data[0].Item.ID)
}
