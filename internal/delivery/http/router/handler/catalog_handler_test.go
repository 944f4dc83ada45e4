package handler

import (
	"net/http"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	mockRepo "storefront/internal/mocks/repository"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	echo      *echo.Echo
	catalog   *mockRepo.MockCatalogRepository
	location  *mockUsecase.MockLocationUsecase
	commerces usecase.CommerceCollection
}

func newCatalogFixture(t *testing.T) catalogFixture {
	t.Helper()

	catalog := mockRepo.NewMockCatalogRepository(t)
	location := mockUsecase.NewMockLocationUsecase(t)
	location.EXPECT().Subscribe(mock.Anything).Return(func() {}).Maybe()
	location.EXPECT().ActiveLocation().Return(nil).Maybe()

	params := impl.CollectionServiceParams{
		Config:   &config.Config{},
		Catalog:  catalog,
		Location: location,
		Logger:   discardLogger,
	}
	offers := impl.NewOfferCollection(params)
	events := impl.NewEventCollection(params)
	commerces := impl.NewCommerceCollection(params)
	t.Cleanup(func() {
		offers.Close()
		events.Close()
		commerces.Close()
	})

	h := NewCatalogHandler(CatalogHandlerParams{Offers: offers, Events: events, Commerces: commerces, Logger: discardLogger})
	mh := NewMapHandler(MapHandlerParams{Offers: offers, Events: events, Commerces: commerces, Config: &config.Config{}, Logger: discardLogger})

	e := newTestEcho()
	e.GET("/offers", h.ListOffers)
	e.GET("/events", h.ListEvents)
	e.GET("/commerces", h.ListCommerces)
	e.POST("/:kind/refetch", h.Refetch)
	e.GET("/map/clusters", mh.Clusters)

	return catalogFixture{echo: e, catalog: catalog, location: location, commerces: commerces}
}

func commerceAt(name string, lng, lat float64, boosted bool) *entity.Commerce {
	c := entity.NewCoordinate(lng, lat)

	return &entity.Commerce{ID: uuid.New(), Name: name, Location: &c, Boosted: boosted, IsActive: true}
}

func TestCatalogHandler_ListCommercesRankedByReference(t *testing.T) {
	f := newCatalogFixture(t)
	near := commerceAt("Near", 2.3500, 48.8500, false)
	far := commerceAt("Far", 2.4500, 48.9500, false)
	boosted := commerceAt("Boosted", 2.4000, 48.9000, true)
	f.catalog.EXPECT().FindActiveCommerces(mock.Anything, mock.Anything).
		Return([]*entity.Commerce{far, near, boosted}, nil).Once()

	rec, env := serve(t, f.echo, http.MethodGet, "/commerces?lat=48.85&lng=2.35", "")

	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeData[usecase.CollectionState[*entity.Commerce]](t, env)
	require.Empty(t, state.Error)
	require.Len(t, state.Data, 3)
	assert.Equal(t, "Boosted", state.Data[0].Item.Name)
	assert.Equal(t, "Near", state.Data[1].Item.Name)
	assert.Equal(t, "Far", state.Data[2].Item.Name)
	require.NotNil(t, state.Data[1].DistanceKm)
	assert.InDelta(t, 0, *state.Data[1].DistanceKm, 1e-6)

	// A second read is served from the cache; Once() above would fail otherwise.
	rec, _ = serve(t, f.echo, http.MethodGet, "/commerces?filter=nearby&lat=48.85&lng=2.35&radius_km=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCatalogHandler_RefetchReloads(t *testing.T) {
	f := newCatalogFixture(t)
	f.catalog.EXPECT().FindActiveCommerces(mock.Anything, mock.Anything).
		Return([]*entity.Commerce{commerceAt("Only", 0, 0, false)}, nil).Twice()

	rec, _ := serve(t, f.echo, http.MethodGet, "/commerces", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env := serve(t, f.echo, http.MethodPost, "/commerces/refetch", "")
	require.Equal(t, http.StatusOK, rec.Code)
	state := decodeData[usecase.CollectionState[*entity.Commerce]](t, env)
	assert.Len(t, state.Data, 1)
}

func TestCatalogHandler_RejectsBadQuery(t *testing.T) {
	f := newCatalogFixture(t)

	tests := []struct {
		name   string
		method string
		target string
		code   string
	}{
		{name: "unknown filter", method: http.MethodGet, target: "/offers?filter=cheapest", code: "UNKNOWN_FILTER"},
		{name: "lat without lng", method: http.MethodGet, target: "/events?lat=10", code: "INVALID_COORDINATES"},
		{name: "latitude out of range", method: http.MethodGet, target: "/offers?lat=95&lng=0", code: "INVALID_COORDINATES"},
		{name: "not a number", method: http.MethodGet, target: "/offers?radius_km=far", code: "VALIDATION_FAILED"},
		{name: "negative radius", method: http.MethodGet, target: "/offers?radius_km=-1", code: "VALIDATION_FAILED"},
		{name: "unknown kind", method: http.MethodPost, target: "/coupons/refetch", code: "UNKNOWN_ENTITY_TYPE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := serve(t, f.echo, tt.method, tt.target, "")

			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.code, env.Error.Code)
		})
	}
}

func TestMapHandler_Clusters(t *testing.T) {
	f := newCatalogFixture(t)
	a := commerceAt("A", 2.35000, 48.85000, false)
	b := commerceAt("B", 2.35005, 48.85005, true)
	c := commerceAt("C", 2.40000, 48.90000, false)
	f.catalog.EXPECT().FindActiveCommerces(mock.Anything, mock.Anything).
		Return([]*entity.Commerce{a, b, c}, nil).Once()

	rec, env := serve(t, f.echo, http.MethodGet, "/map/clusters", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeData[ClusterResponse[*entity.Commerce]](t, env)
	assert.Equal(t, entity.EntityTypeCommerce, body.Kind)
	require.Len(t, body.Clusters, 2)
	assert.Len(t, body.Clusters[0].Items, 2)
	assert.True(t, body.Clusters[0].IsBoosted)
	require.NotNil(t, body.Bounds)
	assert.LessOrEqual(t, body.Bounds.SouthWest.Lat(), body.Bounds.NorthEast.Lat())
}

func TestMapHandler_UnknownKind(t *testing.T) {
	f := newCatalogFixture(t)

	rec, env := serve(t, f.echo, http.MethodGet, "/map/clusters?kind=coupons", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNKNOWN_ENTITY_TYPE", env.Error.Code)
}
