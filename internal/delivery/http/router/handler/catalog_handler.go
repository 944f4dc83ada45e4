package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	Offers    usecase.OfferCollection
	Events    usecase.EventCollection
	Commerces usecase.CommerceCollection
	Logger    *slog.Logger
}

// CatalogHandler serves the ranked offer, event and commerce listings.
type CatalogHandler struct {
	offers    usecase.OfferCollection
	events    usecase.EventCollection
	commerces usecase.CommerceCollection
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		offers:    params.Offers,
		events:    params.Events,
		commerces: params.Commerces,
		logger:    params.Logger,
	}
}

// ListOffers handles GET /offers
func (h *CatalogHandler) ListOffers(c echo.Context) error {
	return list(c, h.offers)
}

// ListEvents handles GET /events
func (h *CatalogHandler) ListEvents(c echo.Context) error {
	return list(c, h.events)
}

// ListCommerces handles GET /commerces
func (h *CatalogHandler) ListCommerces(c echo.Context) error {
	return list(c, h.commerces)
}

// Refetch handles POST /:kind/refetch
func (h *CatalogHandler) Refetch(c echo.Context) error {
	entityType, err := entityTypeParam(c, "kind")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	switch entityType {
	case entity.EntityTypeOffer:
		return refetch(c, h.offers)
	case entity.EntityTypeEvent:
		return refetch(c, h.events)
	case entity.EntityTypeCommerce:
		return refetch(c, h.commerces)
	}

	return echo.ErrNotFound
}

func list[T entity.Discoverable](c echo.Context, collection usecase.CollectionUsecase[T]) error {
	params, err := fetchParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, loadView(c.Request().Context(), collection, params))
}

func refetch[T entity.Discoverable](c echo.Context, collection usecase.CollectionUsecase[T]) error {
	params, err := fetchParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, collection.Refetch(c.Request().Context(), params))
}
