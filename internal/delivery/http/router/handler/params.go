package handler

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/geo"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// fetchParams reads ?q=&filter=&lat=&lng=&radius_km= into a collection view.
func fetchParams(c echo.Context) (usecase.FetchParams, error) {
	var (
		search, filter string
		lat, lng       float64
		radiusKm       float64
	)

	if err := echo.QueryParamsBinder(c).
		String("q", &search).
		String("filter", &filter).
		Float64("lat", &lat).
		Float64("lng", &lng).
		Float64("radius_km", &radiusKm).
		BindError(); err != nil {
		return usecase.FetchParams{}, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	filterType, err := usecase.ParseFilterType(filter)
	if err != nil {
		return usecase.FetchParams{}, domainerrors.ErrUnknownFilter.WrapMessage(err.Error())
	}
	if radiusKm < 0 {
		return usecase.FetchParams{}, domainerrors.ErrValidationFailed.WrapMessage("radius_km must not be negative")
	}

	params := usecase.FetchParams{
		SearchQuery: search,
		Filter:      filterType,
		RadiusKm:    radiusKm,
	}

	hasLat, hasLng := c.QueryParam("lat") != "", c.QueryParam("lng") != ""
	switch {
	case hasLat && hasLng:
		reference := entity.NewCoordinate(lng, lat)
		if !geo.IsValidCoordinate(reference) {
			return usecase.FetchParams{}, domainerrors.ErrInvalidCoordinates
		}
		params.Reference = &reference
	case hasLat || hasLng:
		return usecase.FetchParams{}, domainerrors.ErrInvalidCoordinates.WrapMessage("lat and lng must be given together")
	}

	return params, nil
}

// loadView serves the cached view, fetching only when nothing was loaded yet.
// A fetch already in flight is joined rather than repeated.
func loadView[T entity.Discoverable](ctx context.Context, collection usecase.CollectionUsecase[T], params usecase.FetchParams) usecase.CollectionState[T] {
	state := collection.Current(params)
	if !state.UpdatedAt.IsZero() {
		return state
	}

	return collection.Refetch(ctx, params)
}

func entityTypeParam(c echo.Context, name string) (entity.EntityType, error) {
	entityType, err := entity.ParseEntityType(c.Param(name))
	if err != nil {
		return "", domainerrors.ErrUnknownEntityType.WrapMessage(err.Error())
	}

	return entityType, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return id, nil
}
