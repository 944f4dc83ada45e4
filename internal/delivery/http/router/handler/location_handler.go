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

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
	Logger     *slog.Logger
}

// LocationHandler exposes the location resolver.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
	logger     *slog.Logger
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
		logger:     params.Logger,
	}
}

// SetLocationRequest represents the request body for choosing a custom location
type SetLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"required,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"required,min=-180,max=180"`
	Name      string   `json:"name" validate:"max=200"`
}

// GetLocation handles GET /location
func (h *LocationHandler) GetLocation(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.locationUC.Snapshot())
}

// SetLocation handles PUT /location
func (h *LocationHandler) SetLocation(c echo.Context) error {
	var req SetLocationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	coord := entity.NewCoordinate(*req.Longitude, *req.Latitude)
	snapshot, err := h.locationUC.SetCustomLocation(c.Request().Context(), coord, req.Name)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// ResetLocation handles DELETE /location
func (h *LocationHandler) ResetLocation(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.locationUC.ResetToDeviceLocation(c.Request().Context()))
}

// RetryLocation handles POST /location/retry
func (h *LocationHandler) RetryLocation(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.locationUC.Retry(c.Request().Context()))
}

// SearchPlaces handles GET /location/search?q=
func (h *LocationHandler) SearchPlaces(c echo.Context) error {
	places, err := h.locationUC.SearchPlaces(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, places)
}
