package handler

import (
	"log/slog"
	"net/http"

	"storefront/config"
	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/geo"
	"storefront/internal/ranking"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MapHandlerParams holds dependencies for MapHandler, injected by Fx.
type MapHandlerParams struct {
	fx.In

	Offers    usecase.OfferCollection
	Events    usecase.EventCollection
	Commerces usecase.CommerceCollection
	Location  usecase.LocationUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// MapHandler groups listing markers into map clusters and checks the user
// against a followed route.
type MapHandler struct {
	offers    usecase.OfferCollection
	events    usecase.EventCollection
	commerces usecase.CommerceCollection
	location  usecase.LocationUsecase
	discovery *config.DiscoveryConfig
	logger    *slog.Logger
}

// Bounds is the camera box around every clustered marker.
type Bounds struct {
	SouthWest entity.Coordinate `json:"south_west"`
	NorthEast entity.Coordinate `json:"north_east"`
}

// ClusterResponse is the body of GET /map/clusters.
type ClusterResponse[T any] struct {
	Kind     entity.EntityType   `json:"kind"`
	Clusters []entity.Cluster[T] `json:"clusters"`
	Bounds   *Bounds             `json:"bounds,omitempty"`
	Loading  bool                `json:"loading"`
	Error    string              `json:"error,omitempty"`
}

// RouteCheckRequest is the body of POST /map/route-check. Route is the
// precomputed polyline being followed; Position defaults to the active location.
type RouteCheckRequest struct {
	Route    []entity.Coordinate `json:"route" validate:"required,min=2"`
	Position *entity.Coordinate  `json:"position"`
}

// RouteCheckResponse reports how far the position is from the route.
type RouteCheckResponse struct {
	Position       entity.Coordinate `json:"position"`
	DistanceMeters float64           `json:"distance_meters"`
	DistanceLabel  string            `json:"distance_label"`
	OffRoute       bool              `json:"off_route"`
}

// NewMapHandler is the constructor for MapHandler
func NewMapHandler(params MapHandlerParams) *MapHandler {
	return &MapHandler{
		offers:    params.Offers,
		events:    params.Events,
		commerces: params.Commerces,
		location:  params.Location,
		discovery: params.Config.DiscoveryOrDefault(),
		logger:    params.Logger,
	}
}

// Clusters handles GET /map/clusters?kind=commerces plus the listing query parameters.
func (h *MapHandler) Clusters(c echo.Context) error {
	kind := c.QueryParam("kind")
	if kind == "" {
		kind = string(entity.EntityTypeCommerce)
	}
	entityType, err := entity.ParseEntityType(kind)
	if err != nil {
		return response.BadRequest(c, "UNKNOWN_ENTITY_TYPE", err.Error())
	}

	switch entityType {
	case entity.EntityTypeOffer:
		return clusters(c, h.offers, entityType, h.discovery)
	case entity.EntityTypeEvent:
		return clusters(c, h.events, entityType, h.discovery)
	default:
		return clusters(c, h.commerces, entityType, h.discovery)
	}
}

func clusters[T entity.Discoverable](c echo.Context, collection usecase.CollectionUsecase[T], entityType entity.EntityType, cfg *config.DiscoveryConfig) error {
	params, err := fetchParams(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	state := loadView(c.Request().Context(), collection, params)
	items := ranking.Items(state.Data)

	body := ClusterResponse[T]{
		Kind:     entityType,
		Clusters: geo.Cluster(items, cfg.ClusterThresholdMeters, cfg.ClusterIndexThreshold),
		Loading:  state.Loading,
		Error:    state.Error,
	}

	centers := make([]entity.Coordinate, 0, len(body.Clusters))
	for _, cluster := range body.Clusters {
		centers = append(centers, cluster.Center)
	}
	if bound := geo.BoundingBox(centers); geo.IsValidBounds(bound) {
		body.Bounds = &Bounds{SouthWest: bound.Min, NorthEast: bound.Max}
	}

	return response.Success(c, http.StatusOK, body)
}

// RouteCheck handles POST /map/route-check.
func (h *MapHandler) RouteCheck(c echo.Context) error {
	var req RouteCheckRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	for _, point := range req.Route {
		if !geo.IsValidCoordinate(point) {
			return response.HandleAppError(c, domainerrors.ErrInvalidCoordinates.WrapMessage("route point out of range"))
		}
	}

	var position entity.Coordinate
	switch {
	case req.Position != nil:
		if !geo.IsValidCoordinate(*req.Position) {
			return response.HandleAppError(c, domainerrors.ErrInvalidCoordinates)
		}
		position = *req.Position
	default:
		active := h.location.ActiveLocation()
		if active == nil {
			return response.HandleAppError(c, domainerrors.ErrLocationNotResolved)
		}
		position = active.Coordinates
	}

	meters, _ := geo.DistanceToRoute(position, req.Route)

	return response.Success(c, http.StatusOK, RouteCheckResponse{
		Position:       position,
		DistanceMeters: meters,
		DistanceLabel:  geo.FormatDistance(meters),
		OffRoute:       meters > h.discovery.OffRouteThresholdMeters,
	})
}
