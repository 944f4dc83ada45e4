// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler    *handler.CatalogHandler
	MapHandler        *handler.MapHandler
	LocationHandler   *handler.LocationHandler
	SessionHandler    *handler.SessionHandler
	EngagementHandler *handler.EngagementHandler
	SessionMiddleware *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler    *handler.CatalogHandler
	mapHandler        *handler.MapHandler
	locationHandler   *handler.LocationHandler
	sessionHandler    *handler.SessionHandler
	engagementHandler *handler.EngagementHandler
	sessionMiddleware *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler:    params.CatalogHandler,
		mapHandler:        params.MapHandler,
		locationHandler:   params.LocationHandler,
		sessionHandler:    params.SessionHandler,
		engagementHandler: params.EngagementHandler,
		sessionMiddleware: params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the bridge routes.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Listings
	e.GET("/offers", r.catalogHandler.ListOffers)
	e.GET("/events", r.catalogHandler.ListEvents)
	e.GET("/commerces", r.catalogHandler.ListCommerces)
	e.POST("/:kind/refetch", r.catalogHandler.Refetch)
	e.GET("/map/clusters", r.mapHandler.Clusters)
	e.POST("/map/route-check", r.mapHandler.RouteCheck)

	locationGroup := e.Group("/location")
	{
		locationGroup.GET("", r.locationHandler.GetLocation)
		locationGroup.PUT("", r.locationHandler.SetLocation)
		locationGroup.DELETE("", r.locationHandler.ResetLocation)
		locationGroup.POST("/retry", r.locationHandler.RetryLocation)
		locationGroup.GET("/search", r.locationHandler.SearchPlaces)
	}

	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.POST("", r.sessionHandler.SignIn)
		sessionGroup.DELETE("", r.sessionHandler.SignOut, r.sessionMiddleware.RequireSession)
	}

	// Toggles answer needs_login themselves instead of requiring a session.
	e.GET("/engagement", r.engagementHandler.GetEngagement)
	e.POST("/favorites/:type/:id", r.engagementHandler.ToggleFavorite)
	e.POST("/likes/:type/:id", r.engagementHandler.ToggleLike)
	e.POST("/follows/:id", r.engagementHandler.ToggleFollow)
}
