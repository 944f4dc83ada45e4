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

// EngagementHandlerParams holds dependencies for EngagementHandler, injected by Fx.
type EngagementHandlerParams struct {
	fx.In

	FavoritesUC usecase.FavoritesUsecase
	LikesUC     usecase.LikesUsecase
	FollowsUC   usecase.FollowsUsecase
	Logger      *slog.Logger
}

// EngagementHandler exposes favorites, likes and follows.
type EngagementHandler struct {
	favoritesUC usecase.FavoritesUsecase
	likesUC     usecase.LikesUsecase
	followsUC   usecase.FollowsUsecase
	logger      *slog.Logger
}

// EngagementResponse is the body of GET /engagement.
type EngagementResponse struct {
	Favorites usecase.EngagementSnapshot `json:"favorites"`
	Likes     usecase.EngagementSnapshot `json:"likes"`
	Follows   usecase.EngagementSnapshot `json:"follows"`
}

// ToggleResponse reports a toggle outcome together with the resulting local state.
// Toggles never fail at the HTTP level; Result.Success and Result.NeedsLogin
// tell the shell what happened.
type ToggleResponse struct {
	Result    entity.ToggleResult `json:"result"`
	Active    bool                `json:"active"`
	LikeCount *int                `json:"like_count,omitempty"`
}

// NewEngagementHandler is the constructor for EngagementHandler
func NewEngagementHandler(params EngagementHandlerParams) *EngagementHandler {
	return &EngagementHandler{
		favoritesUC: params.FavoritesUC,
		likesUC:     params.LikesUC,
		followsUC:   params.FollowsUC,
		logger:      params.Logger,
	}
}

// GetEngagement handles GET /engagement
func (h *EngagementHandler) GetEngagement(c echo.Context) error {
	return response.Success(c, http.StatusOK, EngagementResponse{
		Favorites: h.favoritesUC.Snapshot(),
		Likes:     h.likesUC.Snapshot(),
		Follows:   h.followsUC.Snapshot(),
	})
}

// ToggleFavorite handles POST /favorites/:type/:id
func (h *EngagementHandler) ToggleFavorite(c echo.Context) error {
	entityType, err := entityTypeParam(c, "type")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := h.favoritesUC.ToggleFavorite(c.Request().Context(), entityType, id)

	return response.Success(c, http.StatusOK, ToggleResponse{
		Result: result,
		Active: h.favoritesUC.IsFavorite(entityType, id),
	})
}

// ToggleLike handles POST /likes/:type/:id
func (h *EngagementHandler) ToggleLike(c echo.Context) error {
	entityType, err := entityTypeParam(c, "type")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := h.likesUC.ToggleLike(c.Request().Context(), entityType, id)
	count := h.likesUC.LikeCount(entityType, id)

	return response.Success(c, http.StatusOK, ToggleResponse{
		Result:    result,
		Active:    h.likesUC.IsLiked(entityType, id),
		LikeCount: &count,
	})
}

// ToggleFollow handles POST /follows/:id
func (h *EngagementHandler) ToggleFollow(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := h.followsUC.ToggleFollow(c.Request().Context(), id)

	return response.Success(c, http.StatusOK, ToggleResponse{
		Result: result,
		Active: h.followsUC.IsFollowing(id),
	})
}
