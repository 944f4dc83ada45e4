package handler

import (
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type engagementMocks struct {
	favorites *mockUsecase.MockFavoritesUsecase
	likes     *mockUsecase.MockLikesUsecase
	follows   *mockUsecase.MockFollowsUsecase
}

func newEngagementEcho(t *testing.T) (*echo.Echo, engagementMocks) {
	t.Helper()

	m := engagementMocks{
		favorites: mockUsecase.NewMockFavoritesUsecase(t),
		likes:     mockUsecase.NewMockLikesUsecase(t),
		follows:   mockUsecase.NewMockFollowsUsecase(t),
	}
	h := NewEngagementHandler(EngagementHandlerParams{
		FavoritesUC: m.favorites,
		LikesUC:     m.likes,
		FollowsUC:   m.follows,
		Logger:      discardLogger,
	})

	e := newTestEcho()
	e.GET("/engagement", h.GetEngagement)
	e.POST("/favorites/:type/:id", h.ToggleFavorite)
	e.POST("/likes/:type/:id", h.ToggleLike)
	e.POST("/follows/:id", h.ToggleFollow)

	return e, m
}

func TestEngagementHandler_GetEngagement(t *testing.T) {
	e, m := newEngagementEcho(t)
	userID := uuid.New()
	offerID := uuid.New()

	m.favorites.EXPECT().Snapshot().Return(usecase.EngagementSnapshot{
		Kind:   entity.EngagementFavorite,
		UserID: &userID,
		IDs:    map[entity.EntityType][]uuid.UUID{entity.EntityTypeOffer: {offerID}},
	})
	m.likes.EXPECT().Snapshot().Return(usecase.EngagementSnapshot{
		Kind:       entity.EngagementLike,
		UserID:     &userID,
		IDs:        map[entity.EntityType][]uuid.UUID{},
		LikeCounts: map[uuid.UUID]int{offerID: 3},
	})
	m.follows.EXPECT().Snapshot().Return(usecase.EngagementSnapshot{Kind: entity.EngagementFollow, UserID: &userID})

	rec, env := serve(t, e, http.MethodGet, "/engagement", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeData[EngagementResponse](t, env)
	assert.Equal(t, []uuid.UUID{offerID}, body.Favorites.IDs[entity.EntityTypeOffer])
	assert.Equal(t, 3, body.Likes.LikeCounts[offerID])
	assert.Equal(t, entity.EngagementFollow, body.Follows.Kind)
}

func TestEngagementHandler_ToggleFavorite(t *testing.T) {
	e, m := newEngagementEcho(t)
	id := uuid.New()
	m.favorites.EXPECT().ToggleFavorite(mock.Anything, entity.EntityTypeEvent, id).
		Return(entity.ToggleResult{Success: true, Action: entity.ActionAdded})
	m.favorites.EXPECT().IsFavorite(entity.EntityTypeEvent, id).Return(true)

	rec, env := serve(t, e, http.MethodPost, "/favorites/events/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeData[ToggleResponse](t, env)
	assert.True(t, body.Result.Success)
	assert.Equal(t, entity.ActionAdded, body.Result.Action)
	assert.True(t, body.Active)
	assert.Nil(t, body.LikeCount)
}

func TestEngagementHandler_ToggleLikeReportsCount(t *testing.T) {
	e, m := newEngagementEcho(t)
	id := uuid.New()
	m.likes.EXPECT().ToggleLike(mock.Anything, entity.EntityTypeOffer, id).
		Return(entity.ToggleResult{Success: true, Action: entity.ActionLiked})
	m.likes.EXPECT().LikeCount(entity.EntityTypeOffer, id).Return(8)
	m.likes.EXPECT().IsLiked(entity.EntityTypeOffer, id).Return(true)

	rec, env := serve(t, e, http.MethodPost, "/likes/offer/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeData[ToggleResponse](t, env)
	assert.Equal(t, entity.ActionLiked, body.Result.Action)
	require.NotNil(t, body.LikeCount)
	assert.Equal(t, 8, *body.LikeCount)
}

func TestEngagementHandler_ToggleFollowNeedsLogin(t *testing.T) {
	e, m := newEngagementEcho(t)
	id := uuid.New()
	m.follows.EXPECT().ToggleFollow(mock.Anything, id).Return(entity.ToggleResult{NeedsLogin: true})
	m.follows.EXPECT().IsFollowing(id).Return(false)

	rec, env := serve(t, e, http.MethodPost, "/follows/"+id.String(), "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeData[ToggleResponse](t, env)
	assert.False(t, body.Result.Success)
	assert.True(t, body.Result.NeedsLogin)
	assert.False(t, body.Active)
}

func TestEngagementHandler_RejectsBadPath(t *testing.T) {
	e, _ := newEngagementEcho(t)

	rec, env := serve(t, e, http.MethodPost, "/favorites/coupons/"+uuid.NewString(), "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNKNOWN_ENTITY_TYPE", env.Error.Code)

	rec, env = serve(t, e, http.MethodPost, "/likes/offer/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}
