package impl

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type favoritesService struct {
	*engagementService
}

// NewFavoritesService creates the favorites manager for offers, events and commerces.
func NewFavoritesService(params EngagementServiceParams) usecase.FavoritesUsecase {
	return &favoritesService{
		engagementService: newEngagementService(params, engagementConfig{
			kind:         entity.EngagementFavorite,
			types:        entity.AllEntityTypes(),
			addAction:    entity.ActionAdded,
			removeAction: entity.ActionRemoved,
		}),
	}
}

func (srv *favoritesService) IsFavorite(entityType entity.EntityType, id uuid.UUID) bool {
	return srv.has(entityType, id)
}

func (srv *favoritesService) ToggleFavorite(ctx context.Context, entityType entity.EntityType, id uuid.UUID) entity.ToggleResult {
	return srv.toggle(ctx, entityType, id)
}
