package impl

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type followsService struct {
	*engagementService
}

// NewFollowsService creates the follows manager. Only commerces can be followed.
func NewFollowsService(params EngagementServiceParams) usecase.FollowsUsecase {
	return &followsService{
		engagementService: newEngagementService(params, engagementConfig{
			kind:         entity.EngagementFollow,
			types:        []entity.EntityType{entity.EntityTypeCommerce},
			addAction:    entity.ActionFollowed,
			removeAction: entity.ActionUnfollowed,
		}),
	}
}

func (srv *followsService) IsFollowing(commerceID uuid.UUID) bool {
	return srv.has(entity.EntityTypeCommerce, commerceID)
}

func (srv *followsService) ToggleFollow(ctx context.Context, commerceID uuid.UUID) entity.ToggleResult {
	return srv.toggle(ctx, entity.EntityTypeCommerce, commerceID)
}
