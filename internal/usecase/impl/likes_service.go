package impl

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

type likesService struct {
	*engagementService
}

// NewLikesService creates the likes manager. Likes keep a local mirror of the
// entity like counters.
func NewLikesService(params EngagementServiceParams) usecase.LikesUsecase {
	return &likesService{
		engagementService: newEngagementService(params, engagementConfig{
			kind:          entity.EngagementLike,
			types:         []entity.EntityType{entity.EntityTypeOffer, entity.EntityTypeEvent},
			addAction:     entity.ActionLiked,
			removeAction:  entity.ActionUnliked,
			countsEnabled: true,
		}),
	}
}

func (srv *likesService) IsLiked(entityType entity.EntityType, id uuid.UUID) bool {
	return srv.has(entityType, id)
}

func (srv *likesService) LikeCount(entityType entity.EntityType, id uuid.UUID) int {
	if !srv.supports(entityType) {
		return 0
	}

	return srv.count(id)
}

func (srv *likesService) ToggleLike(ctx context.Context, entityType entity.EntityType, id uuid.UUID) entity.ToggleResult {
	return srv.toggle(ctx, entityType, id)
}

// SeedCounts overwrites the local counters with values read from the server.
func (srv *likesService) SeedCounts(entityType entity.EntityType, counts map[uuid.UUID]int) {
	if !srv.supports(entityType) || len(counts) == 0 {
		return
	}

	srv.mu.Lock()
	for id, n := range counts {
		srv.counts[id] = max(n, 0)
	}
	snapshot := srv.snapshotLocked()
	srv.mu.Unlock()

	srv.listeners.Notify(snapshot)
}
