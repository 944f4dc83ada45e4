package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// EngagementSnapshot mirrors the signed-in user's engagement records.
type EngagementSnapshot struct {
	Kind entity.EngagementKind `json:"kind"`

	// UserID is nil when signed out, in which case IDs is empty.
	UserID *uuid.UUID                         `json:"user_id,omitempty"`
	IDs    map[entity.EntityType][]uuid.UUID `json:"ids"`

	// LikeCounts is only populated for likes.
	LikeCounts map[uuid.UUID]int `json:"like_counts,omitempty"`
}

// EngagementManager is the part shared by favorites, likes and follows.
type EngagementManager interface {
	// Refresh replaces the local sets with the current user's records, or
	// clears them when signed out.
	Refresh(ctx context.Context) error

	Snapshot() EngagementSnapshot
	Subscribe(listener func(EngagementSnapshot)) (unsubscribe func())

	// Start follows auth state changes; Stop detaches.
	Start(ctx context.Context) error
	Stop()
}

// FavoritesUsecase manages favorites on offers, events and commerces.
type FavoritesUsecase interface {
	EngagementManager
	IsFavorite(entityType entity.EntityType, id uuid.UUID) bool
	ToggleFavorite(ctx context.Context, entityType entity.EntityType, id uuid.UUID) entity.ToggleResult
}

// LikesUsecase manages likes on offers and events together with their counters.
type LikesUsecase interface {
	EngagementManager
	IsLiked(entityType entity.EntityType, id uuid.UUID) bool
	LikeCount(entityType entity.EntityType, id uuid.UUID) int
	ToggleLike(ctx context.Context, entityType entity.EntityType, id uuid.UUID) entity.ToggleResult

	// SeedCounts records server counts seen in a fetched collection.
	SeedCounts(entityType entity.EntityType, counts map[uuid.UUID]int)
}

// FollowsUsecase manages follows on commerces.
type FollowsUsecase interface {
	EngagementManager
	IsFollowing(commerceID uuid.UUID) bool
	ToggleFollow(ctx context.Context, commerceID uuid.UUID) entity.ToggleResult
}
