package entity

import (
	"time"

	"github.com/google/uuid"
)

// EngagementKind is the relationship a user has with an entity.
type EngagementKind string

const (
	EngagementFavorite EngagementKind = "favorite"
	EngagementLike     EngagementKind = "like"
	EngagementFollow   EngagementKind = "follow"
)

// EngagementRecord is unique per (UserID, EntityType, EntityID).
type EngagementRecord struct {
	UserID     uuid.UUID  `json:"user_id"`
	EntityType EntityType `json:"entity_type"`
	EntityID   uuid.UUID  `json:"entity_id"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ToggleAction names the outcome of a successful toggle.
type ToggleAction string

const (
	ActionAdded      ToggleAction = "added"
	ActionRemoved    ToggleAction = "removed"
	ActionLiked      ToggleAction = "liked"
	ActionUnliked    ToggleAction = "unliked"
	ActionFollowed   ToggleAction = "followed"
	ActionUnfollowed ToggleAction = "unfollowed"
)

// ToggleResult is returned by every engagement toggle. Failures are reported
// through Success, never as an error.
type ToggleResult struct {
	Success    bool         `json:"success"`
	NeedsLogin bool         `json:"needs_login"`
	Action     ToggleAction `json:"action,omitempty"`
}
