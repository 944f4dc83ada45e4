package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for engagement persistence.
var (
	// ErrDuplicateEngagement is returned when the record already exists.
	ErrDuplicateEngagement = errors.New("engagement already exists")
	// ErrEngagementNotFound is returned when deleting a record that does not exist.
	ErrEngagementNotFound = errors.New("engagement not found")
	// ErrUnsupportedEngagement is returned for a kind/entity type pair with no table.
	ErrUnsupportedEngagement = errors.New("unsupported engagement")
)

// EngagementRepository persists favorites, likes and follows. Records are
// unique per (user, entity type, entity id).
type EngagementRepository interface {
	// ListEntityIDs returns the ids the user engaged with for one kind and type.
	ListEntityIDs(ctx context.Context, kind entity.EngagementKind, userID uuid.UUID, entityType entity.EntityType) ([]uuid.UUID, error)

	// Insert creates the record. Returns ErrDuplicateEngagement if it exists.
	Insert(ctx context.Context, kind entity.EngagementKind, record entity.EngagementRecord) error

	// Delete removes the record. Returns ErrEngagementNotFound if it does not exist.
	Delete(ctx context.Context, kind entity.EngagementKind, record entity.EngagementRecord) error
}

// CounterRepository mutates the denormalized like counter of an entity.
// Both operations must be atomic on the server side.
type CounterRepository interface {
	IncrementLikeCount(ctx context.Context, entityType entity.EntityType, id uuid.UUID) error
	// DecrementLikeCount never takes the counter below zero.
	DecrementLikeCount(ctx context.Context, entityType entity.EntityType, id uuid.UUID) error
}
