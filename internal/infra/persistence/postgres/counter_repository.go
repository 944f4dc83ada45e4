package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// counterRepository implements the repository.CounterRepository interface.
// Each change is a single UPDATE, so concurrent likers never lose updates.
type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository is the constructor for counterRepository.
func NewCounterRepository(db *gorm.DB) repository.CounterRepository {
	return &counterRepository{
		db: db,
	}
}

func (repo *counterRepository) IncrementLikeCount(ctx context.Context, entityType entity.EntityType, id uuid.UUID) error {
	return repo.updateLikeCount(ctx, entityType, id, gorm.Expr("like_count + ?", 1))
}

func (repo *counterRepository) DecrementLikeCount(ctx context.Context, entityType entity.EntityType, id uuid.UUID) error {
	return repo.updateLikeCount(ctx, entityType, id, gorm.Expr("GREATEST(like_count - ?, 0)", 1))
}

func (repo *counterRepository) updateLikeCount(ctx context.Context, entityType entity.EntityType, id uuid.UUID, expr any) error {
	table, err := counterTableFor(entityType)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Table(table).
		Where("id = ?", id).
		UpdateColumn("like_count", expr)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update like count of "+table)
	}
	if result.RowsAffected == 0 {
		return repository.ErrEntityNotFound
	}

	return nil
}
