package postgres

import (
	"context"
	"fmt"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// engagementRepository implements the repository.EngagementRepository interface.
type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository is the constructor for engagementRepository.
func NewEngagementRepository(db *gorm.DB) repository.EngagementRepository {
	return &engagementRepository{
		db: db,
	}
}

// ListEntityIDs retrieves the ids the user engaged with.
func (repo *engagementRepository) ListEntityIDs(
	ctx context.Context,
	kind entity.EngagementKind,
	userID uuid.UUID,
	entityType entity.EntityType,
) ([]uuid.UUID, error) {
	table, err := engagementTableFor(kind, entityType)
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Table(table.table).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck(table.idColumn, &ids).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list "+table.table)
	}

	return ids, nil
}

// Insert persists a new engagement record.
func (repo *engagementRepository) Insert(ctx context.Context, kind entity.EngagementKind, record entity.EngagementRecord) error {
	table, err := engagementTableFor(kind, record.EntityType)
	if err != nil {
		return err
	}

	stmt := fmt.Sprintf("INSERT INTO %s (user_id, %s, created_at) VALUES (?, ?, ?)", table.table, table.idColumn)
	if err := repo.db.WithContext(ctx).
		Exec(stmt, record.UserID, record.EntityID, record.CreatedAt).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEngagement
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEntityNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert into "+table.table)
	}

	return nil
}

// Delete removes an engagement record.
func (repo *engagementRepository) Delete(ctx context.Context, kind entity.EngagementKind, record entity.EngagementRecord) error {
	table, err := engagementTableFor(kind, record.EntityType)
	if err != nil {
		return err
	}

	stmt := fmt.Sprintf("DELETE FROM %s WHERE user_id = ? AND %s = ?", table.table, table.idColumn)
	result := repo.db.WithContext(ctx).Exec(stmt, record.UserID, record.EntityID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete from "+table.table)
	}
	if result.RowsAffected == 0 {
		return repository.ErrEngagementNotFound
	}

	return nil
}
