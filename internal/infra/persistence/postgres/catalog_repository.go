// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindActiveOffers retrieves active offers whose date window contains query.Now.
func (repo *catalogRepository) FindActiveOffers(ctx context.Context, query repository.CatalogQuery) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	tx := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("start_date IS NULL OR start_date <= ?", query.Now).
		Where("end_date IS NULL OR end_date >= ?", query.Now)
	tx = withTextSearch(tx, query.Search, "title", "description")

	if err := withCatalogOrder(tx).Find(&offerModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, m := range offerModels {
		offers = append(offers, toOfferDomain(m))
	}

	return offers, nil
}

// FindActiveEvents retrieves active events that have not finished yet. An
// event without an end date finishes when it starts.
func (repo *catalogRepository) FindActiveEvents(ctx context.Context, query repository.CatalogQuery) ([]*entity.Event, error) {
	var eventModels []*model.EventModel

	tx := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("COALESCE(end_date, start_date) >= ?", query.Now)
	tx = withTextSearch(tx, query.Search, "title", "description")

	if err := withCatalogOrder(tx).Find(&eventModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active events")
	}

	events := make([]*entity.Event, 0, len(eventModels))
	for _, m := range eventModels {
		events = append(events, toEventDomain(m))
	}

	return events, nil
}

// FindActiveCommerces retrieves active commerces.
func (repo *catalogRepository) FindActiveCommerces(ctx context.Context, query repository.CatalogQuery) ([]*entity.Commerce, error) {
	var commerceModels []*model.CommerceModel

	tx := repo.db.WithContext(ctx).Where("is_active = ?", true)
	tx = withTextSearch(tx, query.Search, "name", "description")

	if err := withCatalogOrder(tx).Find(&commerceModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find active commerces")
	}

	return toCommerceDomains(commerceModels), nil
}

// FindCommercesByIDs retrieves the given commerces in a single query.
func (repo *catalogRepository) FindCommercesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Commerce, error) {
	if len(ids) == 0 {
		return []*entity.Commerce{}, nil
	}

	var commerceModels []*model.CommerceModel

	if err := repo.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&commerceModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find commerces by IDs")
	}

	return toCommerceDomains(commerceModels), nil
}

func withCatalogOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("boosted DESC").Order("created_at DESC")
}

// withTextSearch narrows tx to rows whose columns contain search, ignoring case.
func withTextSearch(tx *gorm.DB, search string, columns ...string) *gorm.DB {
	search = strings.TrimSpace(search)
	if search == "" || len(columns) == 0 {
		return tx
	}

	pattern := "%" + escapeLike(search) + "%"
	clauses := make([]string, 0, len(columns))
	args := make([]any, 0, len(columns))
	for _, column := range columns {
		clauses = append(clauses, column+" ILIKE ?")
		args = append(args, pattern)
	}

	return tx.Where(strings.Join(clauses, " OR "), args...)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func toCommerceDomains(models []*model.CommerceModel) []*entity.Commerce {
	commerces := make([]*entity.Commerce, 0, len(models))
	for _, m := range models {
		commerces = append(commerces, toCommerceDomain(m))
	}

	return commerces
}

// toCommerceDomain converts a GORM CommerceModel to a domain Commerce entity.
func toCommerceDomain(data *model.CommerceModel) *entity.Commerce {
	if data == nil {
		return nil
	}

	return &entity.Commerce{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Address:     data.Address,
		LogoURL:     data.LogoURL,
		Location:    entity.CoordinateFrom(data.Longitude, data.Latitude),
		Boosted:     data.Boosted,
		IsActive:    data.IsActive,
		CreatedAt:   data.CreatedAt,
	}
}

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	return &entity.Offer{
		ID:          data.ID,
		CommerceID:  data.CommerceID,
		Title:       data.Title,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Location:    entity.CoordinateFrom(data.Longitude, data.Latitude),
		Boosted:     data.Boosted,
		IsActive:    data.IsActive,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		LikeCount:   data.LikeCount,
		CreatedAt:   data.CreatedAt,
	}
}

// toEventDomain converts a GORM EventModel to a domain Event entity.
func toEventDomain(data *model.EventModel) *entity.Event {
	if data == nil {
		return nil
	}

	return &entity.Event{
		ID:          data.ID,
		CommerceID:  data.CommerceID,
		Title:       data.Title,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		Venue:       data.Venue,
		Location:    entity.CoordinateFrom(data.Longitude, data.Latitude),
		Boosted:     data.Boosted,
		IsActive:    data.IsActive,
		StartDate:   data.StartDate,
		EndDate:     data.EndDate,
		LikeCount:   data.LikeCount,
		CreatedAt:   data.CreatedAt,
	}
}
