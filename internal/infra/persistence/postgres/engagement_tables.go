package postgres

import (
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

// engagementTable locates the rows of one engagement kind for one entity type.
type engagementTable struct {
	table    string
	idColumn string
}

// engagementTableFor maps (kind, entity type) to its table. Names never come
// from caller input, so they are safe to splice into SQL.
func engagementTableFor(kind entity.EngagementKind, entityType entity.EntityType) (engagementTable, error) {
	idColumn, err := entityIDColumn(entityType)
	if err != nil {
		return engagementTable{}, err
	}

	switch kind {
	case entity.EngagementFavorite:
		switch entityType {
		case entity.EntityTypeOffer:
			return engagementTable{table: "user_favorite_offers", idColumn: idColumn}, nil
		case entity.EntityTypeEvent:
			return engagementTable{table: "user_favorite_events", idColumn: idColumn}, nil
		case entity.EntityTypeCommerce:
			return engagementTable{table: "user_favorite_commerces", idColumn: idColumn}, nil
		}
	case entity.EngagementLike:
		switch entityType {
		case entity.EntityTypeOffer:
			return engagementTable{table: "user_like_offers", idColumn: idColumn}, nil
		case entity.EntityTypeEvent:
			return engagementTable{table: "user_like_events", idColumn: idColumn}, nil
		case entity.EntityTypeCommerce:
		}
	case entity.EngagementFollow:
		if entityType == entity.EntityTypeCommerce {
			return engagementTable{table: "user_follow_commerces", idColumn: idColumn}, nil
		}
	}

	return engagementTable{}, errors.Wrapf(repository.ErrUnsupportedEngagement, "%s on %s", kind, entityType)
}

func entityIDColumn(entityType entity.EntityType) (string, error) {
	switch entityType {
	case entity.EntityTypeOffer:
		return "offer_id", nil
	case entity.EntityTypeEvent:
		return "event_id", nil
	case entity.EntityTypeCommerce:
		return "commerce_id", nil
	default:
		return "", errors.Wrapf(entity.ErrUnknownEntityType, "%q", entityType)
	}
}

// counterTableFor returns the table holding the like counter of entityType.
func counterTableFor(entityType entity.EntityType) (string, error) {
	switch entityType {
	case entity.EntityTypeOffer:
		return "offers", nil
	case entity.EntityTypeEvent:
		return "events", nil
	case entity.EntityTypeCommerce:
	}

	return "", errors.Wrapf(repository.ErrUnsupportedEngagement, "like counter on %s", entityType)
}
