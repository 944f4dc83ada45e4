// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ErrEntityNotFound is returned when a referenced entity does not exist.
var ErrEntityNotFound = errors.New("entity not found")

// CatalogQuery narrows a catalog read.
type CatalogQuery struct {
	// Search is matched case-insensitively as a substring of title/name or
	// description. Empty means no text filter.
	Search string

	// Now anchors the active-window predicates.
	Now time.Time
}

// CatalogRepository reads the discoverable entities owned by the remote store.
// Every Find* method returns rows ordered boosted first, newest first.
type CatalogRepository interface {
	// FindActiveOffers returns active offers whose [start_date, end_date]
	// window contains Now; open ends are unbounded.
	FindActiveOffers(ctx context.Context, query CatalogQuery) ([]*entity.Offer, error)

	// FindActiveEvents returns active events that have not finished at Now.
	FindActiveEvents(ctx context.Context, query CatalogQuery) ([]*entity.Event, error)

	// FindActiveCommerces returns active commerces.
	FindActiveCommerces(ctx context.Context, query CatalogQuery) ([]*entity.Commerce, error)

	// FindCommercesByIDs fetches the given commerces in one call. Unknown ids
	// are silently absent from the result.
	FindCommercesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Commerce, error)
}
