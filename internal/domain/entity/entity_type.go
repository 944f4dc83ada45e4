// Package entity contains the core business objects of the project.
package entity

import "github.com/pkg/errors"

// EntityType identifies which kind of discoverable entity a record refers to.
type EntityType string

const (
	// EntityTypeOffer is a time-boxed promotion published by a commerce.
	EntityTypeOffer EntityType = "offer"
	// EntityTypeEvent is a dated happening hosted by a commerce.
	EntityTypeEvent EntityType = "event"
	// EntityTypeCommerce is a business listed in the storefront.
	EntityTypeCommerce EntityType = "commerce"
)

// ErrUnknownEntityType is returned when parsing an unsupported entity type.
var ErrUnknownEntityType = errors.New("unknown entity type")

// String returns the string representation of the EntityType.
func (t EntityType) String() string {
	return string(t)
}

// IsValid checks if the EntityType is a valid value.
func (t EntityType) IsValid() bool {
	switch t {
	case EntityTypeOffer, EntityTypeEvent, EntityTypeCommerce:
		return true
	default:
		return false
	}
}

// ParseEntityType accepts the singular form ("offer") and the plural
// collection name ("offers").
func ParseEntityType(raw string) (EntityType, error) {
	switch raw {
	case "offer", "offers":
		return EntityTypeOffer, nil
	case "event", "events":
		return EntityTypeEvent, nil
	case "commerce", "commerces":
		return EntityTypeCommerce, nil
	default:
		return "", errors.Wrapf(ErrUnknownEntityType, "%q", raw)
	}
}

// AllEntityTypes lists every entity type in a stable order.
func AllEntityTypes() []EntityType {
	return []EntityType{EntityTypeOffer, EntityTypeEvent, EntityTypeCommerce}
}
