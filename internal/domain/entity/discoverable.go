package entity

import (
	"time"

	"github.com/google/uuid"
)

// Discoverable is implemented by every entity that can be listed, ranked by
// distance and placed on the map.
type Discoverable interface {
	EntityID() uuid.UUID
	Type() EntityType
	// Position returns the coordinate used for distance computations, falling
	// back to the parent commerce when the entity has none of its own.
	Position() (Coordinate, bool)
	IsBoosted() bool
	CreatedTime() time.Time
}

// Commerce is a business listed in the storefront.
type Commerce struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Category    string      `json:"category,omitempty"`
	Address     string      `json:"address,omitempty"`
	LogoURL     string      `json:"logo_url,omitempty"`
	Location    *Coordinate `json:"location,omitempty"`
	Boosted     bool        `json:"boosted"`
	IsActive    bool        `json:"is_active"`
	CreatedAt   time.Time   `json:"created_at"`
}

func (c *Commerce) EntityID() uuid.UUID    { return c.ID }
func (c *Commerce) Type() EntityType       { return EntityTypeCommerce }
func (c *Commerce) IsBoosted() bool        { return c.Boosted }
func (c *Commerce) CreatedTime() time.Time { return c.CreatedAt }

func (c *Commerce) Position() (Coordinate, bool) {
	if c == nil || c.Location == nil {
		return Coordinate{}, false
	}

	return *c.Location, true
}

// Offer is a time-boxed promotion published by a commerce.
type Offer struct {
	ID          uuid.UUID   `json:"id"`
	CommerceID  uuid.UUID   `json:"commerce_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	ImageURL    string      `json:"image_url,omitempty"`
	Location    *Coordinate `json:"location,omitempty"`
	Boosted     bool        `json:"boosted"`
	IsActive    bool        `json:"is_active"`
	StartDate   *time.Time  `json:"start_date,omitempty"`
	EndDate     *time.Time  `json:"end_date,omitempty"`
	LikeCount   int         `json:"like_count"`
	CreatedAt   time.Time   `json:"created_at"`

	// Commerce is joined client-side after the batched business fetch.
	Commerce *Commerce `json:"commerce,omitempty"`
}

func (o *Offer) EntityID() uuid.UUID    { return o.ID }
func (o *Offer) Type() EntityType       { return EntityTypeOffer }
func (o *Offer) IsBoosted() bool        { return o.Boosted }
func (o *Offer) CreatedTime() time.Time { return o.CreatedAt }

func (o *Offer) Position() (Coordinate, bool) {
	if o.Location != nil {
		return *o.Location, true
	}

	return o.Commerce.Position()
}

// Event is a dated happening hosted by a commerce.
type Event struct {
	ID          uuid.UUID   `json:"id"`
	CommerceID  uuid.UUID   `json:"commerce_id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	ImageURL    string      `json:"image_url,omitempty"`
	Venue       string      `json:"venue,omitempty"`
	Location    *Coordinate `json:"location,omitempty"`
	Boosted     bool        `json:"boosted"`
	IsActive    bool        `json:"is_active"`
	StartDate   time.Time   `json:"start_date"`
	EndDate     *time.Time  `json:"end_date,omitempty"`
	LikeCount   int         `json:"like_count"`
	CreatedAt   time.Time   `json:"created_at"`

	Commerce *Commerce `json:"commerce,omitempty"`
}

func (e *Event) EntityID() uuid.UUID    { return e.ID }
func (e *Event) Type() EntityType       { return EntityTypeEvent }
func (e *Event) IsBoosted() bool        { return e.Boosted }
func (e *Event) CreatedTime() time.Time { return e.CreatedAt }

func (e *Event) Position() (Coordinate, bool) {
	if e.Location != nil {
		return *e.Location, true
	}

	return e.Commerce.Position()
}

// Ranked pairs an entity with its distance to the reference coordinate.
// DistanceKm is nil when no reference was given or no position is known.
type Ranked[T any] struct {
	Item       T        `json:"item"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}
