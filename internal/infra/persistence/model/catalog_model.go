package model

import (
	"time"

	"github.com/google/uuid"
)

// CommerceModel is the GORM-specific struct for the 'commerces' table.
type CommerceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Category    string    `gorm:"type:varchar(100)"`
	Address     string    `gorm:"type:text"`
	LogoURL     string    `gorm:"column:logo_url;type:text"`
	Latitude    *float64  `gorm:"type:decimal(10,8)"`
	Longitude   *float64  `gorm:"type:decimal(11,8)"`
	Boosted     bool      `gorm:"not null;default:false;index"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommerceModel) TableName() string {
	return "commerces"
}

// OfferModel is the GORM-specific struct for the 'offers' table.
// Start and end dates are both optional; an open end is unbounded.
type OfferModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CommerceID  uuid.UUID `gorm:"type:uuid;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"column:image_url;type:text"`
	Latitude    *float64  `gorm:"type:decimal(10,8)"`
	Longitude   *float64  `gorm:"type:decimal(11,8)"`
	Boosted     bool      `gorm:"not null;default:false;index"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	StartDate   *time.Time
	EndDate     *time.Time
	LikeCount   int `gorm:"not null;default:0"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}

// EventModel is the GORM-specific struct for the 'events' table.
type EventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CommerceID  uuid.UUID `gorm:"type:uuid;index"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	ImageURL    string    `gorm:"column:image_url;type:text"`
	Venue       string    `gorm:"type:varchar(255)"`
	Latitude    *float64  `gorm:"type:decimal(10,8)"`
	Longitude   *float64  `gorm:"type:decimal(11,8)"`
	Boosted     bool      `gorm:"not null;default:false;index"`
	IsActive    bool      `gorm:"not null;default:true;index"`
	StartDate   time.Time `gorm:"not null;index"`
	EndDate     *time.Time
	LikeCount   int `gorm:"not null;default:0"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
