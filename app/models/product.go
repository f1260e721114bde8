package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a product in the catalogue.
//
// Active is a visibility flag, not a lifecycle state machine: soft-deleted
// products keep their row with Active=false and are excluded from every
// customer-facing read.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"             json:"id"`
	Name        string          `gorm:"size:255;not null;index"          json:"name"`
	Description string          `gorm:"size:255"                         json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"      json:"price"`
	Stock       int             `gorm:"not null;default:0"               json:"stock"`
	ImageURL    string          `gorm:"size:255"                         json:"image_url"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index"         json:"category_id"`
	Category    Category        `gorm:"foreignKey:CategoryID"            json:"-"`
	Slug        string          `gorm:"size:255;not null;uniqueIndex"    json:"slug"`
	Active      bool            `gorm:"not null"                         json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Category groups products. Name and slug are unique across the table.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"          json:"id"`
	Name      string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Slug      string    `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	IconURL   string    `gorm:"size:255"                      json:"icon_url"`
	Active    bool      `gorm:"not null"                      json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID primary key when none was set.
func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
