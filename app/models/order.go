package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Order is a user's order. Items are owned by the order: they are written in
// the same transaction and removed with it (cascade delete).
//
// Cancelled is a one-way flag; there are no further order states.
type Order struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey"     json:"id"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	User      User        `gorm:"foreignKey:UserID"        json:"-"`
	Items     []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items"`
	Cancelled bool        `gorm:"not null;default:false"   json:"cancelled"`
	CreatedAt time.Time   `json:"created_at"`
}

// BeforeCreate assigns a UUID primary key when none was set.
func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// OrderItem is a line item. UnitPrice is the product's price snapshotted at
// order creation and is never recomputed.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"    json:"-"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"    json:"-"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"          json:"product_id"`
	Product   Product         `gorm:"foreignKey:ProductID"        json:"-"`
	Quantity  int             `gorm:"not null"                    json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price"`
}

// LineTotal is derived on read, not stored.
func (i OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
