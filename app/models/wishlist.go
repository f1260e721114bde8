package models

import (
	"time"

	"github.com/google/uuid"
)

// WishlistItem links a user to a product. At most one row may exist per
// (user, product) pair; the composite unique index backs the domain-level
// duplicate check in the wishlist service.
type WishlistItem struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"                         json:"-"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_product"  json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_product"  json:"product_id"`
	Product   Product   `gorm:"foreignKey:ProductID"                             json:"product"`
	AddedAt   time.Time `gorm:"autoCreateTime"                                   json:"added_at"`
}
