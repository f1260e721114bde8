package repositories

import (
	"github.com/dmelo/catalog/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WishlistRepository handles database operations for WishlistItem.
type WishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Exists reports whether the (user, product) pair is already wishlisted.
func (r *WishlistRepository) Exists(userID, productID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.WishlistItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count > 0, err
}

// Create persists a new wishlist row.
func (r *WishlistRepository) Create(item *models.WishlistItem) error {
	return r.db.Create(item).Error
}

// DeleteByUserAndProduct removes the pair if present. Removing an absent pair
// is not an error.
func (r *WishlistRepository) DeleteByUserAndProduct(userID, productID uuid.UUID) error {
	return r.db.
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.WishlistItem{}).Error
}

// FindByUser returns the user's wishlist in insertion order.
func (r *WishlistRepository) FindByUser(userID uuid.UUID) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	err := r.db.Preload("Product").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&items).Error
	return items, err
}
