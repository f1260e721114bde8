package repositories

import (
	"github.com/dmelo/catalog/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderRepository handles database operations for Order and its items.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// FindByID loads an order with its items.
func (r *OrderRepository) FindByID(id uuid.UUID) (models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").Preload("Items.Product").
		Where("id = ?", id).
		First(&order).Error
	return order, err
}

// FindByUser returns the user's orders, newest first.
func (r *OrderRepository) FindByUser(userID uuid.UUID) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// FindAll returns every order, newest first.
func (r *OrderRepository) FindAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Preload("Items").Preload("Items.Product").
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// Count returns the total number of order rows.
func (r *OrderRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).Count(&count).Error
	return count, err
}

// Save persists changes to an existing order.
func (r *OrderRepository) Save(order *models.Order) error {
	return r.db.Save(order).Error
}
