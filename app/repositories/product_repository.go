package repositories

import (
	"github.com/dmelo/catalog/app/models"
	"github.com/dmelo/catalog/app/specifications"
	"github.com/dmelo/catalog/pkg/orm"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository handles database operations for Product.
type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindActiveByID looks up a product that is still visible. Soft-deleted
// products are indistinguishable from missing ones here.
func (r *ProductRepository) FindActiveByID(id uuid.UUID) (models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").
		Where("id = ? AND active = ?", id, true).
		First(&product).Error
	return product, err
}

// FindActiveBySlug looks up a visible product by its unique slug.
func (r *ProductRepository) FindActiveBySlug(slug string) (models.Product, error) {
	var product models.Product
	err := r.db.Preload("Category").
		Where("slug = ? AND active = ?", slug, true).
		First(&product).Error
	return product, err
}

// Create persists a new product record.
func (r *ProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

// Save persists changes to an existing product.
func (r *ProductRepository) Save(product *models.Product) error {
	return r.db.Save(product).Error
}

// ListFiltered applies the predicate conditions, sorting, and pagination.
func (r *ProductRepository) ListFiltered(conditions []specifications.Condition, page, size int, orderBy string) ([]models.Product, int64, error) {
	var products []models.Product

	query := specifications.Apply(r.db.Model(&models.Product{}), conditions).
		Preload("Category").
		Order(orderBy)

	total, err := orm.Paginate(query, page, size, &products)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// CountActiveByCategory counts visible products referencing a category.
func (r *ProductRepository) CountActiveByCategory(categoryID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("category_id = ? AND active = ?", categoryID, true).
		Count(&count).Error
	return count, err
}
