package repositories

import (
	"github.com/dmelo/catalog/app/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository handles database operations for Category.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// FindByID looks up a category by primary key.
func (r *CategoryRepository) FindByID(id uuid.UUID) (models.Category, error) {
	var category models.Category
	err := r.db.Where("id = ?", id).First(&category).Error
	return category, err
}

// FindAll returns every category, active or not.
func (r *CategoryRepository) FindAll() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Order("name asc").Find(&categories).Error
	return categories, err
}

// FindAllActive returns only active categories.
func (r *CategoryRepository) FindAllActive() ([]models.Category, error) {
	var categories []models.Category
	err := r.db.Where("active = ?", true).Order("name asc").Find(&categories).Error
	return categories, err
}

// ExistsByNameOrSlug reports whether name or slug is already taken.
func (r *CategoryRepository) ExistsByNameOrSlug(name, slug string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).
		Where("name = ? OR slug = ?", name, slug).
		Count(&count).Error
	return count > 0, err
}

// ExistsByNameOrSlugExcluding is ExistsByNameOrSlug ignoring one category,
// so a rename onto its own name does not count as a collision.
func (r *CategoryRepository) ExistsByNameOrSlugExcluding(name, slug string, id uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Category{}).
		Where("(name = ? OR slug = ?) AND id <> ?", name, slug, id).
		Count(&count).Error
	return count > 0, err
}

// Create persists a new category record.
func (r *CategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Save persists changes to an existing category.
func (r *CategoryRepository) Save(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete removes a category row.
func (r *CategoryRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Category{}, "id = ?", id).Error
}
