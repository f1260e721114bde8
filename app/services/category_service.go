package services

import (
	"errors"
	"strings"

	"github.com/dmelo/catalog/app/models"
	"github.com/dmelo/catalog/app/repositories"
	"github.com/dmelo/catalog/pkg/apperr"
	"github.com/dmelo/catalog/pkg/logger"
	"github.com/dmelo/catalog/pkg/rbac"
	"github.com/dmelo/catalog/pkg/slug"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryInput carries the writable category fields.
type CategoryInput struct {
	Name    string `json:"name"`
	Slug    string `json:"slug" validate:"nullable,alpha_dash"`
	IconURL string `json:"icon_url" validate:"nullable,url"`
	Active  bool   `json:"active"`
}

// CategoryService owns the category lifecycle. Category slugs carry no random
// disambiguator, so duplicates surface as Conflict instead of being avoided.
type CategoryService struct {
	categories *repositories.CategoryRepository
	products   *repositories.ProductRepository
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{
		categories: repositories.NewCategoryRepository(db),
		products:   repositories.NewProductRepository(db),
	}
}

// FindAllPublic returns only active categories.
func (s *CategoryService) FindAllPublic() ([]models.Category, error) {
	categories, err := s.categories.FindAllActive()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return categories, nil
}

// FindAll returns every category, for administrative use.
func (s *CategoryService) FindAll(role string) ([]models.Category, error) {
	if !rbac.Can(role, rbac.ActionCategoryList) {
		return nil, apperr.Forbidden("Not allowed to list all categories")
	}

	categories, err := s.categories.FindAll()
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return categories, nil
}

// GetByID returns a category regardless of its active flag.
func (s *CategoryService) GetByID(id uuid.UUID) (models.Category, error) {
	category, err := s.categories.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Category{}, apperr.NotFound("Category not found")
	}
	if err != nil {
		return models.Category{}, apperr.Internal(err)
	}
	return category, nil
}

// Create persists a new category. The slug comes from the supplied value or,
// if blank, is derived from the name.
func (s *CategoryService) Create(role string, input CategoryInput) (models.Category, error) {
	if !rbac.Can(role, rbac.ActionCategoryWrite) {
		return models.Category{}, apperr.Forbidden("Not allowed to manage categories")
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return models.Category{}, apperr.Validation("Validation failed", map[string]string{"name": "Name is required"})
	}

	categorySlug := deriveSlug(input.Slug, input.Name)

	taken, err := s.categories.ExistsByNameOrSlug(input.Name, categorySlug)
	if err != nil {
		return models.Category{}, apperr.Internal(err)
	}
	if taken {
		return models.Category{}, apperr.Conflict("Category name or slug already in use")
	}

	category := models.Category{
		Name:    input.Name,
		Slug:    categorySlug,
		IconURL: input.IconURL,
		Active:  input.Active,
	}
	if err := s.categories.Create(&category); err != nil {
		return models.Category{}, apperr.Internal(err)
	}

	logger.Info("category created", "category_id", category.ID, "slug", category.Slug)
	return category, nil
}

// Update overwrites name, slug, icon, and active flag.
func (s *CategoryService) Update(role string, id uuid.UUID, input CategoryInput) (models.Category, error) {
	if !rbac.Can(role, rbac.ActionCategoryWrite) {
		return models.Category{}, apperr.Forbidden("Not allowed to manage categories")
	}

	category, err := s.GetByID(id)
	if err != nil {
		return models.Category{}, err
	}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return models.Category{}, apperr.Validation("Validation failed", map[string]string{"name": "Name is required"})
	}

	newSlug := deriveSlug(input.Slug, input.Name)
	taken, err := s.categories.ExistsByNameOrSlugExcluding(input.Name, newSlug, id)
	if err != nil {
		return models.Category{}, apperr.Internal(err)
	}
	if taken {
		return models.Category{}, apperr.Conflict("Category name or slug already in use")
	}

	category.Name = input.Name
	category.Slug = newSlug
	category.IconURL = input.IconURL
	category.Active = input.Active

	if err := s.categories.Save(&category); err != nil {
		return models.Category{}, apperr.Internal(err)
	}
	return category, nil
}

// Delete removes a category. Deletion is restricted while active products
// still reference it, so products never end up pointing at a missing row.
func (s *CategoryService) Delete(role string, id uuid.UUID) error {
	if !rbac.Can(role, rbac.ActionCategoryWrite) {
		return apperr.Forbidden("Not allowed to manage categories")
	}

	if _, err := s.GetByID(id); err != nil {
		return err
	}

	count, err := s.products.CountActiveByCategory(id)
	if err != nil {
		return apperr.Internal(err)
	}
	if count > 0 {
		return apperr.Conflict("Category is referenced by active products")
	}

	if err := s.categories.Delete(id); err != nil {
		return apperr.Internal(err)
	}

	logger.Info("category deleted", "category_id", id)
	return nil
}

func deriveSlug(explicit, name string) string {
	if strings.TrimSpace(explicit) != "" {
		return slug.Make(explicit)
	}
	return slug.Make(name)
}
