package services

import (
	"errors"
	"strings"

	"github.com/dmelo/catalog/app/models"
	"github.com/dmelo/catalog/app/repositories"
	"github.com/dmelo/catalog/app/specifications"
	"github.com/dmelo/catalog/pkg/apperr"
	"github.com/dmelo/catalog/pkg/collection"
	"github.com/dmelo/catalog/pkg/logger"
	"github.com/dmelo/catalog/pkg/orm"
	"github.com/dmelo/catalog/pkg/rbac"
	"github.com/dmelo/catalog/pkg/slug"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductInput carries the mutable product fields for create and update.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description" validate:"nullable,max=255"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url" validate:"nullable,url"`
	CategoryID  uuid.UUID       `json:"category_id"`
}

// ProductResponse is the full product projection for authenticated readers.
type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Slug        string          `json:"slug"`
	Active      bool            `json:"active"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// ProductSummary is the trimmed projection for the public catalogue.
type ProductSummary struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
	CategoryName string          `json:"category_name"`
	Slug         string          `json:"slug"`
}

// sortFields whitelists the product columns a caller may sort by. An unknown
// field is a caller error, never a silent fallback.
var sortFields = map[string]bool{
	"name":       true,
	"price":      true,
	"stock":      true,
	"created_at": true,
}

// ProductService owns the product lifecycle and filtered reads.
type ProductService struct {
	products   *repositories.ProductRepository
	categories *repositories.CategoryRepository
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{
		products:   repositories.NewProductRepository(db),
		categories: repositories.NewCategoryRepository(db),
	}
}

// List returns a filtered, sorted page of active products.
func (s *ProductService) List(filter specifications.ProductFilter, page, size int, sortField, direction string) (orm.Page, error) {
	orderBy, err := s.orderClause(sortField, direction)
	if err != nil {
		return orm.Page{}, err
	}
	if page < 0 || size <= 0 {
		return orm.Page{}, apperr.Validation("Page must be >= 0 and size > 0", nil)
	}

	conditions := specifications.FilterBy(filter)
	products, total, err := s.products.ListFiltered(conditions, page, size, orderBy)
	if err != nil {
		return orm.Page{}, apperr.Internal(err)
	}

	views := collection.Map(products, toProductResponse)
	return orm.PageOf(views, total, page, size), nil
}

// ListPublic is List with the summary projection for unauthenticated readers.
func (s *ProductService) ListPublic(filter specifications.ProductFilter, page, size int, sortField, direction string) (orm.Page, error) {
	orderBy, err := s.orderClause(sortField, direction)
	if err != nil {
		return orm.Page{}, err
	}
	if page < 0 || size <= 0 {
		return orm.Page{}, apperr.Validation("Page must be >= 0 and size > 0", nil)
	}

	conditions := specifications.FilterBy(filter)
	products, total, err := s.products.ListFiltered(conditions, page, size, orderBy)
	if err != nil {
		return orm.Page{}, apperr.Internal(err)
	}

	views := collection.Map(products, func(p models.Product) ProductSummary {
		return ProductSummary{
			ID:           p.ID,
			Name:         p.Name,
			Price:        p.Price,
			ImageURL:     p.ImageURL,
			CategoryName: p.Category.Name,
			Slug:         p.Slug,
		}
	})
	return orm.PageOf(views, total, page, size), nil
}

// GetActive returns the product only while it is visible; a soft-deleted
// product is indistinguishable from a missing one.
func (s *ProductService) GetActive(id uuid.UUID) (ProductResponse, error) {
	product, err := s.findActive(id)
	if err != nil {
		return ProductResponse{}, err
	}
	return toProductResponse(product), nil
}

// GetPublicBySlug resolves a visible product by its slug.
func (s *ProductService) GetPublicBySlug(productSlug string) (ProductResponse, error) {
	product, err := s.products.FindActiveBySlug(productSlug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ProductResponse{}, apperr.NotFound("Product not found")
	}
	if err != nil {
		return ProductResponse{}, apperr.Internal(err)
	}
	return toProductResponse(product), nil
}

// Create validates and persists a new product with a fresh UUID and a unique
// slug. The slug gets the first six characters of the ID as disambiguator so
// no uniqueness pre-check is needed.
func (s *ProductService) Create(role string, input ProductInput) (ProductResponse, error) {
	if !rbac.Can(role, rbac.ActionProductCreate) {
		return ProductResponse{}, apperr.Forbidden("Not allowed to create products")
	}
	if err := s.validateInput(&input); err != nil {
		return ProductResponse{}, err
	}

	id := uuid.New()
	product := models.Product{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		ImageURL:    input.ImageURL,
		CategoryID:  input.CategoryID,
		Slug:        slug.Make(input.Name) + "-" + id.String()[:6],
		Active:      true,
	}

	if err := s.products.Create(&product); err != nil {
		return ProductResponse{}, apperr.Internal(err)
	}

	logger.Info("product created", "product_id", product.ID, "slug", product.Slug)

	stored, err := s.findActive(product.ID)
	if err != nil {
		return ProductResponse{}, err
	}
	return toProductResponse(stored), nil
}

// Update overwrites the mutable fields of a visible product. Updating an
// already-soft-deleted product fails as NotFound.
func (s *ProductService) Update(role string, id uuid.UUID, input ProductInput) (ProductResponse, error) {
	if !rbac.Can(role, rbac.ActionProductUpdate) {
		return ProductResponse{}, apperr.Forbidden("Not allowed to update products")
	}
	if err := s.validateInput(&input); err != nil {
		return ProductResponse{}, err
	}

	product, err := s.findActive(id)
	if err != nil {
		return ProductResponse{}, err
	}

	// ID, slug, active flag, and timestamps stay untouched.
	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.ImageURL = input.ImageURL
	product.CategoryID = input.CategoryID

	if err := s.products.Save(&product); err != nil {
		return ProductResponse{}, apperr.Internal(err)
	}

	logger.Info("product updated", "product_id", id)

	stored, err := s.findActive(id)
	if err != nil {
		return ProductResponse{}, err
	}
	return toProductResponse(stored), nil
}

// Delete soft-deletes a product by flipping its visibility off. A second
// delete fails as NotFound: deletion is a one-way transition, not a toggle.
func (s *ProductService) Delete(role string, id uuid.UUID) error {
	if !rbac.Can(role, rbac.ActionProductDelete) {
		return apperr.Forbidden("Not allowed to delete products")
	}

	product, err := s.findActive(id)
	if err != nil {
		return err
	}

	product.Active = false
	if err := s.products.Save(&product); err != nil {
		return apperr.Internal(err)
	}

	logger.Info("product soft-deleted", "product_id", id)
	return nil
}

func (s *ProductService) findActive(id uuid.UUID) (models.Product, error) {
	product, err := s.products.FindActiveByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, apperr.NotFound("Product not found")
	}
	if err != nil {
		return models.Product{}, apperr.Internal(err)
	}
	return product, nil
}

func (s *ProductService) orderClause(sortField, direction string) (string, error) {
	if sortField == "" {
		sortField = "name"
	}
	if direction == "" {
		direction = "asc"
	}

	if !sortFields[sortField] {
		return "", apperr.Validation("Unknown sort field: "+sortField, nil)
	}
	if direction != "asc" && direction != "desc" {
		return "", apperr.Validation("Sort direction must be asc or desc", nil)
	}
	return sortField + " " + direction, nil
}

func (s *ProductService) validateInput(input *ProductInput) error {
	fields := map[string]string{}

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		fields["name"] = "Name is required"
	}
	if len(input.Description) > 255 {
		fields["description"] = "Description can be at most 255 characters"
	}
	if input.Price.IsNegative() {
		fields["price"] = "Price must be at least 0.00"
	}
	if input.Stock < 0 {
		fields["stock"] = "Stock cannot be negative"
	}

	if input.CategoryID == uuid.Nil {
		fields["category_id"] = "Category is required"
	} else if _, err := s.categories.FindByID(input.CategoryID); errors.Is(err, gorm.ErrRecordNotFound) {
		fields["category_id"] = "Category not found"
	} else if err != nil {
		return apperr.Internal(err)
	}

	if len(fields) > 0 {
		return apperr.Validation("Validation failed", fields)
	}
	return nil
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
		Slug:        p.Slug,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:   p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
