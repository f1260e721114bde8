package controllers

import (
	"strconv"

	"github.com/dmelo/catalog/app/services"
	"github.com/dmelo/catalog/app/specifications"
	"github.com/dmelo/catalog/pkg/ctx"
	"github.com/dmelo/catalog/pkg/response"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{service: services.NewProductService(db)}
}

// List handles GET /api/products: filtered, paginated, sorted catalogue.
func (c *ProductController) List(cc *ctx.Context) {
	filter, page, size, sortField, direction, ok := parseListQuery(cc)
	if !ok {
		return
	}

	result, err := c.service.List(filter, page, size, sortField, direction)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	response.Paginated(cc.W, result)
}

// ListPublic handles GET /api/public/products with the summary projection.
func (c *ProductController) ListPublic(cc *ctx.Context) {
	filter, page, size, sortField, direction, ok := parseListQuery(cc)
	if !ok {
		return
	}

	result, err := c.service.ListPublic(filter, page, size, sortField, direction)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	response.Paginated(cc.W, result)
}

// Get handles GET /api/products/{id}: a single active product or 404.
func (c *ProductController) Get(cc *ctx.Context) {
	id, err := uuid.Parse(cc.Param("id"))
	if err != nil {
		cc.ValidationError(map[string]string{"id": "Invalid product id"})
		return
	}

	product, err := c.service.GetActive(id)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Success(product)
}

// GetBySlug handles GET /api/public/products/{slug}.
func (c *ProductController) GetBySlug(cc *ctx.Context) {
	product, err := c.service.GetPublicBySlug(cc.Param("slug"))
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Success(product)
}

// Create handles POST /api/products. Responds 201 with a Location header
// pointing at the new resource.
func (c *ProductController) Create(cc *ctx.Context) {
	var input services.ProductInput
	if !cc.BindJSON(&input) {
		return
	}

	product, err := c.service.Create(cc.Role(), input)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}

	cc.SetHeader("Location", "/api/products/"+product.ID.String())
	cc.Created(product)
}

// Update handles PUT /api/products/{id}.
func (c *ProductController) Update(cc *ctx.Context) {
	id, err := uuid.Parse(cc.Param("id"))
	if err != nil {
		cc.ValidationError(map[string]string{"id": "Invalid product id"})
		return
	}

	var input services.ProductInput
	if !cc.BindJSON(&input) {
		return
	}

	product, err := c.service.Update(cc.Role(), id, input)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Success(product)
}

// Delete handles DELETE /api/products/{id}: soft delete, 204 on success.
func (c *ProductController) Delete(cc *ctx.Context) {
	id, err := uuid.Parse(cc.Param("id"))
	if err != nil {
		cc.ValidationError(map[string]string{"id": "Invalid product id"})
		return
	}

	if err := c.service.Delete(cc.Role(), id); err != nil {
		response.FromError(cc.W, err)
		return
	}
	response.NoContent(cc.W)
}

// parseListQuery reads the filter, pagination, and sorting query parameters.
// On a malformed parameter it writes the 400 itself and returns ok=false.
func parseListQuery(cc *ctx.Context) (filter specifications.ProductFilter, page, size int, sortField, direction string, ok bool) {
	filter.Name = cc.Query("name")

	if raw := cc.Query("minPrice"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			cc.ValidationError(map[string]string{"minPrice": "Must be a decimal number"})
			return
		}
		filter.MinPrice = v
	}

	if raw := cc.Query("maxPrice"); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			cc.ValidationError(map[string]string{"maxPrice": "Must be a decimal number"})
			return
		}
		filter.MaxPrice = v
	}

	if raw := cc.Query("minStock"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			cc.ValidationError(map[string]string{"minStock": "Must be an integer"})
			return
		}
		filter.MinStock = v
	}

	if raw := cc.Query("categoryId"); raw != "" {
		v, err := uuid.Parse(raw)
		if err != nil {
			cc.ValidationError(map[string]string{"categoryId": "Must be a UUID"})
			return
		}
		filter.CategoryID = v
	}

	page, err := strconv.Atoi(cc.DefaultQuery("page", "0"))
	if err != nil {
		cc.ValidationError(map[string]string{"page": "Must be an integer"})
		return
	}
	size, err = strconv.Atoi(cc.DefaultQuery("size", "20"))
	if err != nil {
		cc.ValidationError(map[string]string{"size": "Must be an integer"})
		return
	}

	sortField = cc.Query("sortField")
	direction = cc.Query("direction")
	ok = true
	return
}
