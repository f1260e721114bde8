package controllers

import (
	"github.com/dmelo/catalog/app/services"
	"github.com/dmelo/catalog/pkg/ctx"
	"github.com/dmelo/catalog/pkg/response"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CategoryController struct {
	service *services.CategoryService
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{service: services.NewCategoryService(db)}
}

// ListPublic handles GET /api/public/categories: active categories only.
func (c *CategoryController) ListPublic(cc *ctx.Context) {
	categories, err := c.service.FindAllPublic()
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Success(categories)
}

// List handles GET /api/categories: unfiltered, administrative.
func (c *CategoryController) List(cc *ctx.Context) {
	categories, err := c.service.FindAll(cc.Role())
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Success(categories)
}

// Get handles GET /api/categories/{id}.
func (c *CategoryController) Get(cc *ctx.Context) {
	id, err := uuid.Parse(cc.Param("id"))
	if err != nil {
		cc.ValidationError(map[string]string{"id": "Invalid category id"})
		return
	}

	category, err := c.service.GetByID(id)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Success(category)
}

// Create handles POST /api/categories.
func (c *CategoryController) Create(cc *ctx.Context) {
	var input services.CategoryInput
	if !cc.BindJSON(&input) {
		return
	}

	category, err := c.service.Create(cc.Role(), input)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Created(category)
}

// Update handles PUT /api/categories/{id}.
func (c *CategoryController) Update(cc *ctx.Context) {
	id, err := uuid.Parse(cc.Param("id"))
	if err != nil {
		cc.ValidationError(map[string]string{"id": "Invalid category id"})
		return
	}

	var input services.CategoryInput
	if !cc.BindJSON(&input) {
		return
	}

	category, err := c.service.Update(cc.Role(), id, input)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Success(category)
}

// Delete handles DELETE /api/categories/{id}. Restricted while active
// products reference the category.
func (c *CategoryController) Delete(cc *ctx.Context) {
	id, err := uuid.Parse(cc.Param("id"))
	if err != nil {
		cc.ValidationError(map[string]string{"id": "Invalid category id"})
		return
	}

	if err := c.service.Delete(cc.Role(), id); err != nil {
		response.FromError(cc.W, err)
		return
	}
	response.NoContent(cc.W)
}
