package controllers

import (
	"net/http"

	"github.com/dmelo/catalog/app/services"
	"github.com/dmelo/catalog/pkg/ctx"
	"github.com/dmelo/catalog/pkg/response"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WishlistController struct {
	service *services.WishlistService
}

func NewWishlistController(db *gorm.DB) *WishlistController {
	return &WishlistController{service: services.NewWishlistService(db)}
}

// Add handles POST /api/wishlist/{productId}.
func (c *WishlistController) Add(cc *ctx.Context) {
	userID, productID, ok := wishlistArgs(cc)
	if !ok {
		return
	}

	if err := c.service.Add(userID, productID); err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Status(http.StatusCreated)
}

// Remove handles DELETE /api/wishlist/{productId}. Idempotent.
func (c *WishlistController) Remove(cc *ctx.Context) {
	userID, productID, ok := wishlistArgs(cc)
	if !ok {
		return
	}

	if err := c.service.Remove(userID, productID); err != nil {
		response.FromError(cc.W, err)
		return
	}
	response.NoContent(cc.W)
}

// List handles GET /api/wishlist.
func (c *WishlistController) List(cc *ctx.Context) {
	userID, ok := cc.UserID()
	if !ok {
		cc.Unauthorized()
		return
	}

	items, err := c.service.List(userID)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Success(items)
}

// Contains handles GET /api/wishlist/contains/{productId}.
func (c *WishlistController) Contains(cc *ctx.Context) {
	userID, productID, ok := wishlistArgs(cc)
	if !ok {
		return
	}

	contains, err := c.service.Contains(userID, productID)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Success(map[string]bool{"contains": contains})
}

func wishlistArgs(cc *ctx.Context) (userID, productID uuid.UUID, ok bool) {
	userID, authed := cc.UserID()
	if !authed {
		cc.Unauthorized()
		return
	}

	productID, err := uuid.Parse(cc.Param("productId"))
	if err != nil {
		cc.ValidationError(map[string]string{"productId": "Invalid product id"})
		return
	}
	return userID, productID, true
}
