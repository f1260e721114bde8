package controllers

import (
	"github.com/dmelo/catalog/app/services"
	"github.com/dmelo/catalog/pkg/ctx"
	"github.com/dmelo/catalog/pkg/response"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{service: services.NewOrderService(db)}
}

// Create handles POST /api/orders: one atomic order from one-or-more lines.
func (c *OrderController) Create(cc *ctx.Context) {
	userID, ok := cc.UserID()
	if !ok {
		cc.Unauthorized()
		return
	}

	var input services.OrderInput
	if !cc.BindJSON(&input) {
		return
	}

	order, err := c.service.Create(userID, input)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Created(order)
}

// Get handles GET /api/orders/{id}: owner or privileged reader.
func (c *OrderController) Get(cc *ctx.Context) {
	userID, ok := cc.UserID()
	if !ok {
		cc.Unauthorized()
		return
	}

	id, err := uuid.Parse(cc.Param("id"))
	if err != nil {
		cc.ValidationError(map[string]string{"id": "Invalid order id"})
		return
	}

	order, err := c.service.Get(userID, cc.Role(), id)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Success(order)
}

// ListMine handles GET /api/orders/me.
func (c *OrderController) ListMine(cc *ctx.Context) {
	userID, ok := cc.UserID()
	if !ok {
		cc.Unauthorized()
		return
	}

	orders, err := c.service.ListMine(userID)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Success(orders)
}

// ListAll handles GET /api/orders: privileged readers only.
func (c *OrderController) ListAll(cc *ctx.Context) {
	orders, err := c.service.ListAll(cc.Role())
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Success(orders)
}

// Cancel handles PATCH /api/orders/{id}/cancel.
func (c *OrderController) Cancel(cc *ctx.Context) {
	userID, ok := cc.UserID()
	if !ok {
		cc.Unauthorized()
		return
	}

	id, err := uuid.Parse(cc.Param("id"))
	if err != nil {
		cc.ValidationError(map[string]string{"id": "Invalid order id"})
		return
	}

	if err := c.service.Cancel(userID, cc.Role(), id); err != nil {
		response.FromError(cc.W, err)
		return
	}
	response.NoContent(cc.W)
}
