package controllers

import (
	"github.com/dmelo/catalog/app/services"
	"github.com/dmelo/catalog/pkg/ctx"
	"github.com/dmelo/catalog/pkg/response"
	"gorm.io/gorm"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{service: services.NewAuthService(db)}
}

// Register handles POST /api/auth/register. New accounts are always CUSTOMER.
func (c *AuthController) Register(cc *ctx.Context) {
	var input services.RegisterInput
	if !cc.BindJSON(&input) {
		return
	}

	user, err := c.service.Register(input)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Created(user)
}

// Login handles POST /api/auth/login.
func (c *AuthController) Login(cc *ctx.Context) {
	var input services.LoginInput
	if !cc.BindJSON(&input) {
		return
	}

	token, err := c.service.Login(input)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Success(map[string]string{"token": token})
}

// Create handles POST /api/auth/create: privileged account creation gated by
// the creation-authority table.
func (c *AuthController) Create(cc *ctx.Context) {
	var input services.CreateUserInput
	if !cc.BindJSON(&input) {
		return
	}

	user, err := c.service.CreateUser(cc.Role(), input)
	if err != nil {
		response.FromError(cc.W, err)
		return
	}
	cc.Created(user)
}
