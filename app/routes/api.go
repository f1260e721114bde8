package routes

import (
	"time"

	"github.com/dmelo/catalog/app/controllers"
	"github.com/dmelo/catalog/pkg/ctx"
	"github.com/dmelo/catalog/pkg/database"
	"github.com/dmelo/catalog/pkg/middleware"
	"github.com/dmelo/catalog/pkg/rbac"
	"github.com/dmelo/catalog/pkg/router"
)

// RegisterAPI wires every endpoint. Reads on the public group need no
// authentication; everything else sits behind the auth middleware, with
// fine-grained role checks living in the services.
func RegisterAPI(r *router.Router) {
	db := database.DB

	authController := controllers.NewAuthController(db)
	productController := controllers.NewProductController(db)
	categoryController := controllers.NewCategoryController(db)
	orderController := controllers.NewOrderController(db)
	wishlistController := controllers.NewWishlistController(db)

	api := r.Group("/api")

	// Public catalogue: trimmed projections, no auth.
	public := api.Group("/public")
	public.Get("/products", "public.products.index", ctx.Wrap(productController.ListPublic))
	public.Get("/products/{slug}", "public.products.show", ctx.Wrap(productController.GetBySlug))
	public.Get("/categories", "public.categories.index", ctx.Wrap(categoryController.ListPublic))

	// Auth. Rate limited since credentials are guessable.
	authGroup := api.Group("/auth", middleware.RateLimit(30, time.Minute))
	authGroup.Post("/register", "auth.register", ctx.Wrap(authController.Register))
	authGroup.Post("/login", "auth.login", ctx.Wrap(authController.Login))
	authGroup.Post("/create", "auth.create", ctx.Wrap(authController.Create),
		middleware.AuthMiddleware, rbac.Require(rbac.ActionUserCreate))

	// Internal catalogue and per-user resources.
	protected := api.Group("", middleware.AuthMiddleware)

	protected.Get("/products", "products.index", ctx.Wrap(productController.List))
	protected.Get("/products/{id}", "products.show", ctx.Wrap(productController.Get))
	protected.Post("/products", "products.store", ctx.Wrap(productController.Create))
	protected.Put("/products/{id}", "products.update", ctx.Wrap(productController.Update))
	protected.Delete("/products/{id}", "products.destroy", ctx.Wrap(productController.Delete))

	protected.Get("/categories", "categories.index", ctx.Wrap(categoryController.List))
	protected.Get("/categories/{id}", "categories.show", ctx.Wrap(categoryController.Get))
	protected.Post("/categories", "categories.store", ctx.Wrap(categoryController.Create))
	protected.Put("/categories/{id}", "categories.update", ctx.Wrap(categoryController.Update))
	protected.Delete("/categories/{id}", "categories.destroy", ctx.Wrap(categoryController.Delete))

	protected.Post("/orders", "orders.store", ctx.Wrap(orderController.Create))
	protected.Get("/orders/me", "orders.mine", ctx.Wrap(orderController.ListMine))
	protected.Get("/orders", "orders.index", ctx.Wrap(orderController.ListAll))
	protected.Get("/orders/{id}", "orders.show", ctx.Wrap(orderController.Get))
	protected.Patch("/orders/{id}/cancel", "orders.cancel", ctx.Wrap(orderController.Cancel))

	protected.Post("/wishlist/{productId}", "wishlist.add", ctx.Wrap(wishlistController.Add))
	protected.Delete("/wishlist/{productId}", "wishlist.remove", ctx.Wrap(wishlistController.Remove))
	protected.Get("/wishlist", "wishlist.index", ctx.Wrap(wishlistController.List))
	protected.Get("/wishlist/contains/{productId}", "wishlist.contains", ctx.Wrap(wishlistController.Contains))
}
