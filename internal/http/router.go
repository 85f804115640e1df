package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/glowcosmetics/storefront/internal/http/handlers"
)

// NewRouter wires every route of the storefront API. Catalog reads and
// the cart are public; everything that mutates catalog or user data sits
// behind auth + admin.
func NewRouter() http.Handler {
	r := chi.NewRouter()

	// auth
	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
	})
	r.Post("/refresh", handlers.RefreshHandler)
	r.Post("/logout", handlers.LogoutHandler)

	// public catalog
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/categories", handlers.GetCategoriesHandler)
	r.Get("/categories/{id}", handlers.GetCategoryByIDHandler)

	// cart, scoped to the session cookie
	r.Route("/cart", func(r chi.Router) {
		r.Get("/", handlers.GetCartHandler)
		r.Post("/items", handlers.AddCartItemHandler)
		r.Put("/items/{productID}", handlers.UpdateCartItemHandler)
		r.Delete("/items/{productID}", handlers.RemoveCartItemHandler)
		r.Post("/open", handlers.OpenCartHandler)
		r.Post("/close", handlers.CloseCartHandler)
	})

	// authenticated
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware)
		r.Get("/current-user", handlers.CurrentUserHandler)
	})

	// admin back office
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware, AdminOnly)

		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Post("/products/import", handlers.ImportProductsHandler)
		r.Post("/products/{id}/adjust", handlers.AdjustStockHandler)
		r.Get("/products/{id}/movements", handlers.GetMovementsHandler)

		r.Post("/categories", handlers.CreateCategoryHandler)
		r.Put("/categories/{id}", handlers.UpdateCategoryHandler)
		r.Delete("/categories/{id}", handlers.DeleteCategoryHandler)

		r.Get("/users", handlers.GetUsersHandler)
		r.Get("/users/{id}", handlers.GetUserByIDHandler)
		r.Put("/users/{id}", handlers.UpdateUserRoleHandler)
		r.Delete("/users/{id}", handlers.DeleteUserHandler)

		r.Get("/dashboard/metrics", handlers.GetDashboardMetricsHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler())

	return r
}
