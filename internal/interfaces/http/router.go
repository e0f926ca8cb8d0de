package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ecommerce-catalog/internal/application/auth"
	"github.com/jhoicas/ecommerce-catalog/internal/application/dto"
	"github.com/jhoicas/ecommerce-catalog/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CategoryUC *usecase.CategoryUseCase
	ProductUC  *usecase.ProductUseCase
	ReviewUC   *usecase.ReviewUseCase
	UserUC     *usecase.UserUseCase
	Tokens     TokenDecoder
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	requireAuth := AuthMiddleware(deps.Tokens)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "My e-commerce app"})
	})

	// Auth
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/token", authHandler.Token)
	authGroup.Post("/", authHandler.Register)
	authGroup.Get("/read_current_user", requireAuth, authHandler.ReadCurrentUser)

	// Categories (lectura pública, mutaciones admin)
	categories := app.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", requireAuth, categoryHandler.Create)
	categories.Put("/:category_slug", requireAuth, categoryHandler.Update)
	categories.Delete("/:category_slug", requireAuth, categoryHandler.Delete)

	// Products: /detail/:product_slug va antes que /:category_slug
	products := app.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", requireAuth, productHandler.Create)
	products.Get("/detail/:product_slug", productHandler.Detail)
	products.Get("/:category_slug", productHandler.ListByCategory)
	products.Put("/:product_slug", requireAuth, productHandler.Update)
	products.Delete("/:product_slug", requireAuth, productHandler.Delete)

	// Permission (admin)
	permission := app.Group("/permission", requireAuth)
	permissionHandler := NewPermissionHandler(deps.UserUC)
	permission.Patch("/", permissionHandler.ToggleSupplier)
	permission.Delete("/delete", permissionHandler.Delete)

	// Reviews
	reviews := app.Group("/reviews")
	reviewHandler := NewReviewHandler(deps.ReviewUC)
	reviews.Get("/", reviewHandler.List)
	reviews.Get("/:product_slug", reviewHandler.ListByProduct)
	reviews.Post("/:product_slug", requireAuth, reviewHandler.Add)
	reviews.Delete("/:review_id", requireAuth, reviewHandler.Delete)
}
