package routes

import (
	"netflix-backend/internal/handlers"
	"netflix-backend/internal/middleware"

	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

type Handlers struct {
	System  *handlers.SystemHandler
	Auth    *handlers.AuthHandler
	Catalog *handlers.CatalogHandler
}

func Setup(app *fiber.App, h Handlers, auth middleware.Authenticator) {
	requireAuth := middleware.RequireAuth(auth)
	optionalAuth := middleware.OptionalAuth(auth)

	app.Get("/", h.System.Root)
	app.Get("/health", h.System.Health)

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := app.Group("/api")
	api.Get("/health", h.System.Health)

	// Auth routes - mock session flow
	authGroup := api.Group("/auth")
	{
		authGroup.Post("/register", h.Auth.Register)
		authGroup.Post("/login", h.Auth.Login)
		authGroup.Get("/me", requireAuth, h.Auth.Me)
		authGroup.Post("/logout", requireAuth, h.Auth.Logout)
	}

	v1 := api.Group("/v1")

	// Catalog routes - search API with fallback catalog
	catalog := v1.Group("/catalog")
	{
		catalog.Get("/rows", h.Catalog.GetRows)
		catalog.Get("/rows/:slug", h.Catalog.GetRow)
		catalog.Get("/banner", h.Catalog.GetBanner)
		catalog.Get("/search", optionalAuth, h.Catalog.Search)
		catalog.Get("/movies/:id", h.Catalog.GetMovie)
	}

	me := v1.Group("/me", requireAuth)
	{
		me.Get("/recent-searches", h.Catalog.GetRecentSearches)
		me.Delete("/recent-searches", h.Catalog.ClearRecentSearches)
	}

	app.Use(h.System.NotFound)
}
