package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/cookshare/internal/config"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/cookshare/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// Handlers bundles everything Setup mounts.
type Handlers struct {
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Users         *handlers.UserHandler
	Sessions      *handlers.SessionHandler
	Catalog       *handlers.CatalogHandler
	Recipes       *handlers.RecipeHandler
	RecipeParts   *handlers.RecipePartsHandler
	Ratings       *handlers.RatingHandler
	Subscriptions *handlers.SubscriptionHandler
}

func Setup(
	app *fiber.App,
	cfg *config.Config,
	sessions middleware.SessionChecker,
	users middleware.PrincipalLoader,
	h Handlers,
) {
	api := app.Group("/api", middleware.DBWaitTimeout(cfg.DBPoolWaitTimeout))

	// General API rate limiter per IP
	if cfg.RateLimitPerMinute > 0 {
		api.Use(limiter.New(limiter.Config{
			Max:               cfg.RateLimitPerMinute,
			Expiration:        1 * time.Minute,
			LimiterMiddleware: limiter.SlidingWindow{},
			KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		}))
	}

	session := middleware.SessionRequired(sessions, users)
	required := []fiber.Handler{middleware.JWTProtected(cfg), session}
	optional := []fiber.Handler{middleware.JWTOptional(cfg), session}
	with := func(chain []fiber.Handler, handler ...fiber.Handler) []fiber.Handler {
		out := make([]fiber.Handler, 0, len(chain)+len(handler))
		return append(append(out, chain...), handler...)
	}

	api.Get("/health", h.Health.Check)

	// Auth: stricter limit on credential guessing
	auth := api.Group("/auth")
	if cfg.AuthRateLimitPerMinute > 0 {
		auth.Use(limiter.New(limiter.Config{
			Max:               cfg.AuthRateLimitPerMinute,
			Expiration:        1 * time.Minute,
			LimiterMiddleware: limiter.SlidingWindow{},
			KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
		}))
	}
	auth.Post("/login", h.Auth.Login)
	auth.Post("/logout", h.Auth.Logout)

	// Users. /me is registered before /:id.
	api.Post("/users", h.Users.Create)
	api.Get("/users", h.Users.List)
	api.Get("/users/me", with(required, h.Users.Me)...)
	api.Get("/users/:id", h.Users.Get)
	api.Put("/users/:id", with(required, middleware.SelfOnly("id"), h.Users.Update)...)
	api.Delete("/users/:id", with(required, middleware.SelfOnly("id"), h.Users.Delete)...)

	api.Get("/sessions", with(required, h.Sessions.List)...)
	api.Get("/sessions/:id", with(required, h.Sessions.Get)...)
	api.Delete("/sessions/:id", with(required, h.Sessions.Delete)...)

	api.Get("/categories", h.Catalog.ListCategories)
	api.Get("/categories/:id", h.Catalog.GetCategory)
	api.Post("/categories", with(required, h.Catalog.CreateCategory)...)
	api.Put("/categories/:id", with(required, h.Catalog.UpdateCategory)...)
	api.Delete("/categories/:id", with(required, h.Catalog.DeleteCategory)...)

	api.Get("/ingredients", h.Catalog.ListIngredients)
	api.Get("/ingredients/:id", h.Catalog.GetIngredient)
	api.Post("/ingredients", with(required, h.Catalog.CreateIngredient)...)
	api.Put("/ingredients/:id", with(required, h.Catalog.UpdateIngredient)...)
	api.Delete("/ingredients/:id", with(required, h.Catalog.DeleteIngredient)...)

	// Recipes. /search is registered before /:id.
	api.Get("/recipes", with(optional, h.Recipes.List)...)
	api.Get("/recipes/search", with(optional, h.Recipes.Search)...)
	api.Get("/recipes/:id", with(optional, h.Recipes.Get)...)
	api.Post("/recipes", with(required, h.Recipes.Create)...)
	api.Put("/recipes/:id", with(required, h.Recipes.Update)...)
	api.Delete("/recipes/:id", with(required, h.Recipes.Delete)...)

	api.Get("/recipes/:id/collaborators", with(optional, h.RecipeParts.ListCollaborators)...)
	api.Post("/recipes/:id/collaborators", with(required, h.RecipeParts.AddCollaborator)...)
	api.Put("/recipes/:id/collaborators/:user_id", with(required, h.RecipeParts.UpdateCollaborator)...)
	api.Delete("/recipes/:id/collaborators/:user_id", with(required, h.RecipeParts.RemoveCollaborator)...)

	api.Get("/recipes/:id/ingredients", with(optional, h.RecipeParts.ListIngredients)...)
	api.Post("/recipes/:id/ingredients", with(required, h.RecipeParts.AddIngredient)...)
	api.Put("/recipes/:id/ingredients/:ingredient_id", with(required, h.RecipeParts.UpdateIngredient)...)
	api.Delete("/recipes/:id/ingredients/:ingredient_id", with(required, h.RecipeParts.RemoveIngredient)...)

	api.Get("/recipes/:id/steps", with(optional, h.RecipeParts.ListSteps)...)
	api.Post("/recipes/:id/steps", with(required, h.RecipeParts.CreateStep)...)
	api.Get("/steps/:id", with(optional, h.RecipeParts.GetStep)...)
	api.Put("/steps/:id", with(required, h.RecipeParts.UpdateStep)...)
	api.Delete("/steps/:id", with(required, h.RecipeParts.DeleteStep)...)

	api.Get("/recipes/:id/ratings", with(optional, h.Ratings.ListByRecipe)...)
	api.Post("/recipes/:id/ratings", with(required, h.Ratings.Create)...)
	api.Get("/ratings/:id", with(optional, h.Ratings.Get)...)
	api.Put("/ratings/:id", with(required, h.Ratings.Update)...)
	api.Delete("/ratings/:id", with(required, h.Ratings.Delete)...)

	api.Get("/subscriptions", with(required, h.Subscriptions.List)...)
	api.Get("/subscriptions/:id", with(required, h.Subscriptions.Get)...)
	api.Post("/subscriptions", with(required, h.Subscriptions.Create)...)
	api.Put("/subscriptions/:id", with(required, h.Subscriptions.Update)...)
	api.Delete("/subscriptions/:id", with(required, h.Subscriptions.Delete)...)
}
