package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/civic-voice/internal/api/http/handlers"
	"github.com/spec-kit/civic-voice/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Issues         *handlers.IssuesHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	users := api.Group("/users", cfg.AuthMiddleware.Handle)
	users.Get("/profile", cfg.Users.Profile)
	users.Put("/location", cfg.Users.UpdateLocation)

	issues := api.Group("/issues", cfg.AuthMiddleware.Handle)
	issues.Post("/", cfg.Issues.Report)
	issues.Get("/", cfg.Issues.ListCommunity)
	issues.Get("/my", cfg.Issues.ListMine)
}
