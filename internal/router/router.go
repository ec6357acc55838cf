// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/Marcob7/uitjes-backend/internal/config"
	"github.com/Marcob7/uitjes-backend/internal/handler"
	"github.com/Marcob7/uitjes-backend/internal/middleware"
)

// Deps bundles everything the routes need.
type Deps struct {
	Cfg       config.Config
	RateCfg   config.RateLimitConfig
	Redis     *redis.Client
	Auth      *handler.AuthHandler
	Events    *handler.EventHandler
	Feedback  *handler.FeedbackHandler
	Favorites *handler.FavoriteHandler
	Admin     *handler.AdminHandler
}

// Register wires all routes onto the provided Echo instance.
func Register(e *echo.Echo, d Deps) {
	// Operational endpoints, outside the API prefix and rate limiter.
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	limited := middleware.RateLimit(d.RateCfg, d.Redis)

	// Public browse endpoints.
	pub := e.Group("/v1", limited)
	pub.GET("/events", d.Events.List)
	pub.GET("/events/:id", d.Events.Detail)
	pub.GET("/cities", d.Admin.ListCities)
	pub.POST("/feedback", d.Feedback.Create)

	// Session endpoints (register, login, refresh, logout).
	auth := e.Group("/v1/auth", limited)
	auth.POST("/register", d.Auth.Register)
	auth.POST("/login", d.Auth.Login)
	auth.POST("/refresh", d.Auth.Refresh)
	auth.POST("/logout", d.Auth.Logout)

	// Endpoints that require a valid access token.
	user := e.Group("/v1")
	user.Use(middleware.JWTAuth(d.Cfg.JWTSecret))
	user.Use(middleware.RequireRole("USER", "ADMIN"))
	user.GET("/me", d.Auth.Me)
	user.GET("/favorites", d.Favorites.List)
	user.POST("/favorites/add", d.Favorites.Add)
	user.DELETE("/favorites/:event_id", d.Favorites.Remove)
	user.GET("/favorites/events", d.Favorites.FavoriteEvents)

	// Administrative endpoints.
	admin := e.Group("/v1")
	admin.Use(middleware.JWTAuth(d.Cfg.JWTSecret))
	admin.Use(middleware.RequireRole("ADMIN"))
	admin.POST("/cities", d.Admin.CreateCity)
}
