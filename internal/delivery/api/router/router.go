// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler     *handler.HealthHandler
	AuthHandler       *handler.AuthHandler
	CatalogHandler    *handler.CatalogHandler
	CategoryHandler   *handler.CategoryHandler
	ItemHandler       *handler.ItemHandler
	MediaHandler      *handler.MediaHandler
	StorefrontHandler *handler.StorefrontHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler     *handler.HealthHandler
	authHandler       *handler.AuthHandler
	catalogHandler    *handler.CatalogHandler
	categoryHandler   *handler.CategoryHandler
	itemHandler       *handler.ItemHandler
	mediaHandler      *handler.MediaHandler
	storefrontHandler *handler.StorefrontHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:     params.HealthHandler,
		authHandler:       params.AuthHandler,
		catalogHandler:    params.CatalogHandler,
		categoryHandler:   params.CategoryHandler,
		itemHandler:       params.ItemHandler,
		mediaHandler:      params.MediaHandler,
		storefrontHandler: params.StorefrontHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.Check)

	// Stored images for buckets without a public URL
	e.GET("/media/*", r.mediaHandler.Serve)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/password/forgot", r.authHandler.ForgotPassword)
		authGroup.POST("/password/reset", r.authHandler.ResetPassword)
		authGroup.POST("/otp/verify", r.authHandler.VerifyOTP, r.authMiddleware.Authenticate)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// OAuth routes - separate group for better organization
	oauthGroup := e.Group("/oauth")
	{
		oauthGroup.POST("/google/callback", r.authHandler.GoogleCallback)
	}

	// API v1 routes
	apiV1 := e.Group("/api/v1")

	// Public JSON storefront
	apiV1.GET("/storefront/:slug", r.storefrontHandler.Get)

	// Dashboard routes require a merchant session
	dashboard := apiV1.Group("")
	dashboard.Use(r.authMiddleware.Authenticate)
	dashboard.Use(r.authMiddleware.RequireRole(entity.RoleMerchant))
	{
		dashboard.POST("/catalog", r.catalogHandler.Create)
		dashboard.GET("/catalog", r.catalogHandler.Get)
		dashboard.PUT("/catalog", r.catalogHandler.Update)
		dashboard.GET("/catalog/qr", r.catalogHandler.QRCode)

		dashboard.GET("/categories", r.categoryHandler.List)
		dashboard.POST("/categories", r.categoryHandler.Create)
		dashboard.PUT("/categories/:id", r.categoryHandler.Update)
		dashboard.DELETE("/categories/:id", r.categoryHandler.Delete)

		dashboard.GET("/items", r.itemHandler.List)
		dashboard.POST("/items", r.itemHandler.Create)
		dashboard.PUT("/items/:id", r.itemHandler.Update)
		dashboard.DELETE("/items/:id", r.itemHandler.Delete)

		dashboard.POST("/media", r.mediaHandler.Upload)
	}

	// Public catalog pages. Static routes above take precedence over /:slug.
	e.GET("/c/:slug", r.storefrontHandler.Page)
	e.GET("/:slug", r.storefrontHandler.Page)
}
