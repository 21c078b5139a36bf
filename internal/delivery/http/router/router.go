// Package router contains routing setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler      *handler.AuthHandler
	UserHandler      *handler.UserHandler
	AddressHandler   *handler.AddressHandler
	CategoryHandler  *handler.CategoryHandler
	AttributeHandler *handler.AttributeHandler
	ProductHandler   *handler.ProductHandler
	OrderHandler     *handler.OrderHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler      *handler.AuthHandler
	userHandler      *handler.UserHandler
	addressHandler   *handler.AddressHandler
	categoryHandler  *handler.CategoryHandler
	attributeHandler *handler.AttributeHandler
	productHandler   *handler.ProductHandler
	orderHandler     *handler.OrderHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:      params.AuthHandler,
		userHandler:      params.UserHandler,
		addressHandler:   params.AddressHandler,
		categoryHandler:  params.CategoryHandler,
		attributeHandler: params.AttributeHandler,
		productHandler:   params.ProductHandler,
		orderHandler:     params.OrderHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/admin/login", r.authHandler.AdminLogin)
	}

	// Public catalog reads
	e.GET("/categories", r.categoryHandler.List)
	e.GET("/categories/:id", r.categoryHandler.Get)
	e.GET("/attributes", r.attributeHandler.List)
	e.GET("/attributes/:id", r.attributeHandler.Get)
	e.GET("/products", r.productHandler.List)
	e.GET("/products/:id", r.productHandler.Get)

	// Address book, scoped to the authenticated user
	addressGroup := e.Group("/addresses")
	addressGroup.Use(r.authMiddleware.Authenticate)
	{
		addressGroup.POST("", r.addressHandler.Create)
		addressGroup.GET("", r.addressHandler.List)
		addressGroup.GET("/:id", r.addressHandler.Get)
		addressGroup.PUT("/:id", r.addressHandler.Update)
		addressGroup.PATCH("/:id/default", r.addressHandler.SetDefault)
		addressGroup.DELETE("/:id", r.addressHandler.Delete)
	}

	// Order workflow; status transitions stay admin-only inside the use case
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateStatus)
		orderGroup.GET("/:id/receipt", r.orderHandler.Receipt)
	}

	// Admin surface: account management and catalog mutations. The use cases
	// enforce the role again, the middleware just fails fast.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.GET("/users", r.userHandler.List)
		adminGroup.GET("/users/:id", r.userHandler.Get)
		adminGroup.PUT("/users/:id", r.userHandler.Update)
		adminGroup.DELETE("/users/:id", r.userHandler.Delete)

		adminGroup.POST("/categories", r.categoryHandler.Create)
		adminGroup.DELETE("/categories/:id", r.categoryHandler.Delete)

		adminGroup.POST("/attributes", r.attributeHandler.Create)
		adminGroup.DELETE("/attributes/:id", r.attributeHandler.Delete)
		adminGroup.POST("/attributes/:id/values", r.attributeHandler.AddValue)
		adminGroup.DELETE("/attributes/values/:valueId", r.attributeHandler.DeleteValue)

		adminGroup.POST("/products", r.productHandler.Create)
		adminGroup.PUT("/products/:id", r.productHandler.Update)
		adminGroup.DELETE("/products/:id", r.productHandler.Delete)
	}
}
