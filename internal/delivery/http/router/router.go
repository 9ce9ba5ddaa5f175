// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"threadz/internal/delivery/http/middleware"
	"threadz/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	CartHandler    *handler.CartHandler
	CatalogHandler *handler.CatalogHandler
	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	cartHandler    *handler.CartHandler
	catalogHandler *handler.CatalogHandler
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		cartHandler:    params.CartHandler,
		catalogHandler: params.CatalogHandler,
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.sessionHandler.Login)
		authGroup.POST("/register", r.sessionHandler.Register)
		authGroup.POST("/logout", r.sessionHandler.Logout)
	}

	// Session routes; reading the snapshot is public, profile updates
	// require an active token
	e.GET("/session", r.sessionHandler.GetSession)
	e.PATCH("/session/user", r.sessionHandler.UpdateUser, r.authMiddleware.Authenticate)

	// Cart routes
	cartGroup := e.Group("/cart")
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddItem)
		cartGroup.PATCH("/items", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items", r.cartHandler.RemoveItem)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}

	// Catalog routes
	e.GET("/products", r.catalogHandler.ListProducts)
	e.GET("/products/:id", r.catalogHandler.GetProduct)

	// Account routes that require authentication
	accountGroup := e.Group("/account")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/orders", r.accountHandler.Orders)
		accountGroup.GET("/addresses", r.accountHandler.Addresses)
		accountGroup.GET("/payment-methods", r.accountHandler.PaymentMethods)
		accountGroup.GET("/wishlist", r.accountHandler.Wishlist)
	}
}
