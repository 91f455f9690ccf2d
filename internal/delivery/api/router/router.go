// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vitashop/internal/delivery/api/middleware"
	"vitashop/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler *handler.ProductHandler
	CartHandler    *handler.CartHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler *handler.ProductHandler
	cartHandler    *handler.CartHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler: params.ProductHandler,
		cartHandler:    params.CartHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Catalog routes are public
	productsGroup := e.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.GET("/:id/qr", r.productHandler.GetProductQRCode)
	}

	// Cart routes require an authenticated user
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("", r.cartHandler.AddToCart)
		cartGroup.POST("/:product_stock_id", r.cartHandler.UpdateCartItem)
		cartGroup.DELETE("/:product_stock_id", r.cartHandler.RemoveCartItem)
	}
}
