package handler

import (
	"log/slog"

	"vitashop/internal/delivery/api/middleware"
	"vitashop/internal/delivery/api/response"
	"vitashop/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart handlers
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddToCartRequest represents the request body for adding a variant to the cart
type AddToCartRequest struct {
	ProductID    string           `json:"productId" validate:"required"`
	ProductSize  string           `json:"productSize"`
	ProductPrice *decimal.Decimal `json:"productPrice" validate:"required"`
}

// UpdateCartItemRequest represents the request body for changing a cart line
type UpdateCartItemRequest struct {
	ProductID       string `json:"productId" validate:"required"`
	ProductSize     string `json:"productSize"`
	ProductQuantity *int   `json:"productQuantity" validate:"required,min=1"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	view, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if view == nil {
		return response.Empty(c)
	}

	return response.Success(c, view)
}

// AddToCart handles POST /cart
func (h *CartHandler) AddToCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.KeyError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.KeyError(c)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.KeyError(c)
	}

	input := &usecase.AddToCartInput{
		ProductID:    productID,
		ProductSize:  req.ProductSize,
		ProductPrice: *req.ProductPrice,
	}

	if err := h.cartUC.AddToCart(c.Request().Context(), userID, input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, nil)
}

// UpdateCartItem handles POST /cart/:product_stock_id
func (h *CartHandler) UpdateCartItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	productStockID, err := uuid.Parse(c.Param("product_stock_id"))
	if err != nil {
		return response.KeyError(c)
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.KeyError(c)
	}
	if err := c.Validate(&req); err != nil {
		return response.KeyError(c)
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.KeyError(c)
	}

	input := &usecase.UpdateCartItemInput{
		ProductStockID:  productStockID,
		ProductID:       productID,
		ProductSize:     req.ProductSize,
		ProductQuantity: *req.ProductQuantity,
	}

	if err := h.cartUC.UpdateCartItem(c.Request().Context(), userID, input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, nil)
}

// RemoveCartItem handles DELETE /cart/:product_stock_id
func (h *CartHandler) RemoveCartItem(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c)
	}

	productStockID, err := uuid.Parse(c.Param("product_stock_id"))
	if err != nil {
		return response.NotFound(c)
	}

	if err := h.cartUC.RemoveCartItem(c.Request().Context(), userID, productStockID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, nil)
}
