package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddToCartInput identifies the variant to add and the price to charge.
type AddToCartInput struct {
	ProductID    uuid.UUID
	ProductSize  string
	ProductPrice decimal.Decimal
}

// UpdateCartItemInput moves a cart line to a (possibly different) variant and sets its quantity.
type UpdateCartItemInput struct {
	ProductStockID  uuid.UUID // Variant the line currently points at
	ProductID       uuid.UUID
	ProductSize     string
	ProductQuantity int
}

// CartLine is one line item of the cart view.
type CartLine struct {
	Category        string    `json:"category"`
	ProductID       uuid.UUID `json:"productId"`
	ProductName     string    `json:"productName"`
	ProductSubName  string    `json:"productSubName"`
	ProductStockID  uuid.UUID `json:"productStockId"`
	ProductSize     string    `json:"productSize"`
	ProductPrice    string    `json:"productPrice"`
	ProductStock    int       `json:"productStock"`
	ProductImageURL string    `json:"productImageUrl"`
	ProductQuantity int       `json:"productQuantity"`
}

// CartView is the open cart with its costs and lines.
type CartView struct {
	OrderNumber  string     `json:"orderNumber"`
	SubTotalCost string     `json:"subTotalCost"`
	ShippingCost string     `json:"shippingCost"`
	TotalCost    string     `json:"totalCost"`
	Carts        []CartLine `json:"carts"`
}

// CartUsecase defines the interface for shopping cart use cases
type CartUsecase interface {
	// GetCart returns the user's open cart, or nil when the user has none
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)

	// AddToCart adds a variant to the user's cart, creating the cart if needed
	AddToCart(ctx context.Context, userID uuid.UUID, input *AddToCartInput) error

	// UpdateCartItem changes the size and quantity of a cart line, merging with an existing line if needed
	UpdateCartItem(ctx context.Context, userID uuid.UUID, input *UpdateCartItemInput) error

	// RemoveCartItem deletes a cart line, and the cart itself once it is empty
	RemoveCartItem(ctx context.Context, userID uuid.UUID, productStockID uuid.UUID) error
}
