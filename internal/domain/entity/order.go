package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus int

const (
	// OrderStatusCart marks the user's open, mutable cart. A user has at most one.
	OrderStatusCart OrderStatus = 1
	// OrderStatusOrdered marks a finalized order. Finalized orders are immutable here.
	OrderStatusOrdered OrderStatus = 2
)

// IsCart reports whether the status is the open cart state.
func (s OrderStatus) IsCart() bool {
	return s == OrderStatusCart
}

// Order is a user's order. While its status is OrderStatusCart it acts as the shopping cart.
type Order struct {
	ID           uuid.UUID           `json:"id"`
	UserID       uuid.UUID           `json:"user_id"`      // The owner, as resolved by the identity provider.
	OrderNumber  string              `json:"order_number"` // Human-facing number, YYYYMMDD plus a random suffix.
	Status       OrderStatus         `json:"status"`
	SubTotalCost decimal.Decimal     `json:"sub_total_cost"`
	ShippingCost decimal.Decimal     `json:"shipping_cost"`
	TotalCost    decimal.Decimal     `json:"total_cost"`
	Items        []OrderProductStock `json:"items"` // Line items, empty when not preloaded.
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// AddToSubtotal adds amount to the subtotal and recomputes shipping and total under policy.
func (o *Order) AddToSubtotal(amount decimal.Decimal, policy ShippingPolicy) {
	o.SubTotalCost = o.SubTotalCost.Add(amount)
	o.ShippingCost = policy.ShippingFor(o.SubTotalCost)
	o.TotalCost = o.SubTotalCost.Add(o.ShippingCost)
}

// ShippingPolicy decides the shipping cost of an order from its subtotal.
type ShippingPolicy struct {
	FreeShippingThreshold decimal.Decimal // Subtotals at or above this ship for free.
	FlatRate              decimal.Decimal // Charged when the subtotal is below the threshold.
}

// DefaultShippingPolicy charges 5 below a subtotal of 20 and nothing from 20 up.
func DefaultShippingPolicy() ShippingPolicy {
	return ShippingPolicy{
		FreeShippingThreshold: decimal.NewFromInt(20),
		FlatRate:              decimal.NewFromInt(5),
	}
}

// ShippingFor returns the shipping cost for the given subtotal.
func (p ShippingPolicy) ShippingFor(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.LessThan(p.FreeShippingThreshold) {
		return p.FlatRate
	}

	return decimal.Zero
}

// OrderProductStock is a line item linking an order to one variant with a quantity of at least 1.
// Within one order each variant appears at most once.
type OrderProductStock struct {
	ID             uuid.UUID     `json:"id"`
	OrderID        uuid.UUID     `json:"order_id"`
	ProductStockID uuid.UUID     `json:"product_stock_id"`
	ProductStock   *ProductStock `json:"product_stock,omitempty"` // Loaded variant (with product), nil when not preloaded.
	Quantity       int           `json:"quantity"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}
