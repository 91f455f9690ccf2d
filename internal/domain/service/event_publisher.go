package service

import (
	"context"
	"time"
)

// CartEvent describes a committed change to a user's cart.
type CartEvent struct {
	RequestID      string    `json:"request_id,omitempty"` // For distributed tracing
	EventID        string    `json:"event_id"`
	Type           string    `json:"type"` // One of the constants.CartEvent* values
	UserID         string    `json:"user_id"`
	OrderID        string    `json:"order_id"`
	OrderNumber    string    `json:"order_number"`
	ProductStockID string    `json:"product_stock_id"`
	Quantity       int       `json:"quantity,omitempty"`
	SubTotalCost   string    `json:"sub_total_cost,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCartEvent publishes a cart change for downstream consumers
	PublishCartEvent(ctx context.Context, event *CartEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
