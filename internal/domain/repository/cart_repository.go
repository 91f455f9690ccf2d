package repository

import (
	"context"

	"vitashop/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when the user has no open cart.
	ErrCartNotFound = errors.New("open cart not found")
	// ErrCartItemNotFound is returned when a line item is not in the cart.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the interface for the open cart order and its line items.
// Methods that change rows are meant to run inside TransactionManager.Execute.
type CartRepository interface {
	// FindOpenCartWithItems retrieves the user's open cart with its line items, their variants
	// and products. It always reads from the primary database.
	FindOpenCartWithItems(ctx context.Context, userID uuid.UUID) (*entity.Order, error)

	// LockOpenCart retrieves the user's open cart and locks its row until the transaction ends.
	LockOpenCart(ctx context.Context, userID uuid.UUID) (*entity.Order, error)

	// LockOrCreateOpenCart inserts an open cart for the user unless one exists, then locks and returns it.
	// created reports whether this call inserted the row.
	LockOrCreateOpenCart(ctx context.Context, userID uuid.UUID, orderNumber string) (order *entity.Order, created bool, err error)

	// UpdateCosts persists the order's subtotal, shipping and total costs.
	UpdateCosts(ctx context.Context, order *entity.Order) error

	// DeleteOrder removes an order by its ID.
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error

	// FindItem retrieves the line item for a variant within an order.
	FindItem(ctx context.Context, orderID, productStockID uuid.UUID) (*entity.OrderProductStock, error)

	// UpsertItem inserts the line item or, if the variant is already in the order, overwrites its quantity.
	UpsertItem(ctx context.Context, item *entity.OrderProductStock) error

	// UpdateItem points a line item at a variant and sets its quantity.
	UpdateItem(ctx context.Context, itemID, productStockID uuid.UUID, quantity int) error

	// DeleteItem removes a line item by its ID.
	DeleteItem(ctx context.Context, itemID uuid.UUID) error

	// CountItems returns the number of line items in an order.
	CountItems(ctx context.Context, orderID uuid.UUID) (int64, error)
}
