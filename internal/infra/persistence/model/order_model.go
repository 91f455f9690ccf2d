package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// The partial unique index keeps at most one open cart (order_status = 1) per user.
type OrderModel struct {
	ID           uuid.UUID                `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID       uuid.UUID                `gorm:"type:uuid;not null;index:ux_orders_user_cart,unique,where:order_status = 1"`
	OrderNumber  string                   `gorm:"type:varchar(45);not null"`
	OrderStatus  int                      `gorm:"not null;default:1;index"`
	SubTotalCost decimal.Decimal          `gorm:"type:decimal(10,2);not null;default:0"`
	ShippingCost decimal.Decimal          `gorm:"type:decimal(10,2);not null;default:0"`
	TotalCost    decimal.Decimal          `gorm:"type:decimal(10,2);not null;default:0"`
	Items        []OrderProductStockModel `gorm:"foreignKey:OrderID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderProductStockModel is the GORM-specific struct for the 'order_product_stocks' table.
// It is a cart or order line item; each variant appears at most once per order.
type OrderProductStockModel struct {
	ID             uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID        uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex:ux_order_product_stocks_order_stock"`
	ProductStockID uuid.UUID          `gorm:"type:uuid;not null;index;uniqueIndex:ux_order_product_stocks_order_stock"`
	ProductStock   *ProductStockModel `gorm:"foreignKey:ProductStockID"`
	Quantity       int                `gorm:"not null;default:1;check:quantity >= 1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderProductStockModel) TableName() string {
	return "order_product_stocks"
}

// All returns every model in migration order.
func All() []any {
	return []any{
		&MenuModel{},
		&CategoryModel{},
		&GoalModel{},
		&AllergyModel{},
		&DietaryHabitModel{},
		&ProductModel{},
		&ProductStockModel{},
		&ImageModel{},
		&OrderModel{},
		&OrderProductStockModel{},
	}
}
