package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestShippingPolicy_ShippingFor(t *testing.T) {
	t.Parallel()

	policy := DefaultShippingPolicy()

	tests := []struct {
		name     string
		subtotal string
		expected string
	}{
		{name: "empty subtotal", subtotal: "0", expected: "5"},
		{name: "just under threshold", subtotal: "19.99", expected: "5"},
		{name: "at threshold", subtotal: "20", expected: "0"},
		{name: "above threshold", subtotal: "42.50", expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := policy.ShippingFor(decimal.RequireFromString(tt.subtotal))
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(got), "got %s", got)
		})
	}
}

func TestOrder_AddToSubtotal(t *testing.T) {
	t.Parallel()

	policy := DefaultShippingPolicy()
	order := &Order{Status: OrderStatusCart}

	order.AddToSubtotal(decimal.NewFromInt(12), policy)
	assert.Equal(t, "12", order.SubTotalCost.String())
	assert.Equal(t, "5", order.ShippingCost.String())
	assert.Equal(t, "17", order.TotalCost.String())

	order.AddToSubtotal(decimal.NewFromInt(12), policy)
	assert.Equal(t, "24", order.SubTotalCost.String())
	assert.True(t, order.ShippingCost.IsZero())
	assert.Equal(t, "24", order.TotalCost.String())
}

func TestOrderStatus_IsCart(t *testing.T) {
	t.Parallel()

	assert.True(t, OrderStatusCart.IsCart())
	assert.False(t, OrderStatusOrdered.IsCart())
}
