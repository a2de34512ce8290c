package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	cart := &Cart{
		UserID: "user123",
		Items: []CartItem{
			{ProductID: 1, Price: 10, Quantity: 2},
			{ProductID: 2, Price: 5, Quantity: 3},
		},
	}

	assert.Equal(t, 35.0, cart.Total())
}

func TestTotal_EmptyCart(t *testing.T) {
	cart := &Cart{UserID: "user123"}
	assert.Equal(t, 0.0, cart.Total())
}

func TestOrderSnapshot(t *testing.T) {
	cart := &Cart{
		UserID: "user123",
		Items: []CartItem{
			{ProductID: 7, Name: "Paracetamol 500mg", Price: 49.99, Quantity: 5},
		},
	}
	shipping := ShippingDetails{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Address:  "1 Hospital Rd",
		City:     "Pune",
		State:    "MH",
		ZipCode:  "411001",
		Phone:    "5550001111",
	}

	order := OrderSnapshot(cart, shipping)

	assert.Equal(t, "user123", order.UserID)
	assert.Equal(t, OrderStatusProcessing, order.Status)
	assert.InDelta(t, 249.95, order.TotalAmount, 0.001)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, "Paracetamol 500mg", order.Items[0].ProductName)
	assert.Equal(t, shipping, order.Shipping)
	assert.NotEmpty(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())
}
