package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

type OrderItem struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// ShippingDetails are entered at checkout and frozen into the order.
type ShippingDetails struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Phone    string `json:"phone"`
}

// Order is an immutable snapshot of the cart at checkout time. The cart
// subsystem never mutates an order after creation.
type Order struct {
	ID          uuid.UUID
	UserID      string
	Items       []OrderItem
	TotalAmount float64
	Shipping    ShippingDetails
	Status      OrderStatus
	CreatedAt   time.Time
}

// OrderSnapshot builds an order from the cart as it stands. The total is
// computed from the cart items, not trusted from the caller.
func OrderSnapshot(cart *Cart, shipping ShippingDetails) *Order {
	items := make([]OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.Name,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return &Order{
		ID:          uuid.New(),
		UserID:      cart.UserID,
		Items:       items,
		TotalAmount: cart.Total(),
		Shipping:    shipping,
		Status:      OrderStatusProcessing,
		CreatedAt:   time.Now(),
	}
}
