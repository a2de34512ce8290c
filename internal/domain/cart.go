package domain

import "time"

// CartItem is one product line in a patient's cart. Name, price and image
// are copied from the catalog at add-time and are not re-synced when the
// catalog changes later.
type CartItem struct {
	ProductID int64   `bson:"product_id" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Image     string  `bson:"image" json:"image"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

// Cart holds the full item collection for one user. Items never contain an
// entry with quantity <= 0; removal filters the entry out.
type Cart struct {
	ID        string     `bson:"_id,omitempty" json:"id,omitempty"`
	UserID    string     `bson:"user_id" json:"user_id"`
	Items     []CartItem `bson:"items" json:"items"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updated_at"`
}

// Total sums price * quantity over all items. Empty carts total 0.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
