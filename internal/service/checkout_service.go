package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jatin-yadav05/hospital-management/internal/domain"
	"github.com/jatin-yadav05/hospital-management/internal/events"
	"github.com/jatin-yadav05/hospital-management/internal/orders"
)

var ErrEmptyCart = errors.New("cart is empty")

type CartProvider interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
}

type StockAdjuster interface {
	AdjustStock(ctx context.Context, id int64, delta int) error
}

// CheckoutService snapshots the cart into an immutable order. The cart
// itself is not touched here; the order-created event drives the clearing
// consumer, so a failed publish degrades to keeping the cart.
type CheckoutService struct {
	carts     CartProvider
	stock     StockAdjuster
	orders    orders.OrderRepository
	publisher events.Publisher
}

func NewCheckoutService(carts CartProvider, stock StockAdjuster, repo orders.OrderRepository, publisher events.Publisher) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		stock:     stock,
		orders:    repo,
		publisher: publisher,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, userID string, shipping domain.ShippingDetails) (*domain.Order, error) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	reserved, err := s.reserveStock(ctx, cart.Items)
	if err != nil {
		return nil, err
	}

	order := domain.OrderSnapshot(cart, shipping)
	if errCreate := s.orders.CreateOrder(ctx, order); errCreate != nil {
		s.releaseStock(ctx, reserved)
		return nil, fmt.Errorf("create order: %w", errCreate)
	}

	if errPublish := s.publisher.PublishOrderCreated(ctx, order); errPublish != nil {
		// The order stands; the cart just is not cleared automatically.
		log.Printf("publish order created event: %v", errPublish)
	}

	return order, nil
}

func (s *CheckoutService) reserveStock(ctx context.Context, items []domain.CartItem) ([]domain.CartItem, error) {
	var reserved []domain.CartItem
	for _, item := range items {
		if err := s.stock.AdjustStock(ctx, item.ProductID, -item.Quantity); err != nil {
			s.releaseStock(ctx, reserved)
			return nil, fmt.Errorf("reserve stock for product %d: %w", item.ProductID, err)
		}
		reserved = append(reserved, item)
	}
	return reserved, nil
}

func (s *CheckoutService) releaseStock(ctx context.Context, reserved []domain.CartItem) {
	for _, item := range reserved {
		if err := s.stock.AdjustStock(ctx, item.ProductID, item.Quantity); err != nil {
			log.Printf("release stock for product %d: %v", item.ProductID, err)
		}
	}
}
