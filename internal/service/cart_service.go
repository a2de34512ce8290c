package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jatin-yadav05/hospital-management/internal/cache"
	"github.com/jatin-yadav05/hospital-management/internal/domain"
	"github.com/jatin-yadav05/hospital-management/internal/repository"
	"golang.org/x/sync/singleflight"
)

// CartService owns the per-user cart collection. Every mutation recomputes
// the full item collection and rewrites the whole persisted document
// (last write wins), then invalidates the cache entry.
type CartService struct {
	repo  repository.CartRepository
	cache cache.CartCache
	sfg   singleflight.Group // Prevents cache stampede
}

func NewCartService(repo repository.CartRepository, cartCache cache.CartCache) *CartService {
	return &CartService{
		repo:  repo,
		cache: cartCache,
	}
}

// GetCart reconciles the cart for a session: cache first, then the
// persisted document. A missing document presents as an empty cart, never
// as an error.
func (s *CartService) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	if userID == "" {
		return &domain.Cart{}, nil
	}

	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {

		cart, err := s.cache.Get(ctx, userID)
		if err == nil {
			return cart, nil // cart is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		cart, errGet := s.repo.GetCart(ctx, userID)
		if errGet != nil && errors.Is(errGet, repository.ErrCartNotFound) {
			return &domain.Cart{
				UserID:    userID,
				Items:     nil,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}, nil
		}
		if errGet != nil {
			return nil, errGet
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), userID, cart)
			if errSet != nil {
				log.Printf("cache set error: %v", errSet)
			}
		}()

		return cart, nil // cart was not in cache, return it from repo
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Cart), nil
}

// AddItem merges the product into the cart: an existing line keeps its
// position and gains quantity 1, a new line joins the end with quantity 1.
// Display fields are copied from the product at add-time. Anonymous users
// cannot accumulate a cart.
func (s *CartService) AddItem(ctx context.Context, userID string, product *domain.Medicine) (*domain.Cart, error) {
	if userID == "" {
		return &domain.Cart{}, nil
	}

	items, err := s.currentItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].ProductID == product.ID {
			items[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, domain.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.ImageURL,
			Quantity:  1,
		})
	}

	return s.writeItems(ctx, userID, items)
}

// UpdateQuantity sets the line's quantity exactly; quantity <= 0 removes
// the line, which is also the removal code path. An unknown productID is a
// safe no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, userID string, productID int64, quantity int) (*domain.Cart, error) {
	if userID == "" {
		return &domain.Cart{}, nil
	}

	items, err := s.currentItems(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID == productID {
			if quantity <= 0 {
				continue // removal: filter the line out
			}
			item.Quantity = quantity
		}
		updated = append(updated, item)
	}

	return s.writeItems(ctx, userID, updated)
}

// ClearCart deletes the persisted document outright; a reload sees an
// empty cart.
func (s *CartService) ClearCart(ctx context.Context, userID string) (*domain.Cart, error) {
	if userID == "" {
		return &domain.Cart{}, nil
	}

	errDelete := s.repo.DeleteCart(ctx, userID)
	if errDelete != nil && !errors.Is(errDelete, repository.ErrCartNotFound) {
		log.Printf("repo delete cart error: %v", errDelete)
		return nil, errDelete
	}

	s.invalidateCache(userID)
	return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}, nil
}

func (s *CartService) currentItems(ctx context.Context, userID string) ([]domain.CartItem, error) {
	cart, err := s.repo.GetCart(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotFound) {
			return nil, nil
		}
		log.Printf("repo get cart error: %v", err)
		return nil, err
	}
	return cart.Items, nil
}

func (s *CartService) writeItems(ctx context.Context, userID string, items []domain.CartItem) (*domain.Cart, error) {
	cart, err := s.repo.ReplaceItems(ctx, userID, items)
	if err != nil {
		// The persisted document did not advance; the caller sees the
		// failure instead of a silently stale cart.
		log.Printf("repo replace items error: %v", err)
		return nil, err
	}

	s.invalidateCache(userID)
	return cart, nil
}

func (s *CartService) invalidateCache(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		log.Printf("cache invalidate error: %v", err)
	}
}
