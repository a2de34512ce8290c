package events

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/jatin-yadav05/hospital-management/internal/cache"
	"github.com/jatin-yadav05/hospital-management/internal/repository"
	"github.com/segmentio/kafka-go"
)

// MessageReader is the slice of kafka.Reader the consumer needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
	Close() error
}

// Consumer empties a user's cart once their order has been created. A
// publish failure at checkout simply leaves the cart intact.
type Consumer struct {
	repo   repository.CartRepository
	cache  cache.CartCache
	reader MessageReader
}

func NewConsumer(repo repository.CartRepository, cartCache cache.CartCache, brokers ...string) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    orderEventsTopic,
		GroupID:  "cart-clearing-consumer",
		MaxBytes: 10e6, // 10MB
	})
	return &Consumer{repo: repo, cache: cartCache, reader: reader}
}

// NewConsumerWithReader wires an explicit reader, used by tests.
func NewConsumerWithReader(repo repository.CartRepository, cartCache cache.CartCache, reader MessageReader) *Consumer {
	return &Consumer{repo: repo, cache: cartCache, reader: reader}
}

func (c *Consumer) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}
		c.processMessage(ctx)
	}
}

func (c *Consumer) Close() {
	if err := c.reader.Close(); err != nil {
		log.Printf("error closing kafka reader: %v", err)
	}
}

func (c *Consumer) processMessage(ctx context.Context) {
	m, err := c.reader.ReadMessage(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		log.Printf("error reading message: %v", err)
		return
	}

	var event OrderCreatedEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		log.Printf("error parsing message: %v", err)
		return
	}
	if event.UserID == "" {
		log.Printf("order event %s missing user_id", event.OrderID)
		return
	}

	errDelete := c.repo.DeleteCart(ctx, event.UserID)
	if errDelete != nil && !errors.Is(errDelete, repository.ErrCartNotFound) {
		log.Printf("failed to delete cart: %v", errDelete)
	}

	if errCacheDelete := c.cache.Delete(ctx, event.UserID); errCacheDelete != nil {
		log.Printf("failed to delete cart cache: %v", errCacheDelete)
	}
}
