package events

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/jatin-yadav05/hospital-management/internal/domain"
	"github.com/jatin-yadav05/hospital-management/internal/repository"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	messages []kafka.Message
	pos      int
}

func (f *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if f.pos >= len(f.messages) {
		return kafka.Message{}, context.Canceled
	}
	m := f.messages[f.pos]
	f.pos++
	return m, nil
}

func (f *fakeReader) Close() error { return nil }

type mockCartRepo struct {
	m       sync.Mutex
	deleted []string
	err     error
}

func (m *mockCartRepo) GetCart(context.Context, string) (*domain.Cart, error) {
	return nil, repository.ErrCartNotFound
}

func (m *mockCartRepo) ReplaceItems(_ context.Context, userID string, items []domain.CartItem) (*domain.Cart, error) {
	return &domain.Cart{UserID: userID, Items: items}, nil
}

func (m *mockCartRepo) DeleteCart(_ context.Context, userID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return m.err
	}
	m.deleted = append(m.deleted, userID)
	return nil
}

type mockCartCache struct {
	m       sync.Mutex
	deleted []string
}

func (m *mockCartCache) Get(context.Context, string) (*domain.Cart, error) {
	return nil, errors.New("not implemented")
}

func (m *mockCartCache) Set(context.Context, string, *domain.Cart) error { return nil }

func (m *mockCartCache) Delete(_ context.Context, userID string) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.deleted = append(m.deleted, userID)
	return nil
}

func orderMessage(t *testing.T, event OrderCreatedEvent) kafka.Message {
	t.Helper()
	value, err := json.Marshal(event)
	require.NoError(t, err)
	return kafka.Message{Key: []byte(event.UserID), Value: value}
}

func TestConsumer_ClearsCartOnOrderCreated(t *testing.T) {
	repo := &mockCartRepo{}
	cartCache := &mockCartCache{}
	reader := &fakeReader{messages: []kafka.Message{
		orderMessage(t, OrderCreatedEvent{OrderID: "o1", UserID: "user123", TotalAmount: 49.99}),
	}}

	consumer := NewConsumerWithReader(repo, cartCache, reader)
	consumer.processMessage(context.Background())

	assert.Equal(t, []string{"user123"}, repo.deleted)
	assert.Equal(t, []string{"user123"}, cartCache.deleted)
}

func TestConsumer_SkipsInvalidPayload(t *testing.T) {
	repo := &mockCartRepo{}
	cartCache := &mockCartCache{}
	reader := &fakeReader{messages: []kafka.Message{
		{Value: []byte("{not json")},
	}}

	consumer := NewConsumerWithReader(repo, cartCache, reader)
	consumer.processMessage(context.Background())

	assert.Empty(t, repo.deleted)
	assert.Empty(t, cartCache.deleted)
}

func TestConsumer_SkipsMissingUserID(t *testing.T) {
	repo := &mockCartRepo{}
	cartCache := &mockCartCache{}
	reader := &fakeReader{messages: []kafka.Message{
		orderMessage(t, OrderCreatedEvent{OrderID: "o2"}),
	}}

	consumer := NewConsumerWithReader(repo, cartCache, reader)
	consumer.processMessage(context.Background())

	assert.Empty(t, repo.deleted)
	assert.Empty(t, cartCache.deleted)
}

func TestConsumer_CartAlreadyGone(t *testing.T) {
	repo := &mockCartRepo{err: repository.ErrCartNotFound}
	cartCache := &mockCartCache{}
	reader := &fakeReader{messages: []kafka.Message{
		orderMessage(t, OrderCreatedEvent{OrderID: "o3", UserID: "user456"}),
	}}

	consumer := NewConsumerWithReader(repo, cartCache, reader)
	consumer.processMessage(context.Background())

	// Cache entry is still invalidated even when the cart document is gone.
	assert.Equal(t, []string{"user456"}, cartCache.deleted)
}

func TestConsumer_RunStopsOnCancelledContext(t *testing.T) {
	repo := &mockCartRepo{}
	cartCache := &mockCartCache{}
	reader := &fakeReader{}

	consumer := NewConsumerWithReader(repo, cartCache, reader)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		consumer.Run(ctx)
		close(done)
	}()

	<-done
}
