package orders

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jatin-yadav05/hospital-management/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	host, err := pgContainer.Host(ctx)
	require.NoError(t, err)

	port, err := pgContainer.MappedPort(ctx, "5432")
	require.NoError(t, err)

	creds := &Credentials{
		Host:              host,
		Port:              port.Int(),
		User:              "testuser",
		Password:          "testpass",
		DBName:            "testdb",
		MigrationsDirPath: "../../migrations/orders",
	}

	repo, err := NewRepository(creds)
	require.NoError(t, err)

	err = repo.RunMigrations(creds)
	require.NoError(t, err)

	cleanup := func() {
		repo.Close()
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return repo, cleanup
}

func newTestOrder(userID string) *domain.Order {
	return &domain.Order{
		ID:          uuid.New(),
		UserID:      userID,
		TotalAmount: 249.95,
		Status:      domain.OrderStatusProcessing,
		Items: []domain.OrderItem{
			{ProductID: 1, ProductName: "Paracetamol 500mg", Quantity: 5, Price: 49.99},
		},
		Shipping: domain.ShippingDetails{
			FullName: "Jane Patient",
			Email:    "jane@example.com",
			Address:  "1 Hospital Rd",
			City:     "Pune",
			State:    "MH",
			ZipCode:  "411001",
			Phone:    "9999999999",
		},
		CreatedAt: time.Now(),
	}
}

func TestCreateOrder_Success(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	order := newTestOrder("user-123")

	err := repo.CreateOrder(ctx, order)
	require.NoError(t, err)

	fetched, err := repo.GetOrderByID(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, fetched.ID)
	assert.Equal(t, "user-123", fetched.UserID)
	assert.Equal(t, 249.95, fetched.TotalAmount)
	assert.Equal(t, domain.OrderStatusProcessing, fetched.Status)
	require.Len(t, fetched.Items, 1)
	assert.Equal(t, "Paracetamol 500mg", fetched.Items[0].ProductName)
	assert.Equal(t, "Pune", fetched.Shipping.City)
}

func TestGetOrderByID_NotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetOrderByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestListOrdersByUserID(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	first := newTestOrder("user-123")
	require.NoError(t, repo.CreateOrder(ctx, first))

	second := newTestOrder("user-123")
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	require.NoError(t, repo.CreateOrder(ctx, second))

	other := newTestOrder("someone-else")
	require.NoError(t, repo.CreateOrder(ctx, other))

	list, err := repo.ListOrdersByUserID(ctx, "user-123")
	require.NoError(t, err)
	require.Len(t, list, 2)

	// Newest first
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestListOrdersByUserID_Empty(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	list, err := repo.ListOrdersByUserID(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, list)
}
