package repository

import (
	"context"
	"errors"

	"github.com/jatin-yadav05/hospital-management/internal/domain"
)

var (
	ErrCartNotFound        = errors.New("cart not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrMetricsNotFound     = errors.New("health metrics not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// CartRepository defines the interface for cart data operations.
// Consumers define this interface, not the MongoDB implementation.
type CartRepository interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	// ReplaceItems rewrites the full items collection for the user,
	// creating the cart document if absent. Last write wins: concurrent
	// writers for the same user silently overwrite each other, which is
	// an accepted limitation of the full-document design.
	ReplaceItems(ctx context.Context, userID string, items []domain.CartItem) (*domain.Cart, error)
	DeleteCart(ctx context.Context, userID string) error
}

type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id, userID string, status domain.AppointmentStatus) error
}

type PatientRepository interface {
	Get(ctx context.Context, userID string) (*domain.Patient, error)
	Upsert(ctx context.Context, p *domain.Patient) error
}

type MetricsRepository interface {
	Get(ctx context.Context, userID string) (*domain.HealthMetrics, error)
	Upsert(ctx context.Context, m *domain.HealthMetrics) error
}
