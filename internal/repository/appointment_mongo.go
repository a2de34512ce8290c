package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jatin-yadav05/hospital-management/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAppointmentRepository struct {
	collection *mongo.Collection
}

func NewMongoAppointmentRepository(db *mongo.Database) AppointmentRepository {
	return &mongoAppointmentRepository{
		collection: db.Collection("appointments"),
	}
}

func (m *mongoAppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) error {
	now := time.Now()
	if appt.ID == "" {
		appt.ID = uuid.NewString()
	}
	appt.CreatedAt = now
	appt.UpdatedAt = now

	_, err := m.collection.InsertOne(ctx, appt)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}

	return nil
}

func (m *mongoAppointmentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Appointment, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	defer cursor.Close(ctx)

	var appointments []*domain.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}

	return appointments, nil
}

func (m *mongoAppointmentRepository) UpdateStatus(ctx context.Context, id, userID string, status domain.AppointmentStatus) error {
	// Ownership is part of the filter so one user cannot touch another's
	// appointment.
	filter := bson.M{"_id": id, "user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"status":     status,
			"updated_at": time.Now(),
		},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	if result.MatchedCount == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}
