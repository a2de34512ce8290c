package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jatin-yadav05/hospital-management/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPatientRepository struct {
	collection *mongo.Collection
}

func NewMongoPatientRepository(db *mongo.Database) PatientRepository {
	return &mongoPatientRepository{
		collection: db.Collection("patients"),
	}
}

func (m *mongoPatientRepository) Get(ctx context.Context, userID string) (*domain.Patient, error) {
	var patient domain.Patient

	filter := bson.M{"user_id": userID}
	err := m.collection.FindOne(ctx, filter).Decode(&patient)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	return &patient, nil
}

func (m *mongoPatientRepository) Upsert(ctx context.Context, p *domain.Patient) error {
	p.UpdatedAt = time.Now()

	filter := bson.M{"user_id": p.UserID}
	update := bson.M{"$set": p}
	opts := options.Update().SetUpsert(true)

	_, err := m.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert patient: %w", err)
	}

	return nil
}
