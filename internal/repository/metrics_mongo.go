package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jatin-yadav05/hospital-management/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoMetricsRepository struct {
	collection *mongo.Collection
}

func NewMongoMetricsRepository(db *mongo.Database) MetricsRepository {
	return &mongoMetricsRepository{
		collection: db.Collection("health_metrics"),
	}
}

func (m *mongoMetricsRepository) Get(ctx context.Context, userID string) (*domain.HealthMetrics, error) {
	var metrics domain.HealthMetrics

	filter := bson.M{"user_id": userID}
	err := m.collection.FindOne(ctx, filter).Decode(&metrics)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrMetricsNotFound
		}
		return nil, fmt.Errorf("failed to get health metrics: %w", err)
	}

	return &metrics, nil
}

func (m *mongoMetricsRepository) Upsert(ctx context.Context, metrics *domain.HealthMetrics) error {
	filter := bson.M{"user_id": metrics.UserID}
	update := bson.M{"$set": metrics}
	opts := options.Update().SetUpsert(true)

	_, err := m.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert health metrics: %w", err)
	}

	return nil
}
