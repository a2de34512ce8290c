package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jatin-yadav05/hospital-management/internal/domain"
	"github.com/jatin-yadav05/hospital-management/internal/repository"
)

type MetricsService struct {
	repo repository.MetricsRepository
}

func NewMetricsService(repo repository.MetricsRepository) *MetricsService {
	return &MetricsService{repo: repo}
}

// Record prepends a reading to the user's history, computing BMI from
// height and weight when both are present, and trims the history to the
// newest MetricsHistoryLimit entries.
func (s *MetricsService) Record(ctx context.Context, userID string, reading domain.MetricsReading) (*domain.HealthMetrics, error) {
	if reading.BMI == 0 {
		reading.BMI = domain.ComputeBMI(reading.WeightKg, reading.HeightCm)
	}
	reading.RecordedAt = time.Now()

	metrics, err := s.repo.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrMetricsNotFound) {
			return nil, fmt.Errorf("load health metrics: %w", err)
		}
		metrics = &domain.HealthMetrics{UserID: userID}
	}

	metrics.Readings = append([]domain.MetricsReading{reading}, metrics.Readings...)
	if len(metrics.Readings) > domain.MetricsHistoryLimit {
		metrics.Readings = metrics.Readings[:domain.MetricsHistoryLimit]
	}

	if err := s.repo.Upsert(ctx, metrics); err != nil {
		return nil, fmt.Errorf("save health metrics: %w", err)
	}

	return metrics, nil
}

// History returns the user's readings, newest first; an absent document
// presents as an empty history.
func (s *MetricsService) History(ctx context.Context, userID string) (*domain.HealthMetrics, error) {
	metrics, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrMetricsNotFound) {
			return &domain.HealthMetrics{UserID: userID, Readings: []domain.MetricsReading{}}, nil
		}
		return nil, fmt.Errorf("load health metrics: %w", err)
	}
	return metrics, nil
}
