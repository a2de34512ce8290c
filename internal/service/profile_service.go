package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jatin-yadav05/hospital-management/internal/domain"
	"github.com/jatin-yadav05/hospital-management/internal/repository"
)

type ProfileService struct {
	repo repository.PatientRepository
}

func NewProfileService(repo repository.PatientRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Get returns the patient's profile. A user who has never saved one gets
// an empty profile rather than an error.
func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.Patient, error) {
	p, err := s.repo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPatientNotFound) {
			return &domain.Patient{UserID: userID}, nil
		}
		return nil, fmt.Errorf("load patient profile: %w", err)
	}
	return p, nil
}

// Update overwrites the patient's profile document.
func (s *ProfileService) Update(ctx context.Context, p *domain.Patient) (*domain.Patient, error) {
	p.UpdatedAt = time.Now()
	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("save patient profile: %w", err)
	}
	return p, nil
}
