package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jatin-yadav05/hospital-management/internal/domain"
	"github.com/jatin-yadav05/hospital-management/internal/repository"
)

var ErrAppointmentClosed = errors.New("appointment already cancelled")

type AppointmentService struct {
	repo repository.AppointmentRepository
}

func NewAppointmentService(repo repository.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repo: repo}
}

// Book creates a pending appointment for the user.
func (s *AppointmentService) Book(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	appt.Status = domain.AppointmentStatusPending
	if err := s.repo.Create(ctx, appt); err != nil {
		return nil, fmt.Errorf("book appointment: %w", err)
	}
	return appt, nil
}

func (s *AppointmentService) List(ctx context.Context, userID string) ([]*domain.Appointment, error) {
	appointments, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	if appointments == nil {
		appointments = []*domain.Appointment{}
	}
	return appointments, nil
}

// Cancel marks the user's appointment cancelled. Only the owning user can
// cancel; a foreign or unknown id reports not found.
func (s *AppointmentService) Cancel(ctx context.Context, id, userID string) error {
	err := s.repo.UpdateStatus(ctx, id, userID, domain.AppointmentStatusCancelled)
	if err != nil {
		if errors.Is(err, repository.ErrAppointmentNotFound) {
			return err
		}
		return fmt.Errorf("cancel appointment: %w", err)
	}
	return nil
}
