package service

import (
	"context"
	"testing"

	"github.com/jatin-yadav05/hospital-management/internal/domain"
	"github.com/jatin-yadav05/hospital-management/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPatientRepo struct {
	patients map[string]*domain.Patient
}

func newMockPatientRepo() *mockPatientRepo {
	return &mockPatientRepo{patients: make(map[string]*domain.Patient)}
}

func (m *mockPatientRepo) Get(_ context.Context, userID string) (*domain.Patient, error) {
	p, ok := m.patients[userID]
	if !ok {
		return nil, repository.ErrPatientNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *mockPatientRepo) Upsert(_ context.Context, p *domain.Patient) error {
	copied := *p
	m.patients[p.UserID] = &copied
	return nil
}

func TestProfileGet_NeverSaved_ReturnsEmpty(t *testing.T) {
	svc := NewProfileService(newMockPatientRepo())

	p, err := svc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", p.UserID)
	assert.Empty(t, p.FullName)
}

func TestProfileUpdate_RoundTrip(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewProfileService(repo)
	ctx := context.Background()

	saved, err := svc.Update(ctx, &domain.Patient{
		UserID:   "user-1",
		FullName: "Jane Patient",
		Email:    "jane@example.com",
	})
	require.NoError(t, err)
	assert.False(t, saved.UpdatedAt.IsZero())

	loaded, err := svc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Jane Patient", loaded.FullName)
	assert.Equal(t, "jane@example.com", loaded.Email)
}

func TestProfileUpdate_Overwrites(t *testing.T) {
	repo := newMockPatientRepo()
	svc := NewProfileService(repo)
	ctx := context.Background()

	_, err := svc.Update(ctx, &domain.Patient{UserID: "user-1", FullName: "Jane Patient"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, &domain.Patient{UserID: "user-1", FullName: "Jane P. Patient", Phone: "9999999999"})
	require.NoError(t, err)

	loaded, err := svc.Get(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Jane P. Patient", loaded.FullName)
	assert.Equal(t, "9999999999", loaded.Phone)
}
