package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jatin-yadav05/hospital-management/internal/domain"
)

type AppointmentService interface {
	Book(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	List(ctx context.Context, userID string) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id, userID string) error
}

type AppointmentHandler struct {
	appointments AppointmentService
	timeout      time.Duration
}

func NewAppointmentHandler(appointments AppointmentService, timeout time.Duration) *AppointmentHandler {
	return &AppointmentHandler{
		appointments: appointments,
		timeout:      timeout,
	}
}

type BookAppointmentRequestDTO struct {
	AppointmentType string `json:"appointment_type"`
	Department      string `json:"department"`
	Doctor          string `json:"doctor"`
	PreferredDate   string `json:"preferred_date"`
	PreferredTime   string `json:"preferred_time"`
	Symptoms        string `json:"symptoms"`
	AdditionalNotes string `json:"additional_notes"`
}

func (dto *BookAppointmentRequestDTO) validate() string {
	switch {
	case dto.AppointmentType == "":
		return "appointment_type is required"
	case dto.Department == "":
		return "department is required"
	case dto.Doctor == "":
		return "doctor is required"
	case dto.PreferredDate == "":
		return "preferred_date is required"
	case dto.PreferredTime == "":
		return "preferred_time is required"
	}
	return ""
}

// POST /api/v1/appointments
func (h *AppointmentHandler) Book(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req BookAppointmentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, "invalid_appointment", msg)
		return
	}

	appt, err := h.appointments.Book(ctx, &domain.Appointment{
		UserID:          userID,
		UserEmail:       getUserEmailFromContext(r.Context()),
		AppointmentType: req.AppointmentType,
		Department:      req.Department,
		Doctor:          req.Doctor,
		PreferredDate:   req.PreferredDate,
		PreferredTime:   req.PreferredTime,
		Symptoms:        req.Symptoms,
		AdditionalNotes: req.AdditionalNotes,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, appt)
}

// GET /api/v1/appointments
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	appointments, err := h.appointments.List(ctx, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, appointments)
}

// POST /api/v1/appointments/{appointment_id}/cancel
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	id := chi.URLParam(r, "appointment_id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing_appointment_id", "appointment_id is required")
		return
	}

	if err := h.appointments.Cancel(ctx, id, userID); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": string(domain.AppointmentStatusCancelled)})
}
