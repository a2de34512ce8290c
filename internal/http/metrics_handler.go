package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/jatin-yadav05/hospital-management/internal/domain"
)

type MetricsService interface {
	Record(ctx context.Context, userID string, reading domain.MetricsReading) (*domain.HealthMetrics, error)
	History(ctx context.Context, userID string) (*domain.HealthMetrics, error)
}

type MetricsHandler struct {
	metrics MetricsService
	timeout time.Duration
}

func NewMetricsHandler(metrics MetricsService, timeout time.Duration) *MetricsHandler {
	return &MetricsHandler{
		metrics: metrics,
		timeout: timeout,
	}
}

type RecordMetricsRequestDTO struct {
	WeightKg     float64 `json:"weight_kg"`
	HeightCm     float64 `json:"height_cm"`
	TemperatureC float64 `json:"temperature_c"`
	BloodSugar   float64 `json:"blood_sugar"`
	OxygenLevel  float64 `json:"oxygen_level"`
	Notes        string  `json:"notes"`
}

func (dto *RecordMetricsRequestDTO) validate() string {
	switch {
	case dto.WeightKg < 0 || dto.WeightKg > 700:
		return "weight_kg out of range"
	case dto.HeightCm < 0 || dto.HeightCm > 300:
		return "height_cm out of range"
	case dto.TemperatureC < 0 || dto.TemperatureC > 50:
		return "temperature_c out of range"
	case dto.OxygenLevel < 0 || dto.OxygenLevel > 100:
		return "oxygen_level out of range"
	}
	return ""
}

// POST /api/v1/metrics
func (h *MetricsHandler) Record(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req RecordMetricsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, "invalid_metrics", msg)
		return
	}

	metrics, err := h.metrics.Record(ctx, userID, domain.MetricsReading{
		WeightKg:     req.WeightKg,
		HeightCm:     req.HeightCm,
		TemperatureC: req.TemperatureC,
		BloodSugar:   req.BloodSugar,
		OxygenLevel:  req.OxygenLevel,
		Notes:        req.Notes,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, metrics)
}

// GET /api/v1/metrics
func (h *MetricsHandler) History(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	metrics, err := h.metrics.History(ctx, userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, metrics)
}
