package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jatin-yadav05/hospital-management/internal/domain"
)

type Catalog interface {
	ListMedicines(ctx context.Context, category, search string) ([]*domain.Medicine, error)
	GetMedicine(ctx context.Context, id int64) (*domain.Medicine, error)
	ListDoctors(ctx context.Context, department string) ([]*domain.Doctor, error)
	GetDoctor(ctx context.Context, id int64) (*domain.Doctor, error)
}

type CatalogHandler struct {
	catalog Catalog
	timeout time.Duration
}

func NewCatalogHandler(c Catalog, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{
		catalog: c,
		timeout: timeout,
	}
}

type MedicineResponseDTO struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	Description          string  `json:"description"`
	Price                float64 `json:"price"`
	Category             string  `json:"category"`
	Image                string  `json:"image"`
	Stock                int     `json:"stock"`
	Brand                string  `json:"brand"`
	RequiresPrescription bool    `json:"requires_prescription"`
	DosageForm           string  `json:"dosage_form"`
	PackSize             string  `json:"pack_size"`
}

func convertMedicine(m *domain.Medicine) MedicineResponseDTO {
	return MedicineResponseDTO{
		ID:                   m.ID,
		Name:                 m.Name,
		Description:          m.Description,
		Price:                m.Price,
		Category:             m.Category,
		Image:                m.ImageURL,
		Stock:                m.Stock,
		Brand:                m.Brand,
		RequiresPrescription: m.RequiresPrescription,
		DosageForm:           m.DosageForm,
		PackSize:             m.PackSize,
	}
}

type DoctorResponseDTO struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Specialty       string  `json:"specialty"`
	Department      string  `json:"department"`
	Image           string  `json:"image"`
	Experience      string  `json:"experience"`
	Education       string  `json:"education"`
	Description     string  `json:"description"`
	Ratings         float64 `json:"ratings"`
	Reviews         int     `json:"reviews"`
	ConsultationFee float64 `json:"consultation_fee"`
}

func convertDoctor(d *domain.Doctor) DoctorResponseDTO {
	return DoctorResponseDTO{
		ID:              d.ID,
		Name:            d.Name,
		Specialty:       d.Specialty,
		Department:      d.Department,
		Image:           d.ImageURL,
		Experience:      d.Experience,
		Education:       d.Education,
		Description:     d.Description,
		Ratings:         d.Ratings,
		Reviews:         d.Reviews,
		ConsultationFee: d.ConsultationFee,
	}
}

// GET /api/v1/medicines?category=&search=
func (h *CatalogHandler) ListMedicines(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")

	medicines, err := h.catalog.ListMedicines(ctx, category, search)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	dtos := make([]MedicineResponseDTO, 0, len(medicines))
	for _, m := range medicines {
		dtos = append(dtos, convertMedicine(m))
	}

	respondJSON(w, http.StatusOK, dtos)
}

// GET /api/v1/medicines/{medicine_id}
func (h *CatalogHandler) GetMedicine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "medicine_id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_medicine_id", "medicine_id must be a positive integer")
		return
	}

	medicine, err := h.catalog.GetMedicine(ctx, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, convertMedicine(medicine))
}

// GET /api/v1/doctors?department=
func (h *CatalogHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	department := r.URL.Query().Get("department")

	doctors, err := h.catalog.ListDoctors(ctx, department)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	dtos := make([]DoctorResponseDTO, 0, len(doctors))
	for _, d := range doctors {
		dtos = append(dtos, convertDoctor(d))
	}

	respondJSON(w, http.StatusOK, dtos)
}

// GET /api/v1/doctors/{doctor_id}
func (h *CatalogHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(r, "doctor_id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid_doctor_id", "doctor_id must be a positive integer")
		return
	}

	doctor, err := h.catalog.GetDoctor(ctx, id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, convertDoctor(doctor))
}
