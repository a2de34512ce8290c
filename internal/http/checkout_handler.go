package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/jatin-yadav05/hospital-management/internal/domain"
)

type CheckoutService interface {
	Checkout(ctx context.Context, userID string, shipping domain.ShippingDetails) (*domain.Order, error)
}

type CheckoutHandler struct {
	checkout CheckoutService
	timeout  time.Duration
}

func NewCheckoutHandler(checkout CheckoutService, timeout time.Duration) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		timeout:  timeout,
	}
}

type CheckoutRequestDTO struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
	Phone    string `json:"phone"`
}

func (dto *CheckoutRequestDTO) validate() string {
	switch {
	case dto.FullName == "":
		return "full_name is required"
	case dto.Email == "":
		return "email is required"
	case dto.Address == "":
		return "address is required"
	case dto.City == "":
		return "city is required"
	case dto.State == "":
		return "state is required"
	case dto.ZipCode == "":
		return "zip_code is required"
	case dto.Phone == "":
		return "phone is required"
	}
	return ""
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	userID := getUserIDFromContext(r.Context())
	if userID == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if msg := req.validate(); msg != "" {
		respondError(w, http.StatusBadRequest, "invalid_shipping", msg)
		return
	}

	order, err := h.checkout.Checkout(ctx, userID, domain.ShippingDetails{
		FullName: req.FullName,
		Email:    req.Email,
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Phone:    req.Phone,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	log.Printf("order %s placed by user %s (request %s)", order.ID, userID, getRequestID(r.Context()))
	respondJSON(w, http.StatusCreated, convertOrder(order))
}
