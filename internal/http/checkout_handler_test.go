package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jatin-yadav05/hospital-management/internal/domain"
	"github.com/jatin-yadav05/hospital-management/internal/service"
)

type checkoutServiceMock struct {
	order *domain.Order
	err   error

	gotShipping domain.ShippingDetails
}

func (m *checkoutServiceMock) Checkout(ctx context.Context, userID string, shipping domain.ShippingDetails) (*domain.Order, error) {
	m.gotShipping = shipping
	if m.err != nil {
		return nil, m.err
	}
	return m.order, nil
}

func validCheckoutRequest() *CheckoutRequestDTO {
	return &CheckoutRequestDTO{
		FullName: "Jane Patient",
		Email:    "jane@example.com",
		Address:  "1 Hospital Rd",
		City:     "Pune",
		State:    "MH",
		ZipCode:  "411001",
		Phone:    "9999999999",
	}
}

func TestCheckout_Success(t *testing.T) {
	svc := &checkoutServiceMock{
		order: &domain.Order{
			ID:          uuid.New(),
			UserID:      "user-1",
			TotalAmount: 249.95,
			Status:      domain.OrderStatusProcessing,
			Items: []domain.OrderItem{
				{ProductID: 1, ProductName: "Paracetamol 500mg", Price: 49.99, Quantity: 5},
			},
		},
	}

	handler := NewCheckoutHandler(svc, 5*time.Second)

	reqBytes, _ := json.Marshal(validCheckoutRequest())
	recorder := httptest.NewRecorder()

	handler.Checkout(recorder, authedRequest("POST", "/checkout", reqBytes))

	if recorder.Code != http.StatusCreated {
		t.Errorf("Expected status code %d, got %d", http.StatusCreated, recorder.Code)
	}

	var response OrderResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if response.TotalAmount != 249.95 {
		t.Errorf("Expected total 249.95, got %f", response.TotalAmount)
	}
	if response.Status != string(domain.OrderStatusProcessing) {
		t.Errorf("Expected status %s, got %s", domain.OrderStatusProcessing, response.Status)
	}
	if svc.gotShipping.City != "Pune" {
		t.Errorf("Expected shipping city passed through, got %q", svc.gotShipping.City)
	}
}

func TestCheckout_Unauthorized(t *testing.T) {
	handler := NewCheckoutHandler(&checkoutServiceMock{}, 5*time.Second)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", "/checkout", nil)
	// No user_id in context

	handler.Checkout(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("Expected status code %d, got %d", http.StatusUnauthorized, recorder.Code)
	}
}

func TestCheckout_MissingShippingFields(t *testing.T) {
	handler := NewCheckoutHandler(&checkoutServiceMock{}, 5*time.Second)

	tests := []struct {
		name   string
		mutate func(*CheckoutRequestDTO)
	}{
		{"missing full_name", func(r *CheckoutRequestDTO) { r.FullName = "" }},
		{"missing email", func(r *CheckoutRequestDTO) { r.Email = "" }},
		{"missing address", func(r *CheckoutRequestDTO) { r.Address = "" }},
		{"missing city", func(r *CheckoutRequestDTO) { r.City = "" }},
		{"missing state", func(r *CheckoutRequestDTO) { r.State = "" }},
		{"missing zip_code", func(r *CheckoutRequestDTO) { r.ZipCode = "" }},
		{"missing phone", func(r *CheckoutRequestDTO) { r.Phone = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCheckoutRequest()
			tt.mutate(req)
			reqBytes, _ := json.Marshal(req)
			recorder := httptest.NewRecorder()

			handler.Checkout(recorder, authedRequest("POST", "/checkout", reqBytes))

			if recorder.Code != http.StatusBadRequest {
				t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
			}

			var response ErrorResponse
			json.NewDecoder(recorder.Body).Decode(&response)
			if response.Code != "invalid_shipping" {
				t.Errorf("Expected error code 'invalid_shipping', got '%s'", response.Code)
			}
		})
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	handler := NewCheckoutHandler(&checkoutServiceMock{err: service.ErrEmptyCart}, 5*time.Second)

	reqBytes, _ := json.Marshal(validCheckoutRequest())
	recorder := httptest.NewRecorder()

	handler.Checkout(recorder, authedRequest("POST", "/checkout", reqBytes))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "empty_cart" {
		t.Errorf("Expected error code 'empty_cart', got '%s'", response.Code)
	}
}
